package output

// LoggerPort is the structured logger the bot writes to. Args are
// alternating key/value pairs; the session stamps its id onto a child
// logger via WithField so every line of a run can be correlated.
type LoggerPort interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	WithField(key string, value any) LoggerPort
	WithFields(fields map[string]any) LoggerPort

	// Close flushes and releases the underlying sink.
	Close() error
}

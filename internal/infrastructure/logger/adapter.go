package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jokebot/internal/application/port/output"
)

var _ output.LoggerPort = (*LoggerAdapter)(nil)

// LoggerAdapter writes structured JSON to a per-session file and mirrors
// warnings and errors to stderr. Verbose mode lowers the stderr level to
// debug; the file always gets everything.
type LoggerAdapter struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// NewLoggerAdapter creates a logger writing to dir/<timestamp>_<name>.log.
func NewLoggerAdapter(dir, name string, verbose bool) (*LoggerAdapter, error) {
	safeName := sanitize(name)
	filename := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02_15-04-05"), safeName)

	if dir == "" {
		dir = "log"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), zapcore.DebugLevel)

	consoleLevel := zapcore.WarnLevel
	if verbose {
		consoleLevel = zapcore.DebugLevel
	}
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(os.Stderr),
		consoleLevel,
	)

	sugar := zap.New(zapcore.NewTee(fileCore, consoleCore)).Sugar()

	return &LoggerAdapter{
		sugar: sugar,
		file:  file,
	}, nil
}

// NewNopLogger returns a logger that discards everything. For tests.
func NewNopLogger() *LoggerAdapter {
	return &LoggerAdapter{sugar: zap.NewNop().Sugar()}
}

func (l *LoggerAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *LoggerAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *LoggerAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *LoggerAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *LoggerAdapter) WithField(key string, value any) output.LoggerPort {
	return &LoggerAdapter{
		sugar: l.sugar.With(key, value),
		file:  l.file,
	}
}

func (l *LoggerAdapter) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &LoggerAdapter{
		sugar: l.sugar.With(args...),
		file:  l.file,
	}
}

func (l *LoggerAdapter) Close() error {
	// Sync on stderr routinely fails; the file close below is what matters.
	_ = l.sugar.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func sanitize(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	s = string(result)
	if s == "" {
		return "session"
	}
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}

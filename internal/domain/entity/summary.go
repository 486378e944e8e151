package entity

import "time"

// SessionSummary is what the goodbye banner reports after a session ends.
type SessionSummary struct {
	ID            string
	JokesHeard    int
	FinalCategory Category
	Duration      time.Duration
}

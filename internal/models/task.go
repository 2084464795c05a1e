package models

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

const (
	FilterAll       = "all"
	FilterPending   = StatusPending
	FilterCompleted = StatusCompleted
)

type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	// CompletedAt is non-nil if and only if Completed is true.
	CompletedAt *time.Time
}

// Status returns the task's completion state as a status word.
func (t Task) Status() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}

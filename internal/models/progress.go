package models

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the wire format for calendar dates
const DateFormat = "2006-01-02"

// ProgressRecord is one user's completion state for one activity on one
// calendar date. Unique per (user, activity, date); created on first toggle
// and updated in place afterwards.
type ProgressRecord struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ActivityID    string    `json:"activity_id"`
	CompletedDate string    `json:"completed_date"`
	IsCompleted   bool      `json:"is_completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Joined activity fields, populated by list queries only
	ActivityName     string       `json:"activity_name,omitempty"`
	ActivityType     ActivityType `json:"activity_type,omitempty"`
	ActivityPriority Priority     `json:"activity_priority,omitempty"`
}

// CascadeSummary reports the week window written by a weekly completion toggle
type CascadeSummary struct {
	ActivityID string `json:"activity_id"`
	Completed  bool   `json:"completed"`
	WeekStart  string `json:"week_start"`
	WeekEnd    string `json:"week_end"`
}

package models

import "time"

// ActivityType governs how a completion toggle behaves: weekly activities
// cascade across the whole calendar week, all others toggle a single date.
type ActivityType string

const (
	ActivityTypeDaily    ActivityType = "daily"
	ActivityTypeWeekly   ActivityType = "weekly"
	ActivityTypeSeasonal ActivityType = "seasonal"
)

// Priority is the in-game tier ranking of an activity
type Priority string

const (
	PrioritySPlus Priority = "S+"
	PriorityS     Priority = "S"
	PriorityAPlus Priority = "A+"
	PriorityA     Priority = "A"
	PriorityBPlus Priority = "B+"
	PriorityB     Priority = "B"
	PriorityC     Priority = "C"
)

// Rank returns the sort order of a priority, lower is more important.
// Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PrioritySPlus:
		return 1
	case PriorityS:
		return 2
	case PriorityAPlus:
		return 3
	case PriorityA:
		return 4
	case PriorityBPlus:
		return 5
	case PriorityB:
		return 6
	case PriorityC:
		return 7
	default:
		return 8
	}
}

// ActivityMode indicates whether an activity is done solo, in a group, or either
type ActivityMode string

const (
	ActivityModeSolo  ActivityMode = "solo"
	ActivityModeGroup ActivityMode = "group"
	ActivityModeBoth  ActivityMode = "both"
)

// Activity is a catalog entry for a recurring in-game activity
type Activity struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         ActivityType  `json:"type"`
	Priority     Priority      `json:"priority"`
	TimeEstimate string        `json:"time_estimate,omitempty"`
	RewardsNote  string        `json:"rewards_note,omitempty"`
	Benefit      string        `json:"benefit,omitempty"`
	Detail       string        `json:"detail,omitempty"`
	Mode         ActivityMode  `json:"mode"`
	Preference   *ActivityMode `json:"preference,omitempty"`
	Rewards      []RewardGrant `json:"rewards"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

package models

import "time"

// EventCategory tags a scheduled event by its in-game nature
type EventCategory string

const (
	EventCategoryPvP        EventCategory = "pvp"
	EventCategoryFaction    EventCategory = "faction"
	EventCategoryWorldEvent EventCategory = "world_event"
)

// ScheduledEvent is a catalog entry for an in-game event that fires at fixed
// times of day, every day. Times are zero-padded "HH:MM" clock values with no
// date component.
type ScheduledEvent struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Times           []string      `json:"times"`
	DurationMinutes int           `json:"duration_minutes"`
	Description     string        `json:"description,omitempty"`
	Category        EventCategory `json:"category"`
	Rewards         []RewardGrant `json:"rewards"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Package gametime converts wall-clock time into the game's offset clock.
// All countdown and date-selection logic uses game time as its "now" so that
// the daily reset boundary lines up with calendar dates consistently.
package gametime

import "time"

const (
	// DefaultOffsetHours is the fixed skew between server wall-clock time
	// and game time. Game time lags real time by 2 hours.
	DefaultOffsetHours = -2

	// ResetHour is the game-time hour at which the daily reset happens
	ResetHour = 3
)

// Clock converts wall-clock instants into game-time instants. The zero value
// applies no offset; use New or Default.
type Clock struct {
	offset time.Duration
}

// New creates a clock with the given offset in hours
func New(offsetHours int) Clock {
	return Clock{offset: time.Duration(offsetHours) * time.Hour}
}

// Default creates a clock with the standard -2 hour offset
func Default() Clock {
	return New(DefaultOffsetHours)
}

// Convert maps a wall-clock instant to game time
func (c Clock) Convert(now time.Time) time.Time {
	return now.Add(c.offset)
}

// Now returns the current game time
func (c Clock) Now() time.Time {
	return c.Convert(time.Now())
}

// Offset returns the clock's skew
func (c Clock) Offset() time.Duration {
	return c.offset
}

// MinuteOfDay returns the minute-of-day [0, 1440) of an instant
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatDate renders an instant as a YYYY-MM-DD calendar date
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameGameDay reports whether two game-time instants fall on the same
// calendar date
func SameGameDay(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}

// UntilReset returns the duration from the given game-time instant to the
// next daily reset at ResetHour:00.
func UntilReset(gameNow time.Time) time.Duration {
	reset := time.Date(gameNow.Year(), gameNow.Month(), gameNow.Day(), ResetHour, 0, 0, 0, gameNow.Location())
	if !gameNow.Before(reset) {
		reset = reset.AddDate(0, 0, 1)
	}
	return reset.Sub(gameNow)
}

// Package schedule computes countdowns for the recurring daily event catalog.
// Every computation is pure: the reference minute-of-day is an explicit
// parameter, and all arithmetic is modulo minutes-per-day so occurrence
// windows that cross midnight behave the same as any other window.
package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/sanctuary-tracker/api/internal/models"
)

const (
	// MinutesPerDay is the modulus for all time-of-day arithmetic
	MinutesPerDay = 24 * 60

	// DefaultLimit is how many upcoming occurrences a listing returns
	DefaultLimit = 10
)

// Status of a single occurrence relative to the reference instant
type Status string

const (
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
)

// UpcomingOccurrence is one (event, occurrence-time) pair annotated with
// countdown data. Computed fresh on every request, never persisted.
type UpcomingOccurrence struct {
	EventID         string               `json:"event_id"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	Category        models.EventCategory `json:"category"`
	Rewards         []models.RewardGrant `json:"rewards"`
	Time            string               `json:"time"`
	DurationMinutes int                  `json:"duration_minutes"`
	MinutesUntil    int                  `json:"minutes_until"`
	Status          Status               `json:"status"`

	// Progress-bar fields: how far through the gap since the previous
	// occurrence the reference instant is.
	PreviousTime         string `json:"previous_time"`
	MinutesSincePrevious int    `json:"minutes_since_previous"`
	TotalMinutesBetween  int    `json:"total_minutes_between"`
}

var clockTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClockMinute parses a zero-padded "HH:MM" string into a minute-of-day
func ParseClockMinute(s string) (int, error) {
	m := clockTimeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour*60 + minute, nil
}

// Upcoming flattens the event catalog into per-occurrence countdown entries,
// sorted ascending by minutes-until (active entries first, as they report 0)
// and truncated to limit. Ties keep catalog order; the sort is stable.
// nowMinute is the reference minute-of-day, normally derived from game time.
func Upcoming(events []*models.ScheduledEvent, nowMinute int, limit int) ([]UpcomingOccurrence, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	nowMinute = ((nowMinute % MinutesPerDay) + MinutesPerDay) % MinutesPerDay

	var out []UpcomingOccurrence
	for _, ev := range events {
		occs, err := eventOccurrences(ev, nowMinute)
		if err != nil {
			return nil, err
		}
		out = append(out, occs...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinutesUntil < out[j].MinutesUntil
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// eventOccurrences computes one entry per occurrence time of a single event
func eventOccurrences(ev *models.ScheduledEvent, nowMinute int) ([]UpcomingOccurrence, error) {
	if len(ev.Times) == 0 {
		return nil, nil
	}

	// Lexicographic order equals chronological order for zero-padded HH:MM;
	// the sorted list gives each occurrence its cyclic predecessor.
	sorted := make([]string, len(ev.Times))
	copy(sorted, ev.Times)
	sort.Strings(sorted)

	minutes := make(map[string]int, len(sorted))
	for _, t := range sorted {
		m, err := ParseClockMinute(t)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", ev.ID, err)
		}
		minutes[t] = m
	}

	occs := make([]UpcomingOccurrence, 0, len(ev.Times))
	for _, t := range ev.Times {
		tMin, ok := minutes[t]
		if !ok {
			// Times listed outside the sorted set cannot happen; sorted is a
			// copy of Times. Parse directly to keep the invariant obvious.
			var err error
			if tMin, err = ParseClockMinute(t); err != nil {
				return nil, fmt.Errorf("event %s: %w", ev.ID, err)
			}
		}

		minutesUntil := mod(tMin - nowMinute)
		sinceStart := mod(nowMinute - tMin)
		active := sinceStart < ev.DurationMinutes

		prev := cyclicPrevious(sorted, t)
		prevMin := minutes[prev]
		sincePrev := mod(nowMinute - prevMin)
		between := mod(tMin - prevMin)
		if between <= 0 {
			// Single occurrence per day: the previous occurrence is
			// yesterday's firing of the same time, a full day apart.
			between = MinutesPerDay
		}

		occ := UpcomingOccurrence{
			EventID:              ev.ID,
			Name:                 ev.Name,
			Description:          ev.Description,
			Category:             ev.Category,
			Rewards:              ev.Rewards,
			Time:                 t,
			DurationMinutes:      ev.DurationMinutes,
			MinutesUntil:         minutesUntil,
			Status:               StatusUpcoming,
			PreviousTime:         prev,
			MinutesSincePrevious: sincePrev,
			TotalMinutesBetween:  between,
		}
		if active {
			occ.Status = StatusActive
			occ.MinutesUntil = 0
		}
		occs = append(occs, occ)
	}
	return occs, nil
}

// cyclicPrevious returns the entry immediately before t in the sorted list,
// wrapping to the last entry when t is first. A one-element list returns t
// itself.
func cyclicPrevious(sorted []string, t string) string {
	idx := sort.SearchStrings(sorted, t)
	if idx == 0 {
		return sorted[len(sorted)-1]
	}
	return sorted[idx-1]
}

// mod reduces a minute delta into [0, MinutesPerDay)
func mod(m int) int {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

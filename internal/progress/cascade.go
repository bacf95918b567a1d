// Package progress plans completion-toggle writes. Weekly activities marked
// complete cascade across the whole Monday-to-Sunday week containing the
// target date; everything else toggles a single date.
package progress

import (
	"time"

	"github.com/sanctuary-tracker/api/internal/models"
)

// WeekBounds returns the Monday on/before date and the Sunday after it.
// Time-of-day and location are preserved from the input.
func WeekBounds(date time.Time) (monday, sunday time.Time) {
	// time.Weekday counts Sunday as 0; shift so Monday is day 0 of the week.
	offset := (int(date.Weekday()) + 6) % 7
	monday = date.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// TogglePlan is the set of dates a single toggle request writes
type TogglePlan struct {
	Dates   []time.Time
	Cascade bool
}

// PlanToggle computes the writes for a completion toggle. Marking a weekly
// activity complete writes all seven dates of the containing week; un-marking
// a weekly activity, or toggling any other type, writes only the target date.
func PlanToggle(activityType models.ActivityType, date time.Time, completed bool) TogglePlan {
	if activityType != models.ActivityTypeWeekly || !completed {
		return TogglePlan{Dates: []time.Time{date}}
	}

	monday, _ := WeekBounds(date)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return TogglePlan{Dates: dates, Cascade: true}
}

package progress

import (
	"testing"
	"time"

	"github.com/sanctuary-tracker/api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekBounds must be right for every possible weekday of the input.
// 2024-06-10 is a Monday.
func TestWeekBoundsAllWeekdays(t *testing.T) {
	t.Parallel()

	wantMonday := date(2024, time.June, 10)
	wantSunday := date(2024, time.June, 16)

	for i := 0; i < 7; i++ {
		d := wantMonday.AddDate(0, 0, i)
		monday, sunday := WeekBounds(d)
		if !monday.Equal(wantMonday) {
			t.Errorf("WeekBounds(%s %s): monday = %s, want %s", d.Weekday(), d.Format("2006-01-02"), monday.Format("2006-01-02"), wantMonday.Format("2006-01-02"))
		}
		if !sunday.Equal(wantSunday) {
			t.Errorf("WeekBounds(%s %s): sunday = %s, want %s", d.Weekday(), d.Format("2006-01-02"), sunday.Format("2006-01-02"), wantSunday.Format("2006-01-02"))
		}
	}
}

func TestWeekBoundsAcrossMonthBoundary(t *testing.T) {
	t.Parallel()

	// 2024-03-01 is a Friday; its week starts in February
	monday, sunday := WeekBounds(date(2024, time.March, 1))
	if got := monday.Format("2006-01-02"); got != "2024-02-26" {
		t.Errorf("monday = %s, want 2024-02-26", got)
	}
	if got := sunday.Format("2006-01-02"); got != "2024-03-03" {
		t.Errorf("sunday = %s, want 2024-03-03", got)
	}
}

func TestPlanToggle(t *testing.T) {
	t.Parallel()

	wednesday := date(2024, time.June, 12)

	tests := []struct {
		name         string
		activityType models.ActivityType
		completed    bool
		wantDates    int
		wantCascade  bool
	}{
		{"daily complete", models.ActivityTypeDaily, true, 1, false},
		{"daily uncomplete", models.ActivityTypeDaily, false, 1, false},
		{"seasonal complete", models.ActivityTypeSeasonal, true, 1, false},
		{"weekly complete cascades", models.ActivityTypeWeekly, true, 7, true},
		{"weekly uncomplete is single", models.ActivityTypeWeekly, false, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			plan := PlanToggle(tt.activityType, wednesday, tt.completed)
			if len(plan.Dates) != tt.wantDates {
				t.Errorf("got %d dates, want %d", len(plan.Dates), tt.wantDates)
			}
			if plan.Cascade != tt.wantCascade {
				t.Errorf("cascade = %v, want %v", plan.Cascade, tt.wantCascade)
			}
			if !tt.wantCascade && !plan.Dates[0].Equal(wednesday) {
				t.Errorf("single date = %s, want target date", plan.Dates[0])
			}
		})
	}
}

// A weekly cascade writes exactly the seven distinct dates Monday..Sunday,
// with the target date among them.
func TestPlanToggleCascadeWeek(t *testing.T) {
	t.Parallel()

	target := date(2024, time.June, 12) // Wednesday
	plan := PlanToggle(models.ActivityTypeWeekly, target, true)

	if len(plan.Dates) != 7 {
		t.Fatalf("got %d dates, want 7", len(plan.Dates))
	}

	seen := make(map[string]bool)
	containsTarget := false
	for i, d := range plan.Dates {
		key := d.Format("2006-01-02")
		if seen[key] {
			t.Errorf("duplicate date %s", key)
		}
		seen[key] = true
		if d.Equal(target) {
			containsTarget = true
		}
		if i > 0 {
			if got := d.Sub(plan.Dates[i-1]); got != 24*time.Hour {
				t.Errorf("gap between dates %d and %d = %s, want 24h", i-1, i, got)
			}
		}
	}

	if !containsTarget {
		t.Error("cascade does not include the target date")
	}
	if plan.Dates[0].Weekday() != time.Monday {
		t.Errorf("first date is %s, want Monday", plan.Dates[0].Weekday())
	}
	if plan.Dates[6].Weekday() != time.Sunday {
		t.Errorf("last date is %s, want Sunday", plan.Dates[6].Weekday())
	}
}

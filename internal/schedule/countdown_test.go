package schedule

import (
	"testing"

	"github.com/sanctuary-tracker/api/internal/models"
)

func event(id string, duration int, times ...string) *models.ScheduledEvent {
	return &models.ScheduledEvent{
		ID:              id,
		Name:            id,
		Times:           times,
		DurationMinutes: duration,
		Category:        models.EventCategoryWorldEvent,
	}
}

func findOccurrence(t *testing.T, occs []UpcomingOccurrence, eventID, at string) UpcomingOccurrence {
	t.Helper()
	for _, o := range occs {
		if o.EventID == eventID && o.Time == at {
			return o
		}
	}
	t.Fatalf("occurrence %s@%s not found in %d results", eventID, at, len(occs))
	return UpcomingOccurrence{}
}

func TestParseClockMinute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"8:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClockMinute(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClockMinute(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseClockMinute(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// Scenario: battleground-style event at 08:00/12:00/18:00/22:00 with a 60
// minute window, observed at 12:30.
func TestUpcomingActiveWindow(t *testing.T) {
	t.Parallel()

	events := []*models.ScheduledEvent{event("battleground", 60, "08:00", "12:00", "18:00", "22:00")}
	now := 12*60 + 30

	occs, err := Upcoming(events, now, DefaultLimit)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(occs) != 4 {
		t.Fatalf("got %d occurrences, want 4", len(occs))
	}

	noon := findOccurrence(t, occs, "battleground", "12:00")
	if noon.Status != StatusActive {
		t.Errorf("12:00 status = %s, want active", noon.Status)
	}
	if noon.MinutesUntil != 0 {
		t.Errorf("12:00 minutes_until = %d, want 0", noon.MinutesUntil)
	}

	evening := findOccurrence(t, occs, "battleground", "18:00")
	if evening.Status != StatusUpcoming {
		t.Errorf("18:00 status = %s, want upcoming", evening.Status)
	}
	if evening.MinutesUntil != 330 {
		t.Errorf("18:00 minutes_until = %d, want 330", evening.MinutesUntil)
	}
	if evening.PreviousTime != "12:00" {
		t.Errorf("18:00 previous_time = %s, want 12:00", evening.PreviousTime)
	}
	if evening.MinutesSincePrevious != 30 {
		t.Errorf("18:00 minutes_since_previous = %d, want 30", evening.MinutesSincePrevious)
	}
	if evening.TotalMinutesBetween != 360 {
		t.Errorf("18:00 total_minutes_between = %d, want 360", evening.TotalMinutesBetween)
	}

	// Active entry sorts first
	if occs[0].Time != "12:00" {
		t.Errorf("first occurrence = %s, want the active 12:00", occs[0].Time)
	}
}

// Scenario: single daily occurrence observed at its exact firing time. The
// previous occurrence is yesterday's firing of the same time.
func TestUpcomingSingleOccurrence(t *testing.T) {
	t.Parallel()

	events := []*models.ScheduledEvent{event("assembly", 60, "19:00")}
	now := 19 * 60

	occs, err := Upcoming(events, now, DefaultLimit)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(occs) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(occs))
	}

	o := occs[0]
	if o.Status != StatusActive {
		t.Errorf("status = %s, want active", o.Status)
	}
	if o.MinutesUntil != 0 {
		t.Errorf("minutes_until = %d, want 0", o.MinutesUntil)
	}
	if o.PreviousTime != "19:00" {
		t.Errorf("previous_time = %s, want 19:00 (itself)", o.PreviousTime)
	}
	if o.TotalMinutesBetween != MinutesPerDay {
		t.Errorf("total_minutes_between = %d, want %d", o.TotalMinutesBetween, MinutesPerDay)
	}
}

func TestUpcomingWindowCrossesMidnight(t *testing.T) {
	t.Parallel()

	// 23:30 occurrence with a 90 minute window is still active at 00:30
	events := []*models.ScheduledEvent{event("nightraid", 90, "23:30")}

	occs, err := Upcoming(events, 30, DefaultLimit)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if occs[0].Status != StatusActive {
		t.Errorf("status at 00:30 = %s, want active", occs[0].Status)
	}
	if occs[0].MinutesUntil != 0 {
		t.Errorf("minutes_until = %d, want 0", occs[0].MinutesUntil)
	}

	// At 01:01 the window has closed; the next firing is tonight
	occs, err = Upcoming(events, 61, DefaultLimit)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if occs[0].Status != StatusUpcoming {
		t.Errorf("status at 01:01 = %s, want upcoming", occs[0].Status)
	}
	if want := 23*60 + 30 - 61; occs[0].MinutesUntil != want {
		t.Errorf("minutes_until = %d, want %d", occs[0].MinutesUntil, want)
	}
}

func TestUpcomingMinutesUntilBounds(t *testing.T) {
	t.Parallel()

	events := []*models.ScheduledEvent{
		event("a", 30, "00:00", "06:15", "13:45", "23:59"),
		event("b", 1, "03:30"),
	}

	for now := 0; now < MinutesPerDay; now += 7 {
		occs, err := Upcoming(events, now, 100)
		if err != nil {
			t.Fatalf("Upcoming(now=%d): %v", now, err)
		}
		for _, o := range occs {
			if o.MinutesUntil < 0 || o.MinutesUntil >= MinutesPerDay {
				t.Fatalf("now=%d %s@%s: minutes_until %d out of [0,%d)", now, o.EventID, o.Time, o.MinutesUntil, MinutesPerDay)
			}
			if o.MinutesSincePrevious < 0 || o.MinutesSincePrevious >= MinutesPerDay {
				t.Fatalf("now=%d %s@%s: minutes_since_previous %d out of range", now, o.EventID, o.Time, o.MinutesSincePrevious)
			}
			if o.TotalMinutesBetween <= 0 || o.TotalMinutesBetween > MinutesPerDay {
				t.Fatalf("now=%d %s@%s: total_minutes_between %d out of (0,%d]", now, o.EventID, o.Time, o.TotalMinutesBetween, MinutesPerDay)
			}
		}
	}
}

// Ties on minutes_until keep catalog order: the sort is stable.
func TestUpcomingTieBreakIsCatalogOrder(t *testing.T) {
	t.Parallel()

	events := []*models.ScheduledEvent{
		event("first", 0, "10:00"),
		event("second", 0, "10:00"),
	}

	occs, err := Upcoming(events, 9*60, DefaultLimit)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(occs) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(occs))
	}
	if occs[0].EventID != "first" || occs[1].EventID != "second" {
		t.Errorf("tie order = [%s, %s], want catalog order [first, second]", occs[0].EventID, occs[1].EventID)
	}
}

func TestUpcomingTruncation(t *testing.T) {
	t.Parallel()

	events := []*models.ScheduledEvent{
		event("many", 5, "01:00", "02:00", "03:00", "04:00", "05:00", "06:00", "07:00", "08:00", "09:00", "10:00", "11:00", "12:00"),
	}

	occs, err := Upcoming(events, 0, DefaultLimit)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(occs) != DefaultLimit {
		t.Errorf("got %d occurrences, want %d", len(occs), DefaultLimit)
	}
	// Nearest first
	if occs[0].Time != "01:00" {
		t.Errorf("first occurrence = %s, want 01:00", occs[0].Time)
	}
}

func TestUpcomingMalformedTime(t *testing.T) {
	t.Parallel()

	events := []*models.ScheduledEvent{event("bad", 30, "25:99")}
	if _, err := Upcoming(events, 0, DefaultLimit); err == nil {
		t.Error("expected error for malformed occurrence time")
	}
}

package gametime

import (
	"testing"
	"time"
)

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	clock := Default()
	instants := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 1, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Now(),
	}

	for _, now := range instants {
		got := clock.Convert(now).Sub(now)
		want := time.Duration(DefaultOffsetHours) * time.Hour
		if got != want {
			t.Errorf("Convert(%s) - now = %s, want %s", now, got, want)
		}
	}
}

func TestConvertCrossesDateBoundary(t *testing.T) {
	t.Parallel()

	// 01:30 wall clock with a -2h offset is still the previous game day
	clock := Default()
	now := time.Date(2024, 6, 15, 1, 30, 0, 0, time.UTC)
	game := clock.Convert(now)

	if FormatDate(game) != "2024-06-14" {
		t.Errorf("game date = %s, want 2024-06-14", FormatDate(game))
	}
	if SameGameDay(game, now) {
		t.Error("expected game day to differ from wall-clock day at 01:30")
	}
}

func TestMinuteOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour, minute, want int
	}{
		{0, 0, 0},
		{12, 30, 750},
		{23, 59, 1439},
	}
	for _, tt := range tests {
		inst := time.Date(2024, 3, 1, tt.hour, tt.minute, 45, 0, time.UTC)
		if got := MinuteOfDay(inst); got != tt.want {
			t.Errorf("MinuteOfDay(%02d:%02d) = %d, want %d", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestUntilReset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		gameNow time.Time
		want    time.Duration
	}{
		{
			name:    "before reset same day",
			gameNow: time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC),
			want:    2 * time.Hour,
		},
		{
			name:    "exactly at reset rolls to tomorrow",
			gameNow: time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC),
			want:    24 * time.Hour,
		},
		{
			name:    "evening waits for next morning",
			gameNow: time.Date(2024, 6, 15, 22, 0, 0, 0, time.UTC),
			want:    5 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := UntilReset(tt.gameNow); got != tt.want {
				t.Errorf("UntilReset(%s) = %s, want %s", tt.gameNow, got, tt.want)
			}
		})
	}
}

package logger

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain path", "/api/v1/activities", "/api/v1/activities"},
		{"empty", "", ""},
		{"control characters stripped", "/api\x00/v1\x1b[31m", "/api/v1[31m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePath(tt.in); got != tt.want {
				t.Errorf("SanitizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	long := strings.Repeat("a", MaxPathLength+100)
	got := SanitizePath(long)
	if len(got) != MaxPathLength+3 || !strings.HasSuffix(got, "...") {
		t.Errorf("long path not truncated: len = %d", len(got))
	}
}

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	if got := SanitizeError(nil); got != "" {
		t.Errorf("SanitizeError(nil) = %q, want empty", got)
	}
	if got := SanitizeError(errors.New("db \x00 exploded")); got != "db  exploded" {
		t.Errorf("SanitizeError() = %q", got)
	}
}

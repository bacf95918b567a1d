package validation

import (
	"testing"
)

func TestValidateActivityType(t *testing.T) {
	t.Parallel()

	valid := []string{"daily", "weekly", "seasonal"}
	for _, v := range valid {
		if err := ValidateActivityType(v); err != nil {
			t.Errorf("ValidateActivityType(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{"", "monthly", "Daily", "diaria"}
	for _, v := range invalid {
		if err := ValidateActivityType(v); err == nil {
			t.Errorf("ValidateActivityType(%q) = nil, want error", v)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-06-12", false},
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-6-12", true},
		{"12/06/2024", true},
		{"2024-06-12T00:00:00Z", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"strips control chars", "a\x00b\x1fc", "abc"},
		{"keeps newline and tab", "a\n\tb", "a\n\tb"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeText(tt.in); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStructValidation(t *testing.T) {
	t.Parallel()

	type toggleRequest struct {
		Date      string `validate:"required,calendar_date"`
		Completed *bool  `validate:"required"`
	}

	yes := true
	if err := Validate.Struct(toggleRequest{Date: "2024-06-12", Completed: &yes}); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
	if err := Validate.Struct(toggleRequest{Date: "yesterday", Completed: &yes}); err == nil {
		t.Error("malformed date accepted")
	}
	if err := Validate.Struct(toggleRequest{Date: "2024-06-12"}); err == nil {
		t.Error("missing completed flag accepted")
	}
}

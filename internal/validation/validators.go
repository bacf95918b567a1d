package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/sanctuary-tracker/api/internal/models"
	"github.com/sanctuary-tracker/api/internal/schedule"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums and domain formats
	// These should never fail in normal operation, but panic loudly if they do
	if err := Validate.RegisterValidation("activity_type", validateActivityType); err != nil {
		panic(fmt.Sprintf("failed to register activity_type validator: %v", err))
	}
	if err := Validate.RegisterValidation("calendar_date", validateCalendarDate); err != nil {
		panic(fmt.Sprintf("failed to register calendar_date validator: %v", err))
	}
	if err := Validate.RegisterValidation("clock_time", validateClockTime); err != nil {
		panic(fmt.Sprintf("failed to register clock_time validator: %v", err))
	}
}

// validateActivityType validates that a string is a valid ActivityType enum value
func validateActivityType(fl validator.FieldLevel) bool {
	return ValidateActivityType(fl.Field().String()) == nil
}

// validateCalendarDate validates that a string is a YYYY-MM-DD date
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// validateClockTime validates that a string is a zero-padded HH:MM time
func validateClockTime(fl validator.FieldLevel) bool {
	_, err := schedule.ParseClockMinute(fl.Field().String())
	return err == nil
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateActivityType validates an ActivityType string value
func ValidateActivityType(value string) error {
	switch models.ActivityType(value) {
	case models.ActivityTypeDaily, models.ActivityTypeWeekly, models.ActivityTypeSeasonal:
		return nil
	default:
		return fmt.Errorf("invalid activity type: %s (must be 'daily', 'weekly', or 'seasonal')", value)
	}
}

// ValidatePriority validates a Priority string value
func ValidatePriority(value string) error {
	switch models.Priority(value) {
	case models.PrioritySPlus, models.PriorityS, models.PriorityAPlus, models.PriorityA,
		models.PriorityBPlus, models.PriorityB, models.PriorityC:
		return nil
	default:
		return fmt.Errorf("invalid priority: %s", value)
	}
}

// ParseDate parses a YYYY-MM-DD calendar date, rejecting any other layout.
// The result is midnight UTC of that date.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(models.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s (must be YYYY-MM-DD)", value)
	}
	return d, nil
}

package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/safehours/internal/models"
)

var (
	isoDateRegex      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRegex    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeDateRegex = regexp.MustCompile(`^([+-])(\d+)\s*(d|day|days|w|week|weeks)$`)
	clockRegex        = regexp.MustCompile(`^(\d{1,2}):?(\d{2})$`)
)

// ParseDate parses various date formats into a canonical ISO date.
// Supported formats:
// - yyyy-mm-dd (e.g., "2024-01-05")
// - dd/mm/yyyy (e.g., "05/01/2024")
// - today, yesterday, tomorrow
// - relative days or weeks (e.g., "-2d", "+1w", "-3 days")
func ParseDate(input string, now time.Time) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("date is required")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch input {
	case "today":
		return today.Format(models.DateLayout), nil
	case "yesterday":
		return today.AddDate(0, 0, -1).Format(models.DateLayout), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(models.DateLayout), nil
	}

	if matches := isoDateRegex.FindStringSubmatch(input); matches != nil {
		return buildDate(matches[1], matches[2], matches[3])
	}

	if matches := slashDateRegex.FindStringSubmatch(input); matches != nil {
		return buildDate(matches[3], matches[2], matches[1])
	}

	if matches := relativeDateRegex.FindStringSubmatch(input); matches != nil {
		amount, err := strconv.Atoi(matches[2])
		if err != nil {
			return "", fmt.Errorf("invalid number")
		}
		if strings.HasPrefix(matches[3], "w") {
			amount *= 7
		}
		if amount > 3660 {
			return "", fmt.Errorf("relative dates are limited to about 10 years")
		}
		if matches[1] == "-" {
			amount = -amount
		}
		return today.AddDate(0, 0, amount).Format(models.DateLayout), nil
	}

	return "", fmt.Errorf("invalid date %q. Use: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, or -Nd", input)
}

// buildDate validates the parts and formats them as yyyy-mm-dd
func buildDate(yearStr, monthStr, dayStr string) (string, error) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if month < 1 || month > 12 {
		return "", fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return "", fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return "", fmt.Errorf("invalid date")
	}

	return date.Format(models.DateLayout), nil
}

// ParseClock parses a time of day into canonical HH:MM.
// Accepts "08:30", "8:30", "0830" and "830".
func ParseClock(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("time is required")
	}

	matches := clockRegex.FindStringSubmatch(input)
	if matches == nil {
		return "", fmt.Errorf("invalid time %q. Use HH:MM", input)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 {
		return "", fmt.Errorf("hour must be between 0 and 23")
	}
	if minute > 59 {
		return "", fmt.Errorf("minute must be between 0 and 59")
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// FormatDate formats an ISO date for display, e.g. "Mon 05 Jan 2024".
// Unparsable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon 02 Jan 2006")
}

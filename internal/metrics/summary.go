package metrics

import (
	"fmt"
	"strings"

	"github.com/balkashynov/safehours/internal/models"
)

// Summary holds all five metrics for one target date
type Summary struct {
	Date            string  `json:"date"`
	FlightHours     float64 `json:"flight_hours"`
	RestHours       float64 `json:"rest_hours"`
	ContactHours    float64 `json:"contact_hours"`
	ConsecutiveDays int     `json:"consecutive_days"`
	DutyDay         float64 `json:"duty_day"`
}

// Summarize computes every metric for date
func Summarize(log models.ActivityLog, date string, opts Options) Summary {
	return Summary{
		Date:            date,
		FlightHours:     FlightHours(log, date),
		RestHours:       RestHours(log, date, opts),
		ContactHours:    ContactHours(log, date),
		ConsecutiveDays: ConsecutiveDays(log, date),
		DutyDay:         DutyDay(log, date, opts),
	}
}

// Week returns seven summaries, oldest first, ending at endDate.
// Days before an unparsable endDate are skipped.
func Week(log models.ActivityLog, endDate string, opts Options) []Summary {
	dates := []string{endDate}
	current := endDate
	for i := 0; i < 6; i++ {
		prev, ok := PreviousDate(current)
		if !ok {
			break
		}
		dates = append(dates, prev)
		current = prev
	}

	out := make([]Summary, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		out = append(out, Summarize(log, dates[i], opts))
	}
	return out
}

// Thresholds are the alert limits. Alerts fire strictly beyond them.
type Thresholds struct {
	MaxFlightHours     float64 `yaml:"max_flight_hours"`
	MinRestHours       float64 `yaml:"min_rest_hours"`
	MaxConsecutiveDays int     `yaml:"max_consecutive_days"`
	MaxDutyDay         float64 `yaml:"max_duty_day"`
}

// DefaultThresholds returns the limits the dashboard ships with
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxFlightHours:     8,
		MinRestHours:       10,
		MaxConsecutiveDays: 16,
		MaxDutyDay:         16,
	}
}

// Alerts flags which metrics are out of bounds
type Alerts struct {
	FlightHours     bool `json:"flight_hours"`
	RestHours       bool `json:"rest_hours"`
	ConsecutiveDays bool `json:"consecutive_days"`
	DutyDay         bool `json:"duty_day"`
}

// Any reports whether at least one alert fired
func (a Alerts) Any() bool {
	return a.FlightHours || a.RestHours || a.ConsecutiveDays || a.DutyDay
}

// Alerts classifies s against th.
// Rest only alerts when there was some rest at all (0 means no data).
func (s Summary) Alerts(th Thresholds) Alerts {
	return Alerts{
		FlightHours:     s.FlightHours > th.MaxFlightHours,
		RestHours:       s.RestHours > 0 && s.RestHours < th.MinRestHours,
		ConsecutiveDays: s.ConsecutiveDays > th.MaxConsecutiveDays,
		DutyDay:         s.DutyDay > th.MaxDutyDay,
	}
}

// ParseSpan converts a config value into a Span
func ParseSpan(s string) (Span, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "positional":
		return SpanPositional, nil
	case "chronological":
		return SpanChronological, nil
	default:
		return SpanPositional, fmt.Errorf("unknown span mode %q (use positional or chronological)", s)
	}
}

// String returns the config spelling of sp
func (sp Span) String() string {
	if sp == SpanChronological {
		return "chronological"
	}
	return "positional"
}

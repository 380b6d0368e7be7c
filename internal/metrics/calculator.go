// Package metrics derives duty-time figures from an activity log.
//
// Every function here is pure: it reads the log it is given, never mutates it,
// and is recomputed from scratch by callers on every change.
//
// Times are wall-clock values on the record's own date. An activity ending
// before it starts (for example one that crosses midnight) contributes a
// negative duration rather than being wrapped to the next day.
package metrics

import (
	"time"

	"github.com/balkashynov/safehours/internal/models"
)

// Span selects how the first and last activity of a day are picked
type Span int

const (
	// SpanPositional uses the first and last records of the day in log order.
	// With the log sorted most recent first this is the latest start and the
	// earliest record's end.
	SpanPositional Span = iota

	// SpanChronological uses the earliest start and the latest end of the day.
	SpanChronological
)

// Options tune the day-span based metrics
type Options struct {
	Span Span
}

// Duration returns the length of r in hours. Unparsable times yield 0.
func Duration(r models.ActivityRecord) float64 {
	start, err := r.StartTime()
	if err != nil {
		return 0
	}
	end, err := r.EndTime()
	if err != nil {
		return 0
	}
	return end.Sub(start).Hours()
}

// FlightHours sums the duration of Flight records on date
func FlightHours(log models.ActivityLog, date string) float64 {
	total := 0.0
	for _, r := range log {
		if r.Date == date && r.Activity == models.CategoryFlight {
			total += Duration(r)
		}
	}
	return total
}

// ContactHours sums the duration of every record on date
func ContactHours(log models.ActivityLog, date string) float64 {
	total := 0.0
	for _, r := range log {
		if r.Date == date {
			total += Duration(r)
		}
	}
	return total
}

// RestHours is the time between the previous day's last activity end and the
// first activity start on date. Zero when either day has no records.
func RestHours(log models.ActivityLog, date string, opts Options) float64 {
	prev, ok := PreviousDate(date)
	if !ok {
		return 0
	}

	today := OnDate(log, date)
	yesterday := OnDate(log, prev)
	if len(today) == 0 || len(yesterday) == 0 {
		return 0
	}

	_, lastEnd := dayBounds(yesterday, opts.Span)
	firstStart, _ := dayBounds(today, opts.Span)

	from, err := models.At(prev, lastEnd)
	if err != nil {
		return 0
	}
	to, err := models.At(date, firstStart)
	if err != nil {
		return 0
	}
	return to.Sub(from).Hours()
}

// ConsecutiveDays counts days with at least one record, walking back from
// date and stopping at the first empty day. Zero if date itself is empty.
func ConsecutiveDays(log models.ActivityLog, date string) int {
	days := make(map[string]bool, len(log))
	for _, r := range log {
		days[r.Date] = true
	}

	count := 0
	current := date
	for days[current] {
		count++
		prev, ok := PreviousDate(current)
		if !ok {
			break
		}
		current = prev
	}
	return count
}

// DutyDay is the span from the first activity start to the last activity end
// on date. Zero when date has no records.
func DutyDay(log models.ActivityLog, date string, opts Options) float64 {
	today := OnDate(log, date)
	if len(today) == 0 {
		return 0
	}

	firstStart, lastEnd := dayBounds(today, opts.Span)
	from, err := models.At(date, firstStart)
	if err != nil {
		return 0
	}
	to, err := models.At(date, lastEnd)
	if err != nil {
		return 0
	}
	return to.Sub(from).Hours()
}

// OnDate returns the records on date, keeping log order
func OnDate(log models.ActivityLog, date string) models.ActivityLog {
	var out models.ActivityLog
	for _, r := range log {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// PreviousDate returns the ISO date one calendar day before date
func PreviousDate(date string) (string, bool) {
	return shiftDate(date, -1)
}

// NextDate returns the ISO date one calendar day after date
func NextDate(date string) (string, bool) {
	return shiftDate(date, 1)
}

func shiftDate(date string, days int) (string, bool) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return "", false
	}
	return t.AddDate(0, 0, days).Format(models.DateLayout), true
}

// dayBounds picks the start of the first and the end of the last record of a
// non-empty day
func dayBounds(day models.ActivityLog, span Span) (firstStart, lastEnd string) {
	if span != SpanChronological {
		return day[0].Start, day[len(day)-1].End
	}

	firstStart, lastEnd = day[0].Start, day[0].End
	for _, r := range day[1:] {
		if r.Start < firstStart {
			firstStart = r.Start
		}
		if r.End > lastEnd {
			lastEnd = r.End
		}
	}
	return firstStart, lastEnd
}

package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/safehours/internal/models"
)

// ParsedEntry represents an activity parsed from one line of text
type ParsedEntry struct {
	Date     string
	Start    string
	End      string
	Activity models.Category
	Errors   []string
}

// Record converts the entry into an activity record
func (p ParsedEntry) Record() models.ActivityRecord {
	return models.ActivityRecord{
		Date:     p.Date,
		Start:    p.Start,
		End:      p.End,
		Activity: p.Activity,
	}
}

var rangeRegex = regexp.MustCompile(`(\d{1,2}:?\d{2})\s*-\s*(\d{1,2}:?\d{2})`)

// ParseEntry extracts an activity from a short natural line.
// Syntax: "[date] HH:MM-HH:MM [activity]", e.g. "yesterday 18:00-20:00 flight".
// The date defaults to today and the activity to Flight. Problems are
// collected in Errors instead of failing on the first one.
func ParseEntry(input string, now time.Time) ParsedEntry {
	result := ParsedEntry{
		Activity: models.CategoryFlight,
		Errors:   []string{},
	}

	// Extract the time range first so its dash is not read as a relative date
	rangeMatch := rangeRegex.FindStringSubmatch(input)
	if rangeMatch == nil {
		result.Errors = append(result.Errors, "Missing time range like 08:00-10:30")
	} else {
		if start, err := ParseClock(rangeMatch[1]); err != nil {
			result.Errors = append(result.Errors, "Invalid start time '"+rangeMatch[1]+"': "+err.Error())
		} else {
			result.Start = start
		}
		if end, err := ParseClock(rangeMatch[2]); err != nil {
			result.Errors = append(result.Errors, "Invalid end time '"+rangeMatch[2]+"': "+err.Error())
		} else {
			result.End = end
		}
		input = strings.Replace(input, rangeMatch[0], " ", 1)
	}

	var dateSet bool
	for _, word := range strings.Fields(input) {
		if IsCategory(word) {
			result.Activity, _ = ParseCategory(word)
			continue
		}
		if dateSet {
			result.Errors = append(result.Errors, "Unexpected '"+word+"'")
			continue
		}
		date, err := ParseDate(word, now)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid date '"+word+"': "+err.Error())
			continue
		}
		result.Date = date
		dateSet = true
	}

	if !dateSet {
		result.Date, _ = ParseDate("today", now)
	}

	return result
}

package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Date and clock layouts used by every record
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Category is the kind of duty an activity represents
type Category string

const (
	CategoryFlight  Category = "Flight"
	CategoryPrePost Category = "Pre-Post"
	CategoryGround  Category = "Ground"
	CategoryClass   Category = "Class"
	CategoryOther   Category = "Other"
)

// Categories lists every category in the order the add form offers them
var Categories = []Category{
	CategoryFlight,
	CategoryPrePost,
	CategoryGround,
	CategoryClass,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ActivityRecord is one logged duty segment.
// The JSON layout is the persisted layout, so field names must not change.
type ActivityRecord struct {
	Date     string   `json:"date" validate:"required"`
	Start    string   `json:"start" validate:"required"`
	End      string   `json:"end" validate:"required"`
	Activity Category `json:"activity" validate:"required"`
}

// ActivityLog is the ordered list of records, most recent first
type ActivityLog []ActivityRecord

// strictRecord carries the format rules that date/time inputs enforce
type strictRecord struct {
	Date     string `validate:"required,datetime=2006-01-02"`
	Start    string `validate:"required,datetime=15:04"`
	End      string `validate:"required,datetime=15:04"`
	Activity string `validate:"required,category"`
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).IsValid()
	})
}

// Complete reports whether all four fields are filled in.
// Blank-only values count as empty.
func (r ActivityRecord) Complete() bool {
	trimmed := ActivityRecord{
		Date:     strings.TrimSpace(r.Date),
		Start:    strings.TrimSpace(r.Start),
		End:      strings.TrimSpace(r.End),
		Activity: Category(strings.TrimSpace(string(r.Activity))),
	}
	return validate.Struct(trimmed) == nil
}

// Validate checks the record against the same rules the input forms apply:
// an ISO date, HH:MM clock times and a known category.
func (r ActivityRecord) Validate() error {
	return validate.Struct(strictRecord{
		Date:     r.Date,
		Start:    r.Start,
		End:      r.End,
		Activity: string(r.Activity),
	})
}

// StartTime returns the wall-clock start on the record's date (UTC)
func (r ActivityRecord) StartTime() (time.Time, error) {
	return At(r.Date, r.Start)
}

// EndTime returns the wall-clock end on the record's date (UTC).
// An end earlier than the start is not wrapped to the next day.
func (r ActivityRecord) EndTime() (time.Time, error) {
	return At(r.Date, r.End)
}

// At combines an ISO date and an HH:MM clock into a UTC timestamp
func At(date, clock string) (time.Time, error) {
	return time.Parse(DateLayout+"T"+ClockLayout, date+"T"+clock)
}

// SortKey is the composite (date, start) key the log is ordered by.
// Canonical ISO dates and HH:MM clocks compare correctly as strings.
func (r ActivityRecord) SortKey() string {
	return r.Date + "T" + r.Start
}

package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-01-05", "2024-01-05"},
		{"2024-1-5", "2024-01-05"},
		{"05/01/2024", "2024-01-05"},
		{"today", "2024-01-10"},
		{"Today", "2024-01-10"},
		{"yesterday", "2024-01-09"},
		{"tomorrow", "2024-01-11"},
		{"-1d", "2024-01-09"},
		{"-3 days", "2024-01-07"},
		{"+2d", "2024-01-12"},
		{"-1w", "2024-01-03"},
		{"-10d", "2023-12-31"},
		{"2024-02-29", "2024-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "2023-02-29", "2024-13-01", "32/01/2024", "next friday", "-5000d", "08:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input, fixedNow)
			assert.Error(t, err)
		})
	}
}

func TestParseDate_UsesCallerDate(t *testing.T) {
	// Late evening in a zone ahead of UTC still counts as the caller's day
	zone := time.FixedZone("NZDT", 13*60*60)
	now := time.Date(2024, 1, 10, 23, 0, 0, 0, zone)

	got, err := ParseDate("today", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", got)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"08:30", "08:30"},
		{"8:30", "08:30"},
		{"0830", "08:30"},
		{"830", "08:30"},
		{"23:59", "23:59"},
		{" 00:00 ", "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, input := range []string{"", "24:00", "12:60", "noon", "8", "8:5"} {
		_, err := ParseClock(input)
		assert.Error(t, err, input)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Fri 05 Jan 2024", FormatDate("2024-01-05"))
	assert.Equal(t, "garbage", FormatDate("garbage"))
}

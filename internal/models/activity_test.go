package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRecord_Complete(t *testing.T) {
	full := ActivityRecord{Date: "2024-01-01", Start: "08:00", End: "09:00", Activity: CategoryFlight}
	assert.True(t, full.Complete())

	tests := []struct {
		name   string
		record ActivityRecord
	}{
		{"empty date", ActivityRecord{Start: "08:00", End: "09:00", Activity: CategoryFlight}},
		{"empty start", ActivityRecord{Date: "2024-01-01", End: "09:00", Activity: CategoryFlight}},
		{"empty end", ActivityRecord{Date: "2024-01-01", Start: "08:00", Activity: CategoryFlight}},
		{"empty activity", ActivityRecord{Date: "2024-01-01", Start: "08:00", End: "09:00"}},
		{"blank date", ActivityRecord{Date: "   ", Start: "08:00", End: "09:00", Activity: CategoryFlight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.record.Complete())
		})
	}
}

func TestActivityRecord_CompleteDoesNotCheckFormat(t *testing.T) {
	r := ActivityRecord{Date: "someday", Start: "early", End: "late", Activity: "Sleep"}
	assert.True(t, r.Complete())
	assert.Error(t, r.Validate())
}

func TestActivityRecord_Validate(t *testing.T) {
	valid := ActivityRecord{Date: "2024-02-29", Start: "00:00", End: "23:59", Activity: CategoryPrePost}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		record ActivityRecord
	}{
		{"bad date", ActivityRecord{Date: "2023-02-29", Start: "08:00", End: "09:00", Activity: CategoryFlight}},
		{"bad start", ActivityRecord{Date: "2024-01-01", Start: "8am", End: "09:00", Activity: CategoryFlight}},
		{"bad end", ActivityRecord{Date: "2024-01-01", Start: "08:00", End: "25:00", Activity: CategoryFlight}},
		{"unknown category", ActivityRecord{Date: "2024-01-01", Start: "08:00", End: "09:00", Activity: "flight"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.record.Validate())
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Category("Sim").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestActivityRecord_Times(t *testing.T) {
	r := ActivityRecord{Date: "2024-03-31", Start: "01:30", End: "03:30", Activity: CategoryFlight}

	start, err := r.StartTime()
	require.NoError(t, err)
	end, err := r.EndTime()
	require.NoError(t, err)

	// UTC wall clock, so a DST change on the date does not skew the span
	assert.Equal(t, 2.0, end.Sub(start).Hours())

	_, err = ActivityRecord{Date: "2024-01-01", Start: "noon"}.StartTime()
	assert.Error(t, err)
}

func TestActivityRecord_SortKey(t *testing.T) {
	a := ActivityRecord{Date: "2024-01-02", Start: "06:00"}
	b := ActivityRecord{Date: "2024-01-01", Start: "18:00"}
	c := ActivityRecord{Date: "2024-01-02", Start: "07:00"}

	assert.Greater(t, a.SortKey(), b.SortKey())
	assert.Greater(t, c.SortKey(), a.SortKey())
}

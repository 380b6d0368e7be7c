package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/safehours/internal/models"
)

var fixedNow = func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func sendForm(m AddFormModel, msgs ...tea.Msg) AddFormModel {
	for _, msg := range msgs {
		m, _ = m.update(msg)
	}
	return m
}

func TestNewAddFormModel_Defaults(t *testing.T) {
	m := NewAddFormModel(nil, fixedNow)

	assert.Equal(t, "2024-01-10", m.inputs[FieldDate].Value())
	assert.Equal(t, FieldStart, m.focus)
	assert.Equal(t, 0, m.choice)
}

func TestNewAddFormModel_Prefilled(t *testing.T) {
	m := NewAddFormModel(map[string]string{
		"date":     "2024-01-01",
		"start":    "08:00",
		"end":      "",
		"activity": "ground",
	}, fixedNow)

	assert.Equal(t, "2024-01-01", m.inputs[FieldDate].Value())
	assert.Equal(t, "08:00", m.inputs[FieldStart].Value())
	assert.Equal(t, FieldEnd, m.focus)
	assert.Equal(t, models.CategoryGround, models.Categories[m.choice])
}

func TestAddForm_Submit(t *testing.T) {
	m := NewAddFormModel(map[string]string{"date": "2024-01-09"}, fixedNow)

	m = sendForm(m,
		keyRunes("0800"), key(tea.KeyEnter),
		keyRunes("10:30"), key(tea.KeyEnter),
		key(tea.KeyRight), key(tea.KeyRight),
	)
	assert.Equal(t, FieldActivity, m.focus)

	updated, cmd := m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	form := updated.(AddFormModel)

	record, ok := form.Record()
	require.True(t, ok)
	assert.Equal(t, models.ActivityRecord{
		Date:     "2024-01-09",
		Start:    "08:00",
		End:      "10:30",
		Activity: models.CategoryGround,
	}, record)
	assert.Empty(t, form.View())
}

func TestAddForm_InvalidFieldRefocuses(t *testing.T) {
	m := NewAddFormModel(map[string]string{"start": "99:99", "end": "10:00"}, fixedNow)
	assert.Equal(t, FieldActivity, m.focus)

	m = sendForm(m, key(tea.KeyEnter))
	_, ok := m.Record()
	assert.False(t, ok)
	assert.Equal(t, FieldStart, m.focus)
	assert.NotEmpty(t, m.validationErr)
	assert.Contains(t, m.View(), "hour must be between")

	// Typing clears the error
	m = sendForm(m, key(tea.KeyBackspace))
	assert.Empty(t, m.validationErr)
}

func TestAddForm_Navigation(t *testing.T) {
	m := NewAddFormModel(nil, fixedNow)
	require.Equal(t, FieldStart, m.focus)

	m = sendForm(m, key(tea.KeyShiftTab), key(tea.KeyShiftTab))
	assert.Equal(t, FieldActivity, m.focus)

	m = sendForm(m, key(tea.KeyLeft))
	assert.Equal(t, models.CategoryOther, models.Categories[m.choice])

	m = sendForm(m, key(tea.KeyTab))
	assert.Equal(t, FieldDate, m.focus)
}

func TestAddForm_Cancel(t *testing.T) {
	m := NewAddFormModel(nil, fixedNow)

	updated, cmd := m.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	form := updated.(AddFormModel)
	assert.True(t, form.Cancelled())
	_, ok := form.Record()
	assert.False(t, ok)
}

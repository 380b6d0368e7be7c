package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/safehours/internal/models"
	"github.com/balkashynov/safehours/internal/parser"
)

// Field represents the focused field of the add form
type Field int

const (
	FieldDate Field = iota
	FieldStart
	FieldEnd
	FieldActivity
	fieldCount
)

// AddFormModel is the add-activity form: date, start, end and category
type AddFormModel struct {
	focus  Field
	inputs []textinput.Model // date, start, end
	choice int               // index into models.Categories
	now    func() time.Time

	validationErr string
	submitted     bool
	cancelled     bool
	record        models.ActivityRecord
}

// NewAddFormModel creates the form. prefilled may hold date, start, end and activity.
func NewAddFormModel(prefilled map[string]string, now func() time.Time) AddFormModel {
	if now == nil {
		now = time.Now
	}

	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 20
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[FieldDate].Placeholder = "yyyy-mm-dd, today, -1d"
	inputs[FieldDate].CharLimit = 12
	inputs[FieldStart].Placeholder = "HH:MM"
	inputs[FieldStart].CharLimit = 5
	inputs[FieldEnd].Placeholder = "HH:MM"
	inputs[FieldEnd].CharLimit = 5

	today, _ := parser.ParseDate("today", now())
	inputs[FieldDate].SetValue(today)

	m := AddFormModel{
		focus:  FieldDate,
		inputs: inputs,
		now:    now,
	}

	if v, ok := prefilled["date"]; ok && v != "" {
		m.inputs[FieldDate].SetValue(v)
	}
	if v, ok := prefilled["start"]; ok {
		m.inputs[FieldStart].SetValue(v)
	}
	if v, ok := prefilled["end"]; ok {
		m.inputs[FieldEnd].SetValue(v)
	}
	if v, ok := prefilled["activity"]; ok {
		if c, err := parser.ParseCategory(v); err == nil {
			m.choice = categoryIndex(c)
		}
	}

	// Jump to the first empty field so a prefilled date is not retyped
	for f := FieldDate; f < FieldActivity; f++ {
		if strings.TrimSpace(m.inputs[f].Value()) == "" {
			m.focus = f
			break
		}
		m.focus = f + 1
	}
	m.applyFocus()

	return m
}

// Init initializes the model
func (m AddFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.update(msg)
	if updated.submitted || updated.cancelled {
		return updated, tea.Quit
	}
	return updated, cmd
}

// update is the form logic without quitting, so the dashboard can embed it
func (m AddFormModel) update(msg tea.Msg) (AddFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, nil

		case "tab", "down":
			m.focus = (m.focus + 1) % fieldCount
			m.applyFocus()
			return m, nil

		case "shift+tab", "up":
			m.focus = (m.focus + fieldCount - 1) % fieldCount
			m.applyFocus()
			return m, nil

		case "left", "right":
			if m.focus == FieldActivity {
				step := 1
				if key.String() == "left" {
					step = len(models.Categories) - 1
				}
				m.choice = (m.choice + step) % len(models.Categories)
				return m, nil
			}

		case "enter":
			if m.focus < FieldActivity {
				m.focus++
				m.applyFocus()
				return m, nil
			}
			return m.submit(), nil
		}
	}

	if m.focus >= FieldActivity {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.validationErr = ""
	}
	return m, cmd
}

// submit parses every field and marks the form done when all are valid
func (m AddFormModel) submit() AddFormModel {
	date, err := parser.ParseDate(m.inputs[FieldDate].Value(), m.now())
	if err != nil {
		return m.fail(FieldDate, err)
	}
	start, err := parser.ParseClock(m.inputs[FieldStart].Value())
	if err != nil {
		return m.fail(FieldStart, err)
	}
	end, err := parser.ParseClock(m.inputs[FieldEnd].Value())
	if err != nil {
		return m.fail(FieldEnd, err)
	}

	m.record = models.ActivityRecord{
		Date:     date,
		Start:    start,
		End:      end,
		Activity: models.Categories[m.choice],
	}
	m.submitted = true
	m.validationErr = ""
	return m
}

func (m AddFormModel) fail(f Field, err error) AddFormModel {
	m.focus = f
	m.applyFocus()
	m.validationErr = err.Error()
	return m
}

func (m *AddFormModel) applyFocus() {
	for i := range m.inputs {
		if Field(i) == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// Record returns the submitted record and whether the form was submitted
func (m AddFormModel) Record() (models.ActivityRecord, bool) {
	return m.record, m.submitted
}

// Cancelled reports whether the user backed out of the form
func (m AddFormModel) Cancelled() bool {
	return m.cancelled
}

// View renders the form
func (m AddFormModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(titleStyle.Render("✈️  Add Activity"))
	b.WriteString("\n\n")

	labels := []string{"Date", "Start", "End"}
	for i, label := range labels {
		b.WriteString(m.label(Field(i), label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString(m.label(FieldActivity, "Activity"))
	for i, c := range models.Categories {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Padding(0, 1)
		if i == m.choice {
			style = style.Bold(true).
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccentMain))
		}
		b.WriteString(style.Render(string(c)))
	}
	b.WriteString("\n")

	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString(errorStyle.Render("❌ " + m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		MarginTop(1)
	b.WriteString(helpStyle.Render("Tab/↓: Next | Shift+Tab/↑: Back | ←/→: Activity | Enter: Add | Esc: Cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())
}

func (m AddFormModel) label(f Field, text string) string {
	style := lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color(ColorSecondaryText))
	prefix := "  "
	if f == m.focus {
		style = style.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		prefix = "▶ "
	}
	return style.Render(prefix + text)
}

func categoryIndex(c models.Category) int {
	for i, known := range models.Categories {
		if known == c {
			return i
		}
	}
	return 0
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/safehours/internal/models"
	"github.com/balkashynov/safehours/internal/store"
)

// RunDashboard starts the interactive dashboard over s
func RunDashboard(s *store.Store, opts DashboardOptions) error {
	model := NewDashboardModel(s, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunAddForm starts the interactive add form.
// ok is false when the user cancelled.
func RunAddForm(prefilled map[string]string, now func() time.Time) (record models.ActivityRecord, ok bool, err error) {
	model := NewAddFormModel(prefilled, now)

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return models.ActivityRecord{}, false, err
	}

	if m, isForm := finalModel.(AddFormModel); isForm {
		record, ok = m.Record()
	}
	return record, ok, nil
}

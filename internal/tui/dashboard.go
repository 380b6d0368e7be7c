package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/safehours/internal/metrics"
	"github.com/balkashynov/safehours/internal/models"
	"github.com/balkashynov/safehours/internal/parser"
	"github.com/balkashynov/safehours/internal/store"
)

// Mode represents what the dashboard is currently doing
type Mode int

const (
	ModeBrowse Mode = iota
	ModeAdd
	ModeConfirmDelete
)

// DashboardOptions configure a dashboard
type DashboardOptions struct {
	TargetDate string
	Thresholds metrics.Thresholds
	Metrics    metrics.Options
	Pulse      PulseConfig
	Logger     *slog.Logger
	Now        func() time.Time
}

// DashboardModel is the interactive board: target date, activity table and metric boxes
type DashboardModel struct {
	width  int
	height int

	store  *store.Store
	opts   DashboardOptions
	logger *slog.Logger

	targetDate string
	records    models.ActivityLog
	summary    metrics.Summary
	alerts     metrics.Alerts

	selected    int
	currentPage int
	rowsPerPage int

	mode   Mode
	form   AddFormModel
	pulse  *PulseState
	status string
	failed bool
}

// NewDashboardModel creates the dashboard over an already loaded store
func NewDashboardModel(s *store.Store, opts DashboardOptions) DashboardModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	if opts.TargetDate == "" {
		opts.TargetDate, _ = parser.ParseDate("today", opts.Now())
	}

	m := DashboardModel{
		store:       s,
		opts:        opts,
		logger:      opts.Logger,
		targetDate:  opts.TargetDate,
		rowsPerPage: 10,
		pulse:       NewPulseState(opts.Pulse),
	}
	m.refresh()
	return m
}

// refresh re-reads the log and recomputes every metric
func (m *DashboardModel) refresh() {
	m.records = m.store.Records()
	m.summary = metrics.Summarize(m.records, m.targetDate, m.opts.Metrics)
	m.alerts = m.summary.Alerts(m.opts.Thresholds)
	m.pulse.SetActive(m.alerts.Any())

	if m.selected >= len(m.records) {
		m.selected = len(m.records) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.syncPage()
}

// Init initializes the model
func (m DashboardModel) Init() tea.Cmd {
	return m.pulseTick()
}

func (m DashboardModel) pulseTick() tea.Cmd {
	if !m.alerts.Any() || !m.pulse.ShouldTick() {
		return nil
	}
	return tea.Tick(m.pulse.TickInterval(), func(time.Time) tea.Msg {
		return pulseTickMsg{}
	})
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pulseTickMsg:
		m.pulse.Update(m.opts.Now())
		return m, m.pulseTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Height - header(4) - boxes(~8) - help(2) - borders(4)
		available := m.height - 18
		if available < 3 {
			available = 3
		}
		m.rowsPerPage = available
		m.syncPage()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAdd:
			return m.handleFormKeys(msg)
		case ModeConfirmDelete:
			return m.handleConfirmKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}

	if m.mode == ModeAdd {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m DashboardModel) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	hadAlerts := m.alerts.Any()

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.syncPage()
		}

	case "down", "j":
		if m.selected < len(m.records)-1 {
			m.selected++
			m.syncPage()
		}

	case "left", "h":
		if prev, ok := metrics.PreviousDate(m.targetDate); ok {
			m.setTargetDate(prev)
		}

	case "right", "l":
		if next, ok := metrics.NextDate(m.targetDate); ok {
			m.setTargetDate(next)
		}

	case "t":
		today, _ := parser.ParseDate("today", m.opts.Now())
		m.setTargetDate(today)

	case "a", "n":
		m.mode = ModeAdd
		m.form = NewAddFormModel(map[string]string{"date": m.targetDate}, m.opts.Now)
		return m, m.form.Init()

	case "d", "delete", "x":
		if len(m.records) > 0 {
			m.mode = ModeConfirmDelete
		}
	}

	// Start pulsing when a change produced the first alert
	if !hadAlerts && m.alerts.Any() {
		return m, m.pulseTick()
	}
	return m, nil
}

func (m DashboardModel) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)

	if m.form.Cancelled() {
		m.mode = ModeBrowse
		m.setStatus("Add cancelled", false)
		return m, nil
	}

	record, ok := m.form.Record()
	if !ok {
		return m, cmd
	}

	m.mode = ModeBrowse
	hadAlerts := m.alerts.Any()
	_, err := m.store.Add(record)
	m.refresh()
	switch {
	case errors.Is(err, store.ErrIncompleteRecord):
		m.setStatus("All four fields are required", true)
	case err != nil:
		m.logger.Warn("add activity", "error", err)
		m.setStatus("Added, but saving failed: "+err.Error(), true)
	default:
		m.setStatus(fmt.Sprintf("Added %s %s-%s %s", record.Date, record.Start, record.End, record.Activity), false)
		m.selectRecord(record)
	}

	if !hadAlerts && m.alerts.Any() {
		return m, m.pulseTick()
	}
	return m, nil
}

func (m DashboardModel) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		hadAlerts := m.alerts.Any()
		removed := m.records[m.selected]
		_, err := m.store.Delete(m.selected)
		m.mode = ModeBrowse
		m.refresh()
		if err != nil {
			m.logger.Warn("delete activity", "error", err)
			m.setStatus("Delete failed: "+err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("Deleted %s %s-%s %s", removed.Date, removed.Start, removed.End, removed.Activity), false)
		}
		if !hadAlerts && m.alerts.Any() {
			return m, m.pulseTick()
		}

	case "n", "N", "esc":
		m.mode = ModeBrowse

	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *DashboardModel) setTargetDate(date string) {
	m.targetDate = date
	m.refresh()
}

func (m *DashboardModel) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

// selectRecord moves the selection onto the first row equal to r
func (m *DashboardModel) selectRecord(r models.ActivityRecord) {
	for i, rec := range m.records {
		if rec == r {
			m.selected = i
			m.syncPage()
			return
		}
	}
}

// syncPage keeps the selected row on the current page
func (m *DashboardModel) syncPage() {
	if m.rowsPerPage < 1 {
		m.rowsPerPage = 1
	}
	m.currentPage = m.selected / m.rowsPerPage
}

// TargetDate returns the date metrics are computed for
func (m DashboardModel) TargetDate() string {
	return m.targetDate
}

// Summary returns the metrics for the current target date
func (m DashboardModel) Summary() metrics.Summary {
	return m.summary
}

// View renders the TUI
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	var body string
	switch m.mode {
	case ModeAdd:
		body = m.form.View()
	default:
		body = m.renderTable(m.width - 2)
	}

	m.pulse.Update(m.opts.Now())
	boxes := RenderMetricBoxes(m.summary, m.alerts, m.width, m.pulse.AlertColor())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		boxes,
		body,
		m.renderStatusBar(),
	)
}

func (m DashboardModel) renderHeader() string {
	logoStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentMain))

	dateStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Padding(0, 2)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("  ← target date →")

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		logoStyle.Render("SafeHours  "),
		dateStyle.Render(parser.FormatDate(m.targetDate)),
		hint,
	)
}

// renderTable renders the activity table with the selected row highlighted
func (m DashboardModel) renderTable(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))

	b.WriteString(headerStyle.Render("📋 Activities"))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("No activities logged. Press 'a' to add one."))
		return m.frame(b.String(), width)
	}

	columns := fmt.Sprintf("%-4s %-10s %-5s  %-5s  %-9s %6s", "#", "DATE", "START", "END", "ACTIVITY", "HOURS")
	b.WriteString(headerStyle.Render(columns))
	b.WriteString("\n")

	start := m.currentPage * m.rowsPerPage
	end := start + m.rowsPerPage
	if end > len(m.records) {
		end = len(m.records)
	}

	for i := start; i < end; i++ {
		r := m.records[i]
		row := fmt.Sprintf("%-4d %-10s %-5s  %-5s  %-9s %6.2f",
			i, r.Date, r.Start, r.End, r.Activity, metrics.Duration(r))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		if r.Date == m.targetDate {
			style = style.Foreground(lipgloss.Color(ColorPrimaryText))
		}
		if i == m.selected {
			style = style.Bold(true).
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccentMain))
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	if m.rowsPerPage < len(m.records) {
		totalPages := (len(m.records) + m.rowsPerPage - 1) / m.rowsPerPage
		pageInfo := fmt.Sprintf("Page %d/%d (%d activities)", m.currentPage+1, totalPages, len(m.records))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Render(pageInfo))
	}

	return m.frame(b.String(), width)
}

func (m DashboardModel) frame(content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(content)
}

func (m DashboardModel) renderStatusBar() string {
	if m.mode == ModeConfirmDelete && m.selected < len(m.records) {
		r := m.records[m.selected]
		prompt := fmt.Sprintf("Delete %s %s-%s %s? (y/n)", r.Date, r.Start, r.End, r.Activity)
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true).
			Render(prompt)
	}

	var lines []string
	if m.status != "" {
		color := ColorSuccess
		if m.failed {
			color = ColorError
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.status))
	}

	if m.mode == ModeBrowse {
		help := "↑/↓ select · ←/→ date · t today · a add · d delete · q quit"
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true).
			Render(help))
	}
	return strings.Join(lines, "\n")
}

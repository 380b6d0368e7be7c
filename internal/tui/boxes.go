package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/safehours/internal/metrics"
)

const boxWidth = 24

// metricBox is one labelled value on the board
type metricBox struct {
	label string
	value string
	alert bool
	bold  bool
}

func boxesFor(s metrics.Summary, a metrics.Alerts) []metricBox {
	return []metricBox{
		{label: "FLIGHT INSTRUCTION", value: fmt.Sprintf("%.2f hrs", s.FlightHours), alert: a.FlightHours},
		{label: "REST HOURS", value: fmt.Sprintf("%.2f hrs", s.RestHours), alert: a.RestHours},
		{label: "CONTACT HOURS", value: fmt.Sprintf("%.2f hrs", s.ContactHours)},
		{label: "CONSECUTIVE DAYS", value: fmt.Sprintf("%d days", s.ConsecutiveDays), alert: a.ConsecutiveDays},
		{label: "DUTY DAY", value: fmt.Sprintf("%.2f hrs", s.DutyDay), alert: a.DutyDay, bold: a.DutyDay},
	}
}

// RenderMetricBoxes renders the five metric boxes, wrapping to fit width.
// Alert boxes use alertColor as their background.
func RenderMetricBoxes(s metrics.Summary, a metrics.Alerts, width int, alertColor string) string {
	if alertColor == "" {
		alertColor = ColorAlert
	}

	var rendered []string
	for _, box := range boxesFor(s, a) {
		style := lipgloss.NewStyle().
			Width(boxWidth).
			Padding(0, 1).
			Margin(0, 1, 1, 0).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Background(lipgloss.Color(ColorCardBackground)).
			Foreground(lipgloss.Color(ColorBoxText))

		if box.alert {
			style = style.
				Background(lipgloss.Color(alertColor)).
				Foreground(lipgloss.Color(ColorAlertText)).
				BorderForeground(lipgloss.Color(ColorAlert)).
				Bold(box.bold)
		}
		rendered = append(rendered, style.Render(box.label+"\n"+box.value))
	}

	perRow := 5
	if width > 0 {
		perRow = width / (boxWidth + 5)
		if perRow < 1 {
			perRow = 1
		}
		if perRow > len(rendered) {
			perRow = len(rendered)
		}
	}

	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		end := i + perRow
		if end > len(rendered) {
			end = len(rendered)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderPlainMetrics renders the metrics as text lines with an ALERT marker,
// for output that is not a terminal
func RenderPlainMetrics(s metrics.Summary, a metrics.Alerts) string {
	out := ""
	for _, box := range boxesFor(s, a) {
		marker := ""
		if box.alert {
			marker = "  ⚠️  ALERT"
		}
		out += fmt.Sprintf("%-20s %12s%s\n", box.label, box.value, marker)
	}
	return out
}

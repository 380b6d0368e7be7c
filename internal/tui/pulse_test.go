package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/safehours/internal/metrics"
)

func TestBlendHex(t *testing.T) {
	assert.Equal(t, "#000000", blendHex("#000000", "#FFFFFF", 0))
	assert.Equal(t, "#FFFFFF", blendHex("#000000", "#FFFFFF", 1))
	assert.Equal(t, "#7F7F7F", blendHex("#000000", "#FFFFFF", 0.5))
	assert.Equal(t, "#FFFFFF", blendHex("#000000", "#FFFFFF", 3))
}

func TestPulseState_AlertColor(t *testing.T) {
	p := NewPulseState(DefaultPulseConfig())
	p.SupportsTrueColor = true
	start := p.Started

	p.Update(start)
	assert.Equal(t, ColorAlert, p.AlertColor())

	p.Update(start.Add(800 * time.Millisecond))
	assert.Equal(t, ColorAlertBright, p.AlertColor())

	p.SupportsTrueColor = false
	assert.Equal(t, ColorAlert, p.AlertColor())
}

func TestPulseState_ReduceMotion(t *testing.T) {
	cfg := DefaultPulseConfig()
	cfg.ReduceMotion = true
	p := NewPulseState(cfg)
	p.SupportsTrueColor = true

	p.SetActive(true)
	assert.False(t, p.ShouldTick())
	assert.Equal(t, time.Duration(0), p.TickInterval())

	p.Update(p.Started.Add(800 * time.Millisecond))
	assert.Equal(t, ColorAlert, p.AlertColor())
}

func TestPulseState_Active(t *testing.T) {
	p := NewPulseState(DefaultPulseConfig())
	assert.True(t, p.ShouldTick())
	assert.Equal(t, 100*time.Millisecond, p.TickInterval())

	p.SetActive(false)
	assert.False(t, p.ShouldTick())
}

func TestRenderPlainMetrics(t *testing.T) {
	s := metrics.Summary{FlightHours: 9, RestHours: 10, ContactHours: 11.5, ConsecutiveDays: 3, DutyDay: 12.25}
	out := RenderPlainMetrics(s, s.Alerts(metrics.DefaultThresholds()))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[0], "FLIGHT INSTRUCTION")
	assert.Contains(t, lines[0], "9.00 hrs")
	assert.Contains(t, lines[0], "ALERT")
	assert.Contains(t, lines[2], "11.50 hrs")
	assert.Contains(t, lines[3], "3 days")
	assert.Contains(t, lines[4], "12.25 hrs")
	assert.Equal(t, 1, strings.Count(out, "ALERT"))
}

func TestRenderMetricBoxes_Wraps(t *testing.T) {
	s := metrics.Summary{}
	wide := RenderMetricBoxes(s, metrics.Alerts{}, 200, "")
	narrow := RenderMetricBoxes(s, metrics.Alerts{}, 40, "")

	assert.Contains(t, wide, "DUTY DAY")
	assert.Greater(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
}

package tui

import (
	"fmt"
	"math"
	"os"
	"time"
)

// PulseConfig holds configuration for the alert pulse
type PulseConfig struct {
	Enabled      bool // animations: on|off
	ReduceMotion bool // if true → static alert color
	SpeedMs      int  // tick interval (default 100)
	CycleMs      int  // one full bright-dark-bright cycle (default 1600)
}

// DefaultPulseConfig returns default pulse configuration
func DefaultPulseConfig() PulseConfig {
	return PulseConfig{
		Enabled: true,
		SpeedMs: 100,
		CycleMs: 1600,
	}
}

// PulseState animates the background of alert metric boxes
type PulseState struct {
	Config            PulseConfig
	Active            bool
	Started           time.Time
	Phase             float64 // 0..1 position in the current cycle
	SupportsTrueColor bool
}

// pulseTickMsg is sent when the pulse should advance
type pulseTickMsg struct{}

// NewPulseState creates a new pulse state
func NewPulseState(config PulseConfig) *PulseState {
	if config.SpeedMs <= 0 {
		config.SpeedMs = 100
	}
	if config.CycleMs <= 0 {
		config.CycleMs = 1600
	}
	return &PulseState{
		Config:            config,
		Active:            config.Enabled && !config.ReduceMotion,
		Started:           time.Now(),
		SupportsTrueColor: os.Getenv("COLORTERM") == "truecolor",
	}
}

// Update advances the phase to match now
func (p *PulseState) Update(now time.Time) {
	if !p.Active {
		p.Phase = 0
		return
	}
	elapsed := now.Sub(p.Started).Milliseconds() % int64(p.Config.CycleMs)
	p.Phase = float64(elapsed) / float64(p.Config.CycleMs)
}

// SetActive enables/disables the pulse
func (p *PulseState) SetActive(active bool) {
	p.Active = active && p.Config.Enabled && !p.Config.ReduceMotion
}

// AlertColor returns the background for an alert box at the current phase.
// Terminals without truecolor, and reduced motion, get the static alert color.
func (p *PulseState) AlertColor() string {
	if !p.Active || !p.SupportsTrueColor {
		return ColorAlert
	}
	// cosine ease: 0 at phase 0 and 1, peak brightness mid-cycle
	weight := (1 - math.Cos(2*math.Pi*p.Phase)) / 2
	return blendHex(ColorAlert, ColorAlertBright, weight)
}

// TickInterval returns the interval for tea.Tick commands
func (p *PulseState) TickInterval() time.Duration {
	if !p.Active {
		return 0
	}
	return time.Duration(p.Config.SpeedMs) * time.Millisecond
}

// ShouldTick returns true if the pulse should be ticking
func (p *PulseState) ShouldTick() bool {
	return p.Active && p.Config.Enabled && !p.Config.ReduceMotion
}

// blendHex linearly blends two #RRGGBB colors: out = a*(1-w) + b*w
func blendHex(a, b string, w float64) string {
	ar, ag, ab := parseHex(a)
	br, bg, bb := parseHex(b)
	if w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}
	mix := func(x, y int) int {
		return int(float64(x)*(1-w) + float64(y)*w)
	}
	return fmt.Sprintf("#%02X%02X%02X", mix(ar, br), mix(ag, bg), mix(ab, bb))
}

func parseHex(s string) (r, g, b int) {
	_, _ = fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/safehours/internal/tui"
)

// withDashboard opens the app and runs the interactive dashboard
func withDashboard(cmd *cobra.Command) error {
	app, err := openApp(cmd, true)
	if err != nil {
		return err
	}
	defer app.Close()

	pulse := tui.DefaultPulseConfig()
	pulse.Enabled = app.Config.UI.AnimationsEnabled()
	pulse.ReduceMotion = app.Config.UI.ReduceMotion

	return tui.RunDashboard(app.Store, tui.DashboardOptions{
		TargetDate: app.TargetDate,
		Thresholds: app.Config.Thresholds,
		Metrics:    app.Config.MetricOptions(),
		Pulse:      pulse,
		Logger:     app.Logger,
		Now:        nowFunc,
	})
}

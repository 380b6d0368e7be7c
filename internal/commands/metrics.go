package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/safehours/internal/metrics"
	"github.com/balkashynov/safehours/internal/parser"
	"github.com/balkashynov/safehours/internal/tui"
)

func newMetricsCmd() *cobra.Command {
	metricsCmd := &cobra.Command{
		Use:     "metrics",
		Aliases: []string{"m"},
		Short:   "Show the five duty metrics for a date",
		Long: `Show flight instruction, rest, contact hours, consecutive days and
duty day for the --date target (today by default), flagging alerts.`,
		Args: cobra.NoArgs,
		RunE: withApp(runMetrics),
	}

	metricsCmd.Flags().Bool("json", false, "JSON output")
	metricsCmd.Flags().Bool("plain", false, "Plain text even on a terminal")

	return metricsCmd
}

type metricsReport struct {
	metrics.Summary
	Alerts metrics.Alerts `json:"alerts"`
}

func runMetrics(app *App, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	summary := metrics.Summarize(app.Store.Records(), app.TargetDate, app.Config.MetricOptions())
	alerts := summary.Alerts(app.Config.Thresholds)
	app.Logger.Debug("computed metrics", "date", summary.Date, "alerts", alerts.Any())

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(metricsReport{Summary: summary, Alerts: alerts})
	}

	fmt.Fprintf(out, "📅 %s\n\n", parser.FormatDate(summary.Date))

	plain, _ := cmd.Flags().GetBool("plain")
	if isTerminal(cmd) && !plain {
		fmt.Fprintln(out, tui.RenderMetricBoxes(summary, alerts, 0, ""))
	} else {
		fmt.Fprint(out, tui.RenderPlainMetrics(summary, alerts))
	}
	return nil
}

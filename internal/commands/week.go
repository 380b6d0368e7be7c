package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/safehours/internal/metrics"
	"github.com/balkashynov/safehours/internal/models"
)

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show metrics for the seven days ending at --date",
		Long: `Show a seven-day table of duty metrics ending at the --date target.

Example output:
  Day         Flight    Rest  Contact  Consec    Duty
  Mon 01 Jan    2.00    0.00     4.00       1    6.00
  ...
  Total        12.00            30.00

Alert values are marked with !.`,
		Args: cobra.NoArgs,
		RunE: withApp(runWeek),
	}
}

func runWeek(app *App, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	days := metrics.Week(app.Store.Records(), app.TargetDate, app.Config.MetricOptions())
	if len(days) == 0 {
		return fmt.Errorf("invalid target date %q", app.TargetDate)
	}

	fmt.Fprintf(out, "%-10s  %8s  %8s  %8s  %6s  %8s\n", "Day", "Flight", "Rest", "Contact", "Consec", "Duty")
	fmt.Fprintln(out, strings.Repeat("-", 58))

	var flightTotal, contactTotal float64
	for _, day := range days {
		a := day.Alerts(app.Config.Thresholds)
		fmt.Fprintf(out, "%-10s  %8s  %8s  %8s  %6s  %8s\n",
			weekdayLabel(day.Date),
			markHours(day.FlightHours, a.FlightHours),
			markHours(day.RestHours, a.RestHours),
			markHours(day.ContactHours, false),
			markDays(day.ConsecutiveDays, a.ConsecutiveDays),
			markHours(day.DutyDay, a.DutyDay))
		flightTotal += day.FlightHours
		contactTotal += day.ContactHours
	}

	fmt.Fprintln(out, strings.Repeat("-", 58))
	fmt.Fprintf(out, "%-10s  %8.2f  %8s  %8.2f\n", "Total", flightTotal, "", contactTotal)
	return nil
}

// weekdayLabel renders an ISO date as "Mon 02 Jan"
func weekdayLabel(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon 02 Jan")
}

func markHours(v float64, alert bool) string {
	s := fmt.Sprintf("%.2f", v)
	if alert {
		s += "!"
	}
	return s
}

func markDays(v int, alert bool) string {
	s := fmt.Sprintf("%d", v)
	if alert {
		s += "!"
	}
	return s
}

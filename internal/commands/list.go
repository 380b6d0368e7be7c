package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/safehours/internal/metrics"
	"github.com/balkashynov/safehours/internal/parser"
)

func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List logged activities",
		Long: `List logged activities, newest first.

The # column is the index used by "safehours rm". Pass --on to show a single
day; indices stay the same as in the full list.`,
		Args: cobra.NoArgs,
		RunE: withApp(runList),
	}

	listCmd.Flags().String("on", "", "Only show activities on this date")
	listCmd.Flags().Bool("json", false, "JSON output")

	return listCmd
}

type listedActivity struct {
	Index    int     `json:"index"`
	Date     string  `json:"date"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Activity string  `json:"activity"`
	Hours    float64 `json:"hours"`
}

func runList(app *App, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var onDate string
	if v, _ := cmd.Flags().GetString("on"); v != "" {
		d, err := parser.ParseDate(v, nowFunc())
		if err != nil {
			return fmt.Errorf("invalid --on: %w", err)
		}
		onDate = d
	}

	listed := []listedActivity{}
	for i, r := range app.Store.Records() {
		if onDate != "" && r.Date != onDate {
			continue
		}
		listed = append(listed, listedActivity{
			Index:    i,
			Date:     r.Date,
			Start:    r.Start,
			End:      r.End,
			Activity: string(r.Activity),
			Hours:    metrics.Duration(r),
		})
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listed)
	}

	if len(listed) == 0 {
		fmt.Fprintln(out, "No activities found. Use 'safehours add \"08:00-10:30 flight\"' to log your first one.")
		return nil
	}

	fmt.Fprintf(out, "%-4s %-10s %-5s  %-5s  %-9s %6s\n", "#", "DATE", "START", "END", "ACTIVITY", "HOURS")
	fmt.Fprintln(out, strings.Repeat("-", 48))
	for _, l := range listed {
		fmt.Fprintf(out, "%-4d %-10s %-5s  %-5s  %-9s %6.2f\n", l.Index, l.Date, l.Start, l.End, l.Activity, l.Hours)
	}
	return nil
}

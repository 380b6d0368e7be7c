package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/safehours/internal/metrics"
	"github.com/balkashynov/safehours/internal/models"
	"github.com/balkashynov/safehours/internal/parser"
	"github.com/balkashynov/safehours/internal/store"
	"github.com/balkashynov/safehours/internal/tui"
)

func newAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add [entry]",
		Short: "Log a new activity",
		Long: `Log a new activity.

Modes:
  Interactive: safehours add (no arguments, on a terminal)
  Quick: safehours add "yesterday 18:00-20:00 flight"
  Flags: safehours add --on 2024-01-01 --start 08:00 --end 10:30 --activity ground

Quick syntax:
  [date] HH:MM-HH:MM [activity]
  date      yyyy-mm-dd, dd/mm/yyyy, today, yesterday, -Nd (default today)
  activity  Flight, Pre-Post, Ground, Class, Other (default Flight)`,
		Args: cobra.ArbitraryArgs,
		RunE: withApp(runAdd),
	}

	addCmd.Flags().String("on", "", "Activity date (yyyy-mm-dd, today, -1d)")
	addCmd.Flags().StringP("start", "s", "", "Start time HH:MM")
	addCmd.Flags().StringP("end", "e", "", "End time HH:MM")
	addCmd.Flags().StringP("activity", "a", "", "Flight, Pre-Post, Ground, Class or Other")
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")

	return addCmd
}

func runAdd(app *App, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	interactive, _ := cmd.Flags().GetBool("interactive")

	flagsSet := false
	for _, name := range []string{"on", "start", "end", "activity"} {
		if cmd.Flags().Changed(name) {
			flagsSet = true
		}
	}

	// If no args and no flags, go interactive
	if len(args) == 0 && !flagsSet {
		interactive = true
	}

	if interactive && !isTerminal(cmd) {
		return fmt.Errorf("no activity given; use \"safehours add 08:00-10:30 flight\" or the --start/--end flags")
	}

	var record models.ActivityRecord
	if interactive {
		prefilled := map[string]string{"date": app.TargetDate}
		if len(args) > 0 {
			parsed := parser.ParseEntry(strings.Join(args, " "), nowFunc())
			prefilled = entryToPrefill(parsed)
		}
		mergeFlagPrefill(cmd, prefilled)

		rec, ok, err := tui.RunAddForm(prefilled, nowFunc)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "❌ Add cancelled.")
			return nil
		}
		record = rec
	} else {
		rec, err := recordFromInput(cmd, args)
		if err != nil {
			return err
		}
		record = rec
	}

	_, err := app.Store.Add(record)
	switch {
	case errors.Is(err, store.ErrIncompleteRecord):
		return fmt.Errorf("date, start, end and activity are all required")
	case errors.Is(err, store.ErrPersist):
		fmt.Fprintf(out, "⚠️  Activity added but not saved: %v\n", err)
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "✅ Added %s on %s %s-%s (%.2f hrs)\n",
		record.Activity, record.Date, record.Start, record.End, metrics.Duration(record))

	if record.End < record.Start {
		fmt.Fprintln(out, "⚠️  End is before start; activities crossing midnight count as negative time.")
	}
	return nil
}

// recordFromInput builds a record from the quick syntax with flags taking precedence
func recordFromInput(cmd *cobra.Command, args []string) (models.ActivityRecord, error) {
	var parsed parser.ParsedEntry
	if len(args) > 0 {
		parsed = parser.ParseEntry(strings.Join(args, " "), nowFunc())
	} else {
		today, _ := parser.ParseDate("today", nowFunc())
		parsed = parser.ParsedEntry{Date: today, Activity: models.CategoryFlight}
	}

	var problems []string
	// Range errors from the quick syntax only matter when flags don't supply the times
	for _, e := range parsed.Errors {
		if strings.HasPrefix(e, "Missing time range") && cmd.Flags().Changed("start") && cmd.Flags().Changed("end") {
			continue
		}
		problems = append(problems, e)
	}

	if v, _ := cmd.Flags().GetString("on"); cmd.Flags().Changed("on") {
		d, err := parser.ParseDate(v, nowFunc())
		if err != nil {
			problems = append(problems, err.Error())
		}
		parsed.Date = d
	}
	if v, _ := cmd.Flags().GetString("start"); cmd.Flags().Changed("start") {
		c, err := parser.ParseClock(v)
		if err != nil {
			problems = append(problems, "start: "+err.Error())
		}
		parsed.Start = c
	}
	if v, _ := cmd.Flags().GetString("end"); cmd.Flags().Changed("end") {
		c, err := parser.ParseClock(v)
		if err != nil {
			problems = append(problems, "end: "+err.Error())
		}
		parsed.End = c
	}
	if v, _ := cmd.Flags().GetString("activity"); cmd.Flags().Changed("activity") {
		c, err := parser.ParseCategory(v)
		if err != nil {
			problems = append(problems, err.Error())
		}
		parsed.Activity = c
	}

	if len(problems) > 0 {
		return models.ActivityRecord{}, fmt.Errorf("could not parse activity: %s", strings.Join(problems, "; "))
	}

	record := parsed.Record()
	if err := record.Validate(); err != nil {
		return models.ActivityRecord{}, fmt.Errorf("invalid activity: %w", err)
	}
	return record, nil
}

func entryToPrefill(parsed parser.ParsedEntry) map[string]string {
	prefilled := map[string]string{
		"date":     parsed.Date,
		"start":    parsed.Start,
		"end":      parsed.End,
		"activity": string(parsed.Activity),
	}
	return prefilled
}

// mergeFlagPrefill overrides prefilled values with any explicit flags
func mergeFlagPrefill(cmd *cobra.Command, prefilled map[string]string) {
	for flag, key := range map[string]string{"on": "date", "start": "start", "end": "end", "activity": "activity"} {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			prefilled[key] = v
		}
	}
}

package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/balkashynov/safehours/internal/store"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"delete", "del"},
		Short:   "Delete an activity by its list index",
		Long:    `Delete the activity shown at <index> in "safehours ls".`,
		Args:    cobra.ExactArgs(1),
		RunE:    withApp(runDelete),
	}
}

func runDelete(app *App, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	records := app.Store.Records()
	_, err = app.Store.Delete(index)
	switch {
	case errors.Is(err, store.ErrIndexOutOfRange):
		return fmt.Errorf("no activity at index %d (run 'safehours ls' to see indices)", index)
	case errors.Is(err, store.ErrPersist):
		fmt.Fprintf(out, "⚠️  Activity removed but not saved: %v\n", err)
	case err != nil:
		return err
	}

	r := records[index]
	fmt.Fprintf(out, "🗑️  Deleted %s on %s %s-%s\n", r.Activity, r.Date, r.Start, r.End)
	return nil
}

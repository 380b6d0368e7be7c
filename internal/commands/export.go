package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/safehours/internal/models"
	"github.com/balkashynov/safehours/internal/store"
)

func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the activity log as JSON",
		Long:  `Write the whole activity log as a JSON array, to stdout or --output.`,
		Args:  cobra.NoArgs,
		RunE:  withApp(runExport),
	}
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	return exportCmd
}

func runExport(app *App, cmd *cobra.Command, args []string) error {
	data, err := json.MarshalIndent(app.Store.Records(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode activity log: %w", err)
	}
	data = append(data, '\n')

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d activities to %s\n", app.Store.Len(), path)
	return nil
}

func newImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the activity log with a JSON export",
		Long: `Replace the activity log with the records in a JSON array file, as written
by "safehours export". Every record is validated before anything is replaced.
Use --merge to add the records to the existing log instead.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(runImport),
	}
	importCmd.Flags().Bool("merge", false, "Add to the existing log instead of replacing it")
	return importCmd
}

func runImport(app *App, cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var records models.ActivityLog
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	if merge, _ := cmd.Flags().GetBool("merge"); merge {
		records = append(app.Store.Records(), records...)
	}

	err = app.Store.Replace(records)
	switch {
	case errors.Is(err, store.ErrPersist):
		fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Activities imported but not saved: %v\n", err)
	case err != nil:
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d activities (%d in log)\n", len(records), app.Store.Len())
	return nil
}

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// nowFunc is the clock used for "today" and relative dates
var nowFunc = time.Now

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "safehours",
		Short: "A personal flight duty time tracker",
		Long: `safehours logs your flights, ground duty and classes and works out
flight hours, rest, contact hours, consecutive duty days and duty-day span
for any date, flagging the ones that go over the limits.

Run without a command to open the interactive dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(cmd) {
				return withDashboard(cmd)
			}
			return withApp(runMetrics)(cmd, args)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.safehours/config.yaml)")
	rootCmd.PersistentFlags().StringP("date", "d", "today", "Target date: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, -Nd")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newMetricsCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.SetHelpCommand(newHelpCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "safehours %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// isTerminal reports whether the command writes to an interactive terminal
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show comprehensive help for safehours",
		Long:  `Display detailed help for all safehours commands and flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				if target, _, err := cmd.Root().Find(args); err == nil && target != cmd.Root() {
					_ = target.Help()
					return
				}
			}
			showCustomHelp(cmd.OutOrStdout())
		},
	}
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
safehours - personal flight duty time tracker

Run with no command to open the dashboard for --date (default today).

COMMANDS:

  add [entry]             Log an activity
    --on                  Date (yyyy-mm-dd, dd/mm/yyyy, today, yesterday, -Nd)
    -s, --start           Start time HH:MM
    -e, --end             End time HH:MM
    -a, --activity        Flight|Pre-Post|Ground|Class|Other
    -i, --interactive     Open the add form

    Quick syntax:
      [date] HH:MM-HH:MM [activity]

    Example:
      safehours add "yesterday 18:00-20:00 flight"

  ls                      List activities, newest first, with their index
    --on                  Only one date
    --json                JSON output

  rm <index>              Delete the activity at <index> from ls

  metrics                 Flight, rest, contact, consecutive days, duty day
    --json                JSON output with alerts
    --plain               Plain text on a terminal

  week                    Seven-day table ending at --date

  export                  Write the log as JSON
    -o, --output          Write to a file

  import <file>           Replace the log from a JSON export
    --merge               Add to the existing log instead

  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:

  -d, --date              Target date for the dashboard, metrics and week
  --config                Config file (default ~/.safehours/config.yaml)

DASHBOARD KEYS:

  ←/→           Previous/next day
  t             Jump to today
  ↑/↓           Select activity
  a             Add activity
  d             Delete selected activity
  q/esc         Quit

ALERTS:

  Flight instruction over 8 hrs, rest under 10 hrs, more than 16 consecutive
  days or a duty day over 16 hrs. Limits can be changed in the config file.

`)
}

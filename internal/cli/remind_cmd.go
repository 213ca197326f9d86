package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/weekly/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultReminderHours = 24

func newRemindCmd(app *App) *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "List reminders due soon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := hours
			if !cmd.Flags().Changed("hours") && app.ReminderHours > 0 {
				h = app.ReminderHours
			}
			if h <= 0 {
				return fmt.Errorf("--hours must be positive")
			}
			horizon := time.Duration(h) * time.Hour
			now := app.now()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReminders(app.Reminders.Upcoming(now, horizon), now, horizon))
			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", defaultReminderHours, "Look-ahead in hours")
	return cmd
}

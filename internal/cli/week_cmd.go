package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/weekly/internal/cli/formatter"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := newWeekShowCmd(app)
	cmd.Use = "week"
	cmd.Short = "Show and move the selected week"

	cmd.AddCommand(
		newWeekShowCmd(app),
		newWeekMoveCmd(app, "next", "Select the following week", app.Weeks.Next),
		newWeekMoveCmd(app, "prev", "Select the previous week", app.Weeks.Previous),
		newWeekMoveCmd(app, "today", "Select the week containing today", app.Weeks.Today),
		newWeekGotoCmd(app),
	)

	return cmd
}

// newWeekShowCmd renders a week without moving the selection.
func newWeekShowCmd(app *App) *cobra.Command {
	var week weekValue

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the selected week, or --week without selecting it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := app.Weeks.Current(cmd.Context())
			if err != nil {
				return err
			}
			if week.set {
				sel = domain.WeekSelection{Week: week.week, SelectedDate: week.week.Start()}
			}
			return printWeek(cmd, app, sel)
		},
	}
	addWeekFlag(cmd.Flags(), &week)

	return cmd
}

func newWeekMoveCmd(app *App, use, short string, move func(ctx context.Context) (domain.WeekSelection, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := move(cmd.Context())
			if err != nil {
				return err
			}
			return printWeek(cmd, app, sel)
		},
	}
}

func newWeekGotoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goto DATE|WEEK",
		Short: "Select the week containing a date (YYYY-MM-DD) or a week (YYYY-Www)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateOrWeek(args[0])
			if err != nil {
				return err
			}
			sel, err := app.Weeks.JumpTo(cmd.Context(), date)
			if err != nil {
				return err
			}
			return printWeek(cmd, app, sel)
		},
	}
}

// parseDateOrWeek accepts "2026-10-15", "2026-W42" or "42/2026". A week
// resolves to its Sunday.
func parseDateOrWeek(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err == nil {
		return d, nil
	}
	w, err := weekcal.ParseWeek(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date or week %q (expected YYYY-MM-DD or YYYY-Www)", s)
	}
	return w.Start(), nil
}

func printWeek(cmd *cobra.Command, app *App, sel domain.WeekSelection) error {
	activities := app.Activities.ListByWeek(sel.Week)
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeek(sel, activities, app.Eval.DayProgress(sel.Week)))
	return nil
}

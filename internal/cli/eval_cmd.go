package cli

import (
	"fmt"

	"github.com/alexanderramin/weekly/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEvalCmd(app *App) *cobra.Command {
	var week weekValue

	cmd := &cobra.Command{
		Use:     "eval",
		Aliases: []string{"evaluate"},
		Short:   "Show completion per life domain and the positive notes of a week",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := resolveWeek(cmd.Context(), app, week)
			if err != nil {
				return err
			}
			notes, err := app.Notes.WeekNotes(cmd.Context(), w)
			if err != nil {
				return fmt.Errorf("loading notes for %s: %w", w, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEvaluation(app.Eval.Evaluate(w), notes))
			return nil
		},
	}
	addWeekFlag(cmd.Flags(), &week)

	return cmd
}

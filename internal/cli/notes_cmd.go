package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/weekly/internal/cli/formatter"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/spf13/cobra"
)

// notesTarget is the week/day pair shared by every notes subcommand.
type notesTarget struct {
	week weekValue
	day  string
}

func (t *notesTarget) register(cmd *cobra.Command) {
	addWeekFlag(cmd.Flags(), &t.week)
	cmd.Flags().StringVar(&t.day, "day", "", "Day name or index 0-6 (default: selected day)")
}

func (t *notesTarget) resolve(cmd *cobra.Command, app *App) (weekcal.Week, int, error) {
	w, err := resolveWeek(cmd.Context(), app, t.week)
	if err != nil {
		return weekcal.Week{}, 0, err
	}
	day, err := resolveDay(cmd.Context(), app, w, t.day)
	if err != nil {
		return weekcal.Week{}, 0, err
	}
	return w, day, nil
}

func newNotesCmd(app *App) *cobra.Command {
	cmd := newNotesShowCmd(app)
	cmd.Use = "notes"
	cmd.Short = "Show and write a day's positive notes and free writing"

	cmd.AddCommand(
		newNotesShowCmd(app),
		newNotesPositiveCmd(app),
		newNotesWriteCmd(app),
	)

	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	var target notesTarget

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, day, err := target.resolve(cmd, app)
			if err != nil {
				return err
			}
			return printDayNotes(cmd, app, w, day)
		},
	}
	target.register(cmd)

	return cmd
}

func newNotesPositiveCmd(app *App) *cobra.Command {
	var target notesTarget

	cmd := &cobra.Command{
		Use:   "positive SLOT TEXT...",
		Short: fmt.Sprintf("Set positive note 1-%d of a day (empty text clears it)", domain.PositiveNoteSlots),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil || slot < 1 || slot > domain.PositiveNoteSlots {
				return fmt.Errorf("slot must be 1-%d, got %q", domain.PositiveNoteSlots, args[0])
			}
			w, day, err := target.resolve(cmd, app)
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if err := app.Notes.SetPositiveNoteSlot(cmd.Context(), w, day, slot-1, text); err != nil {
				return err
			}
			return printDayNotes(cmd, app, w, day)
		},
	}
	target.register(cmd)

	return cmd
}

func newNotesWriteCmd(app *App) *cobra.Command {
	var target notesTarget

	cmd := &cobra.Command{
		Use:   "write [TEXT...]",
		Short: "Replace a day's free writing (opens an editor without TEXT)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, day, err := target.resolve(cmd, app)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				if !app.interactive() {
					return fmt.Errorf("TEXT is required")
				}
				if text, err = app.Notes.GetFreeWriting(ctx, w, day); err != nil {
					return err
				}
				title := fmt.Sprintf("%s, %s", formatter.DayFullName(day), w.Date(day).Format("Jan 2"))
				if err := freeWritingForm(title, &text).Run(); err != nil {
					return err
				}
			}

			if err := app.Notes.SetFreeWriting(ctx, w, day, text); err != nil {
				return err
			}
			return printDayNotes(cmd, app, w, day)
		},
	}
	target.register(cmd)

	return cmd
}

func printDayNotes(cmd *cobra.Command, app *App, w weekcal.Week, day int) error {
	notes, err := app.Notes.GetDayNotes(cmd.Context(), w, day)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDayNotes(w, day, notes))
	return nil
}

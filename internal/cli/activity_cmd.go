package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weekly/internal/cli/formatter"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act", "a"},
		Short:   "Manage activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityShowCmd(app),
		newActivityEditCmd(app),
		newActivityToggleCmd(app),
		newActivityRemindDayCmd(app),
		newActivityRemoveCmd(app),
		newActivityCopyCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var (
		title, domainID, description, remind string
		target                               int
		allowSunday                          bool
		days                                 dayListValue
		week                                 weekValue
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an activity to a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWeek(ctx, app, week)
			if err != nil {
				return err
			}

			var a *domain.Activity
			if title == "" {
				if !app.interactive() {
					return fmt.Errorf("--title is required")
				}
				values := &activityFormValues{DomainID: domainID, Days: days.days}
				if err := activityForm(values).Run(); err != nil {
					return err
				}
				if a, err = values.activity(w); err != nil {
					return err
				}
			} else {
				a = &domain.Activity{
					Title:        title,
					DomainID:     domainID,
					Description:  description,
					SelectedDays: days.days,
					AllowSunday:  allowSunday,
					WeekNumber:   w.Number,
					Year:         w.Year,
				}
				if cmd.Flags().Changed("target") {
					a.TargetCount = &target
				}
				if remind != "" {
					r, err := domain.NewReminder(w, remind)
					if err != nil {
						return err
					}
					a.Reminder = r
				}
			}

			if err := app.Activities.Add(ctx, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s to %s\n", a.Title, formatter.TruncID(a.ID), w)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Activity title")
	cmd.Flags().StringVarP(&domainID, "domain", "d", "health", "Life domain ("+strings.Join(domain.DomainIDs(), ", ")+")")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().Var(&days, "days", "Scheduled days, e.g. mon,wed,fri, 1,3,5 or weekdays")
	cmd.Flags().IntVar(&target, "target", 0, "Target count")
	cmd.Flags().StringVar(&remind, "remind", "", "Reminder time (HH:MM)")
	cmd.Flags().BoolVar(&allowSunday, "allow-sunday", false, "Allow scheduling on Sunday")
	addWeekFlag(cmd.Flags(), &week)

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var (
		all      bool
		domainID string
		week     weekValue
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List activities of a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			var activities []*domain.Activity
			if all {
				activities = app.Activities.List()
			} else {
				w, err := resolveWeek(cmd.Context(), app, week)
				if err != nil {
					return err
				}
				activities = app.Activities.ListByWeek(w)
			}
			if domainID != "" {
				filtered := activities[:0]
				for _, a := range activities {
					if a.DomainID == domainID {
						filtered = append(filtered, a)
					}
				}
				activities = filtered
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityList(activities))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List activities of every week")
	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "Only this life domain")
	addWeekFlag(cmd.Flags(), &week)

	return cmd
}

func newActivityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActivity(a))
			return nil
		},
	}
}

func newActivityEditCmd(app *App) *cobra.Command {
	var (
		title, domainID, description, remind string
		target                               int
		allowSunday, clearTarget, noReminder bool
		days, remindDays                     dayListValue
		week                                 weekValue
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var patch domain.ActivityPatch
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("domain") {
				patch.DomainID = &domainID
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("days") {
				patch.SelectedDays = &days.days
			}
			if flags.Changed("target") {
				patch.TargetCount = &target
			}
			patch.ClearTarget = clearTarget
			if flags.Changed("allow-sunday") {
				patch.AllowSunday = &allowSunday
			}
			if week.set {
				patch.WeekNumber = &week.week.Number
				patch.Year = &week.week.Year
			}
			patch.ClearReminder = noReminder
			if remind != "" || remindDays.set {
				rp := &domain.ReminderPatch{}
				if remind != "" {
					rp.Time = &remind
				}
				if remindDays.set {
					rp.Days = &remindDays.days
				}
				patch.Reminder = rp
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change")
			}

			updated, err := app.Activities.Update(cmd.Context(), a.ID, patch)
			if err != nil {
				return err
			}
			if !updated {
				return fmt.Errorf("activity %s no longer exists", a.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.TruncID(a.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&domainID, "domain", "d", "", "New life domain")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().Var(&days, "days", "New scheduled days")
	cmd.Flags().IntVar(&target, "target", 0, "New target count")
	cmd.Flags().BoolVar(&clearTarget, "clear-target", false, "Remove the target count")
	cmd.Flags().BoolVar(&allowSunday, "allow-sunday", false, "Allow scheduling on Sunday")
	cmd.Flags().StringVar(&remind, "remind", "", "Reminder time (HH:MM)")
	cmd.Flags().Var(&remindDays, "remind-days", "Days that carry the reminder")
	cmd.Flags().BoolVar(&noReminder, "no-reminder", false, "Remove the reminder")
	addWeekFlag(cmd.Flags(), &week)
	cmd.MarkFlagsMutuallyExclusive("target", "clear-target")
	cmd.MarkFlagsMutuallyExclusive("remind", "no-reminder")

	return cmd
}

func newActivityToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID DAY",
		Short: "Flip the completion of an activity on a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, day, err := activityAndDay(app, args)
			if err != nil {
				return err
			}
			if _, err := app.Activities.ToggleCompletion(cmd.Context(), a.ID, day); err != nil {
				return err
			}
			state := "not done"
			if !a.IsCompleted(day) {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s\n", a.Title, formatter.DayFullName(day), state)
			return nil
		},
	}
}

func newActivityRemindDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind-day ID DAY",
		Short: "Add or remove a day from an activity's reminder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, day, err := activityAndDay(app, args)
			if err != nil {
				return err
			}
			if _, err := app.Activities.ToggleReminderDay(cmd.Context(), a.ID, day); err != nil {
				return err
			}
			updated, err := app.Activities.Get(a.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s reminder days: %s\n", a.Title, formatter.DayList(updated.Reminder.Days))
			return nil
		},
	}
}

func activityAndDay(app *App, args []string) (*domain.Activity, int, error) {
	a, err := resolveActivity(app, args[0])
	if err != nil {
		return nil, 0, err
	}
	day, err := weekcal.ParseDay(args[1])
	if err != nil {
		return nil, 0, err
	}
	return a, day, nil
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete an activity",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(app, args[0])
			if err != nil {
				return err
			}
			if !yes && app.interactive() {
				confirmed := false
				if err := wizardConfirm(fmt.Sprintf("Delete %q?", a.Title), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if _, err := app.Activities.Delete(cmd.Context(), a.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", a.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newActivityCopyCmd(app *App) *cobra.Command {
	var from, to weekValue

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a week's activities into another week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			src, err := resolveWeek(ctx, app, from)
			if err != nil {
				return err
			}
			dst := src.Next()
			if to.set {
				dst = to.week
			}
			copied, err := app.Activities.CopyWeek(ctx, src, dst)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d activities from %s to %s\n", len(copied), src, dst)
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "Source week (default: selected week)")
	cmd.Flags().Var(&to, "to", "Target week (default: the week after the source)")
	return cmd
}

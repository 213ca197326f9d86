package cli

import (
	"time"

	"github.com/alexanderramin/weekly/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Activities service.ActivityStore
	Weeks      service.WeekService
	Notes      service.NotesService
	Eval       service.EvaluationService
	Transfer   service.TransferService
	Reminders  service.ReminderService

	// ReminderHours is the default look-ahead of `weekly remind`.
	ReminderHours int
	// ExportFile is the default target of `weekly export`.
	ExportFile string

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// board only run when it returns true.
	IsInteractive func() bool
	// Now is the wall clock. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "weekly" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "weekly",
		Short:         "Weekly activity tracker across life domains",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newActivityCmd(app),
		newWeekCmd(app),
		newNotesCmd(app),
		newEvalCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newRemindCmd(app),
		newBoardCmd(app),
	)

	return root
}

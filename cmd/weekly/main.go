package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/weekly/internal/cli"
	"github.com/alexanderramin/weekly/internal/config"
	"github.com/alexanderramin/weekly/internal/db"
	"github.com/alexanderramin/weekly/internal/repository"
	"github.com/alexanderramin/weekly/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire repositories
	activityRepo := repository.NewSQLiteActivityRepo(database)
	notesRepo := repository.NewSQLiteNotesRepo(database)
	selectionRepo := repository.NewSQLiteSelectionRepo(database)

	// Wire unit of work for imports
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	store := service.NewActivityStore(activityRepo, uow, observers...)
	if err := store.Load(context.Background()); err != nil {
		return err
	}
	notes := service.NewNotesService(notesRepo)

	app := &cli.App{
		Activities:    store,
		Weeks:         service.NewWeekService(selectionRepo),
		Notes:         notes,
		Eval:          service.NewEvaluationService(store),
		Transfer:      service.NewTransferService(store, notes, observers...),
		Reminders:     service.NewReminderService(store),
		ReminderHours: cfg.ReminderHours,
		ExportFile:    cfg.ExportFile,
	}

	// Forms and the board need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

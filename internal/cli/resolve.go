package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
)

// resolveActivity finds an activity by full ID or unique ID prefix.
func resolveActivity(app *App, input string) (*domain.Activity, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("activity ID is required")
	}

	activities := app.Activities.List()

	// 1. Exact match
	for _, a := range activities {
		if a.ID == input {
			return a, nil
		}
	}

	// 2. Prefix match
	var matches []*domain.Activity
	for _, a := range activities {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("activity not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("activity ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveWeek returns the week named by a --week flag, or the currently
// selected week when the flag was not set.
func resolveWeek(ctx context.Context, app *App, flag weekValue) (weekcal.Week, error) {
	if flag.set {
		return flag.week, nil
	}
	sel, err := app.Weeks.Current(ctx)
	if err != nil {
		return weekcal.Week{}, err
	}
	return sel.Week, nil
}

// resolveDay returns the day of a --day flag. Without the flag it falls back
// to the selected day, then today, then Sunday.
func resolveDay(ctx context.Context, app *App, week weekcal.Week, flag string) (int, error) {
	if flag != "" {
		return weekcal.ParseDay(flag)
	}
	sel, err := app.Weeks.Current(ctx)
	if err != nil {
		return 0, err
	}
	switch now := app.now(); {
	case sel.Week == week:
		return weekcal.DayOf(sel.SelectedDate), nil
	case week.Contains(now):
		return weekcal.DayOf(now), nil
	default:
		return 0, nil
	}
}

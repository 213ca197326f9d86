package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/charmbracelet/huh"
)

// activityFormValues backs the interactive add form. Numeric and clock
// fields stay strings so huh can bind them directly.
type activityFormValues struct {
	Title       string
	DomainID    string
	Days        []int
	Description string
	Target      string
	Reminder    string
	AllowSunday bool
}

// domainOptions lists the life domains in display order.
func domainOptions() []huh.Option[string] {
	domains := domain.LifeDomains()
	options := make([]huh.Option[string], 0, len(domains))
	for _, d := range domains {
		options = append(options, huh.NewOption(d.Name, d.ID))
	}
	return options
}

// dayOptions lists Sunday through Saturday.
func dayOptions() []huh.Option[int] {
	options := make([]huh.Option[int], 0, weekcal.DaysPerWeek)
	for d := range weekcal.DaysPerWeek {
		options = append(options, huh.NewOption(weekcal.DayName(d), d))
	}
	return options
}

// activityForm returns a themed form collecting a new activity.
func activityForm(v *activityFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Morning run").
				Value(&v.Title).
				Validate(validateTitle),
			huh.NewSelect[string]().
				Title("Life Domain").
				Options(domainOptions()...).
				Value(&v.DomainID),
			huh.NewMultiSelect[int]().
				Title("Days").
				Options(dayOptions()...).
				Value(&v.Days),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Description (optional)").
				Value(&v.Description),
			huh.NewInput().
				Title("Target Count (optional)").
				Placeholder("3").
				Value(&v.Target).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Reminder Time (HH:MM, blank for none)").
				Placeholder("07:30").
				Value(&v.Reminder).
				Validate(validateOptionalClock),
			huh.NewConfirm().
				Title("Allow Sunday?").
				Value(&v.AllowSunday),
		),
	).WithTheme(weeklyHuhTheme()).WithShowHelp(false)
}

// activity builds the activity described by the form values.
func (v *activityFormValues) activity(week weekcal.Week) (*domain.Activity, error) {
	a := &domain.Activity{
		Title:        strings.TrimSpace(v.Title),
		DomainID:     v.DomainID,
		SelectedDays: v.Days,
		Description:  strings.TrimSpace(v.Description),
		AllowSunday:  v.AllowSunday,
		WeekNumber:   week.Number,
		Year:         week.Year,
	}
	if v.Target != "" {
		n, err := strconv.Atoi(v.Target)
		if err != nil {
			return nil, err
		}
		a.TargetCount = &n
	}
	if clock := strings.TrimSpace(v.Reminder); clock != "" {
		r, err := domain.NewReminder(week, clock)
		if err != nil {
			return nil, err
		}
		a.Reminder = r
	}
	return a, nil
}

// freeWritingForm returns a themed multi-line editor for a day's free writing.
func freeWritingForm(title string, text *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				CharLimit(0).
				Value(text),
		),
	).WithTheme(weeklyHuhTheme()).WithShowHelp(false)
}

package cli

import (
	"slices"
	"strings"

	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/spf13/pflag"
)

// dayListValue is a pflag.Value holding day indexes given as
// "mon,wed,fri" or "1,3,5". "weekdays" expands to Monday through Saturday
// and "all" to the whole week.
type dayListValue struct {
	days []int
	set  bool
}

var _ pflag.Value = (*dayListValue)(nil)

func (v *dayListValue) String() string {
	names := make([]string, len(v.days))
	for i, d := range v.days {
		names[i] = strings.ToLower(weekcal.DayName(d))
	}
	return strings.Join(names, ",")
}

func (v *dayListValue) Set(s string) error {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		expanded, err := expandDayToken(part)
		if err != nil {
			return err
		}
		for _, d := range expanded {
			if !slices.Contains(days, d) {
				days = append(days, d)
			}
		}
	}
	slices.Sort(days)
	v.days = days
	v.set = true
	return nil
}

func (v *dayListValue) Type() string { return "days" }

func expandDayToken(token string) ([]int, error) {
	switch strings.ToLower(token) {
	case "weekdays":
		return []int{1, 2, 3, 4, 5, 6}, nil
	case "all":
		return []int{0, 1, 2, 3, 4, 5, 6}, nil
	}
	d, err := weekcal.ParseDay(token)
	if err != nil {
		return nil, err
	}
	return []int{d}, nil
}

// weekValue is a pflag.Value holding a week given as "2026-W42" or "42/2026".
type weekValue struct {
	week weekcal.Week
	set  bool
}

var _ pflag.Value = (*weekValue)(nil)

func (v *weekValue) String() string {
	if !v.set {
		return ""
	}
	return v.week.String()
}

func (v *weekValue) Set(s string) error {
	w, err := weekcal.ParseWeek(s)
	if err != nil {
		return err
	}
	v.week = w
	v.set = true
	return nil
}

func (v *weekValue) Type() string { return "week" }

// addWeekFlag registers --week on fs.
func addWeekFlag(fs *pflag.FlagSet, v *weekValue) {
	fs.VarP(v, "week", "w", "Week as YYYY-Www or N/YYYY (default: selected week)")
}

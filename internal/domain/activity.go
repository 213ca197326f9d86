package domain

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/weekly/internal/weekcal"
)

// ErrInvalidActivity is wrapped by every activity validation failure.
var ErrInvalidActivity = errors.New("invalid activity")

// Activity is one week-scoped entry in a life domain. Activities do not
// recur: each week holds its own records.
type Activity struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	TargetCount   *int         `json:"targetCount,omitempty"`
	DomainID      string       `json:"domainId"`
	SelectedDays  []int        `json:"selectedDays"`
	AllowSunday   bool         `json:"allowSunday"`
	CompletedDays map[int]bool `json:"completedDays"`
	Reminder      *Reminder    `json:"reminder,omitempty"`
	WeekNumber    int          `json:"weekNumber"`
	Year          int          `json:"year"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// Reminder fires at Time on the activity's week start Date. Days, when set,
// restricts which day slots carry a reminder.
type Reminder struct {
	Time string    `json:"time"`
	Date time.Time `json:"date"`
	Days []int     `json:"days,omitempty"`
}

// Week returns the week this activity belongs to.
func (a *Activity) Week() weekcal.Week {
	return weekcal.Week{Number: a.WeekNumber, Year: a.Year}
}

// IsScheduled reports whether day is one of the selected days.
func (a *Activity) IsScheduled(day int) bool {
	return slices.Contains(a.SelectedDays, day)
}

// IsCompleted reports whether day is flagged complete. Absent entries are
// not completed.
func (a *Activity) IsCompleted(day int) bool {
	return a.CompletedDays[day]
}

// CompletedCount counts selected days flagged complete.
func (a *Activity) CompletedCount() int {
	n := 0
	for _, d := range a.SelectedDays {
		if a.CompletedDays[d] {
			n++
		}
	}
	return n
}

// ToggleDay flips the completion flag of day.
func (a *Activity) ToggleDay(day int) {
	if a.CompletedDays == nil {
		a.CompletedDays = make(map[int]bool)
	}
	a.CompletedDays[day] = !a.CompletedDays[day]
}

// Normalize sorts and de-duplicates SelectedDays and makes sure the
// collections are non-nil.
func (a *Activity) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	days := make([]int, 0, len(a.SelectedDays))
	for _, d := range a.SelectedDays {
		if !slices.Contains(days, d) {
			days = append(days, d)
		}
	}
	slices.Sort(days)
	a.SelectedDays = days
	if a.CompletedDays == nil {
		a.CompletedDays = make(map[int]bool)
	}
	if a.Reminder != nil && a.Reminder.Days != nil {
		rd := slices.Clone(a.Reminder.Days)
		slices.Sort(rd)
		a.Reminder.Days = slices.Compact(rd)
	}
}

// Validate checks the structural invariants of an activity. Completed days
// outside SelectedDays and Sunday with AllowSunday=false are accepted.
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidActivity)
	}
	if _, ok := LookupDomain(a.DomainID); !ok {
		return fmt.Errorf("%w: unknown domain %q", ErrInvalidActivity, a.DomainID)
	}
	if !a.Week().Valid() {
		return fmt.Errorf("%w: week %d/%d does not exist", ErrInvalidActivity, a.WeekNumber, a.Year)
	}
	for _, d := range a.SelectedDays {
		if !weekcal.ValidDay(d) {
			return fmt.Errorf("%w: selected day %d out of range 0-6", ErrInvalidActivity, d)
		}
	}
	for d := range a.CompletedDays {
		if !weekcal.ValidDay(d) {
			return fmt.Errorf("%w: completed day %d out of range 0-6", ErrInvalidActivity, d)
		}
	}
	if a.TargetCount != nil && *a.TargetCount < 0 {
		return fmt.Errorf("%w: target count must not be negative", ErrInvalidActivity)
	}
	if a.Reminder != nil {
		if _, _, err := ParseClock(a.Reminder.Time); err != nil {
			return fmt.Errorf("%w: reminder: %v", ErrInvalidActivity, err)
		}
		for _, d := range a.Reminder.Days {
			if !weekcal.ValidDay(d) {
				return fmt.Errorf("%w: reminder day %d out of range 0-6", ErrInvalidActivity, d)
			}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (a *Activity) Clone() *Activity {
	c := *a
	c.SelectedDays = slices.Clone(a.SelectedDays)
	if a.CompletedDays != nil {
		c.CompletedDays = make(map[int]bool, len(a.CompletedDays))
		for k, v := range a.CompletedDays {
			c.CompletedDays[k] = v
		}
	}
	if a.TargetCount != nil {
		n := *a.TargetCount
		c.TargetCount = &n
	}
	if a.Reminder != nil {
		r := *a.Reminder
		r.Days = slices.Clone(a.Reminder.Days)
		c.Reminder = &r
	}
	return &c
}

// NewReminder builds a reminder at clock ("HH:MM") on the first day of week.
func NewReminder(week weekcal.Week, clock string) (*Reminder, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return nil, err
	}
	start := week.Start()
	if start.IsZero() {
		return nil, fmt.Errorf("week %s does not exist", week)
	}
	return &Reminder{
		Time: fmt.Sprintf("%02d:%02d", h, m),
		Date: start.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute),
	}, nil
}

// ParseClock parses "HH:MM" in 24-hour form.
func ParseClock(s string) (hour, minute int, err error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	hour, err = strconv.Atoi(hs)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(ms)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

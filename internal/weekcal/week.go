// Package weekcal maps (week number, year) pairs to calendar dates and back.
//
// Weeks run Sunday through Saturday; day index 0 is Sunday. Week numbers
// follow ISO 8601 shifted back by one day, so the week containing a date d is
// the ISO week of d+1. This keeps every week inside exactly one (number, year)
// pair and makes StartOfWeek and WeekOf exact inverses.
package weekcal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DaysPerWeek is the number of day slots in a week.
const DaysPerWeek = 7

// DateLayout is the calendar-date layout used across the app.
const DateLayout = "2006-01-02"

var dayNames = [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Week identifies one Sunday-started week.
type Week struct {
	Number int `json:"weekNumber"`
	Year   int `json:"year"`
}

// StartOfWeek returns midnight UTC of the Sunday that starts the given week.
func StartOfWeek(week, year int) (time.Time, error) {
	if year < 1 || year > 9998 {
		return time.Time{}, fmt.Errorf("year %d out of range", year)
	}
	if last := WeeksInYear(year); week < 1 || week > last {
		return time.Time{}, fmt.Errorf("week %d out of range for %d (1-%d)", week, year, last)
	}
	// January 4th always falls in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, 7*(week-1)-1), nil
}

// WeeksInYear returns 52 or 53.
func WeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// WeekDates returns the seven consecutive calendar dates starting at start.
func WeekDates(start time.Time) [DaysPerWeek]time.Time {
	start = dateOnly(start)
	var dates [DaysPerWeek]time.Time
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// WeekOf returns the week containing d. Only the calendar date of d in its
// own location is considered.
func WeekOf(d time.Time) Week {
	y, w := dateOnly(d).AddDate(0, 0, 1).ISOWeek()
	return Week{Number: w, Year: y}
}

// DayOf returns the day index (0 = Sunday) of d within its week.
func DayOf(d time.Time) int {
	return int(dateOnly(d).Weekday())
}

// Start returns the Sunday that begins w. Invalid weeks yield the zero time.
func (w Week) Start() time.Time {
	t, err := StartOfWeek(w.Number, w.Year)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Dates returns the seven dates of w.
func (w Week) Dates() [DaysPerWeek]time.Time {
	return WeekDates(w.Start())
}

// Date returns the calendar date of day index day in w.
func (w Week) Date(day int) time.Time {
	return w.Start().AddDate(0, 0, day)
}

// Next returns the following week, rolling over year boundaries.
func (w Week) Next() Week {
	return WeekOf(w.Start().AddDate(0, 0, DaysPerWeek))
}

// Prev returns the preceding week, rolling over year boundaries.
func (w Week) Prev() Week {
	return WeekOf(w.Start().AddDate(0, 0, -DaysPerWeek))
}

// Contains reports whether d falls inside w.
func (w Week) Contains(d time.Time) bool {
	return WeekOf(d) == w
}

// Valid reports whether w names a real week.
func (w Week) Valid() bool {
	_, err := StartOfWeek(w.Number, w.Year)
	return err == nil
}

// Before reports whether w comes strictly before other.
func (w Week) Before(other Week) bool {
	if w.Year != other.Year {
		return w.Year < other.Year
	}
	return w.Number < other.Number
}

func (w Week) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Number)
}

// ParseWeek accepts "2026-W07" or "7/2026".
func ParseWeek(s string) (Week, error) {
	s = strings.TrimSpace(s)
	var numStr, yearStr string
	switch {
	case strings.Contains(strings.ToUpper(s), "-W"):
		parts := strings.SplitN(strings.ToUpper(s), "-W", 2)
		yearStr, numStr = parts[0], parts[1]
	case strings.Contains(s, "/"):
		parts := strings.SplitN(s, "/", 2)
		numStr, yearStr = parts[0], parts[1]
	default:
		return Week{}, fmt.Errorf("invalid week %q (expected YYYY-Www or N/YYYY)", s)
	}
	n, err := strconv.Atoi(numStr)
	if err != nil {
		return Week{}, fmt.Errorf("invalid week number %q", numStr)
	}
	y, err := strconv.Atoi(yearStr)
	if err != nil {
		return Week{}, fmt.Errorf("invalid year %q", yearStr)
	}
	w := Week{Number: n, Year: y}
	if _, err := StartOfWeek(n, y); err != nil {
		return Week{}, err
	}
	return w, nil
}

// DayName returns the short English name of a day index.
func DayName(day int) string {
	if day < 0 || day >= DaysPerWeek {
		return "?"
	}
	return dayNames[day]
}

// ParseDay accepts a day index ("0".."6") or a day name prefix ("sun", "Monday").
func ParseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if !ValidDay(n) {
			return 0, fmt.Errorf("day %d out of range 0-6", n)
		}
		return n, nil
	}
	lower := strings.ToLower(s)
	if len(lower) >= 3 {
		for i, name := range dayNames {
			if strings.HasPrefix(lower, strings.ToLower(name)) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid day %q", s)
}

// ValidDay reports whether day is a day index in [0,6].
func ValidDay(day int) bool {
	return day >= 0 && day < DaysPerWeek
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

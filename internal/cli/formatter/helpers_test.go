package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeTimeFrom(t *testing.T) {
	now := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"past", now.Add(-time.Minute), "now"},
		{"seconds", now.Add(20 * time.Second), "in <1m"},
		{"minutes", now.Add(45 * time.Minute), "in 45m"},
		{"hours", now.Add(3 * time.Hour), "in 3h"},
		{"later today", now.Add(13 * time.Hour), "today 22:00"},
		{"tomorrow", time.Date(2026, 10, 14, 6, 30, 0, 0, time.UTC), "tomorrow 06:30"},
		{"later this week", time.Date(2026, 10, 16, 6, 30, 0, 0, time.UTC), "Fri 06:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTimeFrom(tt.input, now))
		})
	}
}

func TestWeekTitle(t *testing.T) {
	assert.Equal(t, "2026-W42  Oct 11 - Oct 17, 2026", WeekTitle(weekcal.Week{Number: 42, Year: 2026}))
	assert.Equal(t, "Dec 27 - Jan 2, 2027", WeekRange(weekcal.Week{Number: 53, Year: 2026}))
}

func TestDomainBadge(t *testing.T) {
	assert.Equal(t, "Health", stripANSI(DomainBadge("health")))
	assert.Equal(t, "Relationships", stripANSI(DomainBadge("social")))
	assert.Equal(t, "--", stripANSI(DomainBadge("")))
	assert.Equal(t, "mystery", stripANSI(DomainBadge("mystery")))
}

func TestDayList(t *testing.T) {
	assert.Equal(t, "Sun, Wed, Sat", DayList([]int{0, 3, 6}))
	assert.Equal(t, "--", DayList(nil))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("1234567890")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "Name"}, [][]string{
		{StyleGreen.Render("long cell"), "x"},
		{"s", "y"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "A          Name", lines[0])
	assert.Equal(t, "long cell  x", lines[2])
	assert.Equal(t, "s          y", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

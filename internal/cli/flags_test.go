package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayListValue_Set(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"mon,wed,fri", []int{1, 3, 5}},
		{"5, 1,1", []int{1, 5}},
		{"weekdays", []int{1, 2, 3, 4, 5, 6}},
		{"Weekdays,sun", []int{0, 1, 2, 3, 4, 5, 6}},
		{"all", []int{0, 1, 2, 3, 4, 5, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var v dayListValue
			require.NoError(t, v.Set(tc.in))
			assert.Equal(t, tc.want, v.days)
			assert.True(t, v.set)
		})
	}
}

func TestDayListValue_SetRejectsUnknownToken(t *testing.T) {
	var v dayListValue
	assert.Error(t, v.Set("mon,someday"))
	assert.Error(t, v.Set("7"))
}

func TestActivityAdd_WeekdaysShortcut(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "activity", "add",
		"--title", "Stretch", "--days", "weekdays", "--week", "2026-W42")
	require.NoError(t, err)

	acts := app.Activities.ListByWeek(week42)
	require.Len(t, acts, 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, acts[0].SelectedDays)
	assert.False(t, acts[0].AllowSunday)
}

package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/weekly/internal/teatest"
	"github.com/alexanderramin/weekly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBoardDriver selects week 42 on Tuesday and opens the board.
func newBoardDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	_, err := app.Weeks.JumpTo(context.Background(), testutil.TestWeek.Date(2))
	require.NoError(t, err)

	d := teatest.New(t, newBoardModel(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func board(d *teatest.Driver) *boardModel {
	return d.Model.(*boardModel)
}

func TestBoard_LoadsSelectedWeek(t *testing.T) {
	app := testApp(t)
	seedActivity(t, app, "Morning run")
	seedActivity(t, app, "Other week", testutil.WithWeek(week42.Next()))

	d := newBoardDriver(t, app)
	m := board(d)
	assert.Equal(t, week42, m.sel.Week)
	assert.Equal(t, 2, m.day)
	require.Len(t, m.activities, 1)

	view := d.View()
	assert.Contains(t, view, "2026-W42")
	assert.Contains(t, view, "Morning run")
	assert.NotContains(t, view, "Other week")
	assert.Contains(t, view, "[Tue 13]")
}

func TestBoard_EmptyWeek(t *testing.T) {
	app := testApp(t)

	d := newBoardDriver(t, app)
	assert.Contains(t, d.View(), "No activities this week.")

	// Toggling with no rows is a no-op.
	d.PressSpace()
	assert.NoError(t, board(d).err)
}

func TestBoard_SpaceTogglesCursorCell(t *testing.T) {
	app := testApp(t)
	a := seedActivity(t, app, "Morning run")

	d := newBoardDriver(t, app)
	d.PressSpace()

	got, err := app.Activities.Get(a.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted(2))
	assert.Contains(t, d.View(), "Morning run on Tuesday: done")
	assert.Equal(t, 1, board(d).days[2].Completed)

	d.PressSpace()
	got, _ = app.Activities.Get(a.ID)
	assert.False(t, got.IsCompleted(2))
}

func TestBoard_CursorMovement(t *testing.T) {
	app := testApp(t)
	seedActivity(t, app, "First")
	second := seedActivity(t, app, "Second")

	d := newBoardDriver(t, app)
	d.PressDown()
	d.PressDown()
	assert.Equal(t, 1, board(d).row, "cursor stops at the last row")

	d.PressRight()
	d.PressRight()
	assert.Equal(t, 4, board(d).day)
	d.PressKey('x')

	got, _ := app.Activities.Get(second.ID)
	assert.True(t, got.IsCompleted(4))

	d.PressUp()
	d.PressUp()
	assert.Equal(t, 0, board(d).row)
	for range 10 {
		d.PressLeft()
	}
	assert.Equal(t, 0, board(d).day, "cursor stops at Sunday")
}

func TestBoard_WeekNavigationPersists(t *testing.T) {
	app := testApp(t)

	d := newBoardDriver(t, app)
	d.PressKey(']')
	assert.Equal(t, week42.Next(), board(d).sel.Week)
	assert.Contains(t, d.View(), "2026-W43")

	sel, err := app.Weeks.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, week42.Next(), sel.Week)

	d.PressKey('[')
	d.PressKey('[')
	assert.Equal(t, week42.Prev(), board(d).sel.Week)
}

func TestBoard_ReminderDayToggle(t *testing.T) {
	app := testApp(t)
	a := seedActivity(t, app, "Morning run", testutil.WithReminder("06:30"))

	d := newBoardDriver(t, app)
	d.PressKey('r')

	got, _ := app.Activities.Get(a.ID)
	assert.Equal(t, []int{2}, got.Reminder.Days)
}

func TestBoard_ReminderDayWithoutReminderShowsError(t *testing.T) {
	app := testApp(t)
	seedActivity(t, app, "Morning run")

	d := newBoardDriver(t, app)
	d.PressKey('r')

	assert.Error(t, board(d).err)
	assert.Contains(t, d.View(), "Error:")
}

func TestBoard_WriteFreeWriting(t *testing.T) {
	app := testApp(t)

	d := newBoardDriver(t, app)
	d.PressKey('w')
	require.True(t, board(d).writing)
	d.Type("calm day")
	d.PressEnter()

	assert.False(t, board(d).writing)
	text, err := app.Notes.GetFreeWriting(context.Background(), week42, 2)
	require.NoError(t, err)
	assert.Equal(t, "calm day", text)
	assert.Contains(t, d.View(), "calm day")
}

func TestBoard_WriteCancelKeepsText(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Notes.SetFreeWriting(context.Background(), week42, 2, "keep"))

	d := newBoardDriver(t, app)
	d.PressKey('w')
	d.Type(" more")
	d.PressEsc()

	text, err := app.Notes.GetFreeWriting(context.Background(), week42, 2)
	require.NoError(t, err)
	assert.Equal(t, "keep", text)
}

func TestBoard_QuitKeysAreIgnoredWhileWriting(t *testing.T) {
	app := testApp(t)

	d := newBoardDriver(t, app)
	d.PressKey('w')
	d.PressKey('q')
	assert.False(t, d.Quitting)

	d.PressEsc()
	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestBoard_HelpToggle(t *testing.T) {
	app := testApp(t)

	d := newBoardDriver(t, app)
	assert.NotContains(t, d.View(), "reminder day")
	d.PressKey('?')
	assert.Contains(t, d.View(), "reminder day")
}

package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/weekly/internal/cli/formatter"
	"github.com/alexanderramin/weekly/internal/domain"
	"github.com/alexanderramin/weekly/internal/progress"
	"github.com/alexanderramin/weekly/internal/weekcal"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// boardLoadedMsg carries a fresh snapshot of the selected week.
type boardLoadedMsg struct {
	sel        domain.WeekSelection
	activities []*domain.Activity
	days       [weekcal.DaysPerWeek]progress.Progress
	notes      domain.DayNotes
	err        error
}

// boardStatusMsg reports the outcome of an action in the status line.
type boardStatusMsg struct {
	text string
	err  error
}

// boardModel is the interactive week grid: rows are activities, columns
// are days of the selected week.
type boardModel struct {
	app  *App
	keys boardKeyMap
	help help.Model

	sel        domain.WeekSelection
	activities []*domain.Activity
	days       [weekcal.DaysPerWeek]progress.Progress
	notes      domain.DayNotes

	row int
	day int

	writing   bool
	input     textinput.Model
	writeKeys writeKeyMap

	loading bool
	status  string
	err     error
	width   int
}

func newBoardModel(app *App) *boardModel {
	ti := textinput.New()
	ti.Placeholder = "How did today go?"
	ti.CharLimit = 0

	return &boardModel{
		app:       app,
		keys:      newBoardKeyMap(),
		help:      help.New(),
		input:     ti,
		writeKeys: newWriteKeyMap(),
		loading:   true,
		day:       -1,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.load(func(ctx context.Context) (domain.WeekSelection, error) {
		return m.app.Weeks.Current(ctx)
	})
}

// load moves or reads the selection and snapshots its week.
func (m *boardModel) load(selectWeek func(ctx context.Context) (domain.WeekSelection, error)) tea.Cmd {
	app := m.app
	day := m.day
	return func() tea.Msg {
		ctx := context.Background()
		sel, err := selectWeek(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		if !weekcal.ValidDay(day) {
			day = weekcal.DayOf(sel.SelectedDate)
		}
		notes, err := app.Notes.GetDayNotes(ctx, sel.Week, day)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		return boardLoadedMsg{
			sel:        sel,
			activities: app.Activities.ListByWeek(sel.Week),
			days:       app.Eval.DayProgress(sel.Week),
			notes:      notes,
		}
	}
}

func (m *boardModel) reload() tea.Cmd {
	sel := m.sel
	return m.load(func(context.Context) (domain.WeekSelection, error) { return sel, nil })
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.sel = msg.sel
		m.activities = msg.activities
		m.days = msg.days
		m.notes = msg.notes
		if !weekcal.ValidDay(m.day) {
			m.day = weekcal.DayOf(msg.sel.SelectedDate)
		}
		m.row = min(m.row, max(len(m.activities)-1, 0))
		return m, nil

	case boardStatusMsg:
		if msg.err != nil {
			m.status = ""
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.text
		return m, m.reload()

	case tea.KeyMsg:
		if m.writing {
			return m.updateWriting(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m *boardModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.activities)-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.day > 0 {
			m.day--
			return m, m.reload()
		}
	case key.Matches(msg, m.keys.Right):
		if m.day < weekcal.DaysPerWeek-1 {
			m.day++
			return m, m.reload()
		}
	case key.Matches(msg, m.keys.Toggle):
		if a := m.current(); a != nil {
			return m, m.toggleCompletion(a, m.day)
		}
	case key.Matches(msg, m.keys.RemindDay):
		if a := m.current(); a != nil {
			return m, m.toggleReminderDay(a, m.day)
		}
	case key.Matches(msg, m.keys.PrevWeek):
		m.loading = true
		return m, m.load(m.app.Weeks.Previous)
	case key.Matches(msg, m.keys.NextWeek):
		m.loading = true
		return m, m.load(m.app.Weeks.Next)
	case key.Matches(msg, m.keys.Today):
		m.loading = true
		m.day = -1
		return m, m.load(m.app.Weeks.Today)
	case key.Matches(msg, m.keys.Write):
		m.writing = true
		m.input.SetValue(m.notes.FreeWriting)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.reload()
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *boardModel) updateWriting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.writeKeys.Cancel):
		m.writing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.writeKeys.Save):
		m.writing = false
		m.input.Blur()
		return m, m.saveFreeWriting(m.sel.Week, m.day, m.input.Value())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *boardModel) current() *domain.Activity {
	if m.row < 0 || m.row >= len(m.activities) {
		return nil
	}
	return m.activities[m.row]
}

func (m *boardModel) toggleCompletion(a *domain.Activity, day int) tea.Cmd {
	store := m.app.Activities
	id, title, done := a.ID, a.Title, a.IsCompleted(day)
	return func() tea.Msg {
		if _, err := store.ToggleCompletion(context.Background(), id, day); err != nil {
			return boardStatusMsg{err: err}
		}
		state := "done"
		if done {
			state = "not done"
		}
		return boardStatusMsg{text: fmt.Sprintf("%s on %s: %s", title, formatter.DayFullName(day), state)}
	}
}

func (m *boardModel) toggleReminderDay(a *domain.Activity, day int) tea.Cmd {
	store := m.app.Activities
	id, title := a.ID, a.Title
	return func() tea.Msg {
		if _, err := store.ToggleReminderDay(context.Background(), id, day); err != nil {
			return boardStatusMsg{err: err}
		}
		return boardStatusMsg{text: fmt.Sprintf("%s: reminder on %s toggled", title, formatter.DayFullName(day))}
	}
}

func (m *boardModel) saveFreeWriting(week weekcal.Week, day int, text string) tea.Cmd {
	notes := m.app.Notes
	return func() tea.Msg {
		if err := notes.SetFreeWriting(context.Background(), week, day, text); err != nil {
			return boardStatusMsg{err: err}
		}
		return boardStatusMsg{text: fmt.Sprintf("Saved free writing for %s", formatter.DayFullName(day))}
	}
}

func (m *boardModel) View() string {
	if m.loading && len(m.activities) == 0 && m.err == nil {
		return formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString(formatter.FormatSelection(m.sel) + "\n\n")

	if len(m.activities) == 0 {
		b.WriteString(formatter.Dim("No activities this week.") + "\n")
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteString("\n" + m.renderDay() + "\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status) + "\n")
	}

	if m.writing {
		b.WriteString("\n" + m.help.View(m.writeKeys))
	} else {
		b.WriteString("\n" + m.help.View(m.keys))
	}
	return b.String()
}

func (m *boardModel) renderGrid() string {
	headers := []string{"", "ACTIVITY"}
	dates := m.sel.Week.Dates()
	for d := range weekcal.DaysPerWeek {
		label := fmt.Sprintf("%s %d", formatter.DayAbbrev(d), dates[d].Day())
		if d == m.day {
			label = "[" + label + "]"
		}
		headers = append(headers, label)
	}
	headers = append(headers, "DONE")

	rows := make([][]string, 0, len(m.activities)+1)
	for i, a := range m.activities {
		cursor := " "
		title := a.Title
		if i == m.row {
			cursor = formatter.StyleHeader.Render("›")
			title = formatter.Bold(title)
		}
		row := []string{cursor, title}
		for d := range weekcal.DaysPerWeek {
			cell := formatter.DayCell(a, d)
			if i == m.row && d == m.day {
				cell = formatter.StyleHeader.Render("[") + cell + formatter.StyleHeader.Render("]")
			} else {
				cell = " " + cell + " "
			}
			if a.Reminder != nil && slices.Contains(a.Reminder.Days, d) {
				cell += formatter.StyleYellow.Render("⏰")
			}
			row = append(row, cell)
		}
		row = append(row, formatter.Fraction(a.CompletedCount(), len(a.SelectedDays)))
		rows = append(rows, row)
	}

	footer := []string{"", formatter.Dim("per day")}
	for _, p := range m.days {
		if p.Total == 0 {
			footer = append(footer, formatter.Dim(" --"))
			continue
		}
		footer = append(footer, formatter.TierColor(p.Tier()).Render(fmt.Sprintf(" %d%%", p.Percentage)))
	}
	rows = append(rows, append(footer, ""))

	return formatter.RenderTable(headers, rows)
}

func (m *boardModel) renderDay() string {
	var b strings.Builder
	date := m.sel.Week.Date(m.day)
	b.WriteString(formatter.Header(fmt.Sprintf("%s %s", formatter.DayFullName(m.day), date.Format("Jan 2"))) + "\n")
	b.WriteString(fmt.Sprintf("%s %d/%d\n", formatter.Dim("positive notes"),
		m.notes.FilledPositiveNotes(), domain.PositiveNoteSlots))

	if m.writing {
		b.WriteString(m.input.View() + "\n")
		return b.String()
	}
	if m.notes.FreeWriting == "" {
		b.WriteString(formatter.Dim("no free writing") + "\n")
	} else {
		b.WriteString(m.notes.FreeWriting + "\n")
	}
	return b.String()
}

package cli

import "github.com/charmbracelet/bubbles/key"

// boardKeyMap lists the board's bindings. It satisfies help.KeyMap.
type boardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	RemindDay  key.Binding
	PrevWeek   key.Binding
	NextWeek   key.Binding
	Today      key.Binding
	Write      key.Binding
	Refresh    key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle done")),
		RemindDay:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reminder day")),
		PrevWeek:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev week")),
		NextWeek:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next week")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Write:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write")),
		Refresh:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.PrevWeek, k.NextWeek, k.Write, k.ToggleHelp, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.RemindDay, k.Write},
		{k.PrevWeek, k.NextWeek, k.Today, k.Refresh},
		{k.ToggleHelp, k.Quit},
	}
}

// writeKeyMap is active while the free writing input has focus.
type writeKeyMap struct {
	Save   key.Binding
	Cancel key.Binding
}

func newWriteKeyMap() writeKeyMap {
	return writeKeyMap{
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k writeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel}
}

func (k writeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

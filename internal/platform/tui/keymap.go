package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappycat/internal/core"
)

// KeyMap holds the terminal key bindings. It implements help.KeyMap.
type KeyMap struct {
	Flap       key.Binding
	Confirm    key.Binding
	Escape     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up"),
			key.WithHelp("space/↑/click", "flap · start"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Confirm, k.Screenshot, k.Quit}
}

// FullHelp returns all bindings grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Event translates a key message into a raw game event.
// ok is false for keys the game does not listen to.
func (k KeyMap) Event(msg tea.KeyMsg) (ev core.InputEvent, ok bool) {
	switch {
	case key.Matches(msg, k.Flap):
		if msg.String() == "up" {
			return core.KeyEvent(core.KeyUp), true
		}
		return core.KeyEvent(core.KeySpace), true
	case key.Matches(msg, k.Confirm):
		return core.KeyEvent(core.KeyEnter), true
	case key.Matches(msg, k.Escape):
		return core.KeyEvent(core.KeyEscape), true
	}
	return core.InputEvent{}, false
}

// MouseEvent translates a mouse message into a pointer event.
func MouseEvent(msg tea.MouseMsg) (core.InputEvent, bool) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.InputEvent{Kind: core.EventPointer}, true
	}
	return core.InputEvent{}, false
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up, Down, Left, Right key.Binding
	ZoomIn, ZoomOut       key.Binding
	PitchUp, PitchDown    key.Binding
	RotateLeft            key.Binding
	RotateRight           key.Binding
	Reset                 key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan right")),
		ZoomIn:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		PitchUp:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "tilt")),
		PitchDown:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "untilt")),
		RotateLeft:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "rotate left")),
		RotateRight: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "rotate right")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.PitchUp, k.RotateLeft, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ZoomIn, k.ZoomOut, k.Reset},
		{k.PitchUp, k.PitchDown, k.RotateLeft, k.RotateRight},
		{k.Help, k.Quit},
	}
}

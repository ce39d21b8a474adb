package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyCode represents keyboard input codes
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
	KeyChar // For regular character input
)

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyCtrlC:     "ctrl+c",
}

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Code KeyCode
	Char rune
}

// String names the key the way key bindings spell it ("up", "enter", "j").
func (k KeyEvent) String() string {
	if k.Code == KeyChar {
		return string(k.Char)
	}
	if name, ok := keyNames[k.Code]; ok {
		return name
	}
	return "unknown"
}

// Nav is the navigation intent a key resolves to.
type Nav int

const (
	NavNone Nav = iota
	NavUp
	NavDown
	NavConfirm
	NavCancel
)

// KeyMap binds keys to menu navigation.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns arrow keys plus vim-style j/k.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(
		[]string{"up", "k"},
		[]string{"down", "j"},
		[]string{"enter"},
		[]string{"esc", "ctrl+c"},
	)
}

// NewKeyMap builds a KeyMap from key name lists such as those in the config file.
func NewKeyMap(up, down, sel, cancel []string) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(up...),
			key.WithHelp(helpKeys(up), "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(down...),
			key.WithHelp(helpKeys(down), "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(sel...),
			key.WithHelp(helpKeys(sel), "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(cancel...),
			key.WithHelp(helpKeys(cancel), "back"),
		),
	}
}

// Resolve maps a key event to its navigation intent.
func (k KeyMap) Resolve(ev KeyEvent) Nav {
	switch {
	case key.Matches(ev, k.Up):
		return NavUp
	case key.Matches(ev, k.Down):
		return NavDown
	case key.Matches(ev, k.Select):
		return NavConfirm
	case key.Matches(ev, k.Cancel):
		return NavCancel
	}
	return NavNone
}

// ShortHelp lists the bindings in display order.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

func helpKeys(keys []string) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "/"
		}
		switch k {
		case "up":
			out += "↑"
		case "down":
			out += "↓"
		default:
			out += k
		}
	}
	return out
}

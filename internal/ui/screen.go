package ui

import (
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/johnconnor-sec/seer-go/internal/errors"
)

// ScreenTerminal draws on a full-screen tcell surface.
type ScreenTerminal struct {
	screen        tcell.Screen
	row           int
	col           int
	cursorVisible bool
	styles        map[Style]tcell.Style
}

// DefaultScreenStyles returns the colour for each text role.
func DefaultScreenStyles() map[Style]tcell.Style {
	base := tcell.StyleDefault
	return map[Style]tcell.Style{
		StyleNormal:   base.Foreground(tcell.ColorSilver),
		StyleHovered:  base.Foreground(tcell.ColorGold).Bold(true),
		StyleHeader:   base.Foreground(tcell.ColorFuchsia).Bold(true),
		StylePrompt:   base.Foreground(tcell.ColorTeal),
		StyleError:    base.Foreground(tcell.ColorRed).Bold(true),
		StyleInfo:     base.Foreground(tcell.ColorGray),
		StyleMystical: base.Foreground(tcell.ColorMediumPurple).Italic(true),
	}
}

// NewScreenTerminal wraps an initialised screen.
func NewScreenTerminal(screen tcell.Screen) *ScreenTerminal {
	return &ScreenTerminal{
		screen:        screen,
		cursorVisible: true,
		styles:        DefaultScreenStyles(),
	}
}

// OpenScreen takes over the controlling terminal.
func OpenScreen() (*ScreenTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.TerminalUnavailableError("screen", err)
	}
	if err := screen.Init(); err != nil {
		return nil, errors.TerminalUnavailableError("screen", err)
	}
	return NewScreenTerminal(screen), nil
}

// Close gives the terminal back to the shell.
func (t *ScreenTerminal) Close() error {
	t.screen.Fini()
	return nil
}

func (t *ScreenTerminal) Clear() error {
	t.screen.Clear()
	t.row, t.col = 0, 0
	t.show()
	return nil
}

func (t *ScreenTerminal) Row() int {
	return t.row
}

func (t *ScreenTerminal) Height() int {
	_, height := t.screen.Size()
	return height
}

func (t *ScreenTerminal) MoveTo(row int) error {
	t.row, t.col = row, 0
	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
	t.show()
	return nil
}

func (t *ScreenTerminal) Write(text string, style Style) error {
	st := t.styles[style]
	for _, r := range text {
		t.screen.SetContent(t.col, t.row, r, nil, st)
		t.col += runewidth.RuneWidth(r)
	}
	t.show()
	return nil
}

func (t *ScreenTerminal) NewLine() error {
	t.row++
	t.col = 0
	t.show()
	return nil
}

func (t *ScreenTerminal) SetCursorVisible(visible bool) error {
	t.cursorVisible = visible
	t.show()
	return nil
}

// ReadKey waits for the next key press. Resizes are absorbed.
func (t *ScreenTerminal) ReadKey() (KeyEvent, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// screen finalised
			return KeyEvent{}, io.EOF
		case *tcell.EventKey:
			return translateScreenKey(ev), nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *ScreenTerminal) show() {
	if t.cursorVisible {
		t.screen.ShowCursor(t.col, t.row)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

func translateScreenKey(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter}
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape}
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp}
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown}
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft}
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight}
	case tcell.KeyTab:
		return KeyEvent{Code: KeyTab}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Code: KeyBackspace}
	case tcell.KeyDelete:
		return KeyEvent{Code: KeyDelete}
	case tcell.KeyHome:
		return KeyEvent{Code: KeyHome}
	case tcell.KeyEnd:
		return KeyEvent{Code: KeyEnd}
	case tcell.KeyPgUp:
		return KeyEvent{Code: KeyPageUp}
	case tcell.KeyPgDn:
		return KeyEvent{Code: KeyPageDown}
	case tcell.KeyCtrlC:
		return KeyEvent{Code: KeyCtrlC}
	case tcell.KeyRune:
		return KeyEvent{Code: KeyChar, Char: ev.Rune()}
	}
	return KeyEvent{Code: KeyUnknown}
}

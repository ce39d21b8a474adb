package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/johnconnor-sec/seer-go/internal/errors"
)

// defaultStreamHeight is assumed when the output is not a sized tty.
const defaultStreamHeight = 24

// StreamTerminal drives a plain byte stream with ANSI control sequences.
// It works over any reader/writer pair, including a raw-mode tty.
type StreamTerminal struct {
	in      *bufio.Reader
	out     io.Writer
	row     int
	height  int
	styles  map[Style]lipgloss.Style
	parser  *ansi.Parser
	restore func() error
}

// DefaultStreamStyles returns the lipgloss style for each text role.
func DefaultStreamStyles(r *lipgloss.Renderer) map[Style]lipgloss.Style {
	return map[Style]lipgloss.Style{
		StyleNormal:   r.NewStyle().Foreground(lipgloss.Color("250")),
		StyleHovered:  r.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		StyleHeader:   r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		StylePrompt:   r.NewStyle().Foreground(lipgloss.Color("37")),
		StyleError:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		StyleInfo:     r.NewStyle().Foreground(lipgloss.Color("241")),
		StyleMystical: r.NewStyle().Foreground(lipgloss.Color("141")).Italic(true),
	}
}

// NewStreamTerminal reads keys from in and writes to out.
func NewStreamTerminal(in io.Reader, out io.Writer) *StreamTerminal {
	return &StreamTerminal{
		in:      bufio.NewReader(in),
		out:     out,
		height:  defaultStreamHeight,
		styles:  DefaultStreamStyles(lipgloss.NewRenderer(out)),
		parser:  ansi.NewParser(),
		restore: func() error { return nil },
	}
}

// OpenStream puts the tty behind in into raw mode.
func OpenStream(in, out *os.File) (*StreamTerminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.TerminalUnavailableError("stream", fmt.Errorf("%s is not a terminal", in.Name()))
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.TerminalUnavailableError("stream", err)
	}

	t := NewStreamTerminal(in, out)
	if _, height, err := term.GetSize(int(out.Fd())); err == nil && height > 0 {
		t.height = height
	}
	t.restore = func() error { return term.Restore(fd, state) }
	return t, nil
}

// Close shows the cursor and leaves raw mode.
func (t *StreamTerminal) Close() error {
	if _, err := io.WriteString(t.out, ansi.ShowCursor+"\r\n"); err != nil {
		return err
	}
	return t.restore()
}

func (t *StreamTerminal) Clear() error {
	t.row = 0
	_, err := io.WriteString(t.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	return err
}

func (t *StreamTerminal) Row() int {
	return t.row
}

func (t *StreamTerminal) Height() int {
	return t.height
}

func (t *StreamTerminal) MoveTo(row int) error {
	t.row = row
	_, err := io.WriteString(t.out, ansi.CursorPosition(1, row+1)+ansi.EraseEntireLine)
	return err
}

func (t *StreamTerminal) Write(text string, style Style) error {
	_, err := io.WriteString(t.out, t.styles[style].Render(text))
	return err
}

func (t *StreamTerminal) NewLine() error {
	t.row++
	_, err := io.WriteString(t.out, "\r\n")
	return err
}

func (t *StreamTerminal) SetCursorVisible(visible bool) error {
	seq := ansi.HideCursor
	if visible {
		seq = ansi.ShowCursor
	}
	_, err := io.WriteString(t.out, seq)
	return err
}

// ReadKey decodes one key press, including CSI/SS3 arrow sequences.
// A lone ESC is only recognised when no further bytes are already buffered.
func (t *StreamTerminal) ReadKey() (KeyEvent, error) {
	b, err := t.in.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch b {
	case 27: // ESC
		if t.in.Buffered() == 0 {
			return KeyEvent{Code: KeyEscape}, nil
		}
		return t.readEscapeSequence()
	case 13, 10:
		return KeyEvent{Code: KeyEnter}, nil
	case 127, 8:
		return KeyEvent{Code: KeyBackspace}, nil
	case 9:
		return KeyEvent{Code: KeyTab}, nil
	case 3:
		return KeyEvent{Code: KeyCtrlC}, nil
	case 16: // Ctrl+P
		return KeyEvent{Code: KeyUp}, nil
	case 14: // Ctrl+N
		return KeyEvent{Code: KeyDown}, nil
	}

	if b < 32 {
		return KeyEvent{Code: KeyUnknown}, nil
	}
	if b < 0x80 {
		return KeyEvent{Code: KeyChar, Char: rune(b)}, nil
	}

	if err := t.in.UnreadByte(); err != nil {
		return KeyEvent{}, err
	}
	r, _, err := t.in.ReadRune()
	if err != nil {
		return KeyEvent{}, err
	}
	return KeyEvent{Code: KeyChar, Char: r}, nil
}

// readEscapeSequence frames whatever follows ESC with the ANSI decoder, so
// modified keys such as ESC[1;5A are consumed whole and never leak bytes into
// the next read.
func (t *StreamTerminal) readEscapeSequence() (KeyEvent, error) {
	rest, err := t.in.Peek(t.in.Buffered())
	if err != nil {
		return KeyEvent{}, err
	}
	data := append([]byte{ansi.ESC}, rest...)
	seq, _, n, state := ansi.DecodeSequence(data, ansi.NormalState, t.parser)
	if _, err := t.in.Discard(n - 1); err != nil {
		return KeyEvent{}, err
	}

	switch {
	case len(seq) == 2 && seq[1] == 'O':
		// SS3 carries its key in the byte after the introducer.
		b, err := t.in.ReadByte()
		if err != nil {
			return KeyEvent{}, err
		}
		return finalKey(b), nil
	case len(seq) >= 2 && seq[1] == '[':
		if state != ansi.NormalState {
			return KeyEvent{Code: KeyUnknown}, nil
		}
		return csiKey(t.parser), nil
	}

	// Alt+key: report the escape, drop the modifier byte.
	return KeyEvent{Code: KeyEscape}, nil
}

// csiKey maps a dispatched CSI sequence. Modifier parameters are ignored.
func csiKey(p *ansi.Parser) KeyEvent {
	cmd := ansi.Cmd(p.Command())
	if cmd.Final() != '~' {
		return finalKey(cmd.Final())
	}

	n, _ := p.Param(0, 0)
	switch n {
	case 1, 7:
		return KeyEvent{Code: KeyHome}
	case 3:
		return KeyEvent{Code: KeyDelete}
	case 4, 8:
		return KeyEvent{Code: KeyEnd}
	case 5:
		return KeyEvent{Code: KeyPageUp}
	case 6:
		return KeyEvent{Code: KeyPageDown}
	}
	return KeyEvent{Code: KeyUnknown}
}

func finalKey(b byte) KeyEvent {
	switch b {
	case 'A':
		return KeyEvent{Code: KeyUp}
	case 'B':
		return KeyEvent{Code: KeyDown}
	case 'C':
		return KeyEvent{Code: KeyRight}
	case 'D':
		return KeyEvent{Code: KeyLeft}
	case 'H':
		return KeyEvent{Code: KeyHome}
	case 'F':
		return KeyEvent{Code: KeyEnd}
	}
	return KeyEvent{Code: KeyUnknown}
}

package ui

import (
	"io"
	"strings"
	"time"
)

type op struct {
	kind  string // clear, move, write, newline, cursor
	row   int
	text  string
	style Style
}

// fakeTerminal records every call and replays scripted keys.
// ReadKey returns io.EOF once the script runs out, or readErr if set.
// A non-empty panicMsg makes ReadKey panic instead.
type fakeTerminal struct {
	ops      []op
	row      int
	keys     []KeyEvent
	readErr  error
	cursorOn bool
	lines    map[int]string
	keyReads int
	height   int
	maxRow   int
	panicMsg string
}

func newFakeTerminal(keys ...KeyEvent) *fakeTerminal {
	return &fakeTerminal{keys: keys, cursorOn: true, lines: map[int]string{}}
}

func (f *fakeTerminal) Clear() error {
	f.ops = append(f.ops, op{kind: "clear"})
	f.row = 0
	f.lines = map[int]string{}
	return nil
}

func (f *fakeTerminal) Row() int    { return f.row }
func (f *fakeTerminal) Height() int { return f.height }

func (f *fakeTerminal) MoveTo(row int) error {
	f.ops = append(f.ops, op{kind: "move", row: row})
	f.row = row
	f.maxRow = max(f.maxRow, row)
	f.lines[row] = ""
	return nil
}

func (f *fakeTerminal) Write(text string, style Style) error {
	f.ops = append(f.ops, op{kind: "write", row: f.row, text: text, style: style})
	f.lines[f.row] += text
	return nil
}

func (f *fakeTerminal) NewLine() error {
	f.ops = append(f.ops, op{kind: "newline", row: f.row})
	f.row++
	f.maxRow = max(f.maxRow, f.row)
	return nil
}

func (f *fakeTerminal) SetCursorVisible(visible bool) error {
	f.ops = append(f.ops, op{kind: "cursor"})
	f.cursorOn = visible
	return nil
}

func (f *fakeTerminal) ReadKey() (KeyEvent, error) {
	f.keyReads++
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if len(f.keys) == 0 {
		if f.readErr != nil {
			return KeyEvent{}, f.readErr
		}
		return KeyEvent{}, io.EOF
	}
	ev := f.keys[0]
	f.keys = f.keys[1:]
	return ev, nil
}

// movesWithin counts MoveTo calls landing on rows [top, top+n).
func (f *fakeTerminal) movesWithin(top, n int) int {
	count := 0
	for _, o := range f.ops {
		if o.kind == "move" && o.row >= top && o.row < top+n {
			count++
		}
	}
	return count
}

func (f *fakeTerminal) output() string {
	var b strings.Builder
	for _, o := range f.ops {
		if o.kind == "write" {
			b.WriteString(o.text)
		}
		if o.kind == "newline" {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func keys(codes ...KeyCode) []KeyEvent {
	evs := make([]KeyEvent, len(codes))
	for i, c := range codes {
		evs[i] = KeyEvent{Code: c}
	}
	return evs
}

func newTestEngine(term Terminal) *Engine {
	return NewEngine(term, WithSleep(func(time.Duration) {}))
}

package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/johnconnor-sec/seer-go/internal/output"
)

const (
	// DefaultPrefix marks the hovered row.
	DefaultPrefix = "-> "

	msgNoOptions   = "No menu options available."
	msgPressAnyKey = "Press any key to continue..."
)

// OptionSource supplies the rows of one menu together with its styling hooks.
type OptionSource interface {
	MenuOptions() []string
	// TypingSpeed is the per-rune typewriter delay; zero prints instantly.
	TypingSpeed() time.Duration
	// Prefix marks the hovered row. Other rows get blanks of the same width.
	Prefix() string
}

// Options is a fixed list of labels.
type Options struct {
	Items  []string
	Marker string
	Speed  time.Duration
}

func (o Options) MenuOptions() []string      { return o.Items }
func (o Options) TypingSpeed() time.Duration { return o.Speed }

func (o Options) Prefix() string {
	if o.Marker == "" {
		return DefaultPrefix
	}
	return o.Marker
}

// Result is the outcome of a menu: a 1-based choice or a cancellation.
// The zero value is Cancelled.
type Result struct {
	index  int
	chosen bool
}

// Cancelled means no selection was made.
var Cancelled = Result{}

// Chosen returns the result for the 1-based option index.
func Chosen(index int) Result {
	return Result{index: index, chosen: true}
}

// Index returns the 1-based choice and whether a choice was made.
func (r Result) Index() (int, bool) {
	return r.index, r.chosen
}

func (r Result) IsCancelled() bool {
	return !r.chosen
}

func (r Result) String() string {
	if !r.chosen {
		return "Cancelled"
	}
	return fmt.Sprintf("Chosen(%d)", r.index)
}

// Layout is fixed for the lifetime of one menu so repaint targets stay put.
type Layout struct {
	Top   int // row of option 0
	Width int // longest label plus prefix, in cells
	Rows  int // options visible at once
}

// NewLayout measures options as they will be drawn below row top.
func NewLayout(top int, options []string, prefix string) Layout {
	longest := 0
	for _, opt := range options {
		longest = max(longest, runewidth.StringWidth(opt))
	}
	return Layout{Top: top, Width: longest + runewidth.StringWidth(prefix), Rows: len(options)}
}

// Fit shrinks the window so the last option and the row below it stay on a
// display of height rows. A height of zero or less is unbounded.
func (l Layout) Fit(height int) Layout {
	if height <= 0 {
		return l
	}
	l.Rows = max(1, min(l.Rows, height-l.Top-1))
	return l
}

// Scroll returns the first visible option of a window of rows options that
// keeps hover in view.
func Scroll(first, hover, rows int) int {
	switch {
	case hover < first:
		return hover
	case hover >= first+rows:
		return hover - rows + 1
	}
	return first
}

// Step returns the hover index after nav in a menu of n rows, wrapping at both ends.
func Step(hover int, nav Nav, n int) int {
	if n <= 0 {
		return 0
	}
	switch nav {
	case NavDown:
		return (hover + 1) % n
	case NavUp:
		return (hover - 1 + n) % n
	}
	return hover
}

// Engine draws menus on a Terminal and runs their navigation loop.
type Engine struct {
	term   Terminal
	keys   KeyMap
	sleep  func(time.Duration)
	logger *output.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) EngineOption {
	return func(e *Engine) { e.keys = keys }
}

// WithSleep replaces time.Sleep for the typewriter effect.
func WithSleep(sleep func(time.Duration)) EngineOption {
	return func(e *Engine) { e.sleep = sleep }
}

// WithLogger sets the logger used for menu diagnostics.
func WithLogger(logger *output.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine drawing on term.
func NewEngine(term Terminal, opts ...EngineOption) *Engine {
	e := &Engine{
		term:   term,
		keys:   DefaultKeyMap(),
		sleep:  time.Sleep,
		logger: output.GetGlobalLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Component("engine")
	return e
}

// Terminal returns the surface the engine draws on.
func (e *Engine) Terminal() Terminal {
	return e.term
}

// Keys returns the active key bindings.
func (e *Engine) Keys() KeyMap {
	return e.keys
}

// Run shows title, the optional prompt and the options of src, then blocks
// until an option is confirmed or the menu is cancelled.
func (e *Engine) Run(title, prompt string, src OptionSource) (Result, error) {
	if err := e.Header(title); err != nil {
		return Cancelled, err
	}

	if prompt != "" {
		if err := e.Say(prompt, StyleMystical, src.TypingSpeed()); err != nil {
			return Cancelled, err
		}
		if err := e.term.NewLine(); err != nil {
			return Cancelled, err
		}
	}

	options := src.MenuOptions()
	if len(options) == 0 {
		e.logger.Warn("menu has no options", map[string]any{"menu": title})
		return Cancelled, e.ShowError(msgNoOptions)
	}

	layout := NewLayout(e.term.Row(), options, src.Prefix()).Fit(e.term.Height())
	if layout.Rows < len(options) {
		e.logger.Debug("menu scrolls", map[string]any{"menu": title, "options": len(options), "rows": layout.Rows})
	}
	result, err := e.navigate(options, layout, src)
	e.logger.Debug("menu closed", map[string]any{"menu": title, "result": result.String()})
	return result, err
}

func (e *Engine) navigate(options []string, layout Layout, src OptionSource) (result Result, err error) {
	if err := e.term.SetCursorVisible(false); err != nil {
		return Cancelled, err
	}
	defer func() {
		if showErr := e.term.SetCursorVisible(true); err == nil {
			err = showErr
		}
	}()

	hover, first := 0, 0
	for row := range layout.Rows {
		if err := e.renderRow(options, row, hover, layout, src); err != nil {
			return Cancelled, err
		}
		if err := e.term.NewLine(); err != nil {
			return Cancelled, err
		}
	}

	for {
		ev, err := e.term.ReadKey()
		if err != nil {
			return Cancelled, err
		}

		nav := e.keys.Resolve(ev)
		switch nav {
		case NavConfirm:
			return Chosen(hover + 1), e.term.MoveTo(layout.Top + layout.Rows)
		case NavCancel:
			return Cancelled, e.term.MoveTo(layout.Top + layout.Rows)
		}

		next := Step(hover, nav, len(options))
		if next == hover {
			continue
		}

		previous := hover
		hover = next
		repaint := []int{previous, hover}
		if shifted := Scroll(first, hover, layout.Rows); shifted != first {
			first = shifted
			repaint = repaint[:0]
			for row := first; row < first+layout.Rows; row++ {
				repaint = append(repaint, row)
			}
		}
		for _, row := range repaint {
			if err := e.term.MoveTo(layout.Top + row - first); err != nil {
				return Cancelled, err
			}
			if err := e.renderRow(options, row, hover, layout, src); err != nil {
				return Cancelled, err
			}
		}
	}
}

func (e *Engine) renderRow(options []string, row, hover int, layout Layout, src OptionSource) error {
	prefix := src.Prefix()
	style := StyleHovered
	if row != hover {
		prefix = strings.Repeat(" ", runewidth.StringWidth(prefix))
		style = StyleNormal
	}

	line := runewidth.FillRight(prefix+options[row], layout.Width)
	return e.typeWrite(line, style, src.TypingSpeed())
}

func (e *Engine) typeWrite(text string, style Style, delay time.Duration) error {
	if delay <= 0 {
		return e.term.Write(text, style)
	}
	for _, r := range text {
		if err := e.term.Write(string(r), style); err != nil {
			return err
		}
		e.sleep(delay)
	}
	return nil
}

// Header clears the display and prints title between two rules.
func (e *Engine) Header(title string) error {
	if err := e.term.Clear(); err != nil {
		return err
	}

	border := strings.Repeat("═", runewidth.StringWidth(title)+4)
	for _, line := range []string{border, "  " + title, border} {
		if err := e.term.Write(line, StyleHeader); err != nil {
			return err
		}
		if err := e.term.NewLine(); err != nil {
			return err
		}
	}
	return e.term.NewLine()
}

// Say prints one line of text with the typewriter delay.
func (e *Engine) Say(text string, style Style, delay time.Duration) error {
	if err := e.typeWrite(text, style, delay); err != nil {
		return err
	}
	return e.term.NewLine()
}

// ShowError reports a recoverable problem and waits for a key.
func (e *Engine) ShowError(message string) error {
	if err := e.term.Write("✗ "+message, StyleError); err != nil {
		return err
	}
	if err := e.term.NewLine(); err != nil {
		return err
	}
	return e.PressAnyKey()
}

// PressAnyKey pauses until a key arrives. An exhausted input counts as the key.
func (e *Engine) PressAnyKey() error {
	if err := e.term.NewLine(); err != nil {
		return err
	}
	if err := e.term.Write(msgPressAnyKey, StyleInfo); err != nil {
		return err
	}
	if err := e.term.NewLine(); err != nil {
		return err
	}

	if _, err := e.term.ReadKey(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

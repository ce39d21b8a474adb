// Package output renders human-facing CLI text and structured logs.
package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style represents text emphasis
type Style int

const (
	StyleNormal Style = iota
	StyleBold
	StyleDim
	StyleItalic
	StyleUnderline
)

// OutputLevel represents the verbosity level
type OutputLevel int

const (
	LevelQuiet OutputLevel = iota
	LevelNormal
	LevelVerbose
	LevelDebug
)

// Theme defines the color scheme for different elements
type Theme struct {
	Primary   lipgloss.TerminalColor
	Secondary lipgloss.TerminalColor
	Success   lipgloss.TerminalColor
	Warning   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
	Info      lipgloss.TerminalColor
	Muted     lipgloss.TerminalColor
	Highlight lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
}

// MysticTheme is the default: candle gold on deep violet accents.
var MysticTheme = Theme{
	Primary:   lipgloss.Color("141"),
	Secondary: lipgloss.Color("183"),
	Success:   lipgloss.Color("114"),
	Warning:   lipgloss.Color("220"),
	Error:     lipgloss.Color("203"),
	Info:      lipgloss.Color("111"),
	Muted:     lipgloss.Color("244"),
	Highlight: lipgloss.Color("222"),
	Border:    lipgloss.Color("97"),
}

// PlainTheme sticks to the 16 basic colors.
var PlainTheme = Theme{
	Primary:   lipgloss.Color("4"),
	Secondary: lipgloss.Color("6"),
	Success:   lipgloss.Color("2"),
	Warning:   lipgloss.Color("3"),
	Error:     lipgloss.Color("1"),
	Info:      lipgloss.Color("4"),
	Muted:     lipgloss.Color("7"),
	Highlight: lipgloss.Color("11"),
	Border:    lipgloss.Color("5"),
}

// Formatter handles styled output formatting
type Formatter struct {
	writer      io.Writer
	renderer    *lipgloss.Renderer
	theme       Theme
	level       OutputLevel
	colorOutput bool
	width       int
}

// NewFormatter creates a formatter writing to w. Color follows the
// environment (NO_COLOR, SEER_ACCESSIBILITY, FORCE_COLOR, tty detection).
func NewFormatter(w io.Writer) *Formatter {
	f := &Formatter{
		writer:   w,
		renderer: lipgloss.NewRenderer(w),
		theme:    MysticTheme,
		level:    LevelNormal,
		width:    terminalWidth(w),
	}
	f.SetColorOutput(isColorSupported(w))
	if mode := accessibilityFromEnv(); mode != AccessibilityNormal {
		f.SetAccessibilityMode(mode)
	}
	return f
}

// SetTheme changes the color theme
func (f *Formatter) SetTheme(theme Theme) {
	f.theme = theme
}

// SetLevel changes the output verbosity level
func (f *Formatter) SetLevel(level OutputLevel) {
	f.level = level
}

// SetColorOutput enables or disables color output
func (f *Formatter) SetColorOutput(enabled bool) {
	f.colorOutput = enabled
	if enabled {
		f.renderer.SetColorProfile(termenv.ANSI256)
	} else {
		f.renderer.SetColorProfile(termenv.Ascii)
	}
}

// Width reports the terminal width detected at construction.
func (f *Formatter) Width() int {
	return f.width
}

func (f *Formatter) colorize(text string, color lipgloss.TerminalColor, style Style) string {
	if !f.colorOutput {
		return text
	}

	s := f.renderer.NewStyle().Foreground(color)
	switch style {
	case StyleBold:
		s = s.Bold(true)
	case StyleDim:
		s = s.Faint(true)
	case StyleItalic:
		s = s.Italic(true)
	case StyleUnderline:
		s = s.Underline(true)
	}
	return s.Render(text)
}

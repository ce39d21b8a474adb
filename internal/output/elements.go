package output

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Success prints a success message
func (f *Formatter) Success(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	fmt.Fprintln(f.writer, f.colorize("✓ "+fmt.Sprintf(format, args...), f.theme.Success, StyleBold))
}

// Error prints an error message. Errors ignore the quiet level.
func (f *Formatter) Error(format string, args ...any) {
	fmt.Fprintln(f.writer, f.colorize("✗ "+fmt.Sprintf(format, args...), f.theme.Error, StyleBold))
}

// Warning prints a warning message
func (f *Formatter) Warning(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	fmt.Fprintln(f.writer, f.colorize("⚠ "+fmt.Sprintf(format, args...), f.theme.Warning, StyleBold))
}

// Info prints an info message
func (f *Formatter) Info(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	fmt.Fprintln(f.writer, f.colorize("ℹ "+fmt.Sprintf(format, args...), f.theme.Info, StyleNormal))
}

// Debug prints a debug message
func (f *Formatter) Debug(format string, args ...any) {
	if f.level < LevelDebug {
		return
	}
	fmt.Fprintln(f.writer, f.colorize("· "+fmt.Sprintf(format, args...), f.theme.Muted, StyleDim))
}

// Header prints a title framed by double rules
func (f *Formatter) Header(text string) {
	if f.level == LevelQuiet {
		return
	}

	border := strings.Repeat("═", min(runewidth.StringWidth(text)+4, f.width))
	fmt.Fprintln(f.writer, f.colorize(border, f.theme.Border, StyleBold))
	fmt.Fprintln(f.writer, f.colorize("  "+text, f.theme.Primary, StyleBold))
	fmt.Fprintln(f.writer, f.colorize(border, f.theme.Border, StyleBold))
}

// Subheader prints a section header
func (f *Formatter) Subheader(text string) {
	if f.level == LevelQuiet {
		return
	}

	fmt.Fprintln(f.writer, f.colorize(text, f.theme.Secondary, StyleBold))
	underline := strings.Repeat("─", min(runewidth.StringWidth(text), f.width))
	fmt.Fprintln(f.writer, f.colorize(underline, f.theme.Border, StyleNormal))
}

// List prints a bulleted list item
func (f *Formatter) List(format string, args ...any) {
	if f.level == LevelQuiet {
		return
	}
	fmt.Fprintln(f.writer, f.colorize("• "+fmt.Sprintf(format, args...), f.theme.Primary, StyleNormal))
}

// KeyValue prints an aligned "key: value" line
func (f *Formatter) KeyValue(key string, value any) {
	if f.level == LevelQuiet {
		return
	}
	label := runewidth.FillRight(key+":", 16)
	fmt.Fprintf(f.writer, "%s %v\n", f.colorize(label, f.theme.Muted, StyleBold), value)
}

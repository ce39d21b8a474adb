package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// AccessibilityMode represents different accessibility configurations
type AccessibilityMode int

const (
	AccessibilityNormal AccessibilityMode = iota
	AccessibilityHighContrast
	AccessibilityScreenReader
	AccessibilityMinimal
)

// HighContrastTheme for better visibility
var HighContrastTheme = Theme{
	Primary:   lipgloss.Color("15"),
	Secondary: lipgloss.Color("14"),
	Success:   lipgloss.Color("10"),
	Warning:   lipgloss.Color("11"),
	Error:     lipgloss.Color("9"),
	Info:      lipgloss.Color("12"),
	Muted:     lipgloss.Color("7"),
	Highlight: lipgloss.Color("11"),
	Border:    lipgloss.Color("15"),
}

// ParseAccessibilityMode reads the SEER_ACCESSIBILITY spelling of a mode.
func ParseAccessibilityMode(s string) AccessibilityMode {
	switch s {
	case "high-contrast":
		return AccessibilityHighContrast
	case "screen-reader":
		return AccessibilityScreenReader
	case "minimal":
		return AccessibilityMinimal
	}
	return AccessibilityNormal
}

func accessibilityFromEnv() AccessibilityMode {
	return ParseAccessibilityMode(os.Getenv("SEER_ACCESSIBILITY"))
}

// SetAccessibilityMode configures the formatter for accessibility needs
func (f *Formatter) SetAccessibilityMode(mode AccessibilityMode) {
	switch mode {
	case AccessibilityHighContrast:
		f.theme = HighContrastTheme
		f.SetColorOutput(true)
	case AccessibilityScreenReader, AccessibilityMinimal:
		f.theme = PlainTheme
		f.SetColorOutput(false)
	}
}

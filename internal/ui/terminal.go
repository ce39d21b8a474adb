// Package ui provides the terminal surface and the interactive selection menu engine.
package ui

// Style is the visual role of a piece of text. Backends map roles to colours.
type Style int

const (
	StyleNormal Style = iota
	StyleHovered
	StyleHeader
	StylePrompt
	StyleError
	StyleInfo
	StyleMystical
)

// Terminal is the surface the engine draws on and reads keys from.
// Rows are zero-based and count from the top of the cleared display.
type Terminal interface {
	// Clear erases the display and homes the cursor to row 0.
	Clear() error
	// Row reports the row the next write lands on.
	Row() int
	// Height reports how many rows are visible. Zero means unknown.
	Height() int
	// MoveTo places the cursor at the start of row and erases that row.
	MoveTo(row int) error
	// Write prints text at the cursor and advances the column.
	Write(text string, style Style) error
	// NewLine moves to the start of the next row.
	NewLine() error
	// SetCursorVisible shows or hides the text cursor.
	SetCursorVisible(visible bool) error
	// ReadKey blocks until a key is pressed.
	ReadKey() (KeyEvent, error)
}

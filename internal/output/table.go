package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table represents a columnized table
type Table struct {
	formatter *Formatter
	headers   []string
	rows      [][]string
}

// Table starts a new table for columnized output
func (f *Formatter) Table() *Table {
	return &Table{formatter: f}
}

// Headers sets the table headers
func (t *Table) Headers(headers ...string) *Table {
	t.headers = headers
	return t
}

// Row adds a row to the table
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len reports the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table with rounded borders.
func (t *Table) String() string {
	f := t.formatter
	header := f.renderer.NewStyle().Padding(0, 1)
	cell := f.renderer.NewStyle().Padding(0, 1)
	border := f.renderer.NewStyle()
	if f.colorOutput {
		header = header.Foreground(f.theme.Primary).Bold(true)
		border = border.Foreground(f.theme.Border)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return tbl.String()
}

// Print renders the table
func (t *Table) Print() {
	if t.formatter.level == LevelQuiet {
		return
	}
	fmt.Fprintln(t.formatter.writer, t.String())
}

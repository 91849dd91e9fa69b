// Package table renders list results from the clinic API as terminal
// tables backed by lipgloss. Consumers supply data via the TableData
// interface rather than building lipgloss tables directly.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that data sources implement to be rendered
// as a terminal table.
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Values are converted to
	// strings via FormatCell. Return nil to skip a row.
	Row(i int) []any
}

// Bold wraps a cell value so that FormatCell renders it highlighted.
type Bold struct{ Value any }

// Timestamp is an RFC 3339 timestamp as sent by the API, rendered in
// local time to the minute.
type Timestamp string

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render renders the table data as a string. When width is greater than
// zero and the natural render is wider, columns are wrapped to fit.
func Render(data TableData, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v)
		}
		t.Row(cells...)
	}

	result := t.Render()
	if width > 0 && widest(result) > width {
		t.Width(width)
		result = t.Render()
	}
	return result
}

// Write renders the table to w, sized to the terminal when w is one
func Write(w io.Writer, data TableData) error {
	_, err := fmt.Fprintln(w, Render(data, Width(w)))
	return err
}

// Width returns the terminal width for w, or zero if w is not a terminal
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return 0
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// Truncate shortens s to max runes, collapsing newlines and appending "…"
// if truncated.
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// FormatCell converts a value to a display string for a table cell.
// Empty strings, nil pointers and zero numbers render as "-".
func FormatCell(v any) string {
	if v == nil {
		return "-"
	}
	switch val := v.(type) {
	case Bold:
		return boldStyle.Render(FormatCell(val.Value))
	case string:
		if val == "" {
			return "-"
		}
		return val
	case *string:
		if val == nil {
			return "-"
		}
		return FormatCell(*val)
	case Timestamp:
		if val == "" {
			return "-"
		}
		if t, err := time.Parse(time.RFC3339Nano, string(val)); err == nil {
			return t.Local().Format("2006-01-02 15:04")
		}
		return string(val)
	case time.Time:
		if val.IsZero() {
			return "-"
		}
		return val.Format("2006-01-02 15:04")
	case int:
		if val == 0 {
			return "-"
		}
		return fmt.Sprint(val)
	case uint:
		if val == 0 {
			return "-"
		}
		return fmt.Sprint(val)
	default:
		s := fmt.Sprint(val)
		if s == "" {
			return "-"
		}
		return s
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// widest returns the widest line in the rendered output, in runes
func widest(rendered string) int {
	result := 0
	for _, line := range strings.Split(rendered, "\n") {
		if n := len([]rune(line)); n > result {
			result = n
		}
	}
	return result
}

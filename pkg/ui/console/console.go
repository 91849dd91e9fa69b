// Package console writes interview transcripts, panels and tables to a
// terminal. Markdown is rendered with glamour when the output is a
// terminal, and word-wrapped plain text otherwise.
package console

import (
	"fmt"
	"io"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	lipgloss "github.com/charmbracelet/lipgloss"
	wordwrap "github.com/muesli/reflow/wordwrap"
	termenv "github.com/muesli/termenv"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	table "github.com/mutablelogic/go-clinic/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Console writes formatted output to a writer
type Console struct {
	w        io.Writer
	width    int
	renderer *glamour.TermRenderer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultWidth = 80
	labelWidth   = 14
)

var (
	doctorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // cyan
	patientStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	systemStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // yellow
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // red
	ruleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a console writing to w, sized to the terminal when w is one
func New(w io.Writer) *Console {
	c := &Console{w: w, width: table.Width(w)}
	styles := "notty"
	if c.width > 0 {
		styles = "dark"
		if !termenv.HasDarkBackground() {
			styles = "light"
		}
	} else {
		c.width = defaultWidth
	}
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(styles),
		glamour.WithWordWrap(c.width-2),
	); err == nil {
		c.renderer = r
	}
	return c
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Width returns the width of the output in columns
func (c *Console) Width() int {
	return c.width
}

// Printf writes formatted text
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// Println writes a line
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.w, args...)
}

// Field writes a label and value on one line, with the values aligned
func (c *Console) Field(label string, value any) {
	fmt.Fprintf(c.w, "%-*s%v\n", labelWidth, label+":", value)
}

// Item writes an indented list item
func (c *Console) Item(value any) {
	fmt.Fprintf(c.w, "  - %v\n", value)
}

// Rule writes a horizontal line with a title
func (c *Console) Rule(title string) {
	title = " " + strings.TrimSpace(title) + " "
	side := max((c.width-lipgloss.Width(title))/2, 2)
	line := strings.Repeat("─", side) + ruleStyle.Render(title) + strings.Repeat("─", side)
	fmt.Fprintln(c.w, line)
	fmt.Fprintln(c.w)
}

// Panel writes body in a box with a title line
func (c *Console) Panel(title, body string) {
	content := ruleStyle.Render(title) + "\n" + strings.TrimSpace(body)
	fmt.Fprintln(c.w, panelStyle.Width(min(c.width-2, lipgloss.Width(content)+4)).Render(content))
	fmt.Fprintln(c.w)
}

// Turn writes one turn of an interview with a label for the speaker
func (c *Console) Turn(turn schema.Turn) {
	fmt.Fprintln(c.w, Label(turn.Speaker))
	fmt.Fprintln(c.w, indentText(wordwrap.String(turn.Content, c.width-2)))
	fmt.Fprintln(c.w)
}

// Message writes a message from a conversation, labelled by who sent it
func (c *Console) Message(message schema.Message) {
	var label string
	switch message.Role {
	case schema.RoleUser:
		label = Label(schema.SpeakerDoctor)
	case schema.RoleAssistant:
		label = Label(schema.SpeakerPatient)
	default:
		label = systemStyle.Render("[" + string(message.Role) + "]")
	}
	fmt.Fprintln(c.w, label, dimStyle.Render(table.FormatCell(table.Timestamp(message.CreatedAt))))
	fmt.Fprintln(c.w, indentText(wordwrap.String(message.Content, c.width-2)))
	fmt.Fprintln(c.w)
}

// Markdown writes text rendered as markdown
func (c *Console) Markdown(text string) {
	if c.renderer != nil {
		if out, err := c.renderer.Render(text); err == nil {
			fmt.Fprintln(c.w, strings.Trim(out, "\n"))
			fmt.Fprintln(c.w)
			return
		}
	}
	fmt.Fprintln(c.w, indentText(wordwrap.String(text, c.width-2)))
	fmt.Fprintln(c.w)
}

// Table writes tabular data
func (c *Console) Table(data table.TableData) {
	fmt.Fprintln(c.w, table.Render(data, c.width))
}

// Error writes a one-line error message
func (c *Console) Error(message string) {
	fmt.Fprintln(c.w, errorStyle.Render("Error:"), message)
}

// Warn writes a highlighted one-line message
func (c *Console) Warn(message string) {
	fmt.Fprintln(c.w, systemStyle.Render(message))
}

// Label returns the styled label for a speaker, such as "[Doctor]"
func Label(speaker schema.Speaker) string {
	switch speaker {
	case schema.SpeakerDoctor:
		return doctorStyle.Render("[Doctor]")
	case schema.SpeakerPatient:
		return patientStyle.Render("[Patient]")
	default:
		return systemStyle.Render("[" + string(speaker) + "]")
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// indentText indents every non-empty line by two spaces
func indentText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

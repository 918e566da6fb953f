package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleDebug   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Faint(true)
)

// Output handles styled terminal output.
type Output struct {
	out     io.Writer
	err     io.Writer
	noColor bool
}

// NewOutput creates an Output writing to stdout and stderr.
func NewOutput() *Output {
	return NewOutputTo(os.Stdout, os.Stderr)
}

// NewOutputTo creates an Output writing to the given streams.
func NewOutputTo(out, err io.Writer) *Output {
	return &Output{out: out, err: err}
}

// SetNoColor disables colored output.
func (o *Output) SetNoColor(v bool) {
	o.noColor = v
}

func (o *Output) mark(style lipgloss.Style, plain, symbol string) string {
	if o.noColor {
		return plain
	}
	return style.Render(symbol)
}

// Success prints a success message with a green checkmark.
func (o *Output) Success(format string, args ...any) {
	fmt.Fprintf(o.out, "%s %s\n", o.mark(styleSuccess, "OK", "✓"), fmt.Sprintf(format, args...))
}

// Error prints an error message with a red X.
func (o *Output) Error(format string, args ...any) {
	fmt.Fprintf(o.err, "%s %s\n", o.mark(styleError, "FAIL", "✗"), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a yellow exclamation.
func (o *Output) Warning(format string, args ...any) {
	fmt.Fprintf(o.err, "%s %s\n", o.mark(styleWarning, "WARN", "!"), fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (o *Output) Info(format string, args ...any) {
	fmt.Fprintf(o.out, format+"\n", args...)
}

// Hint prints a dimmed follow-up line under an error.
func (o *Output) Hint(format string, args ...any) {
	msg := "hint: " + fmt.Sprintf(format, args...)
	if !o.noColor {
		msg = styleDim.Render(msg)
	}
	fmt.Fprintln(o.err, msg)
}

// Debug prints a debug message to stderr.
func (o *Output) Debug(format string, args ...any) {
	fmt.Fprintf(o.err, "%s %s\n", o.mark(styleDebug, "DEBUG", "[debug]"), fmt.Sprintf(format, args...))
}

// Table prints a simple aligned table.
func (o *Output) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	header := strings.TrimRight(strings.Join(cells, "  "), " ")
	if !o.noColor {
		header = styleHeader.Render(header)
	}
	fmt.Fprintln(o.out, header)

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	fmt.Fprintln(o.out, strings.Join(seps, "  "))

	for _, row := range rows {
		cells = cells[:0]
		for i, cell := range row {
			if i < len(widths) {
				cells = append(cells, fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		fmt.Fprintln(o.out, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

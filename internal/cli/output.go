package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
	styleBold  = "\033[1m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ConfigureColor applies a color mode from configuration:
// "always", "never", or "auto" (color only if w is a terminal).
func ConfigureColor(mode string, w io.Writer) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		colorEnabled = IsTerminal(w)
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	default:
		return &UsageError{Usage: fmt.Sprintf("unknown color mode %q (expected auto, always or never)", mode)}
	}
	return nil
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// DefaultWidth is used when the output width cannot be determined.
const DefaultWidth = 80

// Width returns the column count of the terminal behind w, or DefaultWidth.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}

func wrap(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return wrap(colorGreen, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return wrap(colorGray, s) }

// Bold returns s wrapped in bold ANSI codes if colors are enabled.
func Bold(s string) string { return wrap(styleBold, s) }

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{maxWidths: make(map[int]int)}
}

// SetMaxWidth caps the visible width of a column.
// Longer cells are truncated with "...".
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		t.colWidths[i] = max(t.colWidths[i], width)
	}
	t.rows = append(t.rows, cols)
}

// Len returns the number of rows added so far.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is never padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		var line strings.Builder
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(col)
			if i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", t.colWidths[i]-visibleWidth(col)))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

// Truncate shortens s to at most maxWidth visible characters, ending in "..."
// when there is room for it. ANSI escape codes do not count towards the width
// and a reset is appended if s contained any.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit := maxWidth
	suffix := ""
	if maxWidth >= len(ellipsis) {
		limit = maxWidth - len(ellipsis)
		suffix = ellipsis
	}

	var out strings.Builder
	visible := 0
	inEscape, hasAnsi := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasAnsi = true, true
			out.WriteRune(r)
		case inEscape:
			out.WriteRune(r)
			inEscape = r != 'm'
		case visible < limit:
			out.WriteRune(r)
			visible++
		}
	}
	out.WriteString(suffix)
	if hasAnsi {
		out.WriteString(colorReset)
	}
	return out.String()
}

// visibleWidth returns the number of runes in s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			inEscape = r != 'm'
		default:
			width++
		}
	}
	return width
}

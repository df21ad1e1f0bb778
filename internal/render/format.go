// Package render turns scanned matches into copyable text.
package render

import (
	"fmt"
	"strings"

	"github.com/faizmokh/hari/internal/calendar"
)

// Format names a rendering rule applied to every match.
type Format string

const (
	// Full renders "1 ноября 2025 - Суббота".
	Full Format = "full"
	// Short renders "01.11.2025".
	Short Format = "short"
	// ISO renders "2025-11-01".
	ISO Format = "iso"
	// Day renders only the weekday label.
	Day Format = "day"
	// Markdown renders "- 01.11.2025 (Суббота)".
	Markdown Format = "markdown"
)

// Option describes a selectable format.
type Option struct {
	Format Format
	Label  string
}

var options = []Option{
	{Format: Full, Label: "Full (1 ноября 2025 - Суббота)"},
	{Format: Short, Label: "Short (01.11.2025)"},
	{Format: ISO, Label: "ISO (2025-11-01)"},
	{Format: Day, Label: "Weekdays only"},
	{Format: Markdown, Label: "Markdown list"},
}

// Formats returns the selectable formats in menu order.
func Formats() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Known reports whether f is one of the listed formats.
func (f Format) Known() bool {
	for _, opt := range options {
		if opt.Format == f {
			return true
		}
	}
	return false
}

// Label returns the human-readable description of f.
func (f Format) Label() string {
	for _, opt := range options {
		if opt.Format == f {
			return opt.Label
		}
	}
	return "Default (" + string(f) + ")"
}

// ParseFormat normalizes user input into a Format. Unknown values are kept
// as-is so they render with the default rule; ok reports whether the value
// matched a listed format.
func ParseFormat(value string) (f Format, ok bool) {
	f = Format(strings.ToLower(strings.TrimSpace(value)))
	return f, f.Known()
}

// Render formats each match and joins the lines with "\n", preserving order.
// Empty input yields an empty string.
func Render(matches []calendar.Match, f Format) string {
	if len(matches) == 0 {
		return ""
	}

	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, Line(m, f))
	}
	return strings.Join(lines, "\n")
}

// Line renders a single match. Unknown formats fall back to "DD.MM.YYYY - W".
func Line(m calendar.Match, f Format) string {
	switch f {
	case Full:
		return LongDate(m) + " - " + m.Label
	case Short:
		return m.Date.Format(shortLayout)
	case ISO:
		return m.Date.Format(calendar.DateLayout)
	case Day:
		return m.Label
	case Markdown:
		return fmt.Sprintf("- %s (%s)", m.Date.Format(shortLayout), m.Label)
	default:
		return m.Date.Format(shortLayout) + " - " + m.Label
	}
}

const shortLayout = "02.01.2006"

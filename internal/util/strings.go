// Package util provides terminal text helpers for the report writer.
package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WrapList joins items with sep, breaking onto a new line whenever the next
// item would push the line past width visual columns. The separator's
// trailing spaces are dropped at a break, and room for what remains of it is
// kept at the end of every line but the last. Every line starts with
// indent. A width of zero or less disables wrapping. An item wider than the
// line is kept whole on its own line.
func WrapList(items []string, sep string, indent string, width int) string {
	if len(items) == 0 {
		return ""
	}
	if width <= 0 {
		return indent + strings.Join(items, sep)
	}

	var b strings.Builder
	b.WriteString(indent)
	breakSep := strings.TrimRight(sep, " ")
	lineWidth := ansi.StringWidth(indent)
	for i, item := range items {
		w := ansi.StringWidth(item)
		if i < len(items)-1 {
			w += ansi.StringWidth(breakSep)
		}
		switch {
		case i == 0:
		case lineWidth+ansi.StringWidth(sep)+w > width:
			b.WriteString(breakSep)
			b.WriteString("\n")
			b.WriteString(indent)
			lineWidth = ansi.StringWidth(indent)
		default:
			b.WriteString(sep)
			lineWidth += ansi.StringWidth(sep)
		}
		b.WriteString(item)
		lineWidth += ansi.StringWidth(item)
	}
	return b.String()
}

// Package textutil provides unicode-aware width helpers for terminal layout.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies. ANSI escape
// sequences are ignored.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens plain text to at most maxWidth columns, ending in an
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Center pads plain text with spaces on both sides to exactly width
// columns. The extra column of an odd split goes to the right.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// PadRight pads plain text to width columns, truncating if wider.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// Repeat returns glyph repeated to fill width columns.
func Repeat(glyph string, width int) string {
	w := runewidth.StringWidth(glyph)
	if w == 0 || width <= 0 {
		return ""
	}
	return strings.Repeat(glyph, width/w)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// spliceRight draws box over base, right-aligned with a one column margin,
// starting at line top. Base content left of the box stays visible.
func spliceRight(base, box string, width, top int) string {
	lines := strings.Split(base, "\n")
	left := max(width-lipgloss.Width(box)-1, 0)
	for i, bl := range strings.Split(box, "\n") {
		j := top + i
		for j >= len(lines) {
			lines = append(lines, "")
		}
		head := ansi.Truncate(lines[j], left, "")
		lines[j] = head + strings.Repeat(" ", max(left-ansi.StringWidth(head), 0)) + bl
	}
	return strings.Join(lines, "\n")
}

// replaceBottom swaps the last lines of base for box, keeping the height.
func replaceBottom(base, box string) string {
	if box == "" {
		return base
	}
	lines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	keep := max(len(lines)-len(boxLines), 0)
	return strings.Join(append(lines[:keep], boxLines...), "\n")
}

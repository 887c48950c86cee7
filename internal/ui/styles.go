package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme colors. Hex values so they can be blended for fades.
const (
	ColorBackground lipgloss.Color = "#1C1C1E" // scroll container backdrop
	ColorBar        lipgloss.Color = "#2C2C2E" // toolbar, tab bar, hard edge
	ColorDivider    lipgloss.Color = "#48484A"
	ColorText       lipgloss.Color = "#F2F2F7"
	ColorMuted      lipgloss.Color = "#8E8E93"
	ColorAccent     lipgloss.Color = "#0A84FF"
	ColorLabel      lipgloss.Color = "#FFFFFF" // card index text
	ColorBanner     lipgloss.Color = "#3A3A3C"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Toolbar     lipgloss.Style // navigation bar row
	TitleLarge  lipgloss.Style // large title block
	TitleInline lipgloss.Style // inline title inside the toolbar
	ToolButton  lipgloss.Style // "Options" affordance

	TabBar      lipgloss.Style
	Tab         lipgloss.Style
	TabSelected lipgloss.Style
	TabSection  lipgloss.Style

	Banner lipgloss.Style // fallback notice capsule

	BarButton lipgloss.Style // floating bar pill buttons

	Menu         lipgloss.Style // options menu box
	MenuTitle    lipgloss.Style
	MenuRow      lipgloss.Style
	MenuSelected lipgloss.Style
	MenuValue    lipgloss.Style
	MenuDisabled lipgloss.Style

	HelpBox lipgloss.Style
	HelpKey lipgloss.Style
	Muted   lipgloss.Style
}{
	Toolbar: lipgloss.NewStyle().
		Background(ColorBar).
		Foreground(ColorText),
	TitleLarge: lipgloss.NewStyle().
		Bold(true).
		Background(ColorBar).
		Foreground(ColorText).
		PaddingLeft(2),
	TitleInline: lipgloss.NewStyle().
		Bold(true).
		Background(ColorBar).
		Foreground(ColorText),
	ToolButton: lipgloss.NewStyle().
		Background(ColorBar).
		Foreground(ColorAccent),

	TabBar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(ColorDivider),
	Tab: lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1),
	TabSelected: lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Padding(0, 1),
	TabSection: lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true),

	Banner: lipgloss.NewStyle().
		Background(ColorBanner).
		Foreground(ColorText).
		Padding(0, 2),

	BarButton: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1),

	Menu: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1),
	MenuTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent),
	MenuRow: lipgloss.NewStyle().
		Foreground(ColorText),
	MenuSelected: lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true),
	MenuValue: lipgloss.NewStyle().
		Foreground(ColorMuted),
	MenuDisabled: lipgloss.NewStyle().
		Foreground(ColorDivider),

	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1),
	HelpKey: lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(ColorMuted),
}

// blend mixes from towards to by t in [0,1]. Unparseable colors return to.
func blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, err := colorful.Hex(string(from))
	if err != nil {
		return to
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return to
	}
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return lipgloss.Color(a.BlendRgb(b, t).Clamped().Hex())
}

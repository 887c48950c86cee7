package ui

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	barFrames        = 8
	barFrameInterval = 30 * time.Millisecond
	barHeight        = 3 // bordered pill
	barPadding       = 1 // blank row under the pill
)

// BarPhase is where the floating bar is in its show/hide cycle.
type BarPhase int

const (
	BarHidden BarPhase = iota
	BarEntering
	BarShown
	BarExiting
)

func (p BarPhase) String() string {
	switch p {
	case BarEntering:
		return "entering"
	case BarShown:
		return "shown"
	case BarExiting:
		return "exiting"
	default:
		return "hidden"
	}
}

var lastBarID atomic.Int64

// barFrameMsg advances one bar animation. Frames from another bar or an
// earlier toggle are ignored.
type barFrameMsg struct {
	id  int64
	tag int
}

// FloatingBar is the pill with the "New" and "Filter" buttons. The buttons
// have no behavior. Showing and hiding slide the pill in from the bottom
// while fading it.
type FloatingBar struct {
	id      int64
	tag     int
	visible bool // target state
	frame   int  // 0 = fully hidden, barFrames = fully shown
}

// NewFloatingBar creates a bar already settled in the given state.
func NewFloatingBar(visible bool) *FloatingBar {
	b := &FloatingBar{id: lastBarID.Add(1), visible: visible}
	if visible {
		b.frame = barFrames
	}
	return b
}

// Phase reports the animation phase.
func (b *FloatingBar) Phase() BarPhase {
	switch {
	case b.visible && b.frame >= barFrames:
		return BarShown
	case b.visible:
		return BarEntering
	case b.frame > 0:
		return BarExiting
	default:
		return BarHidden
	}
}

// Progress is 0 when hidden and 1 when fully shown.
func (b *FloatingBar) Progress() float64 {
	return float64(b.frame) / barFrames
}

// Active reports whether the bar occupies the safe-area inset.
func (b *FloatingBar) Active() bool {
	return b.visible || b.frame > 0
}

// Inset is the number of rows the bar reserves below the list.
func (b *FloatingBar) Inset() int {
	return barHeight + barPadding
}

// SetVisible starts an enter or exit animation. It returns the first tick,
// or nil when the bar is already settled in that state.
func (b *FloatingBar) SetVisible(v bool) tea.Cmd {
	if b.visible == v {
		return nil
	}
	b.visible = v
	b.tag++
	return b.tick()
}

// Update advances the animation on its own frame messages.
func (b *FloatingBar) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(barFrameMsg)
	if !ok || m.id != b.id || m.tag != b.tag {
		return nil
	}
	if b.visible {
		b.frame = min(b.frame+1, barFrames)
	} else {
		b.frame = max(b.frame-1, 0)
	}
	return b.tick()
}

func (b *FloatingBar) settled() bool {
	return (b.visible && b.frame == barFrames) || (!b.visible && b.frame == 0)
}

func (b *FloatingBar) tick() tea.Cmd {
	if b.settled() {
		return nil
	}
	id, tag := b.id, b.tag
	return tea.Tick(barFrameInterval, func(time.Time) tea.Msg {
		return barFrameMsg{id: id, tag: tag}
	})
}

// Lines renders the inset rows: the pill centered, pushed down by the slide
// offset and faded by progress, then the padding row.
func (b *FloatingBar) Lines(width int) []string {
	p := b.Progress()
	fg := blend(ColorBackground, ColorText, p)
	bg := blend(ColorBackground, ColorBar, p)
	border := blend(ColorBackground, ColorDivider, p)

	btn := Styles.BarButton.Foreground(fg).Background(bg)
	pill := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(lipgloss.JoinHorizontal(lipgloss.Center,
			btn.Render("+ New"), "  ", btn.Render("≡ Filter")))
	pillLines := strings.Split(lipgloss.PlaceHorizontal(width, lipgloss.Center, pill), "\n")

	blank := strings.Repeat(" ", max(width, 0))
	shift := int(math.Round((1 - p) * barHeight))
	out := make([]string, 0, b.Inset())
	for range shift {
		out = append(out, blank)
	}
	for i := 0; i < barHeight-shift && i < len(pillLines); i++ {
		out = append(out, pillLines[i])
	}
	for len(out) < b.Inset() {
		out = append(out, blank)
	}
	return out
}

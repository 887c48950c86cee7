package ui

import (
	"strings"

	"edgedemo/internal/edge"
	"edgedemo/internal/state"
	"edgedemo/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// FallbackNotice is shown when the terminal cannot draw edge effects.
const FallbackNotice = "Use a 256-color or true-color terminal to see scroll edge effects."

// Frame is everything a Renderer needs to draw the scroll container.
type Frame struct {
	Width          int
	Lines          []string // visible content lines, untreated
	Rows           []row    // content rows behind Lines, same length
	TopOverflow    bool     // content hidden above the first visible line
	BottomOverflow bool     // content hidden below the last visible line
	Options        state.Options
	Bar            *FloatingBar // nil when the list has none
}

// EdgePlan is the resolved treatment for each edge of a frame.
type EdgePlan struct {
	Top    edge.Treatment
	Bottom edge.Treatment
}

// Renderer draws a Frame. Implementations are chosen once per render from the
// terminal capability.
type Renderer interface {
	Render(f Frame) string
	// Inset is the number of rows reserved below the list for f.
	Inset(f Frame) int
}

// RendererFor selects the rendering strategy for c.
func RendererFor(c edge.Capability) Renderer {
	if c != nil && c.SupportsEdgeEffects() {
		return EdgeEffectRenderer{}
	}
	return FallbackRenderer{}
}

// EdgeEffectRenderer applies the configured top and bottom treatments
// independently and hosts the floating bar in the bottom safe-area inset.
type EdgeEffectRenderer struct{}

// Plan resolves each edge's treatment for f.
func (EdgeEffectRenderer) Plan(f Frame) EdgePlan {
	return EdgePlan{
		Top:    edge.Resolve(f.Options.TopStyle, f.TopOverflow),
		Bottom: edge.Resolve(f.Options.BottomStyle, f.BottomOverflow),
	}
}

// Inset implements Renderer.
func (EdgeEffectRenderer) Inset(f Frame) int {
	if f.Bar == nil || !f.Bar.Active() {
		return 0
	}
	return f.Bar.Inset()
}

// Render implements Renderer.
func (r EdgeEffectRenderer) Render(f Frame) string {
	plan := r.Plan(f)
	n := len(f.Lines)
	out := make([]string, 0, n+r.Inset(f))
	for i, line := range f.Lines {
		fromTop, fromBottom := i, n-1-i
		switch {
		case plan.Top.Kind == edge.TreatmentBar && fromTop < plan.Top.Rows:
			out = append(out, renderEdgeBar(f.Width, true))
		case plan.Bottom.Kind == edge.TreatmentBar && fromBottom < plan.Bottom.Rows:
			out = append(out, renderEdgeBar(f.Width, false))
		default:
			cover := max(plan.Top.Coverage(fromTop), plan.Bottom.Coverage(fromBottom))
			if cover > 0 && i < len(f.Rows) {
				line = renderRow(f.Rows[i], f.Width, cover)
			}
			out = append(out, line)
		}
	}
	if inset := r.Inset(f); inset > 0 {
		out = append(out, f.Bar.Lines(f.Width)...)
	}
	return strings.Join(out, "\n")
}

// FallbackRenderer draws the list untreated and always overlays the notice
// near the bottom.
type FallbackRenderer struct{}

// Inset implements Renderer.
func (FallbackRenderer) Inset(Frame) int { return 0 }

// Render implements Renderer.
func (FallbackRenderer) Render(f Frame) string {
	out := append([]string(nil), f.Lines...)
	if len(out) == 0 {
		return renderBanner(f.Width)
	}
	at := len(out) - 2
	if at < 0 {
		at = len(out) - 1
	}
	out[at] = renderBanner(f.Width)
	return strings.Join(out, "\n")
}

func renderBanner(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Banner.Render(textutil.Truncate(FallbackNotice, width-4)))
}

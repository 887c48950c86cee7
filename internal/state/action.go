package state

import "edgedemo/internal/edge"

// Action is a change request applied by Reduce.
type Action interface {
	Name() string
}

type ToggleLargeTitle struct{}

type ToggleFloatingBar struct{}

type SetTopStyle struct{ Style edge.Style }

type SetBottomStyle struct{ Style edge.Style }

// CycleTopStyle moves the top style forward (Delta>0) or back (Delta<0).
type CycleTopStyle struct{ Delta int }

type CycleBottomStyle struct{ Delta int }

// StepCards moves the card count by Delta steps of CardStep.
type StepCards struct{ Delta int }

func (ToggleLargeTitle) Name() string  { return "toggle_large_title" }
func (ToggleFloatingBar) Name() string { return "toggle_floating_bar" }
func (SetTopStyle) Name() string       { return "set_top_style" }
func (SetBottomStyle) Name() string    { return "set_bottom_style" }
func (CycleTopStyle) Name() string     { return "cycle_top_style" }
func (CycleBottomStyle) Name() string  { return "cycle_bottom_style" }
func (StepCards) Name() string         { return "step_cards" }

// Reduce returns the options after applying a. Unknown actions and requests
// that would break an invariant leave o unchanged.
func Reduce(o Options, a Action) Options {
	switch a := a.(type) {
	case ToggleLargeTitle:
		o.LargeTitle = !o.LargeTitle
	case ToggleFloatingBar:
		o.FloatingBar = !o.FloatingBar
	case SetTopStyle:
		if a.Style.Valid() {
			o.TopStyle = a.Style
		}
	case SetBottomStyle:
		if a.Style.Valid() {
			o.BottomStyle = a.Style
		}
	case CycleTopStyle:
		o.TopStyle = cycle(o.TopStyle, a.Delta)
	case CycleBottomStyle:
		o.BottomStyle = cycle(o.BottomStyle, a.Delta)
	case StepCards:
		next := o.CardCount + a.Delta*CardStep
		if next >= MinCards && next <= MaxCards {
			o.CardCount = next
		}
	}
	return o
}

func cycle(s edge.Style, delta int) edge.Style {
	switch {
	case delta > 0:
		return s.Next()
	case delta < 0:
		return s.Prev()
	}
	return s
}

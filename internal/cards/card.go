// Package cards generates the card descriptors shown by the scrolling list.
package cards

import (
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
)

// Palette colors a card may be filled with.
const (
	Yellow lipgloss.Color = "#FFCC00"
	Mint   lipgloss.Color = "#00C7BE"
	Orange lipgloss.Color = "#FF9500"
	Pink   lipgloss.Color = "#FF2D55"
	Purple lipgloss.Color = "#AF52DE"
	Teal   lipgloss.Color = "#30B0C7"
)

// Fallback is used when a Picker yields nothing. Unreachable with the
// built-in palette.
const Fallback lipgloss.Color = "#8E8E93"

// FillOpacity is how opaque a card fill is over the background.
const FillOpacity = 0.75

// Palette returns the six fill colors in display order.
func Palette() []lipgloss.Color {
	return []lipgloss.Color{Yellow, Mint, Orange, Pink, Purple, Teal}
}

// InPalette reports whether c is one of the palette colors.
func InPalette(c lipgloss.Color) bool {
	for _, p := range Palette() {
		if p == c {
			return true
		}
	}
	return false
}

// Card is one rendered list entry.
type Card struct {
	Index int // 1-based label
	Color lipgloss.Color
}

// Picker chooses a fill color. ok is false when no color could be chosen.
type Picker interface {
	Pick() (c lipgloss.Color, ok bool)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func() (lipgloss.Color, bool)

// Pick implements Picker.
func (f PickerFunc) Pick() (lipgloss.Color, bool) { return f() }

// RandomPicker draws uniformly from a color set.
type RandomPicker struct {
	Colors []lipgloss.Color
	Rand   *rand.Rand // nil uses the global source
}

// NewRandomPicker returns a picker over the palette.
func NewRandomPicker() *RandomPicker {
	return &RandomPicker{Colors: Palette()}
}

// Pick implements Picker.
func (r *RandomPicker) Pick() (lipgloss.Color, bool) {
	if len(r.Colors) == 0 {
		return "", false
	}
	var i int
	if r.Rand != nil {
		i = r.Rand.IntN(len(r.Colors))
	} else {
		i = rand.IntN(len(r.Colors))
	}
	return r.Colors[i], true
}

// Generate returns n cards labeled 1..n, each colored by pick.
func Generate(n int, pick Picker) []Card {
	if n <= 0 {
		return nil
	}
	if pick == nil {
		pick = NewRandomPicker()
	}
	out := make([]Card, n)
	for i := range out {
		c, ok := pick.Pick()
		if !ok {
			c = Fallback
		}
		out[i] = Card{Index: i + 1, Color: c}
	}
	return out
}

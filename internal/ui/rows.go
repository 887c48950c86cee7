package ui

import (
	"strconv"
	"strings"

	"edgedemo/internal/cards"
	"edgedemo/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Card geometry in terminal cells.
const (
	cardHeight = 5 // rows per card: top edge, body, label, body, bottom edge
	cardGap    = 1 // blank rows above each card
	cardMargin = 2 // columns on each side of a card
	minCardW   = 6
)

type rowKind int

const (
	rowGap rowKind = iota
	rowCardTop
	rowCardBody
	rowCardLabel
	rowCardBottom
)

// row is one line of the scroll content.
type row struct {
	kind rowKind
	card cards.Card
}

// layoutRows expands cards into content rows, ending with a spacer row.
func layoutRows(cs []cards.Card) []row {
	out := make([]row, 0, len(cs)*(cardGap+cardHeight)+1)
	for _, c := range cs {
		for range cardGap {
			out = append(out, row{kind: rowGap})
		}
		out = append(out,
			row{kind: rowCardTop, card: c},
			row{kind: rowCardBody, card: c},
			row{kind: rowCardLabel, card: c},
			row{kind: rowCardBody, card: c},
			row{kind: rowCardBottom, card: c},
		)
	}
	return append(out, row{kind: rowGap})
}

// cardFill is the card color at FillOpacity over the backdrop, faded further
// by cover.
func cardFill(c lipgloss.Color, cover float64) lipgloss.Color {
	fill := blend(ColorBackground, c, cards.FillOpacity)
	return blend(fill, ColorBackground, cover)
}

// cardGeometry splits width into side margins and card width. Margins shrink
// before the card does, and margin+inner+margin is always width.
func cardGeometry(width int) (margin, inner int) {
	width = max(width, 0)
	margin = min(cardMargin, max((width-minCardW)/2, 0))
	return margin, width - 2*margin
}

// renderRow draws r exactly width columns wide. cover in [0,1] fades it into
// the backdrop.
func renderRow(r row, width int, cover float64) string {
	if r.kind == rowGap {
		return strings.Repeat(" ", max(width, 0))
	}
	m, inner := cardGeometry(width)
	margin := strings.Repeat(" ", m)
	fill := cardFill(r.card.Color, cover)

	var body string
	switch r.kind {
	case rowCardTop:
		body = cardEdge("▄", inner, fill)
	case rowCardBottom:
		body = cardEdge("▀", inner, fill)
	case rowCardLabel:
		body = lipgloss.NewStyle().
			Background(fill).
			Foreground(blend(ColorLabel, ColorBackground, cover)).
			Bold(true).
			Render(textutil.Center(strconv.Itoa(r.card.Index), inner))
	default:
		body = lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", inner))
	}
	return margin + body + margin
}

// cardEdge draws the half-block top or bottom of a card, inset one column on
// each side when there is room for the rounded look.
func cardEdge(glyph string, inner int, fill lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(fill)
	if inner < 3 {
		return style.Render(textutil.Repeat(glyph, inner))
	}
	return " " + style.Render(textutil.Repeat(glyph, inner-2)) + " "
}

// renderEdgeBar draws the opaque backing row of a hard edge. The divider sits
// on the side facing the content.
func renderEdgeBar(width int, top bool) string {
	glyph := "▔"
	if top {
		glyph = "▁"
	}
	return lipgloss.NewStyle().
		Background(ColorBar).
		Foreground(ColorDivider).
		Render(textutil.Repeat(glyph, width))
}

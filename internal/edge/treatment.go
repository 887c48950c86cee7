package edge

// TreatmentKind is the terminal rendering applied near an edge.
type TreatmentKind int

const (
	TreatmentNone TreatmentKind = iota
	TreatmentFade               // graded blend into the background
	TreatmentBar                // opaque backing row with a divider
)

func (k TreatmentKind) String() string {
	switch k {
	case TreatmentFade:
		return "fade"
	case TreatmentBar:
		return "bar"
	default:
		return "none"
	}
}

// SoftDepth is the number of rows a soft fade spans.
const SoftDepth = 3

// Treatment is a resolved edge effect: what to draw and over how many rows.
type Treatment struct {
	Kind TreatmentKind
	Rows int
}

// Coverage returns how strongly the row at distance d from the edge is
// obscured, from 0 (untouched) to 1 (fully replaced by the backing).
func (t Treatment) Coverage(d int) float64 {
	if d < 0 || d >= t.Rows {
		return 0
	}
	switch t.Kind {
	case TreatmentFade:
		return 1 - float64(d+1)/float64(t.Rows+1)
	case TreatmentBar:
		return 1
	}
	return 0
}

var (
	noTreatment   = Treatment{Kind: TreatmentNone}
	softTreatment = Treatment{Kind: TreatmentFade, Rows: SoftDepth}
	hardTreatment = Treatment{Kind: TreatmentBar, Rows: 1}
)

// treatments maps each style to its terminal treatment. overflow reports
// whether content is hidden beyond the edge at the current scroll offset.
var treatments = map[Style]func(overflow bool) Treatment{
	Automatic: func(overflow bool) Treatment {
		if overflow {
			return softTreatment
		}
		return noTreatment
	},
	Soft: func(bool) Treatment { return softTreatment },
	Hard: func(bool) Treatment { return hardTreatment },
}

// Resolve maps a style to the treatment drawn at the current scroll position.
func Resolve(s Style, overflow bool) Treatment {
	if fn, ok := treatments[s]; ok {
		return fn(overflow)
	}
	return noTreatment
}

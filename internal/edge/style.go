// Package edge defines scroll-edge styles, the terminal treatment each style
// maps to, and the capability gate that decides whether treatments are drawn.
package edge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned by ParseStyle for names outside the enumeration.
var ErrUnknownStyle = errors.New("unknown edge style")

// Style selects how a scroll container edge is treated.
type Style int

const (
	Automatic Style = iota
	Soft
	Hard
)

// Styles returns every style in declaration order.
func Styles() []Style {
	return []Style{Automatic, Soft, Hard}
}

func (s Style) String() string {
	switch s {
	case Automatic:
		return "automatic"
	case Soft:
		return "soft"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Label returns the capitalized display name used in menus.
func (s Style) Label() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Valid reports whether s is one of the enumerated styles.
func (s Style) Valid() bool {
	return s >= Automatic && s <= Hard
}

// Next returns the following style, wrapping from Hard back to Automatic.
func (s Style) Next() Style {
	return Style((int(s) + 1) % len(Styles()))
}

// Prev returns the preceding style, wrapping from Automatic to Hard.
func (s Style) Prev() Style {
	n := len(Styles())
	return Style((int(s) - 1 + n) % n)
}

// ParseStyle converts a case-insensitive name into a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "automatic":
		return Automatic, nil
	case "soft":
		return Soft, nil
	case "hard":
		return Hard, nil
	}
	return Automatic, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Package state holds the per-view configuration of a card list and the
// store that applies actions to it.
package state

import (
	"errors"
	"fmt"

	"edgedemo/internal/edge"
)

const (
	MinCards  = 10
	MaxCards  = 120
	CardStep  = 10
	InitCards = 40
)

// ErrCardCount is returned by Validate for counts off the 10..120 grid.
var ErrCardCount = errors.New("card count out of range")

// Options is the view-local configuration of one card list.
type Options struct {
	TopStyle    edge.Style
	BottomStyle edge.Style
	LargeTitle  bool
	FloatingBar bool
	CardCount   int
}

// Defaults returns the configuration a list starts with.
func Defaults() Options {
	return Options{
		TopStyle:    edge.Soft,
		BottomStyle: edge.Hard,
		LargeTitle:  true,
		FloatingBar: true,
		CardCount:   InitCards,
	}
}

// Validate checks the invariants on o.
func (o Options) Validate() error {
	if o.CardCount < MinCards || o.CardCount > MaxCards || o.CardCount%CardStep != 0 {
		return fmt.Errorf("%w: %d (want %d..%d in steps of %d)", ErrCardCount, o.CardCount, MinCards, MaxCards, CardStep)
	}
	if !o.TopStyle.Valid() {
		return fmt.Errorf("top edge: %w", edge.ErrUnknownStyle)
	}
	if !o.BottomStyle.Valid() {
		return fmt.Errorf("bottom edge: %w", edge.ErrUnknownStyle)
	}
	return nil
}

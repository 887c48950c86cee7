package ui

// OpenOptionsMsg opens the options menu for the active tab (o or SPC o).
type OpenOptionsMsg struct{}

// DismissOverlayMsg closes the topmost overlay.
type DismissOverlayMsg struct{}

// NextTabMsg selects the following tab (tab or SPC t n).
type NextTabMsg struct{}

// PrevTabMsg selects the preceding tab (shift+tab or SPC t p).
type PrevTabMsg struct{}

// SelectTabMsg selects a tab by position.
type SelectTabMsg struct {
	Index int // 0-based
}

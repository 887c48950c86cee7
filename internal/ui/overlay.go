package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a modal view drawn over the active tab, right-aligned starting
// at screen line Row.
type Overlay struct {
	View    View
	Dismiss key.Binding
	Row     int
}

// OverlayStack holds open overlays; only the topmost receives input.
type OverlayStack struct {
	items []Overlay
}

// Push opens o above any current overlay.
func (s *OverlayStack) Push(o Overlay) {
	s.items = append(s.items, o)
}

// Pop closes the topmost overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	o, ok := s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return o, ok
}

// Peek returns the topmost overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.items) == 0 {
		return Overlay{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.items)
}

// UpdateTop routes msg to the topmost overlay. Its dismiss key is not
// forwarded; it yields DismissOverlayMsg so the owner can close the overlay.
// ok is false when no overlay is open.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := &s.items[len(s.items)-1]
	if k, isKey := msg.(tea.KeyMsg); isKey && key.Matches(k, top.Dismiss) {
		return func() tea.Msg { return DismissOverlayMsg{} }, true
	}
	top.View, cmd = top.View.Update(msg)
	return cmd, true
}

// Package ui is the Bubble Tea front end of the edge effect showcase.
//
// Core abstractions:
//   - View: a screen or region with its own Init/Update/View (Elm-style)
//   - ViewStack: per-tab navigation stack (push/pop views)
//   - OverlayStack: modal views drawn over the active tab, e.g. the options menu
//   - FocusManager: tracks and rotates the selected tab
//   - Renderer: capability-gated strategy that draws a card list frame
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed leader sequences
package ui

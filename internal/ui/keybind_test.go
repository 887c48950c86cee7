package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	assert.NotNil(t, reg.Lookup("q"))
	assert.NotNil(t, reg.Lookup("space q"), "space normalizes to SPC")
	assert.Nil(t, reg.Lookup("j"))
	assert.Nil(t, reg.Lookup("unknown"))
	assert.True(t, reg.HasPrefix("SPC"))
	assert.False(t, reg.HasPrefix("SPC q"))
}

func TestKeyHandler_LeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC t n", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)

	consumed, cmd = h.Handle(keyMsg("t"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting, "SPC t has longer bindings")
	assert.Equal(t, "SPC t", h.CurrentSeq())

	consumed, cmd = h.Handle(keyMsg("n"))
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	h.Handle(keyMsg(" "))
	require.True(t, h.LeaderWaiting)

	consumed, _ := h.Handle(keyMsg("esc"))
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	assert.Empty(t, h.Buffer)

	consumed, _ = h.Handle(keyMsg("esc"))
	assert.False(t, consumed, "esc outside leader mode passes through")
}

func TestKeyHandler_UnknownLeaderKeyResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC o", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("x"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_SingleKeyPassThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("o", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("o"))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)

	consumed, _ = h.Handle(keyMsg("j"))
	assert.False(t, consumed)
}

func TestLeaderHints_SubmenuAndModes(t *testing.T) {
	reg := newAppKeybinds(4)

	hints := reg.LeaderHints("", ModeBrowse)
	assert.Equal(t, "Tab", hints["t"])
	assert.Equal(t, "Options", hints["o"])
	assert.Equal(t, "Quit", hints["q"])

	hints = reg.LeaderHints("SPC t", ModeBrowse)
	assert.Equal(t, "Next tab", hints["n"])
	assert.Equal(t, "Previous tab", hints["p"])

	hints = reg.LeaderHints("", ModeOptions)
	assert.NotContains(t, hints, "o")
	assert.NotContains(t, hints, "t")
	assert.Contains(t, hints, "q")
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(newAppKeybinds(4))
	assert.Empty(t, RenderKeybindHelp(nil, ModeBrowse))

	h.Handle(keyMsg(" "))
	out := RenderKeybindHelp(h, ModeBrowse)
	assert.Contains(t, out, "SPC")
	assert.Contains(t, out, "Options")
	assert.Contains(t, out, "cancel")

	h.Handle(keyMsg("t"))
	out = RenderKeybindHelp(h, ModeBrowse)
	assert.Contains(t, out, "SPC t")
	assert.Contains(t, out, "Next tab")
}

// keyMsg builds the tea.KeyMsg Bubble Tea reports for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

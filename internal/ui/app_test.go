package ui

import (
	"testing"

	"edgedemo/internal/cards"
	"edgedemo/internal/edge"
	"edgedemo/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// send delivers msg to the adapter and feeds back any message its command
// produces immediately, the way the program loop would. Tick commands are
// not followed.
func send(t *testing.T, m tea.Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}
	switch out := cmd().(type) {
	case OpenOptionsMsg, DismissOverlayMsg, NextTabMsg, PrevTabMsg, SelectTabMsg:
		_, cmd = m.Update(out)
	}
	return cmd
}

func TestApp_OptionsOverlayLifecycle(t *testing.T) {
	app := newTestApp(true)
	m := app.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	send(t, m, keyMsg("o"))
	require.Equal(t, 1, app.Overlays.Len())
	assert.Equal(t, ModeOptions, app.Mode)
	assert.Contains(t, m.View(), "Options · Home")

	// Keys go to the menu, not the list or the tab shell.
	send(t, m, keyMsg("j"))
	send(t, m, keyMsg("enter"))
	assert.False(t, app.Shell.Active().List().Options().FloatingBar)
	send(t, m, keyMsg("tab"))
	assert.Equal(t, "Home", app.Shell.Active().Title)

	send(t, m, keyMsg("esc"))
	assert.Equal(t, 0, app.Overlays.Len())
	assert.Equal(t, ModeBrowse, app.Mode)
	assert.NotContains(t, m.View(), "Options · Home")
}

func TestApp_MenuEditsOnlyActiveTab(t *testing.T) {
	app := newTestApp(true)
	m := app.AsTeaModel()

	send(t, m, keyMsg("2"))
	require.Equal(t, "Alerts", app.Shell.Active().Title)
	send(t, m, keyMsg("o"))
	assert.Contains(t, m.View(), "Options · Alerts")
	for range 4 {
		send(t, m, keyMsg("j"))
	}
	send(t, m, keyMsg("+"))
	send(t, m, keyMsg("o"))

	assert.Equal(t, 50, app.Shell.Tabs[1].List().Options().CardCount)
	assert.Equal(t, 40, app.Shell.Tabs[0].List().Options().CardCount)
}

func TestApp_TabSwitching(t *testing.T) {
	app := newTestApp(true)
	m := app.AsTeaModel()

	send(t, m, keyMsg("tab"))
	assert.Equal(t, "Alerts", app.Shell.Active().Title)
	send(t, m, keyMsg("shift+tab"))
	assert.Equal(t, "Home", app.Shell.Active().Title)
	send(t, m, keyMsg("4"))
	assert.Equal(t, "Suggested", app.Shell.Active().Title)

	send(t, m, keyMsg(" "))
	assert.True(t, app.KeyHandler.LeaderWaiting)
	assert.Contains(t, m.View(), "Tab")
	send(t, m, keyMsg("t"))
	send(t, m, keyMsg("n"))
	assert.Equal(t, "Home", app.Shell.Active().Title)
	assert.False(t, app.KeyHandler.LeaderWaiting)
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestApp(true).AsTeaModel()
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}

	// ctrl+c quits even with the menu open.
	app := newTestApp(true)
	m := app.AsTeaModel()
	send(t, m, keyMsg("o"))
	_, cmd := m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_FallbackShowsBannerOnEveryTab(t *testing.T) {
	app := newTestApp(false)
	m := app.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	for i := range app.Shell.Tabs {
		send(t, m, keyMsg(string(rune('1'+i))))
		assert.Contains(t, m.View(), FallbackNotice)
	}
}

func TestApp_PaletteFallbackGuard(t *testing.T) {
	app := NewAppModel(AppConfig{
		Options:    state.Defaults(),
		Capability: edge.StaticCapability(true),
		Picker:     cards.PickerFunc(func() (lipgloss.Color, bool) { return "", false }),
	})
	for _, card := range app.Shell.Active().List().Cards() {
		assert.Equal(t, cards.Fallback, card.Color)
	}
}

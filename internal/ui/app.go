package ui

import (
	"fmt"
	"log"

	"edgedemo/internal/cards"
	"edgedemo/internal/edge"
	"edgedemo/internal/state"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AppConfig wires the app to its environment.
type AppConfig struct {
	Options    state.Options                     // initial options of every tab
	Capability edge.Capability                   // nil means no edge effects
	Picker     cards.Picker                      // nil draws from the palette at random
	Tabs       []TabSpec                         // nil uses DefaultTabs
	Listeners  func(tab string) []state.Listener // extra observers per tab store
}

// AppModel is the root model: the tab shell plus modal overlays.
type AppModel struct {
	Mode       AppMode
	Shell      *TabShell
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	width      int
	height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. Each tab gets its own
// store seeded with cfg.Options.
func NewAppModel(cfg AppConfig) *AppModel {
	specs := cfg.Tabs
	if specs == nil {
		specs = DefaultTabs
	}
	shell := NewTabShell(specs, func(spec TabSpec) View {
		store := state.NewStore(cfg.Options)
		store.Subscribe(logListener(spec.Title))
		if cfg.Listeners != nil {
			for _, l := range cfg.Listeners(spec.Title) {
				store.Subscribe(l)
			}
		}
		return NewCardListView(spec.Title, store, cfg.Capability, cfg.Picker)
	})
	shell.Focus.OnChange = func(from, to string) {
		log.Printf("tab: %s -> %s", from, to)
	}
	return &AppModel{
		Mode:       ModeBrowse,
		Shell:      shell,
		KeyHandler: NewKeyHandler(newAppKeybinds(len(specs))),
		width:      defaultListWidth,
		height:     defaultListHeight,
	}
}

func newAppKeybinds(tabs int) *KeybindRegistry {
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("o", msg(OpenOptionsMsg{}), "Options")
	reg.BindWithDesc("SPC o", msg(OpenOptionsMsg{}), "Options", ModeBrowse)
	reg.BindWithDesc("tab", msg(NextTabMsg{}), "Next tab")
	reg.BindWithDesc("shift+tab", msg(PrevTabMsg{}), "Previous tab")
	reg.BindWithDesc("SPC t n", msg(NextTabMsg{}), "Next tab", ModeBrowse)
	reg.BindWithDesc("SPC t p", msg(PrevTabMsg{}), "Previous tab", ModeBrowse)
	for i := range min(tabs, 9) {
		reg.Bind(fmt.Sprint(i+1), msg(SelectTabMsg{Index: i}))
	}
	return reg
}

// logListener logs option changes; output goes to the debug log file.
func logListener(tab string) state.Listener {
	return func(prev, next state.Options, a state.Action) {
		log.Printf("%s: %s: %+v -> %+v", tab, a.Name(), prev, next)
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Shell.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		_, cmd := a.Shell.Update(msg)
		return a, cmd
	case OpenOptionsMsg:
		t := a.Shell.Active()
		if a.Overlays.Len() > 0 || t == nil || t.List() == nil {
			return a, nil
		}
		a.Overlays.Push(Overlay{
			View:    NewOptionsMenu(t.List()),
			Dismiss: key.NewBinding(key.WithKeys("esc")),
			Row:     1,
		})
		a.Mode = ModeOptions
		return a, nil
	case DismissOverlayMsg:
		a.Overlays.Pop()
		if a.Overlays.Len() == 0 {
			a.Mode = ModeBrowse
		}
		return a, nil
	case NextTabMsg:
		a.Shell.Focus.Next()
		return a, nil
	case PrevTabMsg:
		a.Shell.Focus.Prev()
		return a, nil
	case SelectTabMsg:
		a.Shell.Select(msg.Index)
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// The open menu owns the keyboard.
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	_, cmd := a.Shell.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Shell.View()
	if top, ok := a.Overlays.Peek(); ok {
		base = spliceRight(base, top.View.View(), a.width, top.Row)
	}
	if a.KeyHandler.LeaderWaiting {
		base = replaceBottom(base, RenderKeybindHelp(a.KeyHandler, a.Mode))
	}
	return base
}

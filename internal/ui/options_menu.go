package ui

import (
	"fmt"
	"strings"

	"edgedemo/internal/state"
	"edgedemo/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const menuLabelWidth = 20

type menuItem int

const (
	itemLargeTitle menuItem = iota
	itemFloatingBar
	itemTopEdge
	itemBottomEdge
	itemCards
	menuItemCount
)

type menuKeys struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Dec      key.Binding
	Inc      key.Binding
	Close    key.Binding
}

func newMenuKeys() menuKeys {
	return menuKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Dec:      key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/-", "less")),
		Inc:      key.NewBinding(key.WithKeys("right", "l", "+", "="), key.WithHelp("→/+", "more")),
		Close:    key.NewBinding(key.WithKeys("esc", "o"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Dec, k.Inc, k.Close}
}

// FullHelp implements help.KeyMap.
func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// OptionsMenu edits one card list's options. Every change is dispatched
// immediately; there is no apply step.
type OptionsMenu struct {
	target *CardListView
	cursor menuItem
	keys   menuKeys
	help   help.Model
}

// Ensure OptionsMenu implements View.
var _ View = (*OptionsMenu)(nil)

// NewOptionsMenu creates a menu bound to target.
func NewOptionsMenu(target *CardListView) *OptionsMenu {
	h := help.New()
	h.Styles.ShortKey = Styles.HelpKey
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	return &OptionsMenu{target: target, keys: newMenuKeys(), help: h}
}

// Init implements View.
func (m *OptionsMenu) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *OptionsMenu) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Close):
		return m, func() tea.Msg { return DismissOverlayMsg{} }
	case key.Matches(km, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(km, m.keys.Down):
		m.cursor = min(m.cursor+1, menuItemCount-1)
	case key.Matches(km, m.keys.Activate), key.Matches(km, m.keys.Inc):
		return m, m.adjust(1)
	case key.Matches(km, m.keys.Dec):
		return m, m.adjust(-1)
	}
	return m, nil
}

// adjust applies the selected row's action in direction delta.
func (m *OptionsMenu) adjust(delta int) tea.Cmd {
	var a state.Action
	switch m.cursor {
	case itemLargeTitle:
		a = state.ToggleLargeTitle{}
	case itemFloatingBar:
		a = state.ToggleFloatingBar{}
	case itemTopEdge:
		a = state.CycleTopStyle{Delta: delta}
	case itemBottomEdge:
		a = state.CycleBottomStyle{Delta: delta}
	case itemCards:
		a = state.StepCards{Delta: delta}
	default:
		return nil
	}
	return m.target.Dispatch(a)
}

// View implements View.
func (m *OptionsMenu) View() string {
	o := m.target.Options()
	lines := []string{Styles.MenuTitle.Render("Options · " + m.target.Title), ""}
	for it := menuItem(0); it < menuItemCount; it++ {
		label, value := m.row(it, o)
		marker, style := "  ", Styles.MenuRow
		if it == m.cursor {
			marker, style = "› ", Styles.MenuSelected
		}
		lines = append(lines, style.Render(marker+textutil.PadRight(label, menuLabelWidth))+" "+value)
	}
	lines = append(lines, "", m.help.ShortHelpView(m.keys.ShortHelp()))
	return Styles.Menu.Render(strings.Join(lines, "\n"))
}

func (m *OptionsMenu) row(it menuItem, o state.Options) (label, value string) {
	switch it {
	case itemLargeTitle:
		return "Large Title", checkbox(o.LargeTitle)
	case itemFloatingBar:
		return "Floating Bottom Bar", checkbox(o.FloatingBar)
	case itemTopEdge:
		return "Top Edge", Styles.MenuValue.Render("‹ " + o.TopStyle.Label() + " ›")
	case itemBottomEdge:
		return "Bottom Edge", Styles.MenuValue.Render("‹ " + o.BottomStyle.Label() + " ›")
	case itemCards:
		return fmt.Sprintf("Cards: %d", o.CardCount), stepper(o.CardCount)
	}
	return "", ""
}

func checkbox(on bool) string {
	if on {
		return Styles.MenuValue.Render("[x]")
	}
	return Styles.MenuValue.Render("[ ]")
}

// stepper draws − and + greyed out at the range limits.
func stepper(n int) string {
	minus, plus := Styles.MenuValue, Styles.MenuValue
	if n <= state.MinCards {
		minus = Styles.MenuDisabled
	}
	if n >= state.MaxCards {
		plus = Styles.MenuDisabled
	}
	return minus.Render("−") + " " + plus.Render("+")
}

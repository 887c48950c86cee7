package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tabBarHeight = 2 // divider + labels

// TabSpec describes one tab of the shell.
type TabSpec struct {
	ID      string
	Title   string
	Icon    string
	Section string // tabs sharing a non-empty section are grouped under it
}

// DefaultTabs is the static layout of the showcase.
var DefaultTabs = []TabSpec{
	{ID: "home", Title: "Home", Icon: "⌂"},
	{ID: "alerts", Title: "Alerts", Icon: "!"},
	{ID: "favorites", Title: "Favorites", Icon: "♥", Section: "Categories"},
	{ID: "suggested", Title: "Suggested", Icon: "✦", Section: "Categories"},
}

// Tab is a TabSpec with its own navigation stack.
type Tab struct {
	TabSpec
	Stack *ViewStack
}

// List returns the card list at the root of the tab's stack.
func (t *Tab) List() *CardListView {
	l, _ := t.Stack.Root().(*CardListView)
	return l
}

// TabShell arranges tabs behind a bottom tab bar. Only the selected tab
// receives input; the others keep their state untouched.
type TabShell struct {
	Tabs   []*Tab
	Focus  *FocusManager
	width  int
	height int
}

// Ensure TabShell implements View.
var _ View = (*TabShell)(nil)

// NewTabShell builds one stack per spec, rooted at the view from newRoot.
func NewTabShell(specs []TabSpec, newRoot func(TabSpec) View) *TabShell {
	s := &TabShell{Focus: &FocusManager{}, width: defaultListWidth, height: defaultListHeight}
	for _, spec := range specs {
		s.Tabs = append(s.Tabs, &Tab{TabSpec: spec, Stack: NewViewStack(newRoot(spec))})
		s.Focus.Order = append(s.Focus.Order, spec.ID)
	}
	if len(specs) > 0 {
		s.Focus.Current = specs[0].ID
	}
	return s
}

// Active returns the selected tab, or nil when there are none.
func (s *TabShell) Active() *Tab {
	if i := s.Focus.Index(); i >= 0 {
		return s.Tabs[i]
	}
	return nil
}

// Select makes the tab at index i active.
func (s *TabShell) Select(i int) bool {
	if i < 0 || i >= len(s.Tabs) {
		return false
	}
	return s.Focus.SetFocus(s.Tabs[i].ID)
}

// Init implements View.
func (s *TabShell) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.Tabs))
	for _, t := range s.Tabs {
		cmds = append(cmds, t.Stack.Peek().Init())
	}
	return tea.Batch(cmds...)
}

// Update implements View.
func (s *TabShell) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-tabBarHeight, 1)}
		return s, s.broadcast(inner)
	case barFrameMsg:
		// Animations of inactive tabs keep running.
		return s, s.broadcast(msg)
	}
	t := s.Active()
	if t == nil {
		return s, nil
	}
	v, cmd := t.Stack.Peek().Update(msg)
	t.Stack.ReplaceTop(v)
	return s, cmd
}

// broadcast sends msg to every view in every tab.
func (s *TabShell) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range s.Tabs {
		for i, v := range t.Stack.Stack {
			nv, cmd := v.Update(msg)
			t.Stack.Stack[i] = nv
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// View implements View.
func (s *TabShell) View() string {
	t := s.Active()
	if t == nil {
		return ""
	}
	return t.Stack.Peek().View() + "\n" + s.renderTabBar()
}

// renderTabBar draws top-level tabs followed by each section and its tabs.
func (s *TabShell) renderTabBar() string {
	active := s.Active()
	var parts []string
	section := ""
	for _, t := range s.Tabs {
		if t.Section != section {
			section = t.Section
			if section != "" {
				parts = append(parts, Styles.Muted.Render("│")+" "+Styles.TabSection.Render(section+":"))
			}
		}
		style := Styles.Tab
		if t == active {
			style = Styles.TabSelected
		}
		parts = append(parts, style.Render(t.Icon+" "+t.Title))
	}
	labels := lipgloss.PlaceHorizontal(s.width, lipgloss.Center, strings.Join(parts, " "))
	return Styles.TabBar.Width(s.width).Render(labels)
}

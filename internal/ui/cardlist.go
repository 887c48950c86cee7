package ui

import (
	"strings"

	"edgedemo/internal/cards"
	"edgedemo/internal/edge"
	"edgedemo/internal/state"
	"edgedemo/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultListWidth  = 80
	defaultListHeight = 24
	optionsButton     = "Options (o)"
)

// listKeys are the jumps the viewport keymap lacks.
type listKeys struct {
	Top    key.Binding
	Bottom key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

// newListViewportKeys is the default viewport keymap without space, which is
// the leader key.
func newListViewportKeys() viewport.KeyMap {
	km := viewport.DefaultKeyMap()
	km.PageDown = key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("f/pgdn", "page down"))
	return km
}

// CardListView is a scrolling list of numbered cards with configurable edge
// treatments and a floating action bar.
type CardListView struct {
	Title      string
	store      *state.Store
	picker     cards.Picker
	capability edge.Capability
	cards      []cards.Card
	rows       []row
	viewport   viewport.Model
	keys       listKeys
	bar        *FloatingBar
	width      int
	height     int
	pending    tea.Cmd // follow-up from the last store change
}

// Ensure CardListView implements View.
var _ View = (*CardListView)(nil)

// NewCardListView creates a list driven by store. A nil picker draws
// uniformly from the palette.
func NewCardListView(title string, store *state.Store, capability edge.Capability, picker cards.Picker) *CardListView {
	o := store.Options()
	vp := viewport.New(defaultListWidth, defaultListHeight)
	vp.KeyMap = newListViewportKeys()
	c := &CardListView{
		Title:      title,
		store:      store,
		picker:     picker,
		capability: capability,
		viewport:   vp,
		keys:       newListKeys(),
		bar:        NewFloatingBar(o.FloatingBar),
		width:      defaultListWidth,
		height:     defaultListHeight,
	}
	c.regenerate(o.CardCount)
	store.Subscribe(c.onChange)
	c.layout()
	return c
}

// Options returns the list's current configuration.
func (c *CardListView) Options() state.Options { return c.store.Options() }

// Cards returns the cards currently rendered.
func (c *CardListView) Cards() []cards.Card { return c.cards }

// Bar returns the floating action bar.
func (c *CardListView) Bar() *FloatingBar { return c.bar }

// Dispatch applies a to the list's store and returns any command the change
// needs, such as the first frame of a bar animation.
func (c *CardListView) Dispatch(a state.Action) tea.Cmd {
	c.store.Dispatch(a)
	cmd := c.pending
	c.pending = nil
	return cmd
}

// onChange reacts to store updates. Cards are regenerated only when their
// count changes, so toggles never disturb the list content.
func (c *CardListView) onChange(prev, next state.Options, _ state.Action) {
	if prev.CardCount != next.CardCount {
		c.regenerate(next.CardCount)
	}
	if prev.FloatingBar != next.FloatingBar {
		c.pending = tea.Batch(c.pending, c.bar.SetVisible(next.FloatingBar))
	}
	c.layout()
}

func (c *CardListView) regenerate(n int) {
	c.cards = cards.Generate(n, c.picker)
	c.rows = layoutRows(c.cards)
	c.refreshContent()
}

// refreshContent renders every row untreated into the viewport.
func (c *CardListView) refreshContent() {
	lines := make([]string, len(c.rows))
	for i, r := range c.rows {
		lines[i] = renderRow(r, c.width, 0)
	}
	c.viewport.SetContent(strings.Join(lines, "\n"))
	c.viewport.SetYOffset(c.viewport.YOffset)
}

func headerHeight(o state.Options) int {
	if o.LargeTitle {
		return 3
	}
	return 1
}

// layout sizes the viewport to the space left by the header and the bottom
// safe-area inset.
func (c *CardListView) layout() {
	container := max(c.height-headerHeight(c.store.Options()), 1)
	inset := RendererFor(c.capability).Inset(Frame{Bar: c.bar})
	c.viewport.Width = c.width
	c.viewport.Height = max(container-inset, 1)
	c.viewport.SetYOffset(c.viewport.YOffset)
}

// Init implements View.
func (c *CardListView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (c *CardListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		widthChanged := msg.Width != c.width
		c.width, c.height = msg.Width, msg.Height
		c.layout()
		if widthChanged {
			c.refreshContent()
		}
		return c, nil
	case barFrameMsg:
		cmd := c.bar.Update(msg)
		c.layout()
		return c, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keys.Top):
			c.viewport.GotoTop()
			return c, nil
		case key.Matches(msg, c.keys.Bottom):
			c.viewport.GotoBottom()
			return c, nil
		}
	}
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// Frame captures what the renderer needs for the current scroll position.
func (c *CardListView) Frame() Frame {
	lines := strings.Split(c.viewport.View(), "\n")
	rows := make([]row, len(lines))
	for i := range rows {
		if j := c.viewport.YOffset + i; j < len(c.rows) {
			rows[i] = c.rows[j]
		}
	}
	return Frame{
		Width:          c.width,
		Lines:          lines,
		Rows:           rows,
		TopOverflow:    !c.viewport.AtTop(),
		BottomOverflow: !c.viewport.AtBottom(),
		Options:        c.store.Options(),
		Bar:            c.bar,
	}
}

// View implements View.
func (c *CardListView) View() string {
	return c.renderHeader() + "\n" + RendererFor(c.capability).Render(c.Frame())
}

// renderHeader draws the navigation bar: a toolbar row with the options
// button, plus a title block in large mode or the title centered inline.
func (c *CardListView) renderHeader() string {
	button := Styles.ToolButton.Render(optionsButton)
	bw := textutil.Width(button)
	bar := Styles.Toolbar.Width(c.width)

	if c.store.Options().LargeTitle {
		toolbar := bar.Align(lipgloss.Right).Render(button)
		title := bar.Render(Styles.TitleLarge.Render(textutil.Truncate(c.Title, c.width-2)))
		return toolbar + "\n" + title + "\n" + bar.Render("")
	}
	mid := max(c.width-2*bw, 0)
	row := strings.Repeat(" ", bw) + Styles.TitleInline.Render(textutil.Center(c.Title, mid)) + button
	return bar.Render(row)
}

package present

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"testdeck/pkg/bus"
	"testdeck/pkg/deck"
	"testdeck/pkg/render"
)

type reloadMsg struct {
	event bus.Event
}

type reloadDoneMsg struct {
	deck *deck.Deck
	err  error
}

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.First, k.Last},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", " ", "pgdown", "enter"),
			key.WithHelp("→/space", "next slide"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "previous slide"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last slide"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type model struct {
	ctx    context.Context
	deck   *deck.Deck
	opts   Options
	events <-chan bus.Event

	theme     theme
	keys      keyMap
	help      help.Model
	paginator paginator.Model
	viewport  viewport.Model

	renderer *render.Renderer
	width    int
	height   int
	isReady  bool
	lastErr  string
}

func newModel(ctx context.Context, d *deck.Deck, opts Options, events <-chan bus.Event) *model {
	pag := paginator.New()
	pag.Type = paginator.Dots
	pag.SetTotalPages(d.Len())
	pag.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("●")
	pag.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("·")

	vp := viewport.New(80, 20)

	return &model{
		ctx:       ctx,
		deck:      d,
		opts:      opts,
		events:    events,
		theme:     defaultTheme(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		paginator: pag,
		viewport:  vp,
		width:     100,
		height:    30,
	}
}

func (m *model) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent blocks on the bus subscription until the watcher reports a
// file change. Events the presenter published itself are skipped so a
// reload never retriggers. A nil channel (no --watch) never fires.
func (m *model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		for event := range m.events {
			if event.Type == bus.EventDeckChanged {
				return reloadMsg{event: event}
			}
		}
		return nil
	}
}

func (m *model) reloadCmd() tea.Cmd {
	reload := m.opts.Reload
	if reload == nil {
		return m.waitForEvent()
	}
	return func() tea.Msg {
		reloaded, err := reload()
		return reloadDoneMsg{deck: reloaded, err: err}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.rebuildRenderer()
		m.refreshSlide()
		m.isReady = true
		return m, nil

	case reloadMsg:
		_ = typed
		return m, m.reloadCmd()

	case reloadDoneMsg:
		if typed.err != nil {
			m.lastErr = typed.err.Error()
			m.publish(bus.EventReloadFailed, typed.err.Error())
			return m, m.waitForEvent()
		}

		m.lastErr = ""
		m.deck = typed.deck
		if current := m.paginator.Page; current >= m.deck.Len() {
			m.paginator.Page = m.deck.Len() - 1
		}
		m.paginator.SetTotalPages(m.deck.Len())
		m.rebuildRenderer()
		m.refreshSlide()
		m.publish(bus.EventDeckReloaded, "")
		return m, m.waitForEvent()

	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(typed, m.keys.Next):
			m.goTo(m.paginator.Page + 1)
		case key.Matches(typed, m.keys.Prev):
			m.goTo(m.paginator.Page - 1)
		case key.Matches(typed, m.keys.First):
			m.goTo(0)
		case key.Matches(typed, m.keys.Last):
			m.goTo(m.deck.Len() - 1)
		case key.Matches(typed, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// goTo clamps navigation at the deck bounds.
func (m *model) goTo(page int) {
	if page < 0 || page >= m.deck.Len() {
		return
	}
	if page == m.paginator.Page {
		return
	}

	m.paginator.Page = page
	m.refreshSlide()
	m.publish(bus.EventSlideViewed, "")
}

func (m *model) publish(eventType bus.EventType, detail string) {
	if m.opts.Events == nil {
		return
	}
	m.opts.Events.Publish(m.ctx, bus.Event{
		Type:     eventType,
		DeckPath: m.deck.Path,
		Slide:    m.paginator.Page + 1,
		Detail:   detail,
		Error:    m.lastErr,
	})
}

func (m *model) rebuildRenderer() {
	width := m.width - 4
	if m.opts.Width > 0 && width > m.opts.Width {
		width = m.opts.Width
	}

	themeName := m.deck.FrontMatter.Theme
	if m.opts.Theme != "" {
		themeName = m.opts.Theme
	}

	renderer, err := render.New(width, themeName)
	if err != nil {
		m.lastErr = err.Error()
		return
	}
	m.renderer = renderer

	m.viewport.Width = width
	height := m.height - 5
	if height < 5 {
		height = 5
	}
	m.viewport.Height = height
}

func (m *model) refreshSlide() {
	if m.renderer == nil {
		m.rebuildRenderer()
		if m.renderer == nil {
			return
		}
	}

	content, err := m.renderer.Slide(m.deck, m.paginator.Page+1)
	if err != nil {
		m.lastErr = err.Error()
		return
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m *model) View() string {
	if !m.isReady {
		m.rebuildRenderer()
		m.refreshSlide()
	}

	status := m.theme.status.Render(m.paginator.View())
	if m.lastErr != "" {
		status = m.theme.statusErr.Render("reload failed: " + m.lastErr)
	}

	parts := []string{
		m.viewport.View(),
		strings.TrimRight(status, "\n"),
		m.help.View(m.keys),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

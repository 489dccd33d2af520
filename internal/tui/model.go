// Package tui is an interactive terminal preview of a navigator. The terminal
// size drives the layout mode exactly as a window size would.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/waypoint/internal/app/navigator"
	"github.com/alexisbeaulieu97/waypoint/internal/chrome"
	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/navctx"
	"github.com/alexisbeaulieu97/waypoint/internal/navstate"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
)

// One terminal cell is treated as CellWidth by CellHeight pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Model is the bubbletea state of the preview.
type Model struct {
	nav   *navigator.Navigator
	ctx   *navctx.Context
	state *navstate.State

	Keys  KeyMap
	help  help.Model
	input textinput.Model

	platform  layout.Platform
	mode      layout.Mode
	cursor    int
	menuOpen  bool
	inputMode bool
	message   string
	isError   bool
	quitting  bool

	width  int
	height int
}

// NewModel mounts nav for a terminal of cols by rows cells.
func NewModel(nav *navigator.Navigator, platform layout.Platform, cols, rows int, opts ...navctx.Option) (Model, error) {
	ctx, err := nav.Mount(viewportFor(cols, rows, platform), opts...)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "/devices/1 or fleet://devices/1"
	ti.CharLimit = 200
	ti.Width = 40

	m := Model{
		nav:      nav,
		ctx:      ctx,
		Keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    ti,
		platform: platform,
		mode:     ctx.Mode(),
		width:    cols,
		height:   rows,
	}
	m.state = navstate.New(nav.Registry, nav.TabsFor(m.mode))
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Context returns the shared navigation context of the preview.
func (m Model) Context() *navctx.Context {
	return m.ctx
}

// State returns the navigation state of the preview.
func (m Model) State() *navstate.State {
	return m.state
}

// Mode returns the layout mode currently rendered.
func (m Model) Mode() layout.Mode {
	return m.mode
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Items returns the chrome items for the current mode.
func (m Model) Items() []chrome.Item {
	return chrome.Items(m.state.Tabs(), m.state.ActiveTab().Name, m.platform, m.nav.ResolverFor(m.mode))
}

func viewportFor(cols, rows int, platform layout.Platform) layout.Viewport {
	return layout.Viewport{
		Width:    float64(cols * CellWidth),
		Height:   float64(rows * CellHeight),
		Platform: platform,
	}
}

// syncLayout re-reads the mode after a viewport change and swaps the tab set
// when the compact bar comes in or out.
func (m *Model) syncLayout() {
	mode := m.ctx.Mode()
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.menuOpen = false
	m.state.SetTabs(m.nav.TabsFor(mode))
	if m.cursor >= len(m.state.Tabs()) {
		m.cursor = 0
	}
}

func (m Model) screenFor(entry navstate.Entry) (topology.Screen, bool) {
	if entry.Route == topology.NotFoundRoute {
		return topology.Screen{Name: topology.NotFoundRoute, Component: m.nav.Topology.NotFound}, true
	}
	if screen, ok := m.nav.Topology.Screen(entry.Route); ok {
		return screen, true
	}
	return m.nav.Compact.Screen(entry.Route)
}

func nextPlatform(p layout.Platform) layout.Platform {
	switch p {
	case layout.Web:
		return layout.IOS
	case layout.IOS:
		return layout.Android
	default:
		return layout.Web
	}
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ctx.SetViewport(viewportFor(msg.Width, msg.Height, m.platform))
		m.syncLayout()
		return m, nil

	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.state.Tabs()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.quitting = true
		m.ctx.Close()
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.Keys.Next):
		if len(items) > 0 {
			m.cursor = (m.cursor + 1) % len(items)
		}

	case key.Matches(msg, m.Keys.Prev):
		if len(items) > 0 {
			m.cursor = (m.cursor - 1 + len(items)) % len(items)
		}

	case key.Matches(msg, m.Keys.Select):
		if m.cursor < len(items) {
			m.setStatus(m.state.SelectTab(items[m.cursor].Name))
			m.menuOpen = false
		}

	case key.Matches(msg, m.Keys.Back):
		if m.menuOpen {
			m.menuOpen = false
			break
		}
		if !m.state.GoBack() {
			m.message = "nothing to go back to"
			m.isError = false
		}

	case key.Matches(msg, m.Keys.Collapse):
		if m.mode == layout.Sidebar {
			m.ctx.ToggleSidebar()
		}

	case key.Matches(msg, m.Keys.Menu):
		if m.mode == layout.Menu {
			m.menuOpen = !m.menuOpen
		}

	case key.Matches(msg, m.Keys.Platform):
		m.platform = nextPlatform(m.platform)
		m.ctx.SetViewport(viewportFor(m.width, m.height, m.platform))
		m.syncLayout()
		m.message = fmt.Sprintf("platform: %s", m.platform)
		m.isError = false

	case key.Matches(msg, m.Keys.Open):
		m.inputMode = true
		m.input.Reset()
		return m, m.input.Focus()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.inputMode = false
		m.input.Blur()
		m.open(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// open follows a deep link or bare path the way the runtime would.
func (m *Model) open(raw string) {
	path, ok := m.nav.Linking.Path(raw)
	if !ok {
		m.message = fmt.Sprintf("%q is not a link into this app", raw)
		m.isError = true
		return
	}

	match := m.nav.Registry.Match(path)
	if err := m.state.Navigate(match); err != nil {
		m.setStatus(err)
		return
	}
	if match.NotFound {
		m.message = fmt.Sprintf("no route matches %s", match.Path)
		m.isError = true
		return
	}
	m.message = fmt.Sprintf("opened %s", match.Route.Name)
	m.isError = false
}

func (m *Model) setStatus(err error) {
	if err != nil {
		m.message = err.Error()
		m.isError = true
		return
	}
	m.message = ""
	m.isError = false
}

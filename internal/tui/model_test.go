package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/waypoint/internal/app/navigator"
	"github.com/alexisbeaulieu97/waypoint/internal/layout"
)

func newModel(t *testing.T, platform layout.Platform, cols, rows int) Model {
	t.Helper()

	nav, err := navigator.NewService(nil, nil).Load(filepath.Join("..", "..", "examples", "navigator.yaml"))
	require.NoError(t, err)

	m, err := NewModel(nav, platform, cols, rows)
	require.NoError(t, err)
	t.Cleanup(m.Context().Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelPicksModeFromTerminalSize(t *testing.T) {
	t.Parallel()

	phone := newModel(t, layout.IOS, 50, 40)
	require.Equal(t, layout.BottomTabs, phone.Mode())
	require.Len(t, phone.State().Tabs(), 5)

	narrowWeb := newModel(t, layout.Web, 50, 40)
	require.Equal(t, layout.Menu, narrowWeb.Mode())
	require.Len(t, narrowWeb.State().Tabs(), 7)

	wide := newModel(t, layout.Web, 140, 40)
	require.Equal(t, layout.Sidebar, wide.Mode())
	require.False(t, wide.Context().Collapsed())
}

func TestItemsFollowFocus(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 100, 40)
	items := m.Items()
	require.Len(t, items, 7)
	require.True(t, items[0].Focused)
	require.Equal(t, "DevicesStack", items[2].RouteName)
	require.Equal(t, "Devices", items[2].Target.Screen)
	require.Equal(t, "/devices", items[2].Href)
}

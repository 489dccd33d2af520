package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/navstate"
)

func TestUpdateHandlesResize(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.IOS, 50, 40)
	require.True(t, m.Context().Collapsed())

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, layout.Sidebar, m.Mode())
	require.Len(t, m.State().Tabs(), 7)
	// the mount-time collapse default survives the resize
	require.True(t, m.Context().Collapsed())

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	require.Equal(t, layout.BottomTabs, m.Mode())
	require.Len(t, m.State().Tabs(), 5)
}

func TestUpdateSelectsTabs(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 100, 40)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Devices", m.State().ActiveTab().Name)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Reports", m.State().ActiveTab().Name)
}

func TestUpdateTogglesSidebar(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 140, 40)
	require.False(t, m.Context().Collapsed())

	m = update(t, m, runes("c"))
	require.True(t, m.Context().Collapsed())
	require.Equal(t, layout.Geometry{Left: 80}, m.Context().Geometry())
}

func TestUpdateOpensDeepLinks(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 100, 40)

	m = update(t, m, runes("/"))
	require.True(t, m.inputMode)
	m.input.SetValue("fleet://devices/7/log/3")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.False(t, m.inputMode)
	require.Equal(t, "Devices", m.State().ActiveTab().Name)
	require.Equal(t, navstate.Entry{Route: "DeviceLog", Params: map[string]string{"deviceId": "7", "entryId": "3"}}, m.State().Current())
	require.True(t, m.State().ShowBack())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, "Devices", m.State().Current().Route)
}

func TestUpdateReportsForeignAndUnknownLinks(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 100, 40)

	m.open("https://elsewhere.example.org/devices")
	require.True(t, m.isError)
	require.Contains(t, m.message, "not a link into this app")

	m.open("/no/such/page")
	require.True(t, m.isError)
	require.Equal(t, "NotFound", m.State().Current().Route)
}

func TestUpdateSwitchesPlatform(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 50, 40)
	require.Equal(t, layout.Menu, m.Mode())

	m = update(t, m, runes("p"))
	require.Equal(t, layout.BottomTabs, m.Mode())
	require.Len(t, m.State().Tabs(), 5)
}

func TestUpdateQuits(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 100, 40)
	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).Quitting())
}

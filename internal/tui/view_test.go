package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
)

func TestViewRendersChromeForMode(t *testing.T) {
	t.Parallel()

	sidebar := newModel(t, layout.Web, 140, 40).View()
	require.Contains(t, sidebar, "home Dashboard")
	require.Contains(t, sidebar, "chevron-back")
	require.Contains(t, sidebar, "0px 0px 0px 240px")

	tabs := newModel(t, layout.Android, 60, 40).View()
	require.Contains(t, tabs, "More")
	require.NotContains(t, tabs, "Share")
	require.Contains(t, tabs, "0px 0px 80px 0px")

	menu := newModel(t, layout.Web, 60, 40).View()
	require.Contains(t, menu, "☰ Dashboard")
	require.Contains(t, menu, "64px 0px 0px 0px")
}

func TestViewShowsModalAndBack(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 140, 40)
	m.open("/devices/2")
	view := m.View()
	require.Contains(t, view, "‹ back")
	require.Contains(t, view, "Device (deviceId=2)")

	m.open("/invite/abc")
	view = m.View()
	require.Contains(t, view, "Invite (code=abc)")
	require.Contains(t, view, "presentation: transparentModal")
}

func TestViewOfMenuWhenOpen(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 60, 40)
	updated, _ := m.Update(runes("m"))
	m = updated.(Model)
	require.True(t, m.menuOpen)
	require.Contains(t, m.View(), "cloud-upload Upload")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, updated.(Model).menuOpen)
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	t.Parallel()

	m := newModel(t, layout.Web, 100, 40)
	updated, _ := m.Update(runes("q"))
	require.Empty(t, updated.(Model).View())
}

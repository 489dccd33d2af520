package navctx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

var testMetrics = layout.Metrics{TabBarHeight: 80, SidebarWidth: 240, SidebarWidthCollapsed: 80, MenuHeight: 64}
var testBreakpoints = layout.Breakpoints{Sidebar: 640, SidebarCollapsed: 1000}

func newContext(t *testing.T, v layout.Viewport) *Context {
	t.Helper()

	reg, err := routes.NewRegistry(topology.Navigator{
		Tabs: []topology.Tab{
			{
				Screen: topology.Screen{Name: "Devices", Path: "/devices"},
				Stack:  []topology.Screen{{Name: "Device", Path: "/devices/:deviceId"}},
			},
		},
	})
	require.NoError(t, err)

	c := New(routes.NewResolver(reg), Environment{Viewport: v, Metrics: testMetrics, Breakpoints: testBreakpoints})
	t.Cleanup(c.Close)
	return c
}

func TestNewDerivesModeAndDefaultCollapse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		viewport  layout.Viewport
		mode      layout.Mode
		collapsed bool
		geometry  layout.Geometry
	}{
		{name: "phone", viewport: layout.Viewport{Width: 390, Platform: layout.IOS}, mode: layout.BottomTabs, collapsed: true, geometry: layout.Geometry{Bottom: 80}},
		{name: "narrow web", viewport: layout.Viewport{Width: 390, Platform: layout.Web}, mode: layout.Menu, collapsed: true, geometry: layout.Geometry{Top: 64}},
		{name: "tablet", viewport: layout.Viewport{Width: 800, Platform: layout.Android}, mode: layout.Sidebar, collapsed: true, geometry: layout.Geometry{Left: 80}},
		{name: "desktop", viewport: layout.Viewport{Width: 1440, Platform: layout.Web}, mode: layout.Sidebar, collapsed: false, geometry: layout.Geometry{Left: 240}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newContext(t, tc.viewport)
			snap := c.Snapshot()
			require.Equal(t, tc.mode, snap.Mode)
			require.Equal(t, tc.collapsed, snap.Collapsed)
			require.Equal(t, tc.geometry, snap.Geometry)
			require.Equal(t, tc.geometry, c.Geometry())
		})
	}
}

func TestViewportChangesSwitchModeImmediately(t *testing.T) {
	t.Parallel()

	c := newContext(t, layout.Viewport{Width: 390, Platform: layout.IOS})
	require.Equal(t, layout.BottomTabs, c.Mode())

	c.SetViewport(layout.Viewport{Width: 640, Platform: layout.IOS})
	require.Equal(t, layout.Sidebar, c.Mode())

	c.SetViewport(layout.Viewport{Width: 639, Platform: layout.IOS})
	require.Equal(t, layout.BottomTabs, c.Mode())
}

func TestUserCollapseChoiceSurvivesResize(t *testing.T) {
	t.Parallel()

	c := newContext(t, layout.Viewport{Width: 1440, Platform: layout.Web})
	require.False(t, c.Collapsed())

	require.True(t, c.ToggleSidebar())
	require.Equal(t, layout.Geometry{Left: 80}, c.Geometry())

	// shrinking and growing again never re-derives the default
	c.SetViewport(layout.Viewport{Width: 700, Platform: layout.Web})
	c.SetViewport(layout.Viewport{Width: 1600, Platform: layout.Web})
	require.True(t, c.Collapsed())

	require.False(t, c.ToggleSidebar())
	require.Equal(t, layout.Geometry{Left: 240}, c.Geometry())
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	t.Parallel()

	c := newContext(t, layout.Viewport{Width: 1440, Platform: layout.Web})

	var got []Snapshot
	unsubscribe := c.Subscribe(func(s Snapshot) { got = append(got, s) })

	c.SetViewport(layout.Viewport{Width: 400, Platform: layout.Web})
	c.ToggleSidebar()
	c.SetCollapsed(true) // already collapsed, no notification
	c.SetMetrics(layout.Metrics{MenuHeight: 10, TabBarHeight: 1, SidebarWidth: 1, SidebarWidthCollapsed: 1})

	require.Len(t, got, 3)
	require.Equal(t, layout.Menu, got[0].Mode)
	require.True(t, got[1].Collapsed)
	require.Equal(t, layout.Geometry{Top: 10}, got[2].Geometry)

	unsubscribe()
	c.ToggleSidebar()
	require.Len(t, got, 3)
}

func TestCloseStopsUpdates(t *testing.T) {
	t.Parallel()

	c := newContext(t, layout.Viewport{Width: 1440, Platform: layout.Web})
	calls := 0
	c.Subscribe(func(Snapshot) { calls++ })

	c.Close()
	c.Close()
	c.SetViewport(layout.Viewport{Width: 300, Platform: layout.Web})
	c.ToggleSidebar()

	require.Zero(t, calls)
	require.Equal(t, layout.Sidebar, c.Mode())
	require.False(t, c.Collapsed())
}

func TestResolveLinkUsesSharedResolver(t *testing.T) {
	t.Parallel()

	c := newContext(t, layout.Viewport{Width: 390, Platform: layout.IOS})

	path, err := c.ResolveLink("Device", routes.Params{"deviceId": 1})
	require.NoError(t, err)
	require.Equal(t, "/devices/1", path)

	path, err = c.ResolveLink("DevicesStack", nil)
	require.NoError(t, err)
	require.Equal(t, "/devices", path)

	_, err = c.ResolveLink("Device", nil)
	var missingErr *waypointerrors.MissingParamError
	require.ErrorAs(t, err, &missingErr)
}

func TestIndependentContexts(t *testing.T) {
	t.Parallel()

	a := newContext(t, layout.Viewport{Width: 1440, Platform: layout.Web})
	b := newContext(t, layout.Viewport{Width: 1440, Platform: layout.Web})

	a.ToggleSidebar()
	require.True(t, a.Collapsed())
	require.False(t, b.Collapsed())
}

func TestResolverFollowsMode(t *testing.T) {
	t.Parallel()

	compact, err := routes.NewRegistry(topology.Navigator{
		Tabs: []topology.Tab{{Screen: topology.Screen{Name: "More", Path: "/more"}}},
	})
	require.NoError(t, err)
	compactResolver := routes.NewResolver(compact)

	base := newContext(t, layout.Viewport{Width: 390, Platform: layout.IOS})
	c := New(base.Resolver(), Environment{
		Viewport:    layout.Viewport{Width: 390, Platform: layout.IOS},
		Metrics:     testMetrics,
		Breakpoints: testBreakpoints,
	}, WithResolverFor(func(mode layout.Mode) *routes.Resolver {
		if mode == layout.BottomTabs {
			return compactResolver
		}
		return nil
	}))
	t.Cleanup(c.Close)

	path, err := c.ResolveLink("More", nil)
	require.NoError(t, err)
	require.Equal(t, "/more", path)

	c.SetViewport(layout.Viewport{Width: 1440, Platform: layout.Web})
	path, err = c.ResolveLink("Device", routes.Params{"deviceId": 2})
	require.NoError(t, err)
	require.Equal(t, "/devices/2", path)

	_, err = c.ResolveLink("More", nil)
	var unknownErr *waypointerrors.UnknownRouteError
	require.ErrorAs(t, err, &unknownErr)
}

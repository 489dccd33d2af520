package chrome

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
)

func testTabs() []topology.Tab {
	return []topology.Tab{
		{Screen: topology.Screen{Name: "Dashboard", Path: "/", IconName: "home"}},
		{
			Screen: topology.Screen{Name: "Devices", Path: "/devices", IconName: "phone-landscape", Label: "My devices"},
			Stack:  []topology.Screen{{Name: "Device", Path: "/devices/:deviceId"}},
		},
	}
}

func testResolver(t *testing.T) *routes.Resolver {
	t.Helper()
	reg, err := routes.NewRegistry(topology.Navigator{Tabs: testTabs()})
	require.NoError(t, err)
	return routes.NewResolver(reg)
}

func TestItems(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		platform layout.Platform
		want     []Item
	}{
		{
			name:     "web opens the tab root inside stacked containers",
			platform: layout.Web,
			want: []Item{
				{RouteName: "Dashboard", Label: "Dashboard", Icon: "home", Href: "/", Target: Target{Route: "Dashboard"}},
				{RouteName: "DevicesStack", Label: "My devices", Icon: "phone-landscape", Focused: true, Href: "/devices", Target: Target{Route: "DevicesStack", Screen: "Devices"}},
			},
		},
		{
			name:     "native focuses the container",
			platform: layout.Android,
			want: []Item{
				{RouteName: "Dashboard", Label: "Dashboard", Icon: "home", Href: "/", Target: Target{Route: "Dashboard"}},
				{RouteName: "DevicesStack", Label: "My devices", Icon: "phone-landscape", Focused: true, Href: "/devices", Target: Target{Route: "DevicesStack"}},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Items(testTabs(), "Devices", tc.platform, testResolver(t)))
		})
	}
}

func TestItemsWithoutResolverLeaveHrefEmpty(t *testing.T) {
	t.Parallel()

	items := Items(testTabs(), "", layout.Web, nil)
	require.Len(t, items, 2)
	require.Empty(t, items[0].Href)
	require.False(t, items[0].Focused)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	items := []Item{{RouteName: "Dashboard", Label: "Dashboard"}}

	bar := Build(layout.Sidebar, true, items)
	require.False(t, bar.ShowLabels)
	require.Equal(t, "chevron-forward", bar.ToggleIcon)

	bar = Build(layout.Sidebar, false, items)
	require.True(t, bar.ShowLabels)
	require.Equal(t, "chevron-back", bar.ToggleIcon)

	bar = Build(layout.BottomTabs, true, items)
	require.True(t, bar.ShowLabels)
	require.Empty(t, bar.ToggleIcon)
}

func TestItemsLabelPlainTabsByName(t *testing.T) {
	t.Parallel()

	tabs := []topology.Tab{
		{Screen: topology.Screen{Name: "Stackable", Path: "/stackable"}},
		{
			Screen: topology.Screen{Name: "Stacks", Path: "/stacks"},
			Stack:  []topology.Screen{{Name: "StackDetail", Path: "/stacks/:id"}},
		},
	}

	items := Items(tabs, "", layout.Web, nil)
	require.Len(t, items, 2)
	require.Equal(t, "Stackable", items[0].Label)
	require.Equal(t, "StacksStack", items[1].RouteName)
	require.Equal(t, "Stacks", items[1].Label)
}

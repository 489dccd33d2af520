package navigator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
)

func compareFixture(devicePath string, withOrders bool, withSettings bool) topology.Navigator {
	nav := topology.Navigator{
		Scheme: "fleet",
		Tabs: []topology.Tab{
			{Screen: topology.Screen{Name: "Dashboard", Path: "/"}},
			{
				Screen: topology.Screen{Name: "Devices", Path: "/devices"},
				Stack:  []topology.Screen{{Name: "Device", Path: devicePath}},
			},
		},
	}
	if withOrders {
		nav.Tabs = append(nav.Tabs, topology.Tab{Screen: topology.Screen{Name: "Orders", Path: "/orders"}})
	}
	if withSettings {
		nav.Modals = []topology.Screen{{Name: "Settings", Path: "/settings"}}
	}
	return nav
}

func buildFixture(t *testing.T, topo topology.Navigator) *Navigator {
	t.Helper()
	nav, err := Build(topo)
	require.NoError(t, err)
	return nav
}

func TestCompare(t *testing.T) {
	t.Parallel()

	before := buildFixture(t, compareFixture("/devices/:deviceId", true, false))
	after := buildFixture(t, compareFixture("/fleet/:deviceId", false, true))
	before.Path = "v1.yaml"

	changes, err := Compare(before, after)
	require.NoError(t, err)
	require.False(t, changes.Empty())

	require.Len(t, changes.Added, 1)
	require.Equal(t, "Settings", changes.Added[0].Name)
	require.Equal(t, routes.KindModal, changes.Added[0].Kind)

	require.Len(t, changes.Removed, 1)
	require.Equal(t, "Orders", changes.Removed[0].Name)

	require.Len(t, changes.Changed, 1)
	require.Equal(t, "Device", changes.Changed[0].Name)
	require.Equal(t, routes.Pattern("/devices/:deviceId"), changes.Changed[0].Before.Pattern)
	require.Equal(t, routes.Pattern("/fleet/:deviceId"), changes.Changed[0].After.Pattern)

	require.Contains(t, changes.Linking, "--- v1.yaml")
	require.Contains(t, changes.Linking, "+++ after")
	require.True(t, diffLine(changes.Linking, '-', "path: /devices/:deviceId"))
	require.True(t, diffLine(changes.Linking, '+', "path: /fleet/:deviceId"))
	require.True(t, changes.Stats.Changed())
}

func diffLine(unified string, marker byte, text string) bool {
	for _, line := range strings.Split(unified, "\n") {
		if len(line) > 0 && line[0] == marker && strings.TrimSpace(line[1:]) == text {
			return true
		}
	}
	return false
}

func TestCompareIdentical(t *testing.T) {
	t.Parallel()

	a := buildFixture(t, compareFixture("/devices/:deviceId", true, true))
	b := buildFixture(t, compareFixture("/devices/:deviceId", true, true))

	changes, err := Compare(a, b)
	require.NoError(t, err)
	require.True(t, changes.Empty())
	require.Empty(t, changes.Linking)
}

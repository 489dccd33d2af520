package navigator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

var examplePath = filepath.Join("..", "..", "..", "examples", "navigator.yaml")

func TestLoadExample(t *testing.T) {
	t.Parallel()

	nav, err := NewService(nil, nil).Load(examplePath)
	require.NoError(t, err)

	assert.Equal(t, examplePath, nav.Path)
	assert.Equal(t, 12, nav.Registry.Len())
	assert.Equal(t, []string{"Main", "Settings", "Invite"}, nav.Linking.Config.Screens.Names())

	path, err := nav.Resolver.Resolve("Device", routes.Params{"deviceId": 3})
	require.NoError(t, err)
	assert.Equal(t, "/devices/3", path)

	// overflow applies to the compact topology only
	require.Equal(t, 5, nav.OverflowLimit)
	require.Len(t, nav.Topology.Tabs, 7)
	require.Len(t, nav.Compact.Tabs, 5)

	more := nav.Compact.Tabs[4]
	assert.Equal(t, "More", more.Name)
	assert.Equal(t, "MoreStack", more.ContainerName())
	assert.Equal(t, "More\n  book Training\n  cloud-upload Upload\n  share Share", more.Component.Render(topology.RouteProps{Name: "More"}))

	_, err = nav.Resolver.Resolve("More", nil)
	var unknownErr *waypointerrors.UnknownRouteError
	require.ErrorAs(t, err, &unknownErr)

	path, err = nav.CompactResolver.Resolve("MoreStack", nil)
	require.NoError(t, err)
	assert.Equal(t, "/more", path)

	path, err = nav.CompactResolver.Resolve("Course", routes.Params{"updateId": 1, "courseId": 2})
	require.NoError(t, err)
	assert.Equal(t, "/update/1/course/2", path)
}

func TestTabsForMode(t *testing.T) {
	t.Parallel()

	nav, err := NewService(nil, nil).Load(examplePath)
	require.NoError(t, err)

	assert.Len(t, nav.TabsFor(layout.BottomTabs), 5)
	assert.Len(t, nav.TabsFor(layout.Sidebar), 7)
	assert.Len(t, nav.TabsFor(layout.Menu), 7)
	assert.Same(t, nav.CompactResolver, nav.ResolverFor(layout.BottomTabs))
	assert.Same(t, nav.Resolver, nav.ResolverFor(layout.Menu))
}

func TestBuildFailsEagerlyOnDuplicates(t *testing.T) {
	t.Parallel()

	_, err := Build(topology.Navigator{
		Tabs: []topology.Tab{
			{Screen: topology.Screen{Name: "Home", Path: "/"}},
			{Screen: topology.Screen{Name: "Feed", Path: "/feed"}, Stack: []topology.Screen{{Name: "Home", Path: "/feed/home"}}},
		},
	})

	var dupErr *waypointerrors.DuplicateRouteError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Home", dupErr.Name)
}

func TestBuildRejectsCollidingOverflowTab(t *testing.T) {
	t.Parallel()

	topo := topology.Navigator{Tabs: []topology.Tab{
		{Screen: topology.Screen{Name: "A", Path: "/a"}},
		{Screen: topology.Screen{Name: "B", Path: "/b"}},
		{Screen: topology.Screen{Name: "C", Path: "/c"}},
	}}

	_, err := Build(topo, WithOverflow(2, topology.Screen{Name: "C", Path: "/more"}))
	var dupErr *waypointerrors.DuplicateRouteError
	require.ErrorAs(t, err, &dupErr)

	nav, err := Build(topo, WithOverflow(3, topology.Screen{Name: "C", Path: "/more"}))
	require.NoError(t, err)
	assert.Zero(t, nav.OverflowLimit)
	assert.Equal(t, topo.Tabs, nav.Compact.Tabs)
}

func TestMount(t *testing.T) {
	t.Parallel()

	nav, err := NewService(nil, nil).Load(examplePath)
	require.NoError(t, err)

	ctx, err := nav.Mount(layout.Viewport{Width: 390, Platform: layout.IOS})
	require.NoError(t, err)
	t.Cleanup(ctx.Close)

	assert.Equal(t, layout.BottomTabs, ctx.Mode())
	assert.Equal(t, layout.Geometry{Bottom: 80}, ctx.Geometry())

	ctx.SetViewport(layout.Viewport{Width: 1200, Platform: layout.Web})
	assert.Equal(t, layout.Sidebar, ctx.Mode())
	assert.Equal(t, layout.Geometry{Left: 80}, ctx.Geometry())

	link, err := ctx.ResolveLink("Invite", routes.Params{"code": "a b"})
	require.NoError(t, err)
	assert.Equal(t, "/invite/a%20b", link)
}

func TestMountResolvesLinksForCurrentMode(t *testing.T) {
	t.Parallel()

	nav, err := NewService(nil, nil).Load(examplePath)
	require.NoError(t, err)

	ctx, err := nav.Mount(layout.Viewport{Width: 390, Platform: layout.IOS})
	require.NoError(t, err)
	t.Cleanup(ctx.Close)

	require.Equal(t, layout.BottomTabs, ctx.Mode())
	assert.Same(t, nav.CompactResolver, ctx.Resolver())
	link, err := ctx.ResolveLink("MoreStack", nil)
	require.NoError(t, err)
	assert.Equal(t, "/more", link)

	ctx.SetViewport(layout.Viewport{Width: 1200, Platform: layout.Web})
	require.Equal(t, layout.Sidebar, ctx.Mode())
	assert.Same(t, nav.Resolver, ctx.Resolver())
	_, err = ctx.ResolveLink("MoreStack", nil)
	var unknownErr *waypointerrors.UnknownRouteError
	require.ErrorAs(t, err, &unknownErr)
}

func TestLoadRejectsUnknownComponent(t *testing.T) {
	t.Parallel()

	_, err := NewService(topology.Catalog{}, nil).Load(examplePath)
	var validationErr *waypointerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "tabs[0].component", validationErr.Field)
}

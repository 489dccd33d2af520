package navigator

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/pkg/diff"
)

// RouteChange is a route present in both navigators whose path or placement
// differs.
type RouteChange struct {
	Name   string
	Before routes.Route
	After  routes.Route
}

// Changes summarises how two navigators differ.
type Changes struct {
	Added   []routes.Route
	Removed []routes.Route
	Changed []RouteChange

	// Linking is a unified diff of the two linking configurations in YAML.
	Linking string
	Stats   diff.Stats
}

// Empty reports whether the navigators expose the same routes and the same
// linking configuration.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0 && !c.Stats.Changed()
}

// Compare reports route and linking differences from before to after.
func Compare(before, after *Navigator) (Changes, error) {
	var changes Changes

	for _, route := range after.Registry.Routes() {
		old, ok := before.Registry.Lookup(route.Name)
		switch {
		case !ok:
			changes.Added = append(changes.Added, route)
		case !sameRoute(old, route):
			changes.Changed = append(changes.Changed, RouteChange{Name: route.Name, Before: old, After: route})
		}
	}
	for _, route := range before.Registry.Routes() {
		if _, ok := after.Registry.Lookup(route.Name); !ok {
			changes.Removed = append(changes.Removed, route)
		}
	}

	beforeYAML, err := yaml.Marshal(before.Linking)
	if err != nil {
		return Changes{}, fmt.Errorf("encode linking for %s: %w", labelFor(before, "before"), err)
	}
	afterYAML, err := yaml.Marshal(after.Linking)
	if err != nil {
		return Changes{}, fmt.Errorf("encode linking for %s: %w", labelFor(after, "after"), err)
	}
	changes.Linking, changes.Stats = diff.Unified(beforeYAML, afterYAML, labelFor(before, "before"), labelFor(after, "after"))

	return changes, nil
}

func sameRoute(a, b routes.Route) bool {
	return a.Pattern == b.Pattern && a.Kind == b.Kind && a.Tab == b.Tab && a.Container == b.Container
}

func labelFor(n *Navigator, fallback string) string {
	if n.Path != "" {
		return n.Path
	}
	return fallback
}

package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/navctx"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

// ToNavigator converts a validated document into a navigator topology.
// Component keys are looked up in catalog; an empty key leaves the component
// unset.
func ToNavigator(doc *Document, catalog topology.Catalog) (topology.Navigator, error) {
	if doc == nil {
		return topology.Navigator{}, waypointerrors.NewValidationError("config", "configuration is nil", nil)
	}

	nav := topology.Navigator{
		Domain:   doc.Domain,
		Scheme:   doc.Scheme,
		Prefixes: append([]string(nil), doc.Prefixes...),
		Tabs:     make([]topology.Tab, 0, len(doc.Tabs)),
	}

	for i, tab := range doc.Tabs {
		root, err := toScreen(tab.Root(), catalog, fieldFor("tabs", i, "component"))
		if err != nil {
			return topology.Navigator{}, err
		}

		converted := topology.Tab{Screen: root}
		for j, screen := range tab.Stack {
			s, err := toScreen(screen, catalog, fmt.Sprintf("tabs[%d].stack[%d].component", i, j))
			if err != nil {
				return topology.Navigator{}, err
			}
			converted.Stack = append(converted.Stack, s)
		}
		nav.Tabs = append(nav.Tabs, converted)
	}

	for i, modal := range doc.Modals {
		s, err := toScreen(modal, catalog, fieldFor("modals", i, "component"))
		if err != nil {
			return topology.Navigator{}, err
		}
		nav.Modals = append(nav.Modals, s)
	}

	if doc.NotFound != "" {
		component, ok := catalog.Lookup(doc.NotFound)
		if !ok {
			return topology.Navigator{}, unknownComponent("not_found", doc.NotFound)
		}
		nav.NotFound = component
	}

	return nav, nil
}

// OverflowScreen returns the overflow tab limit and the screen hosting the
// overflowed tabs. A zero limit means the feature is off.
func OverflowScreen(doc *Document, catalog topology.Catalog) (int, topology.Screen, error) {
	if doc == nil || !doc.Layout.Overflow.Enabled() {
		return 0, topology.Screen{}, nil
	}
	screen, err := toScreen(doc.Layout.Overflow.screen(), catalog, "layout.overflow.component")
	if err != nil {
		return 0, topology.Screen{}, err
	}
	return doc.Layout.Overflow.Limit, screen, nil
}

// Environment builds the layout environment for a viewport from the
// document's rem unit, breakpoints and metrics. Unset values use defaults.
func (d *Document) Environment(viewport layout.Viewport) (navctx.Environment, error) {
	rem := layout.DefaultRem
	var cfg Layout
	if d != nil {
		cfg = d.Layout
		if cfg.Rem > 0 {
			rem = cfg.Rem
		}
	}

	metrics := layout.DefaultMetrics(rem)
	breakpoints := layout.DefaultBreakpoints(rem)

	overrides := []struct {
		field string
		raw   string
		dst   *float64
	}{
		{"layout.metrics.tab_bar_height", cfg.Metrics.TabBarHeight, &metrics.TabBarHeight},
		{"layout.metrics.sidebar_width", cfg.Metrics.SidebarWidth, &metrics.SidebarWidth},
		{"layout.metrics.sidebar_width_collapsed", cfg.Metrics.SidebarWidthCollapsed, &metrics.SidebarWidthCollapsed},
		{"layout.metrics.menu_height", cfg.Metrics.MenuHeight, &metrics.MenuHeight},
		{"layout.breakpoints.sidebar", cfg.Breakpoints.Sidebar, &breakpoints.Sidebar},
		{"layout.breakpoints.sidebar_collapsed", cfg.Breakpoints.SidebarCollapsed, &breakpoints.SidebarCollapsed},
	}
	for _, o := range overrides {
		if o.raw == "" {
			continue
		}
		value, err := layout.ParseLength(o.raw, rem)
		if err != nil {
			return navctx.Environment{}, waypointerrors.NewValidationError(o.field, err.Error(), err)
		}
		*o.dst = value
	}

	return navctx.Environment{Viewport: viewport, Metrics: metrics, Breakpoints: breakpoints}, nil
}

func toScreen(s Screen, catalog topology.Catalog, field string) (topology.Screen, error) {
	screen := topology.Screen{Name: s.Name, Path: s.Path, IconName: s.Icon, Label: s.Label}
	if s.Component == "" {
		return screen, nil
	}
	component, ok := catalog.Lookup(s.Component)
	if !ok {
		return topology.Screen{}, unknownComponent(field, s.Component)
	}
	screen.Component = component
	return screen, nil
}

func unknownComponent(field, key string) error {
	return waypointerrors.NewValidationError(field, fmt.Sprintf("unknown component %q", key), nil)
}

package routes

import (
	"fmt"

	"github.com/alexisbeaulieu97/waypoint/internal/topology"
	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

// Kind classifies where a route lives in the topology.
type Kind string

const (
	KindTab   Kind = "tab"
	KindStack Kind = "stack"
	KindModal Kind = "modal"
)

// Route is a registry entry.
type Route struct {
	Name    string
	Pattern Pattern
	Kind    Kind
	// Tab is the owning tab for tab and stack routes.
	Tab string
	// Container is the runtime container the route is registered under:
	// "<Tab>Stack" for stacked tabs and their screens, the tab name for plain
	// tabs, empty for modals.
	Container string
}

// Registry is the flat, name-keyed view of a navigator. It is immutable once built.
type Registry struct {
	routes map[string]Route
	order  []string
}

// NewRegistry flattens nav into a registry. It fails with a
// DuplicateRouteError the first time a name repeats across tabs, stack
// screens and modals, or collides with a runtime container name.
func NewRegistry(nav topology.Navigator) (*Registry, error) {
	r := &Registry{routes: make(map[string]Route)}

	reserved := map[string]struct{}{
		topology.MainContainer: {},
		topology.NotFoundRoute: {},
	}
	for _, tab := range nav.Tabs {
		if tab.HasStack() {
			reserved[tab.ContainerName()] = struct{}{}
		}
	}

	add := func(route Route) error {
		if _, ok := reserved[route.Name]; ok {
			return waypointerrors.NewDuplicateRouteError(route.Name)
		}
		if _, exists := r.routes[route.Name]; exists {
			return waypointerrors.NewDuplicateRouteError(route.Name)
		}
		if err := ValidatePattern(string(route.Pattern)); err != nil {
			return waypointerrors.NewValidationError(fmt.Sprintf("routes.%s.path", route.Name), err.Error(), err)
		}
		r.routes[route.Name] = route
		r.order = append(r.order, route.Name)
		return nil
	}

	for _, tab := range nav.Tabs {
		container := tab.ContainerName()
		if err := add(Route{Name: tab.Name, Pattern: Pattern(tab.Path), Kind: KindTab, Tab: tab.Name, Container: container}); err != nil {
			return nil, err
		}
		for _, screen := range tab.Stack {
			if err := add(Route{Name: screen.Name, Pattern: Pattern(screen.Path), Kind: KindStack, Tab: tab.Name, Container: container}); err != nil {
				return nil, err
			}
		}
	}

	for _, modal := range nav.Modals {
		if err := add(Route{Name: modal.Name, Pattern: Pattern(modal.Path), Kind: KindModal}); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Lookup returns the route registered under name.
func (r *Registry) Lookup(name string) (Route, bool) {
	if r == nil {
		return Route{}, false
	}
	route, ok := r.routes[name]
	return route, ok
}

// Routes returns all routes in registration order: tabs with their stacks, then modals.
func (r *Registry) Routes() []Route {
	if r == nil {
		return nil
	}
	out := make([]Route, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.routes[name])
	}
	return out
}

// Paths returns the name -> pattern mapping.
func (r *Registry) Paths() map[string]string {
	if r == nil {
		return nil
	}
	out := make(map[string]string, len(r.routes))
	for name, route := range r.routes {
		out[name] = string(route.Pattern)
	}
	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

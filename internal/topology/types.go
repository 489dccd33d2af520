package topology

import "strings"

// ContainerSuffix is appended to a tab name to form the name of the container
// that hosts the tab's nested stack.
const ContainerSuffix = "Stack"

// Reserved runtime names that share the route namespace.
const (
	MainContainer = "Main"
	NotFoundRoute = "NotFound"
)

// RouteProps is handed to a Component when a route is rendered.
type RouteProps struct {
	Name   string
	Params map[string]string
}

// Component is an opaque render capability attached to a route. Routing code
// never inspects it.
type Component interface {
	Render(props RouteProps) string
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(props RouteProps) string

// Render calls f.
func (f ComponentFunc) Render(props RouteProps) string {
	return f(props)
}

// Screen is a leaf route: a name, a path pattern and the component rendering it.
type Screen struct {
	Name      string
	Path      string
	Component Component
	IconName  string
	Label     string
}

// DisplayLabel returns the configured label or falls back to the route name.
func (s Screen) DisplayLabel() string {
	if strings.TrimSpace(s.Label) != "" {
		return s.Label
	}
	return s.Name
}

// Tab is a top-level section, optionally hosting a nested stack whose initial
// screen is the tab itself.
type Tab struct {
	Screen
	Stack []Screen
}

// HasStack reports whether the tab hosts nested stack screens.
func (t Tab) HasStack() bool {
	return len(t.Stack) > 0
}

// ContainerName returns the runtime name of the tab: "<Name>Stack" when the
// tab hosts a stack, the tab name otherwise.
func (t Tab) ContainerName() string {
	if t.HasStack() {
		return t.Name + ContainerSuffix
	}
	return t.Name
}

// Screens returns the tab's root screen followed by its stack screens.
func (t Tab) Screens() []Screen {
	screens := make([]Screen, 0, len(t.Stack)+1)
	screens = append(screens, t.Screen)
	screens = append(screens, t.Stack...)
	return screens
}

// Navigator is the root configuration of a navigation tree. It is built once
// per session and treated as read-only afterwards.
type Navigator struct {
	Domain   string
	Scheme   string
	Prefixes []string
	Tabs     []Tab
	Modals   []Screen
	NotFound Component
}

// Tab looks up a tab by name.
func (n Navigator) Tab(name string) (Tab, bool) {
	for _, tab := range n.Tabs {
		if tab.Name == name {
			return tab, true
		}
	}
	return Tab{}, false
}

// TabForContainer looks up a tab by its runtime container name.
func (n Navigator) TabForContainer(container string) (Tab, bool) {
	for _, tab := range n.Tabs {
		if tab.ContainerName() == container {
			return tab, true
		}
	}
	return Tab{}, false
}

// Modal looks up a modal screen by name.
func (n Navigator) Modal(name string) (Screen, bool) {
	for _, modal := range n.Modals {
		if modal.Name == name {
			return modal, true
		}
	}
	return Screen{}, false
}

// Screen finds any screen (tab root, stack screen or modal) by route name.
func (n Navigator) Screen(name string) (Screen, bool) {
	for _, tab := range n.Tabs {
		for _, screen := range tab.Screens() {
			if screen.Name == name {
				return screen, true
			}
		}
	}
	return n.Modal(name)
}

// AcceptedPrefixes returns the URL prefixes treated as deep links into the
// app: the app scheme URL, the public domain, then any extra prefixes.
func (n Navigator) AcceptedPrefixes() []string {
	prefixes := make([]string, 0, len(n.Prefixes)+2)
	seen := make(map[string]struct{}, len(n.Prefixes)+2)
	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		prefixes = append(prefixes, p)
	}

	if n.Scheme != "" {
		add(SchemeURL(n.Scheme))
	}
	add(n.Domain)
	for _, p := range n.Prefixes {
		add(p)
	}
	return prefixes
}

// SchemeURL builds the root URL of an app-internal scheme, e.g. "myapp://".
func SchemeURL(scheme string) string {
	scheme = strings.TrimSuffix(strings.TrimSpace(scheme), "://")
	scheme = strings.TrimSuffix(scheme, ":")
	return scheme + "://"
}

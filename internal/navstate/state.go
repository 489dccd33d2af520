// Package navstate is a small in-memory navigation runtime: an active tab,
// one history stack per tab and an optional modal on top. It drives previews
// and tests; it is not persisted.
package navstate

import (
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

// State tracks where the user is.
type State struct {
	registry *routes.Registry
	tabs     []topology.Tab
	active   int
	stacks   map[string]*Stack
	modal    *Entry
	notFound *Entry
}

// New starts on the first tab.
func New(registry *routes.Registry, tabs []topology.Tab) *State {
	s := &State{registry: registry, stacks: make(map[string]*Stack)}
	s.SetTabs(tabs)
	return s
}

// SetTabs swaps the presented tabs, for example when the layout switches to
// the compact tab set. Stacks of tabs that remain are kept and the focus
// follows the current screen when possible.
func (s *State) SetTabs(tabs []topology.Tab) {
	current := s.focusedRoute()

	s.tabs = append([]topology.Tab(nil), tabs...)
	stacks := make(map[string]*Stack, len(tabs))
	for _, tab := range s.tabs {
		if existing, ok := s.stacks[tab.Name]; ok {
			stacks[tab.Name] = existing
			continue
		}
		stacks[tab.Name] = NewStack(Entry{Route: tab.Name})
	}
	s.stacks = stacks

	s.active = 0
	if current != "" {
		if i := s.tabIndexFor(current); i >= 0 {
			s.active = i
		}
	}
}

// Tabs returns the presented tabs.
func (s *State) Tabs() []topology.Tab {
	return s.tabs
}

// ActiveTab returns the focused tab.
func (s *State) ActiveTab() topology.Tab {
	if len(s.tabs) == 0 {
		return topology.Tab{}
	}
	return s.tabs[s.active]
}

// SelectTab focuses a tab by tab or container name. Selecting the tab that is
// already focused pops its stack to the root.
func (s *State) SelectTab(name string) error {
	for i, tab := range s.tabs {
		if tab.Name != name && tab.ContainerName() != name {
			continue
		}
		if i == s.active {
			s.stacks[tab.Name].PopToRoot()
		}
		s.active = i
		s.modal = nil
		s.notFound = nil
		return nil
	}
	return waypointerrors.NewUnknownRouteError(name)
}

// Open navigates to a route by name.
func (s *State) Open(name string, params map[string]string) error {
	route, ok := s.registry.Lookup(name)
	if !ok {
		return waypointerrors.NewUnknownRouteError(name)
	}
	return s.Navigate(routes.Match{Path: route.Pattern.String(), Route: route, Params: params})
}

// Navigate applies a matched path. Modals open on top of the current tab,
// tab roots focus their tab, stack screens are pushed onto the stack of the
// tab presenting them and unmatched paths show the not-found screen.
func (s *State) Navigate(m routes.Match) error {
	if m.NotFound {
		s.modal = nil
		s.notFound = &Entry{Route: topology.NotFoundRoute, Params: map[string]string{"path": m.Path}}
		return nil
	}

	entry := Entry{Route: m.Route.Name, Params: m.Params}
	if m.Route.Kind == routes.KindModal {
		s.notFound = nil
		s.modal = &entry
		return nil
	}

	i := s.tabIndexFor(m.Route.Name)
	if i < 0 {
		return waypointerrors.NewUnknownRouteError(m.Route.Name)
	}
	s.active = i
	s.modal = nil
	s.notFound = nil

	tab := s.tabs[i]
	if tab.Name == entry.Route {
		s.stacks[tab.Name].PopToRoot()
		return nil
	}
	s.stacks[tab.Name].Push(entry)
	return nil
}

// GoBack closes the modal or not-found screen, or pops the active stack. It
// reports whether anything changed.
func (s *State) GoBack() bool {
	switch {
	case s.modal != nil:
		s.modal = nil
		return true
	case s.notFound != nil:
		s.notFound = nil
		return true
	}
	if len(s.tabs) == 0 {
		return false
	}
	return s.stacks[s.ActiveTab().Name].Pop() != nil
}

// ShowBack reports whether the focused screen sits above another screen in
// its stack.
func (s *State) ShowBack() bool {
	if s.modal != nil || s.notFound != nil || len(s.tabs) == 0 {
		return false
	}
	return s.stacks[s.ActiveTab().Name].Len() > 1
}

// Current returns the focused entry: the modal, the not-found screen or the
// top of the active stack.
func (s *State) Current() Entry {
	switch {
	case s.modal != nil:
		return *s.modal
	case s.notFound != nil:
		return *s.notFound
	case len(s.tabs) == 0:
		return Entry{}
	}
	return *s.stacks[s.ActiveTab().Name].Peek()
}

// Underlying returns the top of the active stack, which stays visible under a
// modal.
func (s *State) Underlying() Entry {
	if len(s.tabs) == 0 {
		return Entry{}
	}
	return *s.stacks[s.ActiveTab().Name].Peek()
}

// ModalOpen reports whether a modal is shown.
func (s *State) ModalOpen() bool {
	return s.modal != nil
}

// History returns the active tab's stack, bottom first.
func (s *State) History() []Entry {
	if len(s.tabs) == 0 {
		return nil
	}
	return s.stacks[s.ActiveTab().Name].Entries()
}

func (s *State) focusedRoute() string {
	if len(s.tabs) == 0 {
		return ""
	}
	return s.stacks[s.ActiveTab().Name].Peek().Route
}

func (s *State) tabIndexFor(route string) int {
	for i, tab := range s.tabs {
		for _, screen := range tab.Screens() {
			if screen.Name == route {
				return i
			}
		}
	}
	return -1
}

// Package chrome builds the view model navigation chrome renders: one item
// per presented tab plus the sidebar toggle.
package chrome

import (
	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
)

// Target is the navigation action an item triggers: focus Route and, when
// Screen is set, open that screen inside it.
type Target struct {
	Route  string `json:"route"`
	Screen string `json:"screen,omitempty"`
}

// Item is one entry of a tab bar, sidebar or menu.
type Item struct {
	RouteName string `json:"routeName"`
	Label     string `json:"label"`
	Icon      string `json:"icon,omitempty"`
	Focused   bool   `json:"focused"`
	Href      string `json:"href,omitempty"`
	Target    Target `json:"target"`
}

// Bar is the whole chrome for a mode.
type Bar struct {
	Mode      layout.Mode `json:"mode"`
	Collapsed bool        `json:"collapsed"`
	Items     []Item      `json:"items"`
	// ToggleIcon is the sidebar collapse button icon; empty outside sidebar mode.
	ToggleIcon string `json:"toggleIcon,omitempty"`
	// ShowLabels is false for a collapsed sidebar, which renders icons only.
	ShowLabels bool `json:"showLabels"`
}

// Items builds chrome items for tabs. focused is the name of the focused
// tab. On web, stacked tabs navigate to their container with the tab root as
// the nested screen so the URL reflects the tab itself.
func Items(tabs []topology.Tab, focused string, platform layout.Platform, resolver *routes.Resolver) []Item {
	items := make([]Item, 0, len(tabs))
	for _, tab := range tabs {
		routeName := tab.ContainerName()

		item := Item{
			RouteName: routeName,
			Label:     tab.DisplayLabel(),
			Icon:      tab.IconName,
			Focused:   tab.Name == focused,
			Target:    Target{Route: routeName},
		}
		if !platform.IsNative() && tab.HasStack() {
			item.Target.Screen = tab.Name
		}
		if href, err := resolver.Resolve(routeName, nil); err == nil {
			item.Href = href
		}
		items = append(items, item)
	}
	return items
}

// Build assembles the chrome for mode.
func Build(mode layout.Mode, collapsed bool, items []Item) Bar {
	bar := Bar{Mode: mode, Collapsed: collapsed, Items: items, ShowLabels: true}
	if mode == layout.Sidebar {
		bar.ShowLabels = !collapsed
		bar.ToggleIcon = ToggleIcon(collapsed)
	}
	return bar
}

// ToggleIcon is the icon of the sidebar collapse button.
func ToggleIcon(collapsed bool) string {
	if collapsed {
		return "chevron-forward"
	}
	return "chevron-back"
}

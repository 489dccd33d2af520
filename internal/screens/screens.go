// Package screens provides the stock components referenced from navigator
// configuration files. They render plain text and are meant for previews.
package screens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/waypoint/internal/topology"
)

// Catalog keys.
const (
	KeyScreen   = "screen"
	KeyModal    = "modal"
	KeyNotFound = "not-found"
)

// DefaultCatalog returns the stock components keyed for configuration files.
func DefaultCatalog() topology.Catalog {
	return topology.Catalog{
		KeyScreen:   Placeholder(),
		KeyModal:    Modal(),
		KeyNotFound: NotFound(),
	}
}

// Placeholder renders the route name and its params.
func Placeholder() topology.Component {
	return topology.ComponentFunc(func(props topology.RouteProps) string {
		return Title(props)
	})
}

// Modal renders the route name inside a frame.
func Modal() topology.Component {
	return topology.ComponentFunc(func(props topology.RouteProps) string {
		title := Title(props)
		border := strings.Repeat("─", len([]rune(title))+2)
		return fmt.Sprintf("┌%s┐\n│ %s │\n└%s┘", border, title, border)
	})
}

// NotFound renders the fallback for unmatched paths.
func NotFound() topology.Component {
	return topology.ComponentFunc(func(topology.RouteProps) string {
		return "404"
	})
}

// More lists the screens moved out of a compact tab bar.
func More(items []topology.Screen) topology.Component {
	items = append([]topology.Screen(nil), items...)
	return topology.ComponentFunc(func(props topology.RouteProps) string {
		lines := make([]string, 0, len(items)+1)
		lines = append(lines, props.Name)
		for _, item := range items {
			icon := item.IconName
			if icon == "" {
				icon = "•"
			}
			lines = append(lines, fmt.Sprintf("  %s %s", icon, item.DisplayLabel()))
		}
		return strings.Join(lines, "\n")
	})
}

// Title is the heading a screen shows: the route name followed by its params
// in key order.
func Title(props topology.RouteProps) string {
	if len(props.Params) == 0 {
		return props.Name
	}
	keys := make([]string, 0, len(props.Params))
	for k := range props.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+props.Params[k])
	}
	return fmt.Sprintf("%s (%s)", props.Name, strings.Join(pairs, ", "))
}

// Render draws screen with props, falling back to the placeholder when no
// component is attached.
func Render(screen topology.Screen, params map[string]string) string {
	props := topology.RouteProps{Name: screen.Name, Params: params}
	if screen.Component == nil {
		return Title(props)
	}
	return screen.Component.Render(props)
}

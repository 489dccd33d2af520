// Package layout selects the navigation chrome for a viewport and derives the
// content insets every screen must respect.
package layout

import (
	"fmt"
	"strings"
)

// Mode is the chrome paradigm used to present tab navigation.
type Mode string

const (
	BottomTabs Mode = "bottom-tabs"
	Sidebar    Mode = "sidebar"
	Menu       Mode = "menu"
)

// Modes lists every layout mode.
var Modes = []Mode{BottomTabs, Sidebar, Menu}

func (m Mode) String() string {
	return string(m)
}

// Platform identifies the runtime the navigator is mounted on.
type Platform string

const (
	Web     Platform = "web"
	IOS     Platform = "ios"
	Android Platform = "android"
)

// ParsePlatform converts a user-supplied platform name.
func ParsePlatform(raw string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(raw))); p {
	case Web, IOS, Android:
		return p, nil
	case "":
		return Web, nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected web, ios or android)", raw)
	}
}

// IsNative reports whether the platform is anything other than web.
func (p Platform) IsNative() bool {
	return p != Web
}

// Viewport is the current window size and platform.
type Viewport struct {
	Width    float64
	Height   float64
	Platform Platform
}

// Select picks the layout mode. Narrow native viewports get bottom tabs,
// narrow web viewports get a menu bar, and anything at or above the sidebar
// breakpoint gets a sidebar. There is no hysteresis.
func Select(isNative bool, viewportWidth, sidebarBreakpoint float64) Mode {
	if viewportWidth >= sidebarBreakpoint {
		return Sidebar
	}
	if isNative {
		return BottomTabs
	}
	return Menu
}

// SelectFor applies Select to a viewport.
func SelectFor(v Viewport, b Breakpoints) Mode {
	return Select(v.Platform.IsNative(), v.Width, b.Sidebar)
}

// DefaultCollapsed is the sidebar collapse state used when a navigator mounts.
func DefaultCollapsed(viewportWidth, collapsedBreakpoint float64) bool {
	return collapsedBreakpoint > viewportWidth
}

// Presentation returns how modal screens are presented in mode: full modal
// cards over bottom tabs, transparent overlays otherwise.
func Presentation(mode Mode) string {
	if mode == BottomTabs {
		return "modal"
	}
	return "transparentModal"
}

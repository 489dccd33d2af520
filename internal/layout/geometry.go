package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Default chrome sizes in rem.
const (
	DefaultRem                      = 4.0
	tabBarHeightRem                 = 20.0
	sidebarWidthRem                 = 60.0
	sidebarWidthCollapsedRem        = 20.0
	menuHeightRem                   = 16.0
	sidebarBreakpointRem            = 160.0
	sidebarCollapsedBreakpointRem   = 250.0
	gestureResponseDistanceOverhang = 50.0
)

// Metrics are the configured chrome sizes.
type Metrics struct {
	TabBarHeight          float64 `json:"tabBarHeight" yaml:"tab_bar_height"`
	SidebarWidth          float64 `json:"sidebarWidth" yaml:"sidebar_width"`
	SidebarWidthCollapsed float64 `json:"sidebarWidthCollapsed" yaml:"sidebar_width_collapsed"`
	MenuHeight            float64 `json:"menuHeight" yaml:"menu_height"`
}

// DefaultMetrics returns the stock chrome sizes for a rem unit.
func DefaultMetrics(rem float64) Metrics {
	return Metrics{
		TabBarHeight:          tabBarHeightRem * rem,
		SidebarWidth:          sidebarWidthRem * rem,
		SidebarWidthCollapsed: sidebarWidthCollapsedRem * rem,
		MenuHeight:            menuHeightRem * rem,
	}
}

// Breakpoints are the viewport widths that drive mode and collapse defaults.
type Breakpoints struct {
	Sidebar          float64 `json:"sidebar" yaml:"sidebar"`
	SidebarCollapsed float64 `json:"sidebarCollapsed" yaml:"sidebar_collapsed"`
}

// DefaultBreakpoints returns the stock breakpoints for a rem unit.
func DefaultBreakpoints(rem float64) Breakpoints {
	return Breakpoints{
		Sidebar:          sidebarBreakpointRem * rem,
		SidebarCollapsed: sidebarCollapsedBreakpointRem * rem,
	}
}

// Geometry is the four-sided content inset screens apply so content does not
// render under navigation chrome.
type Geometry struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Margins derives the content inset for a mode. Exactly one of top, bottom
// and left is non-zero for positive metrics; right is always zero.
func Margins(mode Mode, collapsed bool, m Metrics) Geometry {
	var g Geometry
	switch mode {
	case Menu:
		g.Top = m.MenuHeight
	case BottomTabs:
		g.Bottom = m.TabBarHeight
	case Sidebar:
		if collapsed {
			g.Left = m.SidebarWidthCollapsed
		} else {
			g.Left = m.SidebarWidth
		}
	}
	return g
}

// Edges returns the inset as [top, right, bottom, left].
func (g Geometry) Edges() [4]float64 {
	return [4]float64{g.Top, g.Right, g.Bottom, g.Left}
}

// CSS renders the inset as a CSS margin shorthand.
func (g Geometry) CSS() string {
	edges := g.Edges()
	parts := make([]string, 0, len(edges))
	for _, e := range edges {
		parts = append(parts, formatLength(e)+"px")
	}
	return strings.Join(parts, " ")
}

// GestureResponseDistance is how far from the left edge a back-swipe may
// start in a stack: the sidebar inset plus a fixed overhang.
func GestureResponseDistance(mode Mode, collapsed bool, m Metrics) float64 {
	return Margins(mode, collapsed, m).Left + gestureResponseDistanceOverhang
}

// ParseLength converts "20rem", "80px" or "80" into pixels.
func ParseLength(raw string, rem float64) (float64, error) {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return 0, fmt.Errorf("length cannot be empty")
	}

	scale := 1.0
	switch {
	case strings.HasSuffix(s, "rem"):
		s = strings.TrimSuffix(s, "rem")
		scale = rem
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("length %q must not be negative", raw)
	}
	return value * scale, nil
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

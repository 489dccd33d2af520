package config

// Document is the root of a navigator configuration file.
type Document struct {
	Version  string     `yaml:"version" toml:"version" validate:"required,semver"`
	Domain   string     `yaml:"domain,omitempty" toml:"domain" validate:"omitempty,url"`
	Scheme   string     `yaml:"scheme,omitempty" toml:"scheme" validate:"omitempty,url_scheme"`
	Prefixes []string   `yaml:"prefixes,omitempty" toml:"prefixes" validate:"dive,required"`
	NotFound string     `yaml:"not_found,omitempty" toml:"not_found"`
	Layout   Layout     `yaml:"layout,omitempty" toml:"layout"`
	Tabs     TabList    `yaml:"tabs" toml:"tabs" validate:"required,min=1,dive"`
	Modals   ScreenList `yaml:"modals,omitempty" toml:"modals" validate:"dive"`
}

// Layout holds chrome sizes and breakpoints. Lengths are strings such as
// "20rem", "80px" or "80".
type Layout struct {
	Rem         float64     `yaml:"rem,omitempty" toml:"rem" validate:"gte=0"`
	Breakpoints Breakpoints `yaml:"breakpoints,omitempty" toml:"breakpoints"`
	Metrics     Metrics     `yaml:"metrics,omitempty" toml:"metrics"`
	Overflow    Overflow    `yaml:"overflow,omitempty" toml:"overflow"`
}

// Breakpoints overrides the viewport widths that switch layout mode and the
// default sidebar collapse state.
type Breakpoints struct {
	Sidebar          string `yaml:"sidebar,omitempty" toml:"sidebar" validate:"omitempty,length"`
	SidebarCollapsed string `yaml:"sidebar_collapsed,omitempty" toml:"sidebar_collapsed" validate:"omitempty,length"`
}

// Metrics overrides chrome sizes.
type Metrics struct {
	TabBarHeight          string `yaml:"tab_bar_height,omitempty" toml:"tab_bar_height" validate:"omitempty,length"`
	SidebarWidth          string `yaml:"sidebar_width,omitempty" toml:"sidebar_width" validate:"omitempty,length"`
	SidebarWidthCollapsed string `yaml:"sidebar_width_collapsed,omitempty" toml:"sidebar_width_collapsed" validate:"omitempty,length"`
	MenuHeight            string `yaml:"menu_height,omitempty" toml:"menu_height" validate:"omitempty,length"`
}

// Overflow configures the "more" tab used by compact bottom-tab bars. A zero
// limit disables it.
type Overflow struct {
	Limit     int    `yaml:"limit,omitempty" toml:"limit" validate:"omitempty,gte=2"`
	Name      string `yaml:"name,omitempty" toml:"name" validate:"omitempty,route_name"`
	Path      string `yaml:"path,omitempty" toml:"path" validate:"omitempty,path_pattern"`
	Label     string `yaml:"label,omitempty" toml:"label"`
	Icon      string `yaml:"icon,omitempty" toml:"icon"`
	Component string `yaml:"component,omitempty" toml:"component"`
}

// Screen is a route declaration.
type Screen struct {
	Name      string `yaml:"name,omitempty" toml:"name" validate:"required,route_name"`
	Path      string `yaml:"path" toml:"path" validate:"required,path_pattern"`
	Component string `yaml:"component,omitempty" toml:"component"`
	Icon      string `yaml:"icon,omitempty" toml:"icon"`
	Label     string `yaml:"label,omitempty" toml:"label"`
}

// Tab is a top-level section with an optional nested stack.
type Tab struct {
	Name      string     `yaml:"name,omitempty" toml:"name" validate:"required,route_name"`
	Path      string     `yaml:"path" toml:"path" validate:"required,path_pattern"`
	Component string     `yaml:"component,omitempty" toml:"component"`
	Icon      string     `yaml:"icon,omitempty" toml:"icon"`
	Label     string     `yaml:"label,omitempty" toml:"label"`
	Stack     ScreenList `yaml:"stack,omitempty" toml:"stack" validate:"dive"`
}

// Root returns the tab's own screen declaration.
func (t Tab) Root() Screen {
	return Screen{Name: t.Name, Path: t.Path, Component: t.Component, Icon: t.Icon, Label: t.Label}
}

// TabList keeps tabs in declaration order.
type TabList []Tab

// ScreenList keeps screens in declaration order.
type ScreenList []Screen

// Defaults for the overflow tab.
const (
	DefaultOverflowName  = "More"
	DefaultOverflowPath  = "/more"
	DefaultOverflowLabel = "More"
	DefaultOverflowIcon  = "dots-horizontal"
)

// Enabled reports whether an overflow limit is configured.
func (o Overflow) Enabled() bool {
	return o.Limit > 0
}

func (o Overflow) screen() Screen {
	s := Screen{Name: o.Name, Path: o.Path, Label: o.Label, Icon: o.Icon, Component: o.Component}
	if s.Name == "" {
		s.Name = DefaultOverflowName
	}
	if s.Path == "" {
		s.Path = DefaultOverflowPath
	}
	if s.Label == "" {
		s.Label = DefaultOverflowLabel
	}
	if s.Icon == "" {
		s.Icon = DefaultOverflowIcon
	}
	return s
}

// RouteCount returns the number of declared routes.
func (d *Document) RouteCount() int {
	if d == nil {
		return 0
	}
	n := len(d.Modals)
	for _, tab := range d.Tabs {
		n += 1 + len(tab.Stack)
	}
	return n
}

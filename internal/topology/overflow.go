package topology

// OverflowTabs returns the tabs that do not fit in a bar of limit slots when
// one slot is reserved for the overflow tab. It returns nil when everything fits.
func (n Navigator) OverflowTabs(limit int) []Tab {
	if limit <= 0 || len(n.Tabs) <= limit {
		return nil
	}
	keep := limit - 1
	return append([]Tab(nil), n.Tabs[keep:]...)
}

// WithOverflow returns a derived navigator that keeps the first limit-1 tabs
// and moves the remaining ones into a synthetic tab built from more. The moved
// tabs' root and stack screens become the synthetic tab's stack, so every
// screen keeps a single definition and the route namespace is unchanged apart
// from the added tab.
func (n Navigator) WithOverflow(limit int, more Screen) Navigator {
	overflow := n.OverflowTabs(limit)
	if len(overflow) == 0 {
		return n
	}

	derived := n
	derived.Tabs = make([]Tab, 0, limit)
	derived.Tabs = append(derived.Tabs, n.Tabs[:limit-1]...)

	moreTab := Tab{Screen: more}
	for _, tab := range overflow {
		moreTab.Stack = append(moreTab.Stack, tab.Screens()...)
	}
	derived.Tabs = append(derived.Tabs, moreTab)

	return derived
}

// Catalog maps component keys used in configuration files to components.
type Catalog map[string]Component

// Lookup returns the component registered under key.
func (c Catalog) Lookup(key string) (Component, bool) {
	if c == nil {
		return nil, false
	}
	component, ok := c[key]
	return component, ok
}

// Keys returns the registered keys in no particular order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

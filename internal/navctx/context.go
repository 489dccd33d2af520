// Package navctx holds the state shared by every screen under a mounted
// navigator: the layout mode, the content insets and the link resolver. A
// Context is created per navigator and passed down explicitly.
package navctx

import (
	"sort"
	"sync"

	"go.uber.org/atomic"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/logger"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
)

// Environment is the viewport and chrome configuration a navigator mounts with.
type Environment struct {
	Viewport    layout.Viewport
	Metrics     layout.Metrics
	Breakpoints layout.Breakpoints
}

// Snapshot is a point-in-time view of the derived navigation state.
type Snapshot struct {
	Mode      layout.Mode
	Geometry  layout.Geometry
	Collapsed bool
	Viewport  layout.Viewport
}

// Listener is notified after the snapshot changes.
type Listener func(Snapshot)

// Option customises a Context.
type Option func(*Context)

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Context) {
		c.log = log
	}
}

// WithResolverFor picks the link resolver from the current layout mode, for
// navigators that register different routes per mode. A nil result falls back
// to the resolver passed to New.
func WithResolverFor(fn func(layout.Mode) *routes.Resolver) Option {
	return func(c *Context) {
		c.resolverFor = fn
	}
}

// Context exposes layout mode, geometry and link resolution to a navigator's
// subtree. Mode and geometry are derived on every read; only the sidebar
// collapse flag is owned state.
type Context struct {
	resolver    *routes.Resolver
	resolverFor func(layout.Mode) *routes.Resolver
	log         *logger.Logger

	collapsed *atomic.Bool
	closed    *atomic.Bool

	mu          sync.RWMutex
	viewport    layout.Viewport
	metrics     layout.Metrics
	breakpoints layout.Breakpoints
	listeners   map[int]Listener
	nextID      int
}

// New mounts a context. The sidebar collapse default is computed once here
// from the viewport width; later viewport changes never override it.
func New(resolver *routes.Resolver, env Environment, opts ...Option) *Context {
	c := &Context{
		resolver:    resolver,
		collapsed:   atomic.NewBool(layout.DefaultCollapsed(env.Viewport.Width, env.Breakpoints.SidebarCollapsed)),
		closed:      atomic.NewBool(false),
		viewport:    env.Viewport,
		metrics:     env.Metrics,
		breakpoints: env.Breakpoints,
		listeners:   make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.log.DebugEnabled() {
		c.log.WithFields(map[string]any{
			"mode":      c.Mode().String(),
			"collapsed": c.Collapsed(),
			"width":     env.Viewport.Width,
			"platform":  string(env.Viewport.Platform),
		}).Debug("navigation context mounted")
	}

	return c
}

// Mode returns the layout mode for the current viewport.
func (c *Context) Mode() layout.Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return layout.SelectFor(c.viewport, c.breakpoints)
}

// Collapsed reports the sidebar collapse state.
func (c *Context) Collapsed() bool {
	return c.collapsed.Load()
}

// Geometry returns the content insets for the current mode and collapse state.
func (c *Context) Geometry() layout.Geometry {
	return c.Snapshot().Geometry
}

// Snapshot returns the derived state by value.
func (c *Context) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	mode := layout.SelectFor(c.viewport, c.breakpoints)
	collapsed := c.collapsed.Load()
	return Snapshot{
		Mode:      mode,
		Geometry:  layout.Margins(mode, collapsed, c.metrics),
		Collapsed: collapsed,
		Viewport:  c.viewport,
	}
}

// Metrics returns the configured chrome sizes.
func (c *Context) Metrics() layout.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.metrics
}

// Resolver returns the link resolver for the current mode.
func (c *Context) Resolver() *routes.Resolver {
	if c.resolverFor != nil {
		if r := c.resolverFor(c.Mode()); r != nil {
			return r
		}
	}
	return c.resolver
}

// ResolveLink resolves a route name and params into a path.
func (c *Context) ResolveLink(name string, params routes.Params) (string, error) {
	path, err := c.Resolver().Resolve(name, params)
	if err != nil {
		c.log.ForRoute(name).Error(err, "link resolution failed")
		return "", err
	}
	return path, nil
}

// SetViewport records a resize, rotation or platform change.
func (c *Context) SetViewport(v layout.Viewport) {
	if c.closed.Load() {
		return
	}
	c.mu.Lock()
	previous := layout.SelectFor(c.viewport, c.breakpoints)
	c.viewport = v
	current := layout.SelectFor(c.viewport, c.breakpoints)
	c.mu.Unlock()

	if previous != current {
		c.log.WithFields(map[string]any{"from": previous.String(), "to": current.String(), "width": v.Width}).Debug("layout mode changed")
	}
	c.notify()
}

// SetMetrics replaces the chrome sizes.
func (c *Context) SetMetrics(m layout.Metrics) {
	if c.closed.Load() {
		return
	}
	c.mu.Lock()
	c.metrics = m
	c.mu.Unlock()
	c.notify()
}

// ToggleSidebar flips the collapse state and returns the new value.
func (c *Context) ToggleSidebar() bool {
	if c.closed.Load() {
		return c.collapsed.Load()
	}
	collapsed := !c.collapsed.Toggle()
	c.notify()
	return collapsed
}

// SetCollapsed sets the collapse state explicitly.
func (c *Context) SetCollapsed(collapsed bool) {
	if c.closed.Load() {
		return
	}
	if c.collapsed.Swap(collapsed) != collapsed {
		c.notify()
	}
}

// Subscribe registers fn to run after each change. The returned func removes it.
func (c *Context) Subscribe(fn Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() || fn == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Close tears the context down: listeners are dropped and further mutations
// are ignored.
func (c *Context) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.mu.Lock()
	c.listeners = make(map[int]Listener)
	c.mu.Unlock()
	c.log.Debug("navigation context closed")
}

func (c *Context) notify() {
	snapshot := c.Snapshot()

	c.mu.RLock()
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	listeners := make([]Listener, 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		listeners = append(listeners, c.listeners[id])
	}
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

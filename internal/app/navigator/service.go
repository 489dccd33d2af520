// Package navigator assembles a navigator from configuration: the topology,
// its route registry, the deep-link path table and the link resolver.
package navigator

import (
	"fmt"

	"github.com/alexisbeaulieu97/waypoint/internal/config"
	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/logger"
	"github.com/alexisbeaulieu97/waypoint/internal/navctx"
	"github.com/alexisbeaulieu97/waypoint/internal/pathtable"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/internal/screens"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
)

// Navigator is a validated, immutable navigation tree and everything derived
// from it.
type Navigator struct {
	Path     string
	Document *config.Document

	Topology topology.Navigator
	Registry *routes.Registry
	Linking  pathtable.LinkingConfig
	Resolver *routes.Resolver

	// Compact is the topology shown by native bottom tabs once the overflow
	// limit is exceeded. It equals Topology when nothing overflows.
	Compact         topology.Navigator
	CompactResolver *routes.Resolver
	OverflowLimit   int
}

// Service loads navigators.
type Service struct {
	catalog topology.Catalog
	log     *logger.Logger
}

// NewService constructs a service resolving component keys through catalog.
// A nil catalog uses the stock screens.
func NewService(catalog topology.Catalog, log *logger.Logger) *Service {
	if catalog == nil {
		catalog = screens.DefaultCatalog()
	}
	return &Service{catalog: catalog, log: log}
}

// Load parses the configuration at path and builds the navigator.
func (s *Service) Load(path string) (*Navigator, error) {
	doc, err := config.ParseConfig(path)
	if err != nil {
		return nil, err
	}

	nav, err := s.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	nav.Path = path

	s.log.ForConfig(path).WithFields(map[string]any{
		"routes": nav.Registry.Len(),
		"tabs":   len(nav.Topology.Tabs),
		"modals": len(nav.Topology.Modals),
	}).Debug("navigator loaded")

	return nav, nil
}

// FromDocument converts a parsed document.
func (s *Service) FromDocument(doc *config.Document) (*Navigator, error) {
	topo, err := config.ToNavigator(doc, s.catalog)
	if err != nil {
		return nil, err
	}
	if topo.NotFound == nil {
		s.log.Debug("no not_found component configured, unmatched paths get no catch-all route")
	}

	limit, more, err := config.OverflowScreen(doc, s.catalog)
	if err != nil {
		return nil, err
	}

	nav, err := Build(topo, WithOverflow(limit, more))
	if err != nil {
		return nil, err
	}
	nav.Document = doc
	return nav, nil
}

// Option customises Build.
type Option func(*buildOptions)

type buildOptions struct {
	overflowLimit int
	more          topology.Screen
	resolverOpts  []routes.ResolverOption
}

// WithOverflow enables the compact "more" tab for bars with limit slots.
func WithOverflow(limit int, more topology.Screen) Option {
	return func(o *buildOptions) {
		o.overflowLimit = limit
		o.more = more
	}
}

// WithResolverOptions forwards options to both resolvers.
func WithResolverOptions(opts ...routes.ResolverOption) Option {
	return func(o *buildOptions) {
		o.resolverOpts = append(o.resolverOpts, opts...)
	}
}

// Build validates a topology eagerly. Duplicate route names and malformed
// patterns fail here rather than at first navigation.
func Build(topo topology.Navigator, opts ...Option) (*Navigator, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	registry, err := routes.NewRegistry(topo)
	if err != nil {
		return nil, err
	}

	nav := &Navigator{
		Topology: topo,
		Registry: registry,
		Linking:  pathtable.Build(topo),
		Resolver: routes.NewResolver(registry, o.resolverOpts...),
		Compact:  topo,
	}
	nav.CompactResolver = nav.Resolver

	if overflow := topo.OverflowTabs(o.overflowLimit); len(overflow) > 0 {
		more := o.more
		if more.Component == nil {
			items := make([]topology.Screen, 0, len(overflow))
			for _, tab := range overflow {
				items = append(items, tab.Screen)
			}
			more.Component = screens.More(items)
		}

		compact := topo.WithOverflow(o.overflowLimit, more)
		compactRegistry, err := routes.NewRegistry(compact)
		if err != nil {
			return nil, fmt.Errorf("overflow tab: %w", err)
		}
		nav.Compact = compact
		nav.CompactResolver = routes.NewResolver(compactRegistry, o.resolverOpts...)
		nav.OverflowLimit = o.overflowLimit
	}

	return nav, nil
}

// TabsFor returns the tabs presented in mode: the compact set for bottom
// tabs, every tab otherwise.
func (n *Navigator) TabsFor(mode layout.Mode) []topology.Tab {
	if mode == layout.BottomTabs {
		return n.Compact.Tabs
	}
	return n.Topology.Tabs
}

// ResolverFor returns the resolver matching TabsFor(mode).
func (n *Navigator) ResolverFor(mode layout.Mode) *routes.Resolver {
	if mode == layout.BottomTabs {
		return n.CompactResolver
	}
	return n.Resolver
}

// Environment returns the layout environment for viewport.
func (n *Navigator) Environment(viewport layout.Viewport) (navctx.Environment, error) {
	return n.Document.Environment(viewport)
}

// Mount creates the shared navigation context for a viewport. Links resolve
// against ResolverFor the context's current mode, so the overflow tab is
// reachable only while bottom tabs are shown.
func (n *Navigator) Mount(viewport layout.Viewport, opts ...navctx.Option) (*navctx.Context, error) {
	env, err := n.Environment(viewport)
	if err != nil {
		return nil, err
	}
	opts = append([]navctx.Option{navctx.WithResolverFor(n.ResolverFor)}, opts...)
	return navctx.New(n.Resolver, env, opts...), nil
}

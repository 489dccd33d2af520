package routes

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/waypoint/internal/topology"
	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

// Params carries link parameters. Values are strings or numbers; anything
// else is formatted with fmt.
type Params map[string]any

// Resolver turns a route name and parameters into a concrete path.
type Resolver struct {
	registry        *Registry
	containerSuffix string
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithContainerSuffix sets the suffix stripped from a name when a direct
// lookup fails, so a link to a tab's container ("OrdersStack") reaches the
// tab route ("Orders"). An empty suffix disables the fallback.
func WithContainerSuffix(suffix string) ResolverOption {
	return func(r *Resolver) {
		r.containerSuffix = suffix
	}
}

// NewResolver constructs a Resolver over reg. The container-suffix fallback
// defaults to topology.ContainerSuffix.
func NewResolver(reg *Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry:        reg,
		containerSuffix: topology.ContainerSuffix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry backing the resolver.
func (r *Resolver) Registry() *Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Route finds the route for name, applying the container-suffix fallback.
func (r *Resolver) Route(name string) (Route, error) {
	if r == nil {
		return Route{}, waypointerrors.NewUnknownRouteError(name)
	}
	if route, ok := r.registry.Lookup(name); ok {
		return route, nil
	}
	if r.containerSuffix != "" && strings.HasSuffix(name, r.containerSuffix) {
		if route, ok := r.registry.Lookup(strings.TrimSuffix(name, r.containerSuffix)); ok {
			return route, nil
		}
	}
	return Route{}, waypointerrors.NewUnknownRouteError(name)
}

// Resolve substitutes params into the pattern registered for name. Unknown
// parameters and unfilled placeholders are errors; a path with placeholders
// left in it is never returned.
func (r *Resolver) Resolve(name string, params Params) (string, error) {
	route, err := r.Route(name)
	if err != nil {
		return "", err
	}

	path := string(route.Pattern)
	values := make(map[string]string, len(params))
	for _, key := range sortedKeys(params) {
		if !route.Pattern.HasParam(key) {
			return "", waypointerrors.NewUnknownParamError(key, path)
		}
		values[key] = FormatParam(params[key])
	}

	segments := route.Pattern.Segments()
	var missing []string
	for i, segment := range segments {
		if !isPlaceholder(segment) {
			continue
		}
		value := values[segment[1:]]
		if value == "" {
			missing = append(missing, segment[1:])
			continue
		}
		segments[i] = escapeSegment(value)
	}
	if len(missing) > 0 {
		return "", waypointerrors.NewMissingParamError(path, values, missing)
	}

	return "/" + strings.Join(segments, "/"), nil
}

// escapeSegment path-escapes value. A leading ':' is percent-encoded too so a
// substituted value never reads as a placeholder.
func escapeSegment(value string) string {
	escaped := url.PathEscape(value)
	if strings.HasPrefix(escaped, ":") {
		escaped = "%3A" + escaped[1:]
	}
	return escaped
}

// FormatParam coerces a parameter value to its path representation.
func FormatParam(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

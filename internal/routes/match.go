package routes

import (
	"net/url"
	"sort"
	"strings"
)

// Match is the outcome of mapping an incoming path onto the registry.
type Match struct {
	Path     string
	Route    Route
	Params   map[string]string
	NotFound bool
}

// Match maps an incoming path to the most specific registered route. Static
// segments outrank placeholders and earlier registrations win ties. A path
// that matches nothing yields a NotFound match; that is a normal outcome.
func (r *Registry) Match(rawPath string) Match {
	path := NormalizePath(rawPath)
	incoming := Pattern(path).Segments()

	best := Match{Path: path, NotFound: true}
	bestScore := -1

	for _, route := range r.Routes() {
		segments := route.Pattern.Segments()
		if len(segments) != len(incoming) {
			continue
		}

		score := 0
		params := make(map[string]string)
		matched := true
		for i, segment := range segments {
			if isPlaceholder(segment) {
				value, err := url.PathUnescape(incoming[i])
				if err != nil || value == "" {
					matched = false
					break
				}
				params[segment[1:]] = value
				continue
			}
			if segment != incoming[i] {
				matched = false
				break
			}
			score++
		}

		if matched && score > bestScore {
			best = Match{Path: path, Route: route, Params: params}
			bestScore = score
		}
	}

	return best
}

// NormalizePath drops query and fragment, ensures a leading slash and
// removes a trailing one.
func NormalizePath(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	if len(raw) > 1 {
		raw = strings.TrimRight(raw, "/")
		if raw == "" {
			raw = "/"
		}
	}
	return raw
}

func sortedKeys(params Params) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package routes

import (
	"fmt"
	"regexp"
	"strings"
)

var paramNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Pattern is a path template such as "/update/:updateId/course/:courseId".
// A placeholder is a whole segment made of ':' followed by an identifier.
type Pattern string

// ValidatePattern reports whether raw is a well-formed path pattern.
func ValidatePattern(raw string) error {
	if raw == "" {
		return fmt.Errorf("path pattern cannot be empty")
	}
	if !strings.HasPrefix(raw, "/") {
		return fmt.Errorf("path pattern %q must start with /", raw)
	}

	if raw != "/" && strings.HasSuffix(raw, "/") {
		return fmt.Errorf("path pattern %q must not end with /", raw)
	}

	seen := make(map[string]struct{})
	for _, segment := range Pattern(raw).Segments() {
		if segment == "" {
			return fmt.Errorf("path pattern %q contains an empty segment", raw)
		}
		if !strings.HasPrefix(segment, ":") {
			if strings.Contains(segment, ":") {
				return fmt.Errorf("path pattern %q: placeholder must span a whole segment (%q)", raw, segment)
			}
			continue
		}
		name := segment[1:]
		if !paramNamePattern.MatchString(name) {
			return fmt.Errorf("path pattern %q: invalid placeholder %q", raw, segment)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("path pattern %q: placeholder %q declared twice", raw, segment)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Segments splits the pattern on '/', dropping the leading empty segment.
// The root pattern "/" has no segments.
func (p Pattern) Segments() []string {
	trimmed := strings.Trim(string(p), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Params returns the placeholder names in declaration order.
func (p Pattern) Params() []string {
	var names []string
	for _, segment := range p.Segments() {
		if isPlaceholder(segment) {
			names = append(names, segment[1:])
		}
	}
	return names
}

// HasParam reports whether the pattern declares a placeholder named key.
func (p Pattern) HasParam(key string) bool {
	for _, name := range p.Params() {
		if name == key {
			return true
		}
	}
	return false
}

// Static reports whether the pattern has no placeholders.
func (p Pattern) Static() bool {
	return len(p.Params()) == 0
}

func (p Pattern) String() string {
	return string(p)
}

func isPlaceholder(segment string) bool {
	return len(segment) > 1 && segment[0] == ':'
}

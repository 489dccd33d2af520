package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ParseError represents a configuration decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DuplicateRouteError reports a route name declared more than once across
// tabs, stack screens and modals. It is fatal at configuration time.
type DuplicateRouteError struct {
	Name string
}

// NewDuplicateRouteError constructs a DuplicateRouteError.
func NewDuplicateRouteError(name string) error {
	return &DuplicateRouteError{Name: name}
}

func (e *DuplicateRouteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("routes must be unique across all stacks, %q was duplicated", e.Name)
}

// UnknownRouteError is returned when a link references a route that is not registered.
type UnknownRouteError struct {
	Name string
}

// NewUnknownRouteError constructs an UnknownRouteError.
func NewUnknownRouteError(name string) error {
	return &UnknownRouteError{Name: name}
}

func (e *UnknownRouteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no path found for route name %q", e.Name)
}

// UnknownParamError is returned when a parameter is supplied that the path
// pattern does not declare.
type UnknownParamError struct {
	Key  string
	Path string
}

// NewUnknownParamError constructs an UnknownParamError.
func NewUnknownParamError(key, path string) error {
	return &UnknownParamError{Key: key, Path: path}
}

func (e *UnknownParamError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown param %q provided for path %s", e.Key, e.Path)
}

// MissingParamError is returned when placeholders remain unfilled after substitution.
type MissingParamError struct {
	Path    string
	Params  map[string]string
	Missing []string
}

// NewMissingParamError constructs a MissingParamError. The params map is copied.
func NewMissingParamError(path string, params map[string]string, missing []string) error {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return &MissingParamError{
		Path:    path,
		Params:  copied,
		Missing: append([]string(nil), missing...),
	}
}

func (e *MissingParamError) Error() string {
	if e == nil {
		return ""
	}

	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, e.Params[k]))
	}

	return fmt.Sprintf("missing param %s for path %s in {%s}", strings.Join(e.Missing, ", "), e.Path, strings.Join(pairs, ", "))
}

package config

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a mapping keyed by tab name or a sequence of
// tabs carrying a name field. Mapping order is declaration order.
func (l *TabList) UnmarshalYAML(value *yaml.Node) error {
	tabs, err := decodeNamed(value, "tabs", func(t *Tab) *string { return &t.Name })
	if err != nil {
		return err
	}
	*l = tabs
	return nil
}

// UnmarshalYAML accepts either a mapping keyed by route name or a sequence of
// screens carrying a name field.
func (l *ScreenList) UnmarshalYAML(value *yaml.Node) error {
	screens, err := decodeNamed(value, "screens", func(s *Screen) *string { return &s.Name })
	if err != nil {
		return err
	}
	*l = screens
	return nil
}

// MarshalYAML writes the list back as an ordered mapping keyed by name.
func (l TabList) MarshalYAML() (interface{}, error) {
	return encodeNamed([]Tab(l), func(t Tab) (string, Tab) {
		name := t.Name
		t.Name = ""
		return name, t
	})
}

// MarshalYAML writes the list back as an ordered mapping keyed by name.
func (l ScreenList) MarshalYAML() (interface{}, error) {
	return encodeNamed([]Screen(l), func(s Screen) (string, Screen) {
		name := s.Name
		s.Name = ""
		return name, s
	})
}

func decodeNamed[T any](value *yaml.Node, what string, name func(*T) *string) ([]T, error) {
	switch value.Kind {
	case yaml.SequenceNode:
		items := make([]T, 0, len(value.Content))
		for _, body := range value.Content {
			var item T
			if err := decodeStrict(body, &item); err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.MappingNode:
		items := make([]T, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, body := value.Content[i], value.Content[i+1]

			var item T
			if err := decodeStrict(body, &item); err != nil {
				return nil, err
			}
			field := name(&item)
			if *field != "" && *field != key.Value {
				return nil, fmt.Errorf("line %d: %s entry %q declares conflicting name %q", key.Line, what, key.Value, *field)
			}
			*field = key.Value
			items = append(items, item)
		}
		return items, nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("line %d: %s must be a mapping or a sequence", value.Line, what)
}

// decodeStrict decodes node into out, rejecting keys out does not declare.
// Decoders do not pass KnownFields on to custom unmarshalers, so entries
// decoded here are checked against the yaml tags of out.
func decodeStrict(node *yaml.Node, out any) error {
	if node.Kind == yaml.MappingNode {
		typ := reflect.TypeOf(out).Elem()
		known := yamlFields(typ)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if _, ok := known[key.Value]; !ok {
				return fmt.Errorf("line %d: field %s not found in type %s", key.Line, key.Value, typ)
			}
		}
	}
	return node.Decode(out)
}

func yamlFields(typ reflect.Type) map[string]struct{} {
	fields := make(map[string]struct{}, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = strings.ToLower(field.Name)
		}
		fields[name] = struct{}{}
	}
	return fields
}

func encodeNamed[T any](items []T, split func(T) (string, T)) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, item := range items {
		name, body := split(item)

		var value yaml.Node
		if err := value.Encode(body); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&value,
		)
	}
	return node, nil
}

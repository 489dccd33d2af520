// Package pathtable builds the deep-link configuration handed to the
// navigation runtime. The output nests screens the way the runtime groups
// them: tabs inside the Main container, stacked tabs as sub-trees, modals as
// top-level siblings of Main.
package pathtable

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/waypoint/internal/topology"
)

// CatchAllPath is the path of the not-found screen.
const CatchAllPath = "*"

// Node is one entry of the linking tree. Leaves carry a path; composite nodes
// carry an initial route and child screens.
type Node struct {
	Path             *string `json:"path,omitempty" yaml:"path,omitempty"`
	Exact            bool    `json:"exact,omitempty" yaml:"exact,omitempty"`
	InitialRouteName string  `json:"initialRouteName,omitempty" yaml:"initialRouteName,omitempty"`
	Screens          Screens `json:"screens,omitempty" yaml:"screens,omitempty"`
}

// PathValue returns the node path, empty for composite nodes.
func (n Node) PathValue() string {
	if n.Path == nil {
		return ""
	}
	return *n.Path
}

// Entry is a named node.
type Entry struct {
	Name string
	Node Node
}

// Screens is an ordered name -> node mapping.
type Screens []Entry

// Get returns the node registered under name.
func (s Screens) Get(name string) (Node, bool) {
	for _, e := range s {
		if e.Name == name {
			return e.Node, true
		}
	}
	return Node{}, false
}

// Names returns the entry names in order.
func (s Screens) Names() []string {
	names := make([]string, 0, len(s))
	for _, e := range s {
		names = append(names, e.Name)
	}
	return names
}

// MarshalJSON encodes the entries as a JSON object preserving order.
func (s Screens) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Node)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the entries as a YAML mapping preserving order.
func (s Screens) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range s {
		var value yaml.Node
		if err := value.Encode(e.Node); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			&value,
		)
	}
	return node, nil
}

// Config is the root of the linking tree.
type Config struct {
	InitialRouteName string  `json:"initialRouteName" yaml:"initialRouteName"`
	Screens          Screens `json:"screens" yaml:"screens"`
}

// LinkingConfig is the artifact handed to the navigation runtime.
type LinkingConfig struct {
	Prefixes []string `json:"prefixes" yaml:"prefixes"`
	Config   Config   `json:"config" yaml:"config"`
}

// Build translates nav into the runtime's linking configuration. It is pure
// and total; malformed navigators are rejected by the route registry.
func Build(nav topology.Navigator) LinkingConfig {
	var main Screens
	for _, tab := range nav.Tabs {
		main = append(main, tabEntry(tab))
	}
	if nav.NotFound != nil {
		main = append(main, Entry{Name: topology.NotFoundRoute, Node: Node{Path: pathOf(CatchAllPath)}})
	}

	root := Screens{{
		Name: topology.MainContainer,
		Node: Node{Path: pathOf(""), Screens: main},
	}}
	for _, modal := range nav.Modals {
		root = append(root, leaf(modal))
	}

	return LinkingConfig{
		Prefixes: nav.AcceptedPrefixes(),
		Config: Config{
			InitialRouteName: topology.MainContainer,
			Screens:          root,
		},
	}
}

func tabEntry(tab topology.Tab) Entry {
	if !tab.HasStack() {
		return leaf(tab.Screen)
	}

	children := make(Screens, 0, len(tab.Stack)+1)
	for _, screen := range tab.Screens() {
		children = append(children, leaf(screen))
	}

	return Entry{
		Name: tab.ContainerName(),
		Node: Node{InitialRouteName: tab.Name, Screens: children},
	}
}

func leaf(screen topology.Screen) Entry {
	return Entry{Name: screen.Name, Node: Node{Path: pathOf(screen.Path), Exact: true}}
}

func pathOf(p string) *string {
	return &p
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format identifies a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the decoder from a file extension. Unknown extensions are
// read as YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseConfig loads a navigator configuration from disk, validates it, and
// returns the resulting document.
func ParseConfig(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, waypointerrors.NewParseError(path, 0, err)
	}
	return Parse(path, FormatFor(path), data)
}

// Parse decodes and validates an in-memory document. path is only used in
// error messages.
func Parse(path string, format Format, data []byte) (*Document, error) {
	var (
		doc Document
		err error
	)
	switch format {
	case FormatTOML:
		err = decodeTOML(path, data, &doc)
	case FormatYAML:
		err = decodeYAML(path, data, &doc)
	default:
		err = waypointerrors.NewParseError(path, 0, fmt.Errorf("unsupported format %q", format))
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func decodeYAML(path string, data []byte, doc *Document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return waypointerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func decodeTOML(path string, data []byte, doc *Document) error {
	md, err := toml.Decode(string(data), doc)
	if err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return waypointerrors.NewParseError(path, parseErr.Position.Line, errors.New(parseErr.Message))
		}
		return waypointerrors.NewParseError(path, extractLine(err), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return waypointerrors.NewParseError(path, 0, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

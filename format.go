// FILE: tomldir/format.go
package tomldir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a source document format.
type Format string

const (
	// FormatAuto detects the format from the file extension, then the content
	FormatAuto Format = ""
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// parseTree parses source text into the nested document tree that
// flattenValue walks. Parsing is the only fallible step in a load; the
// returned error wraps ErrParse with the parser's own diagnostic. A
// well-formed document whose root is not a table parses fine and simply
// flattens to an empty store.
func parseTree(data []byte, format Format) (any, error) {
	var tree any

	switch format {
	case FormatTOML:
		root := make(map[string]any)
		if err := toml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		tree = root
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&tree); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	return tree, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) Format {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before YAML: almost any TOML document is also valid YAML
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return FormatAuto
}

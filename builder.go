// FILE: tomldir/builder.go
package tomldir

import (
	"errors"
	"fmt"
)

// Builder provides a fluent interface for loading a configuration, and
// is the point where a backing store can be selected at runtime.
type Builder struct {
	text   string
	file   string
	format Format
	store  Store
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithText sets inline source text to load. Takes precedence over a
// configured file.
func (b *Builder) WithText(text string) *Builder {
	b.text = text
	return b
}

// WithFile sets the configuration file path.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFormat forces a source format instead of auto-detection. Inline
// text defaults to TOML.
func (b *Builder) WithFormat(format Format) *Builder {
	b.format = format
	return b
}

// WithStore selects the backing store. The default is a MapStore.
func (b *Builder) WithStore(store Store) *Builder {
	b.store = store
	return b
}

// Build loads the configured source and returns the populated Config.
func (b *Builder) Build() (*Config, error) {
	store := b.store
	if store == nil {
		store = NewMapStore()
	}

	if b.text != "" {
		format := b.format
		if format == FormatAuto {
			format = FormatTOML
		}
		tree, err := parseTree([]byte(b.text), format)
		if err != nil {
			return nil, err
		}
		flattenValue(store, "", tree)
		return &Config{store: store}, nil
	}

	if b.file == "" {
		return nil, errors.New("no configuration source: use WithFile, WithText, or WithFileDiscovery")
	}
	return loadFileAs(b.file, b.format, store)
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// BuildAndScan builds and decodes the whole document into the provided
// target struct pointer.
func (b *Builder) BuildAndScan(target any) error {
	cfg, err := b.Build()
	if err != nil {
		return err
	}
	return cfg.Scan("", target)
}

// FILE: tomldir/config.go
package tomldir

import (
	"errors"
	"fmt"
	"os"
)

// Config is an immutable, flattened view of one configuration document.
// It is populated once during load and never mutated, so all methods are
// safe for concurrent use. Handles are cheap to share; see Shared.
type Config struct {
	store Store
}

// Load parses TOML source text and flattens it into the default MapStore.
func Load(text string) (*Config, error) {
	return LoadWith(text, NewMapStore())
}

// LoadWith parses TOML source text and flattens it into the given store.
// The store should be empty; Load never clears it.
func LoadWith(text string, store Store) (*Config, error) {
	tree, err := parseTree([]byte(text), FormatTOML)
	if err != nil {
		return nil, err
	}
	flattenValue(store, "", tree)
	return &Config{store: store}, nil
}

// LoadFile reads the file at path, detects its format, and flattens it
// into the default MapStore. A missing file reports ErrConfigNotFound;
// other read failures are surfaced as-is, before parsing is attempted.
func LoadFile(path string) (*Config, error) {
	return LoadFileWith(path, NewMapStore())
}

// LoadFileWith is LoadFile with a caller-chosen store backing.
func LoadFileWith(path string, store Store) (*Config, error) {
	return loadFileAs(path, FormatAuto, store)
}

// loadFileAs reads the whole file, resolves the format (extension first,
// content as fallback), parses and flattens.
func loadFileAs(path string, format Format, store Store) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if format == FormatAuto {
		format = detectFileFormat(path)
		if format == FormatAuto {
			format = detectFormatFromContent(data)
			if format == FormatAuto {
				return nil, fmt.Errorf("%w for file '%s'", ErrUnknownFormat, path)
			}
		}
	}

	tree, err := parseTree(data, format)
	if err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}

	flattenValue(store, "", tree)
	return &Config{store: store}, nil
}

// Get returns the raw stored value for a flattened key. Lookup is an
// exact string match; a miss is reported as absence, not an error.
func (c *Config) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Shared returns a new handle referencing the same underlying store.
// No data is copied, and since no mutation API exists, both handles
// observe identical values forever.
func (c *Config) Shared() *Config {
	return &Config{store: c.store}
}

// Store exposes the underlying backing, for iteration with a known
// ordering or for size inspection. Callers must not insert into it.
func (c *Config) Store() Store {
	return c.store
}

// Flatten returns every entry with its value rendered to a display
// string: raw content for strings, canonical TOML form for everything
// else. The map is rebuilt on each call.
func (c *Config) Flatten() map[string]string {
	flat := make(map[string]string)
	c.FlattenInto(func(key, value string) {
		flat[key] = value
	})
	return flat
}

// FlattenInto streams every rendered (key, value) pair to collect, so
// the caller chooses the container and, by picking the store backing or
// sorting afterward, the ordering.
func (c *Config) FlattenInto(collect func(key, value string)) {
	c.store.Range(func(key string, value any) bool {
		collect(key, displayString(value))
		return true
	})
}

// Keys returns all flattened keys in the backing store's iteration order.
func (c *Config) Keys() []string {
	var keys []string
	c.store.Range(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

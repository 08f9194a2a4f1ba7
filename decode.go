// FILE: tomldir/decode.go
package tomldir

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the configuration under basePath into target, which must
// be a non-nil pointer to a struct or map. The nested document shape is
// rebuilt from the flat store first, so arrays of tables come back as
// slices. Field mapping uses the "toml" struct tag.
//
// An empty basePath decodes the whole document. A basePath that does not
// exist decodes an empty section, leaving target's fields at their
// current values.
func (c *Config) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any)
	c.store.Range(func(key string, value any) bool {
		setFlatKey(nested, key, value)
		return true
	})

	var section any = nested
	if basePath != "" {
		section = navigateToPath(nested, basePath)
		if section == nil {
			section = make(map[string]any)
		}
	}

	sectionMap, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("configuration path %q does not refer to a table (map), but to type %T", basePath, section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true, // Allow conversions (e.g., int to string if needed by target)
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to decode section %q into %T: %w", basePath, target, err)
	}

	return nil
}

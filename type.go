// FILE: tomldir/type.go
package tomldir

import (
	"encoding/json"
	"time"
)

// Typed getters are strict: they report false when the key is absent OR
// when the stored value has a different type. The two cases are
// deliberately indistinguishable at this layer; callers that need the
// raw value use Get.

// GetString retrieves a string value by flattened key.
func (c *Config) GetString(key string) (string, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt retrieves an integer value by flattened key. TOML integers are
// int64; YAML produces int and JSON json.Number, both of which convert
// exactly or not at all.
func (c *Config) GetInt(key string) (int64, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

// GetFloat retrieves a float value by flattened key.
func (c *Config) GetFloat(key string) (float64, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// GetBool retrieves a boolean value by flattened key.
func (c *Config) GetBool(key string) (bool, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetTime retrieves a datetime value by flattened key.
func (c *Config) GetTime(key string) (time.Time, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	return t, ok
}

// GetArray retrieves a primitive array by flattened key. Arrays are
// stored whole under their path; individual elements have no keys.
func (c *Config) GetArray(key string) ([]any, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	a, ok := v.([]any)
	return a, ok
}

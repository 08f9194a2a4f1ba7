// FILE: tomldir/render.go
package tomldir

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// displayString renders a stored value for Flatten export. Strings render
// as their raw content (no quoting); everything else uses its canonical
// TOML-style display form.
func displayString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return displayValue(value)
}

// displayValue renders a value in TOML display form. Unlike
// displayString it quotes strings, so array elements come out as they
// would appear in a document.
func displayValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return displayFloat(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = displayValue(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		// Inline table, keys sorted for a stable rendering.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + " = " + displayValue(v[k])
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// displayFloat always keeps a fractional part so floats stay
// distinguishable from integers ("5.0", not "5").
func displayFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && s != "NaN" {
		s += ".0"
	}
	return s
}

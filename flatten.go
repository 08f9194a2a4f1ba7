// FILE: tomldir/flatten.go
package tomldir

import "strconv"

// flattenValue recursively flattens a parsed document tree into store.
// Tables descend with "." separators, arrays of tables with "[i]"
// indices, and everything else is inserted as a leaf under the
// accumulated prefix. A non-table value at the empty prefix is dropped:
// the root is expected to be a table, and an empty store is the defined
// result otherwise.
//
// Whether an array is an array-of-tables is decided by peeking at its
// first element only. A heterogeneous array whose first element is a
// table still descends into the later non-table elements with table
// rules; this mirrors the historical behavior and is deliberately not
// validated.
//
// Field names are concatenated verbatim. Names containing "." or "["
// produce keys ambiguous with the equivalent nested path.
//
// The walk only ever inserts; it never reads store back, and it cannot
// fail: malformed input was already rejected by the parser.
func flattenValue(store Store, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for name, child := range v {
			key := name
			if prefix != "" {
				key = prefix + "." + name
			}
			flattenValue(store, key, child)
		}

	case []map[string]any:
		// TOML [[table]] syntax decodes to this shape directly.
		for i, elem := range v {
			flattenValue(store, prefix+"["+strconv.Itoa(i)+"]", elem)
		}

	case []any:
		if len(v) > 0 {
			if _, isTable := v[0].(map[string]any); isTable {
				for i, elem := range v {
					flattenValue(store, prefix+"["+strconv.Itoa(i)+"]", elem)
				}
				return
			}
		}
		// Primitive array: one entry holding the whole array, unexpanded.
		if prefix != "" {
			store.Insert(prefix, v)
		}

	default:
		// Scalar: string, integer, float, boolean, datetime.
		if prefix != "" {
			store.Insert(prefix, value)
		}
	}
}

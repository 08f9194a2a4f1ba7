// FILE: tomldir/helper.go
package tomldir

import (
	"strconv"
	"strings"
)

// pathSegment is one step of a flattened key: either a table field or an
// array-of-tables index.
type pathSegment struct {
	field   string
	index   int
	isIndex bool
}

// parseFlatKey splits a flattened key back into its segments, following
// the grammar segment ("." segment | "[" index "]")*. Text that does not
// scan as a bracketed index is kept as literal field characters, so the
// result always round-trips the key.
func parseFlatKey(key string) []pathSegment {
	var segs []pathSegment
	var field strings.Builder

	flush := func() {
		if field.Len() > 0 {
			segs = append(segs, pathSegment{field: field.String()})
			field.Reset()
		}
	}

	i := 0
	for i < len(key) {
		switch key[i] {
		case '.':
			flush()
			i++
		case '[':
			end := strings.IndexByte(key[i:], ']')
			if end < 0 {
				field.WriteString(key[i:])
				i = len(key)
				break
			}
			idx, err := strconv.Atoi(key[i+1 : i+end])
			if err != nil || idx < 0 {
				field.WriteString(key[i : i+end+1])
			} else {
				flush()
				segs = append(segs, pathSegment{index: idx, isIndex: true})
			}
			i += end + 1
		default:
			field.WriteByte(key[i])
			i++
		}
	}
	flush()

	return segs
}

// setFlatKey grafts one flattened key back into the nested tree rooted
// at root, creating intermediate maps and slices as needed. This is the
// inverse of the flattening walk, used to rebuild a document tree for
// struct decoding.
func setFlatKey(root map[string]any, key string, value any) {
	segs := parseFlatKey(key)
	if len(segs) == 0 || segs[0].isIndex {
		// A leading index has no parent field to hang a slice on; the
		// flattener never produces such a key.
		return
	}
	graft(root, segs, value)
}

// graft applies the remaining segments to node, returning the (possibly
// newly created or grown) container. Existing non-container values along
// the path are overwritten.
func graft(node any, segs []pathSegment, value any) any {
	if len(segs) == 0 {
		return value
	}

	seg := segs[0]
	if seg.isIndex {
		slice, _ := node.([]any)
		for len(slice) <= seg.index {
			slice = append(slice, nil)
		}
		slice[seg.index] = graft(slice[seg.index], segs[1:], value)
		return slice
	}

	table, ok := node.(map[string]any)
	if !ok {
		table = make(map[string]any)
	}
	table[seg.field] = graft(table[seg.field], segs[1:], value)
	return table
}

// navigateToPath walks a nested tree to the value at a dot/bracket path,
// returning nil if any step is missing or not a container.
func navigateToPath(root map[string]any, path string) any {
	var current any = root
	for _, seg := range parseFlatKey(path) {
		if seg.isIndex {
			slice, ok := current.([]any)
			if !ok || seg.index >= len(slice) {
				return nil
			}
			current = slice[seg.index]
			continue
		}
		table, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		value, exists := table[seg.field]
		if !exists {
			return nil
		}
		current = value
	}
	return current
}

// FILE: tomldir/store.go
package tomldir

import "sort"

// Store is the minimal capability a Config needs from its backing
// container: insert during the flattening pass, exact-match lookup, and
// full iteration. Anything satisfying these three operations is a valid
// backing; the choice is an ordering/performance trade-off, not a
// correctness one.
//
// Iteration order is a property of the concrete backing, not of the
// interface: MapStore and HashStore iterate in unspecified order,
// OrderedStore in insertion order, SortedStore in key order. Callers
// needing a specific order pick the backing, or sort the output.
//
// There is no delete operation. A store is populated exactly once, while
// loading, and is read-only afterward.
type Store interface {
	// Insert adds or overwrites the entry for key.
	Insert(key string, value any)

	// Get returns the value for key, or false if absent.
	Get(key string) (any, bool)

	// Range calls fn for every entry exactly once, stopping early if fn
	// returns false.
	Range(fn func(key string, value any) bool)
}

// MapStore is the default backing: the builtin Go map with its
// runtime-seeded, collision-resistant hashing. O(1) expected lookup,
// unspecified iteration order.
type MapStore map[string]any

// NewMapStore creates an empty MapStore.
func NewMapStore() MapStore {
	return make(MapStore)
}

func (m MapStore) Insert(key string, value any) {
	m[key] = value
}

func (m MapStore) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapStore) Range(fn func(key string, value any) bool) {
	for k, v := range m {
		if !fn(k, v) {
			return
		}
	}
}

// OrderedStore keeps map-speed lookup and iterates in insertion order.
type OrderedStore struct {
	entries map[string]any
	keys    []string
}

// NewOrderedStore creates an empty OrderedStore.
func NewOrderedStore() *OrderedStore {
	return &OrderedStore{entries: make(map[string]any)}
}

func (o *OrderedStore) Insert(key string, value any) {
	if _, exists := o.entries[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = value
}

func (o *OrderedStore) Get(key string) (any, bool) {
	v, ok := o.entries[key]
	return v, ok
}

func (o *OrderedStore) Range(fn func(key string, value any) bool) {
	for _, k := range o.keys {
		if !fn(k, o.entries[k]) {
			return
		}
	}
}

// SortedStore keeps entries in a slice sorted by key: logarithmic lookup,
// deterministic key-ordered iteration. Insertion is O(n) worst case,
// which is irrelevant at configuration sizes.
type SortedStore struct {
	entries []storeEntry
}

type storeEntry struct {
	key   string
	value any
}

// NewSortedStore creates an empty SortedStore.
func NewSortedStore() *SortedStore {
	return &SortedStore{}
}

func (s *SortedStore) Insert(key string, value any) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].key >= key
	})
	if i < len(s.entries) && s.entries[i].key == key {
		s.entries[i].value = value
		return
	}
	s.entries = append(s.entries, storeEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = storeEntry{key: key, value: value}
}

func (s *SortedStore) Get(key string) (any, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].key >= key
	})
	if i < len(s.entries) && s.entries[i].key == key {
		return s.entries[i].value, true
	}
	return nil, false
}

func (s *SortedStore) Range(fn func(key string, value any) bool) {
	for _, e := range s.entries {
		if !fn(e.key, e.value) {
			return
		}
	}
}

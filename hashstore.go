// FILE: tomldir/hashstore.go
package tomldir

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a 64-bit hash. Implementations trade
// collision-resistance for raw speed; the builtin map (MapStore) already
// provides the safe default, HashStore exists for callers who want to
// pick the function themselves.
type HashFunc func(key string) uint64

const (
	hashStoreMinBuckets = 16   // power of two, keeps masking cheap
	hashStoreMaxLoad    = 0.75 // resize threshold
)

// HashStore is an open-addressing hash table with a pluggable hash
// function. Lookup is O(1) expected, iteration order is unspecified.
//
// The Store contract has no delete, so linear probing needs no
// tombstones: a probe chain ends at the first empty bucket.
type HashStore struct {
	hash    HashFunc
	buckets []hashBucket
	count   int
}

type hashBucket struct {
	key   string
	value any
	used  bool
}

// HashOption configures a HashStore.
type HashOption func(*HashStore)

// WithHasher sets a custom hash function. The default is
// xxhash.Sum64String.
func WithHasher(fn HashFunc) HashOption {
	return func(h *HashStore) {
		if fn != nil {
			h.hash = fn
		}
	}
}

// NewHashStore creates an empty HashStore with the given options.
func NewHashStore(opts ...HashOption) *HashStore {
	h := &HashStore{
		hash:    xxhash.Sum64String,
		buckets: make([]hashBucket, hashStoreMinBuckets),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HashStore) Insert(key string, value any) {
	if float64(h.count+1) > float64(len(h.buckets))*hashStoreMaxLoad {
		h.grow()
	}
	if h.place(key, value) {
		h.count++
	}
}

func (h *HashStore) Get(key string) (any, bool) {
	mask := uint64(len(h.buckets) - 1)
	for i := h.hash(key) & mask; ; i = (i + 1) & mask {
		b := &h.buckets[i]
		if !b.used {
			return nil, false
		}
		if b.key == key {
			return b.value, true
		}
	}
}

func (h *HashStore) Range(fn func(key string, value any) bool) {
	for i := range h.buckets {
		if h.buckets[i].used {
			if !fn(h.buckets[i].key, h.buckets[i].value) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (h *HashStore) Len() int {
	return h.count
}

// place probes for key and writes the entry, reporting whether a new
// bucket was consumed (false on overwrite).
func (h *HashStore) place(key string, value any) bool {
	mask := uint64(len(h.buckets) - 1)
	for i := h.hash(key) & mask; ; i = (i + 1) & mask {
		b := &h.buckets[i]
		if !b.used {
			*b = hashBucket{key: key, value: value, used: true}
			return true
		}
		if b.key == key {
			b.value = value
			return false
		}
	}
}

func (h *HashStore) grow() {
	old := h.buckets
	h.buckets = make([]hashBucket, len(old)*2)
	for i := range old {
		if old[i].used {
			h.place(old[i].key, old[i].value)
		}
	}
}

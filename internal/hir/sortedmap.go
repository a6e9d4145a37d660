package hir

import (
	"fmt"
	"iter"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
)

// SortedKey is implemented by the id types used as crate map keys.
type SortedKey[K any] interface {
	comparable
	Compare(K) int
}

// SortedMap is an immutable map whose iteration order is its key order.
// Lookups go through a hash index; iteration walks the sorted key slice.
// The zero value is an empty map.
type SortedMap[K SortedKey[K], V any] struct {
	keys  []K
	vals  []V
	index map[K]int
}

// NewSortedMap freezes m into a SortedMap.
func NewSortedMap[K SortedKey[K], V any](m map[K]V) SortedMap[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int { return a.Compare(b) })
	vals := make([]V, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}
	return newSortedMapSorted(keys, vals)
}

func newSortedMapSorted[K SortedKey[K], V any](keys []K, vals []V) SortedMap[K, V] {
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	return SortedMap[K, V]{keys: keys, vals: vals, index: index}
}

// Len returns the number of entries.
func (m SortedMap[K, V]) Len() int { return len(m.keys) }

// Get returns the value stored under k.
func (m SortedMap[K, V]) Get(k K) (V, bool) {
	i, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Has reports whether k is present.
func (m SortedMap[K, V]) Has(k K) bool {
	_, ok := m.index[k]
	return ok
}

// At returns the i-th entry in key order.
func (m SortedMap[K, V]) At(i int) (K, V) { return m.keys[i], m.vals[i] }

// Keys returns a copy of the keys in sorted order.
func (m SortedMap[K, V]) Keys() []K { return slices.Clone(m.keys) }

// All iterates entries in key order.
func (m SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Range iterates entries in [lo, hi) positions, in key order.
func (m SortedMap[K, V]) Range(lo, hi int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := lo; i < hi; i++ {
			if !yield(m.keys[i], m.vals[i]) {
				return
			}
		}
	}
}

// EncodeMsgpack writes the map as a flat array of alternating keys and
// values, in key order.
func (m SortedMap[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2 * len(m.keys)); err != nil {
		return err
	}
	for i, k := range m.keys {
		if err := enc.EncodeMulti(k, m.vals[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads a map written by EncodeMsgpack. Keys must arrive
// strictly ascending.
func (m *SortedMap[K, V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		*m = SortedMap[K, V]{}
		return nil
	}
	if n%2 != 0 {
		return fmt.Errorf("sorted map: odd element count %d", n)
	}
	keys := make([]K, n/2)
	vals := make([]V, n/2)
	for i := range keys {
		if err := dec.DecodeMulti(&keys[i], &vals[i]); err != nil {
			return err
		}
		if i > 0 && keys[i-1].Compare(keys[i]) >= 0 {
			return fmt.Errorf("sorted map: key %d out of order", i)
		}
	}
	*m = newSortedMapSorted(keys, vals)
	return nil
}

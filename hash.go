package fixedmap

import (
	"iter"

	"github.com/cockroachdb/swiss"
)

// MapConfig carries construction options for hash-backed storage.
type MapConfig struct {
	sizeHint int
}

// WithPresize configures hash storage with capacity for sizeHint entries,
// avoiding growth rehashes while the table fills up to that size.
func WithPresize(sizeHint int) func(*MapConfig) {
	return func(c *MapConfig) {
		c.sizeHint = sizeHint
	}
}

// HashMapStorage is the strategy for unbounded key domains, backed by a
// Swiss-table hash map. Values are stored boxed so GetPtr, Ptrs and Entry
// handles expose stable in-place-mutable slots across table rehashes.
// Iteration order is unspecified. Operations are average O(1); collision
// behavior is the table's.
type HashMapStorage[K comparable, V any] struct {
	table *swiss.Map[K, *V]
}

// NewHashMapStorage returns an empty hash storage.
func NewHashMapStorage[K comparable, V any](options ...func(*MapConfig)) *HashMapStorage[K, V] {
	var c MapConfig
	for _, opt := range options {
		opt(&c)
	}
	return &HashMapStorage[K, V]{table: swiss.New[K, *V](c.sizeHint)}
}

func (s *HashMapStorage[K, V]) Len() int {
	return s.table.Len()
}

func (s *HashMapStorage[K, V]) IsEmpty() bool {
	return s.table.Len() == 0
}

func (s *HashMapStorage[K, V]) ContainsKey(key K) bool {
	_, ok := s.table.Get(key)
	return ok
}

func (s *HashMapStorage[K, V]) Get(key K) (V, bool) {
	if p, ok := s.table.Get(key); ok {
		return *p, true
	}
	var zero V
	return zero, false
}

func (s *HashMapStorage[K, V]) GetPtr(key K) *V {
	p, _ := s.table.Get(key)
	return p
}

func (s *HashMapStorage[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if p, ok := s.table.Get(key); ok {
		previous = *p
		*p = value
		return previous, true
	}
	s.table.Put(key, &value)
	var zero V
	return zero, false
}

func (s *HashMapStorage[K, V]) Remove(key K) (previous V, removed bool) {
	p, ok := s.table.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	s.table.Delete(key)
	return *p, true
}

func (s *HashMapStorage[K, V]) Entry(key K) *Entry[K, V] {
	if p, ok := s.table.Get(key); ok {
		return occupiedEntry(key, hashOccupied[K, V]{table: s.table, key: key, value: p})
	}
	return vacantEntry(key, hashVacant[K, V]{table: s.table, key: key})
}

func (s *HashMapStorage[K, V]) Retain(keep func(key K, value *V) bool) {
	var drop []K
	s.table.All(func(key K, p *V) bool {
		if !keep(key, p) {
			drop = append(drop, key)
		}
		return true
	})
	for _, key := range drop {
		s.table.Delete(key)
	}
}

func (s *HashMapStorage[K, V]) Clear() {
	s.table = swiss.New[K, *V](0)
}

func (s *HashMapStorage[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s.table.All(func(key K, p *V) bool {
			return yield(key, *p)
		})
	}
}

func (s *HashMapStorage[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.table.All(func(key K, _ *V) bool {
			return yield(key)
		})
	}
}

func (s *HashMapStorage[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		s.table.All(func(_ K, p *V) bool {
			return yield(*p)
		})
	}
}

func (s *HashMapStorage[K, V]) Ptrs() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		s.table.All(func(key K, p *V) bool {
			return yield(key, p)
		})
	}
}

func (s *HashMapStorage[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		// Deleting during table iteration is not supported, so drain
		// from a snapshot and delete as pairs are handed out.
		type pair struct {
			key   K
			value V
		}
		pairs := make([]pair, 0, s.table.Len())
		s.table.All(func(key K, p *V) bool {
			pairs = append(pairs, pair{key, *p})
			return true
		})
		for _, kv := range pairs {
			s.table.Delete(kv.key)
			if !yield(kv.key, kv.value) {
				return
			}
		}
	}
}

// hashOccupied and hashVacant are the table-native entry primitives. An
// issued handle owns its slot; the boxed value pointer stays valid across
// rehashes and even past removal.
type hashOccupied[K comparable, V any] struct {
	table *swiss.Map[K, *V]
	key   K
	value *V
}

func (h hashOccupied[K, V]) get() *V {
	return h.value
}

func (h hashOccupied[K, V]) replace(value V) V {
	previous := *h.value
	*h.value = value
	return previous
}

func (h hashOccupied[K, V]) remove() V {
	h.table.Delete(h.key)
	return *h.value
}

type hashVacant[K comparable, V any] struct {
	table *swiss.Map[K, *V]
	key   K
}

func (h hashVacant[K, V]) insert(value V) *V {
	p := &value
	h.table.Put(h.key, p)
	return p
}

// HashSetStorage is the set form of [HashMapStorage].
type HashSetStorage[K comparable] struct {
	table *swiss.Map[K, struct{}]
}

// NewHashSetStorage returns an empty hash set storage.
func NewHashSetStorage[K comparable](options ...func(*MapConfig)) *HashSetStorage[K] {
	var c MapConfig
	for _, opt := range options {
		opt(&c)
	}
	return &HashSetStorage[K]{table: swiss.New[K, struct{}](c.sizeHint)}
}

func (s *HashSetStorage[K]) Len() int {
	return s.table.Len()
}

func (s *HashSetStorage[K]) IsEmpty() bool {
	return s.table.Len() == 0
}

func (s *HashSetStorage[K]) Contains(key K) bool {
	_, ok := s.table.Get(key)
	return ok
}

func (s *HashSetStorage[K]) Insert(key K) bool {
	if _, ok := s.table.Get(key); ok {
		return false
	}
	s.table.Put(key, struct{}{})
	return true
}

func (s *HashSetStorage[K]) Remove(key K) bool {
	if _, ok := s.table.Get(key); !ok {
		return false
	}
	s.table.Delete(key)
	return true
}

func (s *HashSetStorage[K]) Retain(keep func(key K) bool) {
	var drop []K
	s.table.All(func(key K, _ struct{}) bool {
		if !keep(key) {
			drop = append(drop, key)
		}
		return true
	})
	for _, key := range drop {
		s.table.Delete(key)
	}
}

func (s *HashSetStorage[K]) Clear() {
	s.table = swiss.New[K, struct{}](0)
}

func (s *HashSetStorage[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.table.All(func(key K, _ struct{}) bool {
			return yield(key)
		})
	}
}

func (s *HashSetStorage[K]) Drain() iter.Seq[K] {
	return func(yield func(K) bool) {
		keys := make([]K, 0, s.table.Len())
		s.table.All(func(key K, _ struct{}) bool {
			keys = append(keys, key)
			return true
		})
		for _, key := range keys {
			s.table.Delete(key)
			if !yield(key) {
				return
			}
		}
	}
}

package fixedmap

import "iter"

// SingletonMapStorage is the strategy for key types with exactly one
// possible value, such as struct{}. All of K's values are indistinguishable,
// so the storage is a single slot and every operation ignores the key
// argument. The canonical key reported by iteration is K's zero value.
type SingletonMapStorage[K comparable, V any] struct {
	slot slot[V]
}

// NewSingletonMapStorage returns an empty singleton storage.
func NewSingletonMapStorage[K comparable, V any]() *SingletonMapStorage[K, V] {
	return &SingletonMapStorage[K, V]{}
}

func (s *SingletonMapStorage[K, V]) Len() int {
	if s.slot.full {
		return 1
	}
	return 0
}

func (s *SingletonMapStorage[K, V]) IsEmpty() bool {
	return !s.slot.full
}

func (s *SingletonMapStorage[K, V]) ContainsKey(K) bool {
	return s.slot.full
}

func (s *SingletonMapStorage[K, V]) Get(K) (V, bool) {
	if s.slot.full {
		return s.slot.value, true
	}
	var zero V
	return zero, false
}

func (s *SingletonMapStorage[K, V]) GetPtr(K) *V {
	if s.slot.full {
		return &s.slot.value
	}
	return nil
}

func (s *SingletonMapStorage[K, V]) Insert(_ K, value V) (previous V, replaced bool) {
	return s.slot.set(value)
}

func (s *SingletonMapStorage[K, V]) Remove(K) (previous V, removed bool) {
	return s.slot.take()
}

func (s *SingletonMapStorage[K, V]) Entry(key K) *Entry[K, V] {
	return slotEntry(key, &s.slot)
}

func (s *SingletonMapStorage[K, V]) Retain(keep func(key K, value *V) bool) {
	var key K
	if s.slot.full && !keep(key, &s.slot.value) {
		s.slot.take()
	}
}

func (s *SingletonMapStorage[K, V]) Clear() {
	s.slot.take()
}

func (s *SingletonMapStorage[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if s.slot.full {
			var key K
			yield(key, s.slot.value)
		}
	}
}

func (s *SingletonMapStorage[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s.slot.full {
			var key K
			yield(key)
		}
	}
}

func (s *SingletonMapStorage[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		if s.slot.full {
			yield(s.slot.value)
		}
	}
}

func (s *SingletonMapStorage[K, V]) Ptrs() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		if s.slot.full {
			var key K
			yield(key, &s.slot.value)
		}
	}
}

func (s *SingletonMapStorage[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if s.slot.full {
			var key K
			value, _ := s.slot.take()
			yield(key, value)
		}
	}
}

// SingletonSetStorage is the set form of [SingletonMapStorage]: a single
// presence bit.
type SingletonSetStorage[K comparable] struct {
	full bool
}

// NewSingletonSetStorage returns an empty singleton set storage.
func NewSingletonSetStorage[K comparable]() *SingletonSetStorage[K] {
	return &SingletonSetStorage[K]{}
}

func (s *SingletonSetStorage[K]) Len() int {
	if s.full {
		return 1
	}
	return 0
}

func (s *SingletonSetStorage[K]) IsEmpty() bool {
	return !s.full
}

func (s *SingletonSetStorage[K]) Contains(K) bool {
	return s.full
}

func (s *SingletonSetStorage[K]) Insert(K) bool {
	added := !s.full
	s.full = true
	return added
}

func (s *SingletonSetStorage[K]) Remove(K) bool {
	removed := s.full
	s.full = false
	return removed
}

func (s *SingletonSetStorage[K]) Retain(keep func(key K) bool) {
	var key K
	if s.full && !keep(key) {
		s.full = false
	}
}

func (s *SingletonSetStorage[K]) Clear() {
	s.full = false
}

func (s *SingletonSetStorage[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s.full {
			var key K
			yield(key)
		}
	}
}

func (s *SingletonSetStorage[K]) Drain() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s.full {
			s.full = false
			var key K
			yield(key)
		}
	}
}

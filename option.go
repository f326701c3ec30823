package fixedmap

import (
	"fmt"
	"iter"
)

// Option is a comparable optional-key wrapper: either Some(k) for a key of
// the inner type K, or None. The zero value is None, which makes Option[K]
// usable as a map key and as a default-constructed value.
type Option[K comparable] struct {
	value K
	some  bool
}

// Some wraps value as a present optional key.
func Some[K comparable](value K) Option[K] {
	return Option[K]{value: value, some: true}
}

// None returns the absent optional key.
func None[K comparable]() Option[K] {
	return Option[K]{}
}

// Get returns the wrapped key and whether one is present.
func (o Option[K]) Get() (K, bool) {
	return o.value, o.some
}

// IsSome reports whether a key is present.
func (o Option[K]) IsSome() bool {
	return o.some
}

// IsNone reports whether the option is the absent key.
func (o Option[K]) IsNone() bool {
	return !o.some
}

// String implements fmt.Stringer.
func (o Option[K]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OptionMapStorage lifts a storage strategy for K into one for [Option][K]
// by pairing the inner strategy with a single extra slot for the absent key.
// Some(k) operations delegate to the inner strategy; None operations use the
// extra slot. Because the wrapper is generic over the inner interface, it
// composes: Option[Option[K]] nests another wrapper around this one.
//
// Iteration yields every inner pair re-wrapped as Some(k), in the inner
// strategy's order, then the absent-key pair last if present.
type OptionMapStorage[K comparable, V any] struct {
	inner MapStorage[K, V]
	none  slot[V]
}

// NewOptionMapStorage wraps inner as storage for Option[K]. The inner
// strategy must be empty and exclusively owned by the wrapper.
func NewOptionMapStorage[K comparable, V any](inner MapStorage[K, V]) *OptionMapStorage[K, V] {
	return &OptionMapStorage[K, V]{inner: inner}
}

// NewOptionHashMapStorage wraps a fresh hash storage, for the common case of
// an optional unbounded key.
func NewOptionHashMapStorage[K comparable, V any](options ...func(*MapConfig)) *OptionMapStorage[K, V] {
	return NewOptionMapStorage[K, V](NewHashMapStorage[K, V](options...))
}

func (s *OptionMapStorage[K, V]) validKey(key Option[K]) bool {
	if k, ok := key.Get(); ok {
		if c, restricted := s.inner.(keyChecker[K]); restricted {
			return c.validKey(k)
		}
	}
	return true
}

func (s *OptionMapStorage[K, V]) Len() int {
	n := s.inner.Len()
	if s.none.full {
		n++
	}
	return n
}

func (s *OptionMapStorage[K, V]) IsEmpty() bool {
	return !s.none.full && s.inner.IsEmpty()
}

func (s *OptionMapStorage[K, V]) ContainsKey(key Option[K]) bool {
	if k, ok := key.Get(); ok {
		return s.inner.ContainsKey(k)
	}
	return s.none.full
}

func (s *OptionMapStorage[K, V]) Get(key Option[K]) (V, bool) {
	if k, ok := key.Get(); ok {
		return s.inner.Get(k)
	}
	if s.none.full {
		return s.none.value, true
	}
	var zero V
	return zero, false
}

func (s *OptionMapStorage[K, V]) GetPtr(key Option[K]) *V {
	if k, ok := key.Get(); ok {
		return s.inner.GetPtr(k)
	}
	if s.none.full {
		return &s.none.value
	}
	return nil
}

func (s *OptionMapStorage[K, V]) Insert(key Option[K], value V) (previous V, replaced bool) {
	if k, ok := key.Get(); ok {
		return s.inner.Insert(k, value)
	}
	return s.none.set(value)
}

func (s *OptionMapStorage[K, V]) Remove(key Option[K]) (previous V, removed bool) {
	if k, ok := key.Get(); ok {
		return s.inner.Remove(k)
	}
	return s.none.take()
}

// Entry dispatches to the inner strategy's own entry for Some(k), re-keying
// it as Option[K], and to the absent-key slot for None. Either way callers
// see the one uniform Entry type, at the cost of a single branch test.
func (s *OptionMapStorage[K, V]) Entry(key Option[K]) *Entry[Option[K], V] {
	if k, ok := key.Get(); ok {
		inner := s.inner.Entry(k)
		return &Entry[Option[K], V]{key: key, occ: inner.occ, vac: inner.vac}
	}
	return slotEntry(key, &s.none)
}

func (s *OptionMapStorage[K, V]) Retain(keep func(key Option[K], value *V) bool) {
	s.inner.Retain(func(k K, value *V) bool {
		return keep(Some(k), value)
	})
	if s.none.full && !keep(None[K](), &s.none.value) {
		s.none.take()
	}
}

func (s *OptionMapStorage[K, V]) Clear() {
	s.inner.Clear()
	s.none.take()
}

func (s *OptionMapStorage[K, V]) All() iter.Seq2[Option[K], V] {
	return func(yield func(Option[K], V) bool) {
		for k, v := range s.inner.All() {
			if !yield(Some(k), v) {
				return
			}
		}
		if s.none.full {
			yield(None[K](), s.none.value)
		}
	}
}

func (s *OptionMapStorage[K, V]) Keys() iter.Seq[Option[K]] {
	return func(yield func(Option[K]) bool) {
		for k := range s.inner.Keys() {
			if !yield(Some(k)) {
				return
			}
		}
		if s.none.full {
			yield(None[K]())
		}
	}
}

func (s *OptionMapStorage[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range s.inner.Values() {
			if !yield(v) {
				return
			}
		}
		if s.none.full {
			yield(s.none.value)
		}
	}
}

func (s *OptionMapStorage[K, V]) Ptrs() iter.Seq2[Option[K], *V] {
	return func(yield func(Option[K], *V) bool) {
		for k, p := range s.inner.Ptrs() {
			if !yield(Some(k), p) {
				return
			}
		}
		if s.none.full {
			yield(None[K](), &s.none.value)
		}
	}
}

func (s *OptionMapStorage[K, V]) Drain() iter.Seq2[Option[K], V] {
	return func(yield func(Option[K], V) bool) {
		for k, v := range s.inner.Drain() {
			if !yield(Some(k), v) {
				return
			}
		}
		if s.none.full {
			value, _ := s.none.take()
			yield(None[K](), value)
		}
	}
}

// OptionSetStorage is the set form of [OptionMapStorage]: an inner set plus
// one presence bit for the absent key, emitted last during iteration.
type OptionSetStorage[K comparable] struct {
	inner SetStorage[K]
	none  bool
}

// NewOptionSetStorage wraps inner as set storage for Option[K].
func NewOptionSetStorage[K comparable](inner SetStorage[K]) *OptionSetStorage[K] {
	return &OptionSetStorage[K]{inner: inner}
}

// NewOptionHashSetStorage wraps a fresh hash set storage.
func NewOptionHashSetStorage[K comparable](options ...func(*MapConfig)) *OptionSetStorage[K] {
	return NewOptionSetStorage[K](NewHashSetStorage[K](options...))
}

func (s *OptionSetStorage[K]) validKey(key Option[K]) bool {
	if k, ok := key.Get(); ok {
		if c, restricted := s.inner.(keyChecker[K]); restricted {
			return c.validKey(k)
		}
	}
	return true
}

func (s *OptionSetStorage[K]) Len() int {
	n := s.inner.Len()
	if s.none {
		n++
	}
	return n
}

func (s *OptionSetStorage[K]) IsEmpty() bool {
	return !s.none && s.inner.IsEmpty()
}

func (s *OptionSetStorage[K]) Contains(key Option[K]) bool {
	if k, ok := key.Get(); ok {
		return s.inner.Contains(k)
	}
	return s.none
}

func (s *OptionSetStorage[K]) Insert(key Option[K]) bool {
	if k, ok := key.Get(); ok {
		return s.inner.Insert(k)
	}
	added := !s.none
	s.none = true
	return added
}

func (s *OptionSetStorage[K]) Remove(key Option[K]) bool {
	if k, ok := key.Get(); ok {
		return s.inner.Remove(k)
	}
	removed := s.none
	s.none = false
	return removed
}

func (s *OptionSetStorage[K]) Retain(keep func(key Option[K]) bool) {
	s.inner.Retain(func(k K) bool {
		return keep(Some(k))
	})
	if s.none && !keep(None[K]()) {
		s.none = false
	}
}

func (s *OptionSetStorage[K]) Clear() {
	s.inner.Clear()
	s.none = false
}

func (s *OptionSetStorage[K]) All() iter.Seq[Option[K]] {
	return func(yield func(Option[K]) bool) {
		for k := range s.inner.All() {
			if !yield(Some(k)) {
				return
			}
		}
		if s.none {
			yield(None[K]())
		}
	}
}

func (s *OptionSetStorage[K]) Drain() iter.Seq[Option[K]] {
	return func(yield func(Option[K]) bool) {
		for k := range s.inner.Drain() {
			if !yield(Some(k)) {
				return
			}
		}
		if s.none {
			s.none = false
			yield(None[K]())
		}
	}
}

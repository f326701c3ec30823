package fixedmap

import (
	"fmt"
	"iter"
)

// Domain describes a finite enumeration: a total, injective mapping between
// the type's declared variants and the index range [0, Size). Descriptors
// are emitted by the fixedmapgen tool as zero-size types, which is what lets
// direct storage be selected per key type with no runtime registration.
type Domain[K comparable] interface {
	// Size returns the number of declared variants.
	Size() int
	// Index returns key's declaration-order index, or -1 when key is not
	// a declared variant.
	Index(key K) int
	// Variant is the inverse of Index for 0 <= i < Size().
	Variant(i int) K
}

// DirectMapStorage stores one optional value slot per declared variant of K,
// addressed by the variant's declaration-order index. Lookups, inserts and
// removes are single slot accesses: no hashing, no probing, no per-operation
// allocation. The slot count is fixed at construction and never resized.
//
// Iteration is declaration order, occupied slots only, regardless of
// insertion order. Keys outside the declared domain read as absent; storing
// one panics.
type DirectMapStorage[K comparable, D Domain[K], V any] struct {
	domain D
	slots  []slot[V]
}

// NewDirectMapStorage returns an empty direct storage sized to D's domain.
func NewDirectMapStorage[K comparable, D Domain[K], V any]() *DirectMapStorage[K, D, V] {
	var d D
	return &DirectMapStorage[K, D, V]{domain: d, slots: make([]slot[V], d.Size())}
}

func (s *DirectMapStorage[K, D, V]) index(key K) int {
	i := s.domain.Index(key)
	if i < 0 {
		panic(fmt.Sprintf("fixedmap: key %v is not a declared variant", key))
	}
	return i
}

func (s *DirectMapStorage[K, D, V]) validKey(key K) bool {
	return s.domain.Index(key) >= 0
}

func (s *DirectMapStorage[K, D, V]) Len() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].full {
			n++
		}
	}
	return n
}

func (s *DirectMapStorage[K, D, V]) IsEmpty() bool {
	for i := range s.slots {
		if s.slots[i].full {
			return false
		}
	}
	return true
}

func (s *DirectMapStorage[K, D, V]) ContainsKey(key K) bool {
	i := s.domain.Index(key)
	return i >= 0 && s.slots[i].full
}

func (s *DirectMapStorage[K, D, V]) Get(key K) (V, bool) {
	if i := s.domain.Index(key); i >= 0 && s.slots[i].full {
		return s.slots[i].value, true
	}
	var zero V
	return zero, false
}

func (s *DirectMapStorage[K, D, V]) GetPtr(key K) *V {
	if i := s.domain.Index(key); i >= 0 && s.slots[i].full {
		return &s.slots[i].value
	}
	return nil
}

func (s *DirectMapStorage[K, D, V]) Insert(key K, value V) (previous V, replaced bool) {
	return s.slots[s.index(key)].set(value)
}

func (s *DirectMapStorage[K, D, V]) Remove(key K) (previous V, removed bool) {
	if i := s.domain.Index(key); i >= 0 {
		return s.slots[i].take()
	}
	var zero V
	return zero, false
}

func (s *DirectMapStorage[K, D, V]) Entry(key K) *Entry[K, V] {
	return slotEntry(key, &s.slots[s.index(key)])
}

func (s *DirectMapStorage[K, D, V]) Retain(keep func(key K, value *V) bool) {
	for i := range s.slots {
		if s.slots[i].full && !keep(s.domain.Variant(i), &s.slots[i].value) {
			s.slots[i] = slot[V]{}
		}
	}
}

func (s *DirectMapStorage[K, D, V]) Clear() {
	clear(s.slots)
}

func (s *DirectMapStorage[K, D, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range s.slots {
			if s.slots[i].full && !yield(s.domain.Variant(i), s.slots[i].value) {
				return
			}
		}
	}
}

func (s *DirectMapStorage[K, D, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range s.slots {
			if s.slots[i].full && !yield(s.domain.Variant(i)) {
				return
			}
		}
	}
}

func (s *DirectMapStorage[K, D, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range s.slots {
			if s.slots[i].full && !yield(s.slots[i].value) {
				return
			}
		}
	}
}

func (s *DirectMapStorage[K, D, V]) Ptrs() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range s.slots {
			if s.slots[i].full && !yield(s.domain.Variant(i), &s.slots[i].value) {
				return
			}
		}
	}
}

func (s *DirectMapStorage[K, D, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range s.slots {
			if !s.slots[i].full {
				continue
			}
			value, _ := s.slots[i].take()
			if !yield(s.domain.Variant(i), value) {
				return
			}
		}
	}
}

// DirectSetStorage is the set form of [DirectMapStorage]: one presence bit
// per declared variant.
type DirectSetStorage[K comparable, D Domain[K]] struct {
	domain D
	bits   []bool
}

// NewDirectSetStorage returns an empty direct set storage sized to D's
// domain.
func NewDirectSetStorage[K comparable, D Domain[K]]() *DirectSetStorage[K, D] {
	var d D
	return &DirectSetStorage[K, D]{domain: d, bits: make([]bool, d.Size())}
}

func (s *DirectSetStorage[K, D]) validKey(key K) bool {
	return s.domain.Index(key) >= 0
}

func (s *DirectSetStorage[K, D]) Len() int {
	n := 0
	for _, b := range s.bits {
		if b {
			n++
		}
	}
	return n
}

func (s *DirectSetStorage[K, D]) IsEmpty() bool {
	for _, b := range s.bits {
		if b {
			return false
		}
	}
	return true
}

func (s *DirectSetStorage[K, D]) Contains(key K) bool {
	i := s.domain.Index(key)
	return i >= 0 && s.bits[i]
}

func (s *DirectSetStorage[K, D]) Insert(key K) bool {
	i := s.domain.Index(key)
	if i < 0 {
		panic(fmt.Sprintf("fixedmap: key %v is not a declared variant", key))
	}
	added := !s.bits[i]
	s.bits[i] = true
	return added
}

func (s *DirectSetStorage[K, D]) Remove(key K) bool {
	i := s.domain.Index(key)
	if i < 0 || !s.bits[i] {
		return false
	}
	s.bits[i] = false
	return true
}

func (s *DirectSetStorage[K, D]) Retain(keep func(key K) bool) {
	for i, b := range s.bits {
		if b && !keep(s.domain.Variant(i)) {
			s.bits[i] = false
		}
	}
}

func (s *DirectSetStorage[K, D]) Clear() {
	clear(s.bits)
}

func (s *DirectSetStorage[K, D]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i, b := range s.bits {
			if b && !yield(s.domain.Variant(i)) {
				return
			}
		}
	}
}

func (s *DirectSetStorage[K, D]) Drain() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i, b := range s.bits {
			if !b {
				continue
			}
			s.bits[i] = false
			if !yield(s.domain.Variant(i)) {
				return
			}
		}
	}
}

package fixedmap

import "iter"

// MapStorage is the contract every map storage strategy satisfies. The outer
// [Map] container delegates to it call for call, so the strategy alone
// defines the container's behavior for its key shape.
//
// A strategy owns at most one value per key. Lookups on an unset key report
// absence; they never fault. Mutating calls (Insert, Remove, Entry, Retain,
// Clear, Drain) require exclusive access for their duration and for the
// lifetime of any pointer or [Entry] they return.
type MapStorage[K comparable, V any] interface {
	// Len returns the number of keys currently holding a value.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// ContainsKey reports whether key holds a value.
	ContainsKey(key K) bool
	// Get returns a copy of the value stored for key.
	Get(key K) (V, bool)
	// GetPtr returns a pointer to the live slot for key, or nil when
	// absent. The pointer is valid until the next mutating call.
	GetPtr(key K) *V
	// Insert stores value for key and returns the previous value, if any.
	Insert(key K, value V) (previous V, replaced bool)
	// Remove clears the value stored for key and returns it, if any.
	Remove(key K) (previous V, removed bool)
	// Entry returns the vacant/occupied handle for key.
	Entry(key K) *Entry[K, V]
	// Retain drops every pair for which keep returns false. The value
	// pointer may be used to mutate retained values in place.
	Retain(keep func(key K, value *V) bool)
	// Clear removes all pairs.
	Clear()
	// All iterates over all pairs in the strategy's order.
	All() iter.Seq2[K, V]
	// Keys iterates over all keys in the strategy's order.
	Keys() iter.Seq[K]
	// Values iterates over all values in the strategy's order.
	Values() iter.Seq[V]
	// Ptrs iterates over all pairs, yielding live slot pointers so values
	// can be mutated during iteration.
	Ptrs() iter.Seq2[K, *V]
	// Drain removes pairs as it yields them. Pairs not reached before the
	// consumer stops remain stored.
	Drain() iter.Seq2[K, V]
}

// SetStorage is the set counterpart of [MapStorage]: the same strategies,
// holding keys with no attached values.
type SetStorage[K comparable] interface {
	Len() int
	IsEmpty() bool
	Contains(key K) bool
	// Insert adds key and reports whether it was newly added.
	Insert(key K) bool
	// Remove drops key and reports whether it was present.
	Remove(key K) bool
	Retain(keep func(key K) bool)
	Clear()
	All() iter.Seq[K]
	Drain() iter.Seq[K]
}

// keyChecker is implemented by strategies whose key domain is a strict
// subset of K's representable values. The JSON adapters consult it so that
// external input carrying an undeclared key is reported as a decode error
// instead of reaching the strategy's insert panic.
type keyChecker[K comparable] interface {
	validKey(key K) bool
}

// slot is one optional value cell. Direct and singleton storage are built
// from slots addressed by index; option storage adds one for the absent key.
type slot[V any] struct {
	value V
	full  bool
}

func (s *slot[V]) set(value V) (previous V, replaced bool) {
	previous, replaced = s.value, s.full
	s.value, s.full = value, true
	return previous, replaced
}

func (s *slot[V]) take() (previous V, removed bool) {
	previous, removed = s.value, s.full
	*s = slot[V]{}
	return previous, removed
}

package fixedmap

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Set is the user-facing set container, delegating to a [SetStorage] the
// way [Map] delegates to a [MapStorage].
type Set[K comparable] struct {
	storage SetStorage[K]
}

// NewSet builds a set over an explicit storage strategy.
func NewSet[K comparable](storage SetStorage[K]) *Set[K] {
	return &Set[K]{storage: storage}
}

// NewHashSet builds a set over hash storage, for unbounded key domains.
func NewHashSet[K comparable](options ...func(*MapConfig)) *Set[K] {
	return NewSet[K](NewHashSetStorage[K](options...))
}

// NewSingletonSet builds a set over singleton storage.
func NewSingletonSet[K comparable]() *Set[K] {
	return NewSet[K](NewSingletonSetStorage[K]())
}

// NewOptionSet builds a set keyed by Option[K] over inner storage for K.
func NewOptionSet[K comparable](inner SetStorage[K]) *Set[Option[K]] {
	return NewSet[Option[K]](NewOptionSetStorage[K](inner))
}

// Storage returns the underlying strategy.
func (s *Set[K]) Storage() SetStorage[K] {
	return s.storage
}

func (s *Set[K]) Len() int { return s.storage.Len() }

func (s *Set[K]) IsEmpty() bool { return s.storage.IsEmpty() }

func (s *Set[K]) Contains(key K) bool { return s.storage.Contains(key) }

func (s *Set[K]) Insert(key K) bool { return s.storage.Insert(key) }

func (s *Set[K]) Remove(key K) bool { return s.storage.Remove(key) }

func (s *Set[K]) Retain(keep func(key K) bool) { s.storage.Retain(keep) }

func (s *Set[K]) Clear() { s.storage.Clear() }

func (s *Set[K]) All() iter.Seq[K] { return s.storage.All() }

func (s *Set[K]) Drain() iter.Seq[K] { return s.storage.Drain() }

// ToSlice collects all keys in iteration order.
func (s *Set[K]) ToSlice() []K {
	a := make([]K, 0, s.storage.Len())
	for k := range s.storage.All() {
		a = append(a, k)
	}
	return a
}

// FromSlice inserts every key of source.
func (s *Set[K]) FromSlice(source []K) {
	for _, k := range source {
		s.storage.Insert(k)
	}
}

// String implements fmt.Stringer, rendering keys in iteration order.
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteString("Set[")
	first := true
	for k := range s.storage.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", k)
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the set as a JSON array in iteration order.
func (s *Set[K]) MarshalJSON() ([]byte, error) {
	if jsonMarshal != nil {
		return jsonMarshal(s.ToSlice())
	}
	return json.Marshal(s.ToSlice())
}

// UnmarshalJSON decodes a JSON array and inserts its keys. A key outside
// the storage's declared domain is a decode error; nothing is inserted in
// that case.
func (s *Set[K]) UnmarshalJSON(data []byte) error {
	var a []K
	if jsonUnmarshal != nil {
		if err := jsonUnmarshal(data, &a); err != nil {
			return err
		}
	} else {
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
	}
	if c, restricted := s.storage.(keyChecker[K]); restricted {
		for _, k := range a {
			if !c.validKey(k) {
				return errors.Errorf("fixedmap: key %v is not a declared variant", k)
			}
		}
	}
	s.FromSlice(a)
	return nil
}

// Compile-time checks that every strategy satisfies its contract.
var (
	_ MapStorage[string, int]      = (*HashMapStorage[string, int])(nil)
	_ MapStorage[struct{}, int]    = (*SingletonMapStorage[struct{}, int])(nil)
	_ MapStorage[Option[int], int] = (*OptionMapStorage[int, int])(nil)

	_ SetStorage[string]      = (*HashSetStorage[string])(nil)
	_ SetStorage[struct{}]    = (*SingletonSetStorage[struct{}])(nil)
	_ SetStorage[Option[int]] = (*OptionSetStorage[int])(nil)
)

package fixedmap

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Map is the user-facing map container. It holds the storage strategy bound
// to its key type and delegates every operation to it unchanged; the only
// behavior it adds is the formatting and JSON adapters, which are plain
// consumers of the iteration contract.
type Map[K comparable, V any] struct {
	storage MapStorage[K, V]
}

// NewMap builds a map over an explicit storage strategy. Generated
// New<T>Map constructors and the convenience constructors below call this.
func NewMap[K comparable, V any](storage MapStorage[K, V]) *Map[K, V] {
	return &Map[K, V]{storage: storage}
}

// NewHashMap builds a map over hash storage, for unbounded key domains.
func NewHashMap[K comparable, V any](options ...func(*MapConfig)) *Map[K, V] {
	return NewMap[K, V](NewHashMapStorage[K, V](options...))
}

// NewSingletonMap builds a map over singleton storage, for key types with
// exactly one possible value.
func NewSingletonMap[K comparable, V any]() *Map[K, V] {
	return NewMap[K, V](NewSingletonMapStorage[K, V]())
}

// NewOptionMap builds a map keyed by Option[K] over inner storage for K.
func NewOptionMap[K comparable, V any](inner MapStorage[K, V]) *Map[Option[K], V] {
	return NewMap[Option[K], V](NewOptionMapStorage[K, V](inner))
}

// Storage returns the underlying strategy.
func (m *Map[K, V]) Storage() MapStorage[K, V] {
	return m.storage
}

func (m *Map[K, V]) Len() int { return m.storage.Len() }

func (m *Map[K, V]) IsEmpty() bool { return m.storage.IsEmpty() }

func (m *Map[K, V]) ContainsKey(key K) bool { return m.storage.ContainsKey(key) }

func (m *Map[K, V]) Get(key K) (V, bool) { return m.storage.Get(key) }

func (m *Map[K, V]) GetPtr(key K) *V { return m.storage.GetPtr(key) }

func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	return m.storage.Insert(key, value)
}

func (m *Map[K, V]) Remove(key K) (previous V, removed bool) {
	return m.storage.Remove(key)
}

func (m *Map[K, V]) Entry(key K) *Entry[K, V] { return m.storage.Entry(key) }

func (m *Map[K, V]) Retain(keep func(key K, value *V) bool) { m.storage.Retain(keep) }

func (m *Map[K, V]) Clear() { m.storage.Clear() }

func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.storage.All() }

func (m *Map[K, V]) Keys() iter.Seq[K] { return m.storage.Keys() }

func (m *Map[K, V]) Values() iter.Seq[V] { return m.storage.Values() }

func (m *Map[K, V]) Ptrs() iter.Seq2[K, *V] { return m.storage.Ptrs() }

func (m *Map[K, V]) Drain() iter.Seq2[K, V] { return m.storage.Drain() }

// ToMap collects all pairs into a built-in map.
func (m *Map[K, V]) ToMap() map[K]V {
	a := make(map[K]V, m.storage.Len())
	for k, v := range m.storage.All() {
		a[k] = v
	}
	return a
}

// FromMap inserts every pair of source. Existing pairs for other keys are
// kept.
func (m *Map[K, V]) FromMap(source map[K]V) {
	for k, v := range source {
		m.storage.Insert(k, v)
	}
}

// String implements fmt.Stringer, rendering pairs in iteration order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("Map[")
	first := true
	for k, v := range m.storage.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}

var (
	jsonMarshal   func(v any) ([]byte, error)
	jsonUnmarshal func(data []byte, v any) error
)

// SetDefaultJSONMarshal sets the JSON serialization and deserialization
// functions used by the containers. If not set, the standard library is
// used.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

// MarshalJSON encodes the map as a JSON object. K must be a valid JSON
// object key type.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if jsonMarshal != nil {
		return jsonMarshal(m.ToMap())
	}
	return json.Marshal(m.ToMap())
}

// UnmarshalJSON decodes a JSON object and inserts its pairs. A key outside
// the storage's declared domain is a decode error; nothing is inserted in
// that case.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var a map[K]V
	if jsonUnmarshal != nil {
		if err := jsonUnmarshal(data, &a); err != nil {
			return err
		}
	} else {
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
	}
	if c, restricted := m.storage.(keyChecker[K]); restricted {
		for k := range a {
			if !c.validKey(k) {
				return errors.Errorf("fixedmap: key %v is not a declared variant", k)
			}
		}
	}
	m.FromMap(a)
	return nil
}

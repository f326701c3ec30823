package fixedmap

import (
	"testing"
)

// testMapStorage runs the shared contract suite against one strategy. Every
// storage strategy must pass it unchanged; the parameterized Test functions
// below instantiate it per strategy and key shape. keys must be distinct
// valid keys for the strategy; the value stored for keys[i] is i+1.
func testMapStorage[K comparable](t *testing.T, newStorage func() MapStorage[K, int], keys []K) {
	fill := func(t *testing.T, s MapStorage[K, int]) {
		t.Helper()
		for i, k := range keys {
			expectInserted[K, int](t, k)(s.Insert(k, i+1))
		}
	}

	t.Run("GetEmpty", func(t *testing.T) {
		s := newStorage()

		if got := s.Len(); got != 0 {
			t.Errorf("expected empty storage, got Len() = %d", got)
		}
		if !s.IsEmpty() {
			t.Errorf("expected IsEmpty() on empty storage")
		}
		for _, k := range keys {
			expectMissing[K, int](t, k)(s.Get(k))
			if s.ContainsKey(k) {
				t.Errorf("expected key %v to be absent", k)
			}
			if p := s.GetPtr(k); p != nil {
				t.Errorf("expected nil GetPtr for absent key %v", k)
			}
		}
	})
	t.Run("InsertGet", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		for i, k := range keys {
			expectPresent(t, k, i+1)(s.Get(k))
			if !s.ContainsKey(k) {
				t.Errorf("expected key %v to be present", k)
			}
		}
		if got, want := s.Len(), len(keys); got != want {
			t.Errorf("expected Len() = %d, got %d", want, got)
		}
		if s.IsEmpty() {
			t.Errorf("expected IsEmpty() to be false after inserts")
		}
	})
	t.Run("InsertReplace", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		for i, k := range keys {
			expectReplaced(t, k, i+1)(s.Insert(k, i+100))
			expectPresent(t, k, i+100)(s.Get(k))
		}
		if got, want := s.Len(), len(keys); got != want {
			t.Errorf("expected Len() = %d after replacing, got %d", want, got)
		}
	})
	t.Run("Remove", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		for i, k := range keys {
			expectRemoved(t, k, i+1)(s.Remove(k))
			expectMissing[K, int](t, k)(s.Get(k))
			expectNotRemoved[K, int](t, k)(s.Remove(k))
		}
		if got := s.Len(); got != 0 {
			t.Errorf("expected Len() = 0 after removing everything, got %d", got)
		}
		if !s.IsEmpty() {
			t.Errorf("expected IsEmpty() after removing everything")
		}
	})
	t.Run("GetPtr", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		for _, k := range keys {
			p := s.GetPtr(k)
			if p == nil {
				t.Fatalf("expected live slot pointer for key %v", k)
			}
			*p += 1000
		}
		for i, k := range keys {
			expectPresent(t, k, i+1001)(s.Get(k))
		}
	})
	t.Run("Entry", func(t *testing.T) {
		s := newStorage()

		for i, k := range keys {
			e := s.Entry(k)
			if e.Occupied() {
				t.Fatalf("expected vacant entry for key %v on empty storage", k)
			}
			expectMissing[K, int](t, k)(e.Get())
			e.Set(i + 1)

			e = s.Entry(k)
			if !e.Occupied() {
				t.Fatalf("expected occupied entry for key %v after insert", k)
			}
			expectPresent(t, k, i+1)(e.Get())
			expectReplaced(t, k, i+1)(e.Set(i + 10))

			e = s.Entry(k)
			e.AndModify(func(v *int) { *v++ })
			expectPresent(t, k, i+11)(e.Get())
			expectRemoved(t, k, i+11)(e.Remove())
			expectMissing[K, int](t, k)(s.Get(k))
		}
		if got := s.Len(); got != 0 {
			t.Errorf("expected Len() = 0 after entry removals, got %d", got)
		}
	})
	t.Run("EntryOrInsert", func(t *testing.T) {
		s := newStorage()

		for i, k := range keys {
			p := s.Entry(k).OrInsert(i + 1)
			if p == nil || *p != i+1 {
				t.Fatalf("expected OrInsert to store %d for key %v", i+1, k)
			}
			p = s.Entry(k).OrInsert(-1)
			if p == nil || *p != i+1 {
				t.Errorf("expected OrInsert on occupied key %v to keep %d", k, i+1)
			}
			p = s.Entry(k).OrInsertWith(func() int {
				t.Errorf("expected OrInsertWith not to call fn for occupied key %v", k)
				return -1
			})
			if p == nil || *p != i+1 {
				t.Errorf("expected OrInsertWith on occupied key %v to keep %d", k, i+1)
			}
		}
	})
	t.Run("Retain", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		s.Retain(func(_ K, v *int) bool { return *v%2 == 1 })
		want := 0
		for i, k := range keys {
			if (i+1)%2 == 1 {
				want++
				expectPresent(t, k, i+1)(s.Get(k))
			} else {
				expectMissing[K, int](t, k)(s.Get(k))
			}
		}
		if got := s.Len(); got != want {
			t.Errorf("expected Len() = %d after retain, got %d", want, got)
		}
	})
	t.Run("Clear", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		s.Clear()
		if !s.IsEmpty() {
			t.Errorf("expected IsEmpty() after Clear")
		}
		for _, k := range keys {
			expectMissing[K, int](t, k)(s.Get(k))
		}
	})
	t.Run("All", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		got := make(map[K]int)
		for k, v := range s.All() {
			if _, dup := got[k]; dup {
				t.Errorf("key %v yielded twice", k)
			}
			got[k] = v
		}
		if len(got) != len(keys) {
			t.Errorf("expected %d pairs from All(), got %d", len(keys), len(got))
		}
		for i, k := range keys {
			if got[k] != i+1 {
				t.Errorf("expected All() to yield %v:%d, got %d", k, i+1, got[k])
			}
		}
	})
	t.Run("KeysValues", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		nk := 0
		for range s.Keys() {
			nk++
		}
		sum := 0
		for v := range s.Values() {
			sum += v
		}
		wantSum := 0
		for i := range keys {
			wantSum += i + 1
		}
		if nk != len(keys) {
			t.Errorf("expected %d keys, got %d", len(keys), nk)
		}
		if sum != wantSum {
			t.Errorf("expected values to sum to %d, got %d", wantSum, sum)
		}
	})
	t.Run("Ptrs", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		for _, p := range s.Ptrs() {
			*p *= 2
		}
		for i, k := range keys {
			expectPresent(t, k, (i+1)*2)(s.Get(k))
		}
	})
	t.Run("Drain", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		got := make(map[K]int)
		for k, v := range s.Drain() {
			got[k] = v
		}
		if len(got) != len(keys) {
			t.Errorf("expected Drain() to yield %d pairs, got %d", len(keys), len(got))
		}
		if !s.IsEmpty() {
			t.Errorf("expected storage to be empty after full drain")
		}
	})
	t.Run("DrainBreak", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		var taken K
		n := 0
		for k := range s.Drain() {
			taken = k
			n++
			break
		}
		if n != 1 {
			t.Fatalf("expected one pair before break, got %d", n)
		}
		expectMissing[K, int](t, taken)(s.Get(taken))
		if got, want := s.Len(), len(keys)-1; got != want {
			t.Errorf("expected pairs not reached to remain stored, Len() = %d, want %d", got, want)
		}
	})
	t.Run("IterBreak", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		n := 0
		for range s.All() {
			n++
			break
		}
		if len(keys) > 0 && n != 1 {
			t.Errorf("expected iteration to stop after break, saw %d pairs", n)
		}
		if got, want := s.Len(), len(keys); got != want {
			t.Errorf("expected read-only iteration to leave Len() = %d, got %d", want, got)
		}
	})
}

func TestDirectMapStorage(t *testing.T) {
	testMapStorage(t, func() MapStorage[Suit, int] {
		return NewSuitMapStorage[int]()
	}, []Suit{Spade, Heart, Diamond, Club})
}

func TestHashMapStorage(t *testing.T) {
	testMapStorage(t, func() MapStorage[string, int] {
		return NewHashMapStorage[string, int]()
	}, []string{"alpha", "beta", "gamma", "delta", "epsilon"})
}

func TestHashMapStoragePresized(t *testing.T) {
	testMapStorage(t, func() MapStorage[string, int] {
		return NewHashMapStorage[string, int](WithPresize(64))
	}, []string{"alpha", "beta", "gamma", "delta", "epsilon"})
}

func TestSingletonMapStorage(t *testing.T) {
	testMapStorage(t, func() MapStorage[struct{}, int] {
		return NewSingletonMapStorage[struct{}, int]()
	}, []struct{}{{}})
}

func TestOptionHashMapStorage(t *testing.T) {
	testMapStorage(t, func() MapStorage[Option[string], int] {
		return NewOptionHashMapStorage[string, int]()
	}, []Option[string]{None[string](), Some("alpha"), Some("beta"), Some("gamma")})
}

func TestOptionDirectMapStorage(t *testing.T) {
	testMapStorage(t, func() MapStorage[Option[Suit], int] {
		return NewOptionMapStorage[Suit, int](NewSuitMapStorage[int]())
	}, []Option[Suit]{Some(Spade), Some(Heart), Some(Club), None[Suit]()})
}

func TestNestedOptionMapStorage(t *testing.T) {
	testMapStorage(t, func() MapStorage[Option[Option[Suit]], int] {
		inner := NewOptionMapStorage[Suit, int](NewSuitMapStorage[int]())
		return NewOptionMapStorage[Option[Suit], int](inner)
	}, []Option[Option[Suit]]{
		None[Option[Suit]](),
		Some(None[Suit]()),
		Some(Some(Spade)),
		Some(Some(Club)),
	})
}

// testSetStorage is the set-side contract suite.
func testSetStorage[K comparable](t *testing.T, newStorage func() SetStorage[K], keys []K) {
	fill := func(t *testing.T, s SetStorage[K]) {
		t.Helper()
		for _, k := range keys {
			if !s.Insert(k) {
				t.Errorf("expected key %v to be newly added", k)
			}
		}
	}

	t.Run("Empty", func(t *testing.T) {
		s := newStorage()

		if got := s.Len(); got != 0 {
			t.Errorf("expected empty set, got Len() = %d", got)
		}
		if !s.IsEmpty() {
			t.Errorf("expected IsEmpty() on empty set")
		}
		for _, k := range keys {
			if s.Contains(k) {
				t.Errorf("expected key %v to be absent", k)
			}
		}
	})
	t.Run("InsertContains", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		for _, k := range keys {
			if !s.Contains(k) {
				t.Errorf("expected key %v to be present", k)
			}
			if s.Insert(k) {
				t.Errorf("expected re-insert of key %v to report existing", k)
			}
		}
		if got, want := s.Len(), len(keys); got != want {
			t.Errorf("expected Len() = %d, got %d", want, got)
		}
	})
	t.Run("Remove", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		for _, k := range keys {
			if !s.Remove(k) {
				t.Errorf("expected Remove(%v) to report presence", k)
			}
			if s.Remove(k) {
				t.Errorf("expected second Remove(%v) to report absence", k)
			}
		}
		if !s.IsEmpty() {
			t.Errorf("expected IsEmpty() after removing everything")
		}
	})
	t.Run("Retain", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		keep := keys[:(len(keys)+1)/2]
		kept := make(map[K]bool, len(keep))
		for _, k := range keep {
			kept[k] = true
		}
		s.Retain(func(k K) bool { return kept[k] })
		for _, k := range keys {
			if s.Contains(k) != kept[k] {
				t.Errorf("expected Contains(%v) = %v after retain", k, kept[k])
			}
		}
		if got, want := s.Len(), len(keep); got != want {
			t.Errorf("expected Len() = %d after retain, got %d", want, got)
		}
	})
	t.Run("Clear", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		s.Clear()
		if !s.IsEmpty() {
			t.Errorf("expected IsEmpty() after Clear")
		}
	})
	t.Run("All", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		got := make(map[K]bool)
		for k := range s.All() {
			if got[k] {
				t.Errorf("key %v yielded twice", k)
			}
			got[k] = true
		}
		if len(got) != len(keys) {
			t.Errorf("expected %d keys from All(), got %d", len(keys), len(got))
		}
	})
	t.Run("Drain", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		n := 0
		for range s.Drain() {
			n++
		}
		if n != len(keys) {
			t.Errorf("expected Drain() to yield %d keys, got %d", len(keys), n)
		}
		if !s.IsEmpty() {
			t.Errorf("expected set to be empty after full drain")
		}
	})
	t.Run("DrainBreak", func(t *testing.T) {
		s := newStorage()

		fill(t, s)
		var taken K
		n := 0
		for k := range s.Drain() {
			taken = k
			n++
			break
		}
		if n != 1 {
			t.Fatalf("expected one key before break, got %d", n)
		}
		if s.Contains(taken) {
			t.Errorf("expected drained key %v to be removed", taken)
		}
		if got, want := s.Len(), len(keys)-1; got != want {
			t.Errorf("expected keys not reached to remain stored, Len() = %d, want %d", got, want)
		}
	})
}

func TestDirectSetStorage(t *testing.T) {
	testSetStorage(t, func() SetStorage[Suit] {
		return NewSuitSetStorage()
	}, []Suit{Spade, Heart, Diamond, Club})
}

func TestHashSetStorage(t *testing.T) {
	testSetStorage(t, func() SetStorage[string] {
		return NewHashSetStorage[string]()
	}, []string{"alpha", "beta", "gamma", "delta"})
}

func TestSingletonSetStorageSuite(t *testing.T) {
	testSetStorage(t, func() SetStorage[struct{}] {
		return NewSingletonSetStorage[struct{}]()
	}, []struct{}{{}})
}

func TestOptionSetStorage(t *testing.T) {
	testSetStorage(t, func() SetStorage[Option[Suit]] {
		return NewOptionSetStorage[Suit](NewSuitSetStorage())
	}, []Option[Suit]{Some(Spade), Some(Diamond), None[Suit]()})
}

func expectPresent[K comparable, V comparable](t *testing.T, key K, want V) func(got V, ok bool) {
	t.Helper()
	return func(got V, ok bool) {
		t.Helper()

		if !ok {
			t.Errorf("expected key %v to be present", key)
		}
		if ok && got != want {
			t.Errorf("expected key %v to have value %v, got %v", key, want, got)
		}
	}
}

func expectMissing[K comparable, V comparable](t *testing.T, key K) func(got V, ok bool) {
	t.Helper()
	return func(got V, ok bool) {
		t.Helper()

		if ok {
			t.Errorf("expected key %v to be absent, got value %v", key, got)
		}
		if got != *new(V) {
			t.Errorf("expected zero value for absent key %v, got %v", key, got)
		}
	}
}

func expectInserted[K comparable, V comparable](t *testing.T, key K) func(previous V, replaced bool) {
	t.Helper()
	return func(previous V, replaced bool) {
		t.Helper()

		if replaced {
			t.Errorf("expected insert of key %v to be fresh, replaced value %v", key, previous)
		}
	}
}

func expectReplaced[K comparable, V comparable](t *testing.T, key K, want V) func(previous V, replaced bool) {
	t.Helper()
	return func(previous V, replaced bool) {
		t.Helper()

		if !replaced {
			t.Errorf("expected insert of key %v to replace an existing value", key)
		}
		if replaced && previous != want {
			t.Errorf("expected key %v to have previous value %v, got %v", key, want, previous)
		}
	}
}

func expectRemoved[K comparable, V comparable](t *testing.T, key K, want V) func(previous V, removed bool) {
	t.Helper()
	return func(previous V, removed bool) {
		t.Helper()

		if !removed {
			t.Errorf("expected key %v to be removed", key)
		}
		if removed && previous != want {
			t.Errorf("expected removal of key %v to return %v, got %v", key, want, previous)
		}
	}
}

func expectNotRemoved[K comparable, V comparable](t *testing.T, key K) func(previous V, removed bool) {
	t.Helper()
	return func(previous V, removed bool) {
		t.Helper()

		if removed {
			t.Errorf("expected key %v to already be absent, removed value %v", key, previous)
		}
	}
}

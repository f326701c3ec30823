package fixedmap

// occupiedSlot and vacantSlot are the two primitives a strategy supplies to
// back an [Entry]. Slot-based strategies (direct, singleton, the absent
// branch of option storage) share the bucket adapters below; hash storage
// has table-native implementations; option storage re-wraps the inner
// strategy's primitive unchanged.
type occupiedSlot[V any] interface {
	get() *V
	replace(value V) V
	remove() V
}

type vacantSlot[V any] interface {
	insert(value V) *V
}

// Entry is the uniform presence/absence handle returned by every strategy's
// Entry method. It is bound to one key and is exactly one of vacant (no
// value stored) or occupied.
//
// A handle is single use: Set, Remove, IntoPtr, OrInsert and OrInsertWith
// are terminal, and any call after a terminal one panics. Discarding a
// handle without calling a terminal operation mutates nothing. The handle
// borrows its storage exclusively; no other mutation may happen between
// obtaining it and its last use.
type Entry[K comparable, V any] struct {
	key   K
	occ   occupiedSlot[V] // non-nil iff occupied
	vac   vacantSlot[V]   // non-nil iff vacant
	spent bool
}

func occupiedEntry[K comparable, V any](key K, occ occupiedSlot[V]) *Entry[K, V] {
	return &Entry[K, V]{key: key, occ: occ}
}

func vacantEntry[K comparable, V any](key K, vac vacantSlot[V]) *Entry[K, V] {
	return &Entry[K, V]{key: key, vac: vac}
}

func (e *Entry[K, V]) use() {
	if e.spent {
		panic("fixedmap: Entry used after a terminal operation")
	}
}

func (e *Entry[K, V]) terminal() {
	e.use()
	e.spent = true
}

// Key returns the key the handle was obtained for.
func (e *Entry[K, V]) Key() K {
	e.use()
	return e.key
}

// Occupied reports whether a value is stored for the key.
func (e *Entry[K, V]) Occupied() bool {
	e.use()
	return e.occ != nil
}

// Get returns a copy of the stored value, if occupied.
func (e *Entry[K, V]) Get() (V, bool) {
	e.use()
	if e.occ == nil {
		var zero V
		return zero, false
	}
	return *e.occ.get(), true
}

// Ptr returns a pointer to the live slot, or nil when vacant. The pointer
// is valid for the handle's borrow.
func (e *Entry[K, V]) Ptr() *V {
	e.use()
	if e.occ == nil {
		return nil
	}
	return e.occ.get()
}

// AndModify applies fn to the stored value when occupied and returns the
// handle for chaining. Vacant handles are left untouched.
func (e *Entry[K, V]) AndModify(fn func(value *V)) *Entry[K, V] {
	e.use()
	if e.occ != nil {
		fn(e.occ.get())
	}
	return e
}

// Set stores value for the key, inserting when vacant and replacing when
// occupied. It returns the previous value, if any. Terminal.
func (e *Entry[K, V]) Set(value V) (previous V, replaced bool) {
	e.terminal()
	if e.occ != nil {
		return e.occ.replace(value), true
	}
	e.vac.insert(value)
	var zero V
	return zero, false
}

// Remove takes the stored value out, if any. Terminal.
func (e *Entry[K, V]) Remove() (V, bool) {
	e.terminal()
	if e.occ == nil {
		var zero V
		return zero, false
	}
	return e.occ.remove(), true
}

// IntoPtr converts the handle into a pointer to the live slot, or nil when
// vacant. Terminal.
func (e *Entry[K, V]) IntoPtr() *V {
	e.terminal()
	if e.occ == nil {
		return nil
	}
	return e.occ.get()
}

// OrInsert stores value when vacant and returns a pointer to the stored
// value either way. Terminal.
func (e *Entry[K, V]) OrInsert(value V) *V {
	e.terminal()
	if e.occ != nil {
		return e.occ.get()
	}
	return e.vac.insert(value)
}

// OrInsertWith is OrInsert with the value computed only when vacant.
// Terminal.
func (e *Entry[K, V]) OrInsertWith(fn func() V) *V {
	e.terminal()
	if e.occ != nil {
		return e.occ.get()
	}
	return e.vac.insert(fn())
}

// someBucket adapts an occupied slot to the occupiedSlot primitive.
type someBucket[V any] struct {
	slot *slot[V]
}

func (b someBucket[V]) get() *V {
	return &b.slot.value
}

func (b someBucket[V]) replace(value V) V {
	previous := b.slot.value
	b.slot.value = value
	return previous
}

func (b someBucket[V]) remove() V {
	previous, _ := b.slot.take()
	return previous
}

// noneBucket adapts an empty slot to the vacantSlot primitive.
type noneBucket[V any] struct {
	slot *slot[V]
}

func (b noneBucket[V]) insert(value V) *V {
	b.slot.set(value)
	return &b.slot.value
}

// slotEntry builds the entry handle for any slot-backed strategy.
func slotEntry[K comparable, V any](key K, s *slot[V]) *Entry[K, V] {
	if s.full {
		return occupiedEntry(key, someBucket[V]{s})
	}
	return vacantEntry(key, noneBucket[V]{s})
}

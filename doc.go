// Package fixedmap provides map and set containers whose internal storage is
// chosen per key type, so that keys drawn from a small, closed domain never
// pay for hashing.
//
// Every container delegates to a storage strategy implementing [MapStorage]
// or [SetStorage]. Four strategies exist, one per key shape:
//
//   - Direct storage for finite enumerations (named integer types with a
//     fixed set of declared constants): one value slot per declared variant,
//     addressed by the variant's declaration-order index. No hashing, no
//     probing, no per-operation allocation. Generated by the fixedmapgen
//     tool; see [DirectMapStorage] and [Domain].
//   - Hash storage for unbounded key domains (integers, strings, arbitrary
//     comparable types), backed by a Swiss-table hash map. See
//     [HashMapStorage].
//   - Singleton storage for key types with exactly one possible value, such
//     as struct{}: a single slot, size 0 or 1. See [SingletonMapStorage].
//   - Optional-key storage lifting any bound key type K to [Option][K] by
//     pairing K's own storage with one extra slot for the absent key. See
//     [OptionMapStorage].
//
// The binding from key type to strategy is resolved where the container is
// constructed, either by a generated constructor (New<T>Map for an
// enumeration T) or by one of the built-in constructors ([NewHashMap],
// [NewSingletonMap], [NewOptionMap]). There is no reflection and no runtime
// tag dispatch; a container built on direct storage compiles down to slot
// indexing.
//
// All strategies expose a uniform [Entry] handle for vacant/occupied
// mutation of a single key, and the same iteration surface (All, Keys,
// Values, Ptrs, Drain) built on range-over-func iterators. Direct storage
// iterates in declaration order; hash storage order is unspecified.
//
// None of the containers synchronize internally. A mutating call (Insert,
// Remove, Entry, Retain, Clear, Drain) needs exclusive access for its
// duration and for the lifetime of any pointer or Entry it hands out;
// read-only calls may run concurrently with each other. Wrap a container in
// a mutex if it is shared across goroutines.
package fixedmap

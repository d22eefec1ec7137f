// Package probingmap provides ProbingMap, a generic open addressing hash table that resolves
// collisions with linear probing and grows automatically.
//
// Basic usage:
//
//	counts := probingmap.NewStringMap[int]()
//	for _, word := range words {
//		if e := counts.Find(word); e != nil {
//			e.Value++
//		} else {
//			counts.Insert(word, 1)
//		}
//	}
//
// The hash strategy is a type parameter. Built-in strategies live in the hashfunc package:
// an identity hash for integers and BKDR, xxHash and CRC-32 for strings. Any type implementing
// hashfunc.Hasher can be used for other key types.
//
// Slots are in one of three states: empty, occupied or deleted. Erasing a key leaves a deleted
// slot (a tombstone) that lookups probe past and insertions may reuse. Tombstones are dropped when
// the table grows. The table starts unallocated, gets 10 slots on the first insertion, and doubles
// its capacity whenever an insertion finds the load factor above 0.7. It never shrinks.
//
// A ProbingMap is not safe for concurrent use. Callers sharing one between goroutines must
// provide their own synchronization.
package probingmap

import (
	"github.com/gostonefire/probingmap/hashfunc"
	"github.com/gostonefire/probingmap/internal/model"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Entry - A key/value pair stored in a ProbingMap.
// Pointers returned by Find refer to the entry inside the table, so Value can be updated in place.
// Key must never be modified through such a pointer.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// slot - One position in the table. The entry is only meaningful when state is model.SlotOccupied.
type slot[K comparable, V any] struct {
	state model.State
	entry Entry[K, V]
}

// ProbingMap - The main implementation struct.
// The zero value is an empty map ready to use, provided the zero value of H is a usable hash strategy.
type ProbingMap[K comparable, V any, H hashfunc.Hasher[K]] struct {
	slots  []slot[K, V]
	n      int
	hasher H
	logger *zap.Logger
}

// HashMapStat - Statistics on the usage of the table
//   - Records is the number of occupied slots
//   - Tombstones is the number of deleted slots not yet reclaimed by a growth
//   - Capacity is the total number of slots, 0 (zero) if the table is not yet allocated
//   - LoadFactor is Records / Capacity
//   - MaxProbeLength is the longest distance from a record's home slot to the slot it is stored in
type HashMapStat struct {
	Records        int
	Tombstones     int
	Capacity       int
	LoadFactor     float64
	MaxProbeLength int
}

// New - Returns a pointer to a new, empty ProbingMap using the zero value of H as hash strategy.
// No storage is allocated until the first insertion.
//   - opts are optional settings, see WithLogger
func New[K comparable, V any, H hashfunc.Hasher[K]](opts ...Option) *ProbingMap[K, V, H] {
	var hasher H
	return NewWithHasher[K, V](hasher, opts...)
}

// NewWithHasher - Returns a pointer to a new, empty ProbingMap using the given hash strategy instance.
// Use it for strategies whose zero value is not usable, such as hashfunc.Func.
//   - hasher is the hash strategy
//   - opts are optional settings, see WithLogger
func NewWithHasher[K comparable, V any, H hashfunc.Hasher[K]](hasher H, opts ...Option) *ProbingMap[K, V, H] {
	config := newConfig(opts...)

	return &ProbingMap[K, V, H]{
		hasher: hasher,
		logger: config.Logger,
	}
}

// NewIntMap - Returns a pointer to a new, empty ProbingMap for integer keys using the identity hash
func NewIntMap[K constraints.Integer, V any](opts ...Option) *ProbingMap[K, V, hashfunc.Integral[K]] {
	return New[K, V, hashfunc.Integral[K]](opts...)
}

// NewStringMap - Returns a pointer to a new, empty ProbingMap for string keys using the BKDR hash
func NewStringMap[V any](opts ...Option) *ProbingMap[string, V, hashfunc.BKDR] {
	return New[string, V, hashfunc.BKDR](opts...)
}

// Len - Returns the number of records in the map
func (P *ProbingMap[K, V, H]) Len() int {
	return P.n
}

// Cap - Returns the number of slots in the table, 0 (zero) until the first insertion
func (P *ProbingMap[K, V, H]) Cap() int {
	return len(P.slots)
}

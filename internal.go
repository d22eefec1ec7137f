package probingmap

import (
	"github.com/gostonefire/probingmap/internal/conf"
	"github.com/gostonefire/probingmap/internal/model"
	"github.com/gostonefire/probingmap/internal/probe"
	"go.uber.org/zap"
)

// prepareForInsert - Allocates the initial table on first use, or grows the table if the load factor
// before adding the new record exceeds conf.MaxLoadFactor
func (P *ProbingMap[K, V, H]) prepareForInsert() {
	if len(P.slots) == 0 {
		P.slots = make([]slot[K, V], conf.InitialCapacity)
		return
	}

	if float64(P.n)/float64(len(P.slots)) > conf.MaxLoadFactor {
		P.grow()
	}
}

// insert - Stores a record known not to be in the map, growing the table should no slot be available
func (P *ProbingMap[K, V, H]) insert(key K, value V) {
	for !P.linearProbingForSet(key, value) {
		P.grow()
	}
}

// markDeleted - Turns an occupied slot into a tombstone. The entry is reset so the table no longer
// references the key and value.
func (P *ProbingMap[K, V, H]) markDeleted(index int) {
	P.slots[index] = slot[K, V]{state: model.SlotDeleted}
	P.n--
}

// grow - Replaces the table with one of conf.GrowthFactor times the capacity, inserting every occupied
// record into it through Insert. Deleted slots are not carried over.
func (P *ProbingMap[K, V, H]) grow() {
	oldCapacity := len(P.slots)
	grown := &ProbingMap[K, V, H]{
		slots:  make([]slot[K, V], conf.GrowthFactor*oldCapacity),
		hasher: P.hasher,
		logger: P.logger,
	}

	var tombstones int
	for i := range P.slots {
		switch P.slots[i].state {
		case model.SlotOccupied:
			grown.Insert(P.slots[i].entry.Key, P.slots[i].entry.Value)
		case model.SlotDeleted:
			tombstones++
		}
	}

	P.slots = grown.slots
	P.n = grown.n

	if P.logger != nil {
		P.logger.Debug("grew probing map",
			zap.Int("oldCapacity", oldCapacity),
			zap.Int("newCapacity", len(P.slots)),
			zap.Int("records", P.n),
			zap.Int("tombstonesDropped", tombstones),
		)
	}
}

// linearProbingForGet - Is the Linear Probing Collision Resolution Technique algorithm for getting a record.
// It returns the slot index of the occupied slot holding key, found is false if there is none.
func (P *ProbingMap[K, V, H]) linearProbingForGet(key K) (index int, found bool) {
	if len(P.slots) == 0 {
		return
	}

	lp := probe.NewLinear(len(P.slots))
	home := lp.Home(P.hasher.Hash(key))

	// Loop through at most the entire set of slots
	for i := 0; i < lp.TableSize(); i++ {
		index = lp.Iteration(home, i)
		s := &P.slots[index]

		// If slot is occupied (but not with correct key) or deleted then keep searching,
		// but if slot is empty then the key can never have been added further along.
		if s.state == model.SlotOccupied && s.entry.Key == key {
			found = true
			return
		} else if s.state == model.SlotEmpty {
			break
		}
	}

	index = 0

	return
}

// linearProbingForSet - Is the Linear Probing Collision Resolution Technique algorithm for adding a record.
// The record is stored in the first slot from its home slot that is either empty or deleted.
// It returns false, leaving the table untouched, if every slot is occupied.
func (P *ProbingMap[K, V, H]) linearProbingForSet(key K, value V) (stored bool) {
	lp := probe.NewLinear(len(P.slots))
	home := lp.Home(P.hasher.Hash(key))

	for i := 0; i < lp.TableSize(); i++ {
		index := lp.Iteration(home, i)
		if P.slots[index].state == model.SlotOccupied {
			continue
		}

		P.slots[index] = slot[K, V]{
			state: model.SlotOccupied,
			entry: Entry[K, V]{Key: key, Value: value},
		}
		P.n++
		stored = true
		return
	}

	return
}

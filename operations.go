package probingmap

import (
	"github.com/gostonefire/probingmap/internal/model"
	"github.com/gostonefire/probingmap/internal/probe"
)

// Insert - Adds a new record unless a record with the same key already exists.
// An existing record is never updated, use Find to modify its value in place.
// The table is allocated on the first insertion and grows when the load factor exceeds 0.7.
//   - key is the identifier of the record
//   - value is the value to store along with key
//
// It returns:
//   - inserted is true if the record was added, false if the key was already present
func (P *ProbingMap[K, V, H]) Insert(key K, value V) (inserted bool) {
	if P.Find(key) != nil {
		return
	}

	P.prepareForInsert()
	P.insert(key, value)
	inserted = true

	return
}

// Find - Finds the record with the given key.
// The returned pointer refers to the entry inside the table and is valid until the next insertion
// that makes the table grow, or until the key is erased.
//   - key is the identifier of a record
//
// It returns:
//   - entry is a pointer to the stored record, or nil if there is no record with the key
func (P *ProbingMap[K, V, H]) Find(key K) (entry *Entry[K, V]) {
	index, found := P.linearProbingForGet(key)
	if !found {
		return
	}

	entry = &P.slots[index].entry

	return
}

// Erase - Removes the record with the given key by marking its slot as deleted.
// The slot is reusable by later insertions and is reclaimed when the table grows.
//   - key is the identifier of a record
//
// It returns:
//   - erased is true if a record was removed, false if there was no record with the key
func (P *ProbingMap[K, V, H]) Erase(key K) (erased bool) {
	index, found := P.linearProbingForGet(key)
	if !found {
		return
	}

	P.markDeleted(index)
	erased = true

	return
}

// Get - Gets the value of the record with the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is a copy of the stored value, the zero value of V if not found
//   - err is of type NoRecordFound if there is no record with the key
func (P *ProbingMap[K, V, H]) Get(key K) (value V, err error) {
	entry := P.Find(key)
	if entry == nil {
		err = NoRecordFound{}
		return
	}

	value = entry.Value

	return
}

// Pop - Returns the value of the record with the given key and removes the record from the map.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the removed record, the zero value of V if not found
//   - err is of type NoRecordFound if there is no record with the key
func (P *ProbingMap[K, V, H]) Pop(key K) (value V, err error) {
	index, found := P.linearProbingForGet(key)
	if !found {
		err = NoRecordFound{}
		return
	}

	value = P.slots[index].entry.Value
	P.markDeleted(index)

	return
}

// Range - Calls f for each record in the map, in slot order, until f returns false.
// The order is not stable across growth and must not be relied upon.
// The map must not be modified from within f.
func (P *ProbingMap[K, V, H]) Range(f func(key K, value V) bool) {
	for i := range P.slots {
		if P.slots[i].state != model.SlotOccupied {
			continue
		}
		if !f(P.slots[i].entry.Key, P.slots[i].entry.Value) {
			return
		}
	}
}

// Stat - Returns statistics on the usage of the table, it visits every slot
func (P *ProbingMap[K, V, H]) Stat() (stat HashMapStat) {
	stat.Capacity = len(P.slots)
	if stat.Capacity == 0 {
		return
	}

	lp := probe.NewLinear(stat.Capacity)
	for i := range P.slots {
		switch P.slots[i].state {
		case model.SlotOccupied:
			stat.Records++
			home := lp.Home(P.hasher.Hash(P.slots[i].entry.Key))
			if d := lp.Distance(home, i); d > stat.MaxProbeLength {
				stat.MaxProbeLength = d
			}
		case model.SlotDeleted:
			stat.Tombstones++
		}
	}
	stat.LoadFactor = float64(stat.Records) / float64(stat.Capacity)

	return
}

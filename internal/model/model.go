package model

// State - Tri-state marker of a slot in the table
type State uint8

// SlotEmpty - State indicating a slot that has not been in use since the table was allocated.
// An empty slot terminates any probe sequence.
const SlotEmpty State = 0

// SlotOccupied - State indicating a slot that holds a live key/value pair
const SlotOccupied State = 1

// SlotDeleted - State indicating a slot that has been in use but was erased (a tombstone).
// Lookups probe past it, insertions may reuse it.
const SlotDeleted State = 2

// String - Returns a readable name of the state
func (S State) String() string {
	switch S {
	case SlotEmpty:
		return "empty"
	case SlotOccupied:
		return "occupied"
	case SlotDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

package probe

// Linear - Implements the Linear Probing Collision Resolution Technique over a table of fixed size.
// Starting at the home slot of a hash value it visits the following slots one by one, wrapping around
// at the end of the table, so that tableSize iterations visit every slot exactly once.
type Linear struct {
	tableSize int
}

// NewLinear - Returns a Linear prober for a table with tableSize slots.
// The table size must be higher than 0 (zero), callers are expected to guard an unallocated table.
func NewLinear(tableSize int) Linear {
	return Linear{tableSize: tableSize}
}

// TableSize - Returns the number of slots the prober addresses, which is also the upper bound
// of iterations needed to visit every slot
func (L Linear) TableSize() int {
	return L.tableSize
}

// Home - Returns the slot that a hash value maps to, i.e. hashValue mod table size
func (L Linear) Home(hashValue uint64) int {
	return int(hashValue % uint64(L.tableSize))
}

// Iteration - Returns the slot visited in the given iteration when probing from home.
// Iteration 0 (zero) is the home slot itself.
//   - home is a slot number between 0 and table size - 1
//   - iteration is a number between 0 and table size - 1
func (L Linear) Iteration(home, iteration int) int {
	probe := home + iteration
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}

// Distance - Returns the number of iterations needed to reach slot when probing from home
func (L Linear) Distance(home, slot int) int {
	if slot >= home {
		return slot - home
	}

	return slot + L.tableSize - home
}

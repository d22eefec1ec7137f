package hashfunc

import "golang.org/x/exp/constraints"

// Integral - Identity hash for integer keys, the numeric value of the key is its own hash.
// Negative keys are converted with two's complement wrapping.
type Integral[K constraints.Integer] struct{}

// Hash - Returns the key converted to uint64
func (Integral[K]) Hash(key K) uint64 {
	return uint64(key)
}

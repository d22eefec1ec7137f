// Package hashfunc provides the hash strategies a ProbingMap can be instantiated with.
//
// A strategy is given to the map as a type parameter, so the zero value of the strategy type
// must be usable unless the map is created through NewWithHasher. All built-in strategies are
// zero size value types.
package hashfunc

// Hasher - Interface that permits a ProbingMap to be instantiated with a hash strategy suited for
// its particular key type and distribution of keys.
type Hasher[K any] interface {
	// Hash - Given key it returns an unsigned hash value. The value must be deterministic, and keys
	// that compare equal must give the same hash value. The map reduces it to a slot number by
	// taking it modulo the current capacity.
	Hash(key K) uint64
}

// Func - Adapts a plain function to the Hasher interface.
// The zero value is a nil function, so a map using Func must be created with NewWithHasher.
type Func[K any] func(key K) uint64

// Hash - Calls F(key)
func (F Func[K]) Hash(key K) uint64 {
	return F(key)
}

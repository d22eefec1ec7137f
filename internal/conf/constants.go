package conf

// InitialCapacity - Number of slots allocated on the first insertion into an empty map
const InitialCapacity int = 10

// MaxLoadFactor - Load factor (occupied slots / capacity) that, when exceeded before an insertion,
// makes the map grow
const MaxLoadFactor float64 = 0.7

// GrowthFactor - Multiplier applied to the capacity when the map grows
const GrowthFactor int = 2

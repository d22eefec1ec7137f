package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"hash/crc32"
)

// bkdrSeed - Multiplier of the BKDR polynomial rolling hash
const bkdrSeed uint64 = 131

// BKDR - Polynomial rolling hash for string keys. For each byte c of the key it accumulates
// value = value*131 + c, wrapping on overflow. There is no seeding and no case normalization.
type BKDR struct{}

// Hash - Returns the BKDR hash of key
func (BKDR) Hash(key string) uint64 {
	var value uint64
	for i := 0; i < len(key); i++ {
		value = value*bkdrSeed + uint64(key[i])
	}

	return value
}

// XXHash - Hash for string keys using the 64-bit xxHash algorithm, which spreads similar keys
// far better than BKDR at a similar cost.
type XXHash struct{}

// Hash - Returns the xxHash64 of key
func (XXHash) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// CRC32 - Hash for string keys using crc32.ChecksumIEEE over the bytes of the key
type CRC32 struct{}

// Hash - Returns the IEEE CRC-32 checksum of key
func (CRC32) Hash(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

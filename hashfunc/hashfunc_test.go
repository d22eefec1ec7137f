//go:build unit

package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"hash/crc32"
	"testing"
)

func TestIntegral_Hash(t *testing.T) {
	t.Run("returns the key itself", func(t *testing.T) {
		// Prepare
		h := Integral[int]{}

		// Execute and Check
		for _, key := range []int{0, 2, 6, 35, 76, 89, 201} {
			assert.Equalf(t, uint64(key), h.Hash(key), "identity hash of %d", key)
		}
	})

	t.Run("wraps negative keys", func(t *testing.T) {
		// Prepare
		h := Integral[int8]{}

		// Execute
		hashValue := h.Hash(-1)

		// Check
		assert.Equal(t, ^uint64(0), hashValue, "two's complement of -1")
	})
}

func TestBKDR_Hash(t *testing.T) {
	t.Run("empty string hashes to zero", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, uint64(0), BKDR{}.Hash(""))
	})

	t.Run("accumulates value times 131 plus byte", func(t *testing.T) {
		// Execute
		hashValue := BKDR{}.Hash("ab")

		// Check
		assert.Equal(t, uint64(97*131+98), hashValue, "correct polynomial value")
	})

	t.Run("wraps on overflow", func(t *testing.T) {
		// Execute
		hashValue := BKDR{}.Hash("ping-pang ball")

		// Check
		assert.Equal(t, uint64(16062447308396308246), hashValue, "correct value modulo 2^64")
	})

	t.Run("is case sensitive", func(t *testing.T) {
		// Execute and Check
		assert.NotEqual(t, BKDR{}.Hash("Tennis"), BKDR{}.Hash("tennis"))
	})
}

func TestXXHash_Hash(t *testing.T) {
	t.Run("is deterministic xxhash64", func(t *testing.T) {
		// Execute
		first := XXHash{}.Hash("football")
		second := XXHash{}.Hash("football")

		// Check
		assert.Equal(t, first, second, "same key gives same hash")
		assert.Equal(t, xxhash.Sum64String("football"), first, "matches xxhash")
		assert.NotEqual(t, first, XXHash{}.Hash("footable"), "different keys differ")
	})
}

func TestCRC32_Hash(t *testing.T) {
	t.Run("is crc32 IEEE checksum", func(t *testing.T) {
		// Execute
		hashValue := CRC32{}.Hash("abc")

		// Check
		assert.Equal(t, uint64(891568578), hashValue, "known checksum")
		assert.Equal(t, uint64(crc32.ChecksumIEEE([]byte("abc"))), hashValue, "matches crc32")
	})
}

func TestFunc_Hash(t *testing.T) {
	t.Run("calls the wrapped function", func(t *testing.T) {
		// Prepare
		var h Hasher[string] = Func[string](func(key string) uint64 { return uint64(len(key)) })

		// Execute
		hashValue := h.Hash("tennis")

		// Check
		assert.Equal(t, uint64(6), hashValue, "hash from wrapped function")
	})
}

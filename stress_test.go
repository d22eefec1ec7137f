//go:build stress

package probingmap

import (
	"github.com/gostonefire/probingmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

// TestProbingMap_Stress - Runs a long random sequence of operations against both a ProbingMap and a
// built-in map and checks that they agree after every step
func TestProbingMap_Stress(t *testing.T) {
	tests := []struct {
		name string
		keys int
	}{
		{name: "dense keys", keys: 64},
		{name: "sparse keys", keys: 100000},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Prepare
			rnd := rand.New(rand.NewSource(123))
			m := New[int, int, hashfunc.Integral[int]]()
			ref := make(map[int]int)

			// Execute and Check
			for i := 0; i < 200000; i++ {
				key := rnd.Intn(test.keys)
				switch rnd.Intn(4) {
				case 0, 1:
					_, exists := ref[key]
					inserted := m.Insert(key, i)
					if !assert.Equalf(t, !exists, inserted, "insert of %d in step #%d", key, i) {
						return
					}
					if inserted {
						ref[key] = i
					}
				case 2:
					_, exists := ref[key]
					if !assert.Equalf(t, exists, m.Erase(key), "erase of %d in step #%d", key, i) {
						return
					}
					delete(ref, key)
				case 3:
					value, exists := ref[key]
					e := m.Find(key)
					if !assert.Equalf(t, exists, e != nil, "find of %d in step #%d", key, i) {
						return
					}
					if exists {
						assert.Equalf(t, value, e.Value, "value of %d in step #%d", key, i)
					}
				}

				if !assert.Equalf(t, len(ref), m.Len(), "length in step #%d", i) {
					return
				}
			}

			stat := m.Stat()
			assert.Equal(t, len(ref), stat.Records, "records agree")
			for key, value := range ref {
				got, err := m.Get(key)
				assert.NoErrorf(t, err, "gets %d", key)
				assert.Equalf(t, value, got, "value of %d", key)
			}
		})
	}
}

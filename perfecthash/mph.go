package perfecthash

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Hash implements the FNV32A hash for strings and byte slices, taking d as
// a parameter to provide a variation of the hash.
func Hash[T ~string | ~[]byte](d int32, key T) uint32 {
	result := uint32(d)
	if d == 0 {
		result = 0x01000193
	}

	// Use the FNV algorithm from http://isthe.com/chongo/tech/comp/fnv/
	for i := 0; i < len(key); i++ {
		result = (result * 0x01000193) ^ uint32(key[i])
	}
	return result
}

// CreateMinimalPerfectHash creates a minimal perfect hash for an array
// of items. Size is the number of items, and hash is a hash function.
// The hash function takes d, a variant, and i, the index of the item to hash,
// and returns its hashed value.
//
// The result is two arrays. The first, G, contains the d value to use
// for the secondary hash function. A negative value -s-1 means the item
// sits directly in slot s. The second contains a shuffling of the items,
// indicating which item should be placed in each slot.
func CreateMinimalPerfectHash(size int, hash func(d int32, i int) uint32) ([]int32, []int) {
	// Step 1: Place all of the keys into buckets
	buckets := make([][]int, size)
	G := make([]int32, size)
	values := make([]int, size)

	for i := range values {
		values[i] = -1
	}

	for item := 0; item < size; item++ {
		b := int(hash(0, item) % uint32(size))
		buckets[b] = append(buckets[b], item)
	}

	// Step 2: Sort the buckets and process the ones with the most items first.
	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i]) > len(buckets[j])
	})

	var maxD int32
	var b int
	for b = 0; b < len(buckets); b++ {
		bucket := buckets[b]
		if len(bucket) <= 1 {
			break
		}

		d := int32(1)
		item := 0
		slots := make([]int, 0, len(bucket))

		// Repeatedly try different values of d until we find a hash function
		// that places all items in the bucket into free slots
		for item < len(bucket) {
			slot := int(hash(d, bucket[item]) % uint32(size))
			found := false
			for _, pos := range slots {
				if slot == pos {
					found = true
					break
				}
			}
			if values[slot] != -1 || found {
				d++
				item = 0
				slots = slots[:0]
			} else {
				item++
				slots = append(slots, slot)
			}
		}

		if d > maxD {
			maxD = d
		}

		G[hash(0, bucket[0])%uint32(size)] = d
		for i := 0; i < len(bucket); i++ {
			values[slots[i]] = bucket[i]
		}
	}

	// Only buckets with 1 item remain. Process them more quickly by directly
	// placing them into a free slot. Use a negative value of d to indicate
	// this.
	freelist := make([]int, 0, size)
	for i := 0; i < size; i++ {
		if values[i] == -1 {
			freelist = append(freelist, i)
		}
	}

	for nb := b; nb < len(buckets); nb++ {
		bucket := buckets[nb]
		if len(bucket) == 0 || len(freelist) == 0 {
			break
		}
		slot := freelist[len(freelist)-1]
		freelist = freelist[:len(freelist)-1]
		// We subtract one to ensure it's negative even if the zeroeth slot was
		// used.
		G[hash(0, bucket[0])%uint32(size)] = int32(-slot - 1)
		values[slot] = bucket[0]
	}

	log.Debug().
		Int("items", size).
		Int("multiBuckets", b).
		Int32("maxD", maxD).
		Msg("minimal perfect hash created")

	return G, values
}

// table is a set of keys laid out by a minimal perfect hash.
type table struct {
	g    []int32
	keys []string
}

func newTable(keys []string) table {
	g, permute := CreateMinimalPerfectHash(len(keys), func(d int32, i int) uint32 {
		return Hash(d, keys[i])
	})

	slots := make([]string, len(keys))
	for dest, src := range permute {
		slots[dest] = keys[src]
	}
	return table{g: g, keys: slots}
}

// has reports whether key is in the table. It hashes key at most twice.
func has[T ~string | ~[]byte](t *table, key T) bool {
	n := uint32(len(t.keys))
	if n == 0 {
		return false
	}

	var slot uint32
	if d := t.g[Hash(0, key)%n]; d < 0 {
		slot = uint32(-d - 1)
	} else {
		slot = Hash(d, key) % n
	}
	return t.keys[slot] == string(key)
}

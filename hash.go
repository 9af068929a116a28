package probemap

import "github.com/cespare/xxhash/v2"

// Hasher maps a key to a 64-bit hash. It must be deterministic: equal keys
// always hash to the same value.
type Hasher func(key string) uint64

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// hashKey is the default primary hash.
func hashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

// hashKey2 computes a 64-bit FNV-1a hash of the key. It only feeds the
// DoubleHash increment, so it must not be correlated with hashKey.
func hashKey2(key string) uint64 {
	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}

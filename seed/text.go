package seed

import (
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
	"github.com/minio/highwayhash"
	"github.com/zeebo/errs"
)

// Error is the error class for seed derivation failures.
var Error = errs.Class("seed")

// FromText hashes the UTF-8 bytes of str with standard 64-bit FNV-1a and mixes
// the digest. The same text always yields the same seed on every platform,
// which makes it handy for named, reproducible streams ("level-1",
// "npc-spawner", ...). Bytes are hashed unsigned; implementations that XOR a
// signed char differ from this for non-ASCII text.
func FromText(str string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(str))
	return Xnasam(h.Sum64(), DefaultDomain)
}

// FromBytes derives a seed from arbitrary data using xxHash64.
func FromBytes(data []byte) uint64 {
	return Xnasam(xxhash.Sum64(data), DefaultDomain)
}

// FromKeyed derives a seed from data under a secret 32-byte key using
// HighwayHash-64. Distinct keys give unrelated seed families for the same
// data. An error is returned if the key does not have exactly 32 bytes.
func FromKeyed(key, data []byte) (uint64, error) {
	if len(key) != highwayhash.Size {
		return 0, Error.New("key must be %d bytes, got %d", highwayhash.Size, len(key))
	}
	return Xnasam(highwayhash.Sum64(data, key), DefaultDomain), nil
}

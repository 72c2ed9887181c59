package bloompress

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// StepSeed derives the seed of sweep step i from a sweep-wide seed. Each step
// gets an independent stream regardless of which worker runs it, so a
// parallel sweep is reproducible from its seed alone.
func StepSeed(seed uint64, step int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(step))
	return xxh3.HashSeed(buf[:], seed)
}

// fingerprint returns the xxh3 hash of data.
func fingerprint(data []byte) uint64 {
	return xxh3.Hash(data)
}

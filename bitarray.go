package bloompress

import "math/bits"

// BitArray is the byte image of a synthesized filter. Byte i holds bits
// 8i..8i+7, least significant bit first.
type BitArray []byte

// Synthesize returns a bit array whose occupancy statistics match a Bloom
// filter of cfg.BitWidth bits after cfg.InsertCount insertions with
// cfg.HashCount uniform hash functions.
//
// No hashing takes place. Each of the InsertCount*HashCount events draws a
// byte index in [0, BitWidth/8) and then a bit index in [0, 8) from rng and
// sets that bit. Repeated hits are idempotent, so occupancy saturates towards
// all ones as InsertCount grows.
//
// The k draws of one insertion are independent of each other; only the
// aggregate occupancy is modeled, not per-key correlation.
func Synthesize(rng Source, cfg FilterConfig) (BitArray, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	numBytes := cfg.NumBytes()
	b := make(BitArray, numBytes)
	for range cfg.Events() {
		idx := rng.Intn(numBytes)
		bit := rng.Intn(8)
		b[idx] |= 1 << bit
	}
	return b, nil
}

// BitWidth returns the number of bits in b.
func (b BitArray) BitWidth() int {
	return len(b) * 8
}

// OnesCount returns the number of set bits.
func (b BitArray) OnesCount() int {
	var n int
	for _, v := range b {
		n += bits.OnesCount8(v)
	}
	return n
}

// FillRatio returns the proportion of bits that are set.
func (b BitArray) FillRatio() float64 {
	if len(b) == 0 {
		return 0
	}
	return float64(b.OnesCount()) / float64(b.BitWidth())
}

// Fingerprint returns a 64-bit hash of the array's bytes.
func (b BitArray) Fingerprint() uint64 {
	return fingerprint(b)
}

// Probe draws k uniformly random bit positions, using the same draw shape as
// Synthesize, and reports whether all of them are set. Since the array holds
// no real keys, every positive probe is a false positive. An empty array
// holds no set bits, so its probes are always negative.
func (b BitArray) Probe(rng Source, k int) bool {
	if len(b) == 0 {
		return false
	}
	for range k {
		idx := rng.Intn(len(b))
		bit := rng.Intn(8)
		if b[idx]&(1<<bit) == 0 {
			return false
		}
	}
	return true
}

// ProbeRate returns the fraction of probes positive out of n, each probe
// testing k bits.
func (b BitArray) ProbeRate(rng Source, k, n int) float64 {
	if n <= 0 || len(b) == 0 {
		return 0
	}
	var hits int
	for range n {
		if b.Probe(rng, k) {
			hits++
		}
	}
	return float64(hits) / float64(n)
}

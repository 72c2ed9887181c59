package bloompress

import "math"

// ln2 is the natural logarithm of 2.
const ln2 = 0.6931471805599453

// EstimateFalsePositiveRate returns the standard prediction for a filter of
// bitWidth bits holding insertCount items with hashCount hash functions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(bitWidth, hashCount, insertCount int) float64 {
	m := float64(bitWidth)
	n := float64(insertCount)
	k := float64(hashCount)

	if m <= 0 || n <= 0 || k <= 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-k*n/m), k)
}

// ExpectedFillRatio returns the expected proportion of set bits in an array
// produced by Synthesize: 1 - (1 - 1/m)^(kn).
func ExpectedFillRatio(cfg FilterConfig) float64 {
	if cfg.BitWidth <= 0 || cfg.Events() <= 0 {
		return 0
	}
	m := float64(cfg.BitWidth)
	// Log1p keeps precision for large m.
	return -math.Expm1(float64(cfg.Events()) * math.Log1p(-1/m))
}

// EntropyBound returns, in bytes, the entropy of a bit array whose bits are
// independently set with probability ExpectedFillRatio(cfg). No codec can
// beat it on average. It peaks at a fill ratio of 1/2, where it equals the
// uncompressed size, and falls again as the filter saturates.
func EntropyBound(cfg FilterConfig) float64 {
	p := ExpectedFillRatio(cfg)
	return float64(cfg.BitWidth) * binaryEntropy(p) / 8
}

// binaryEntropy returns H(p) in bits.
func binaryEntropy(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}

// OptimalHashCount returns the k minimizing the false positive rate for
// insertCount items in bitWidth bits: round(m/n * ln2), at least 1.
func OptimalHashCount(bitWidth, insertCount int) int {
	if insertCount <= 0 || bitWidth <= 0 {
		return 1
	}
	k := int(math.Round(float64(bitWidth) / float64(insertCount) * ln2))
	return max(k, 1)
}

// HalfFillInsertCount returns the insert count at which the expected fill
// ratio reaches 1/2, where compressed sizes peak: n = m*ln2/k.
func HalfFillInsertCount(bitWidth, hashCount int) int {
	if hashCount <= 0 {
		return 0
	}
	return int(math.Round(float64(bitWidth) * ln2 / float64(hashCount)))
}

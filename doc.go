// Package bloompress measures how well sparse Bloom filter bit arrays
// compress, and how the observed false positive rate of such arrays tracks
// the standard prediction.
//
// A Bloom filter that is sent over the wire while mostly empty wastes space:
// a 2^16 bit filter with a few hundred keys is almost all zero bytes. This
// package answers "how small does it get" for a given bit width, hash count,
// insert count and codec.
//
// # Synthesis
//
// [Synthesize] produces the bit array without hashing any keys. Each of the
// n*k insertion events sets one uniformly random bit, which reproduces the
// occupancy statistics of a real filter:
//
//	fill ≈ 1 - (1 - 1/m)^(kn)
//
// Compressors only see the final bit pattern, so this is enough to study
// compressibility. The k events of one insertion are not correlated with a
// shared key, so per-key false positive correlation is not modeled.
//
// All randomness comes from a [Source] passed by the caller. Use [NewSource]
// with a fixed seed for reproducible experiments.
//
// # Sampling
//
// [Sample] synthesizes several arrays for one [FilterConfig], feeds every
// array to every codec and returns the mean compressed size per codec. The
// codecs live in the compression subpackage; any type implementing
// compression.Codec can be plugged in.
//
// # Sweeps
//
// [Sweep] repeats [Sample] over an increasing sequence of insert counts or
// hash counts and collects a [SweepResult]: one series of [SamplePoint] per
// codec, all index-aligned with the swept values. [SweepParallel] runs the
// steps concurrently with one derived seed per step ([StepSeed]) and merges
// them in order, so its output does not depend on scheduling.
//
// # What to expect
//
// Compressed size is bounded below by the entropy of the array
// ([EntropyBound]). It grows with the fill ratio until about half of the bits
// are set ([HalfFillInsertCount]), where no codec can do better than the
// uncompressed size, and shrinks again as the filter saturates.
//
// # False positives
//
// [EstimateFalsePositiveRate] gives the usual prediction
//
//	(1 - e^(-kn/m))^k
//
// and [CompareFalsePositive] measures the rate on synthesized arrays by
// probing k random bits at a time.
//
// # Thread Safety
//
// Functions in this package are safe for concurrent use as long as sources
// and codecs are not shared between goroutines. Neither is safe for
// concurrent use on its own.
package bloompress

package bloompress

import (
	"math"

	"github.com/cockroachdb/errors"
)

// FalsePositivePoint compares the predicted and observed false positive
// rates at one insert count. Observed is NaN when it was not measured.
type FalsePositivePoint struct {
	InsertCount int
	Predicted   float64
	Observed    float64
}

// FalsePositiveCurve is the false positive rate of a filter with a fixed bit
// width and hash count as the insert count grows.
type FalsePositiveCurve struct {
	BitWidth  int
	HashCount int
	Points    []FalsePositivePoint
}

// PredictedFalsePositiveCurve evaluates EstimateFalsePositiveRate at each
// insert count.
func PredictedFalsePositiveCurve(bitWidth, hashCount int, insertCounts []int) FalsePositiveCurve {
	curve := FalsePositiveCurve{
		BitWidth:  bitWidth,
		HashCount: hashCount,
		Points:    make([]FalsePositivePoint, len(insertCounts)),
	}
	for i, n := range insertCounts {
		curve.Points[i] = FalsePositivePoint{
			InsertCount: n,
			Predicted:   EstimateFalsePositiveRate(bitWidth, hashCount, n),
			Observed:    math.NaN(),
		}
	}
	return curve
}

// CompareFalsePositive returns the predicted curve together with the
// observed rate: for each insert count, sampleSize arrays are synthesized and
// probed probes times each with hashCount random bits, and the positive
// fractions are averaged. With sampleSize 0 only the prediction is computed.
func CompareFalsePositive(
	rng Source, bitWidth, hashCount int, insertCounts []int, probes, sampleSize int,
) (FalsePositiveCurve, error) {
	curve := PredictedFalsePositiveCurve(bitWidth, hashCount, insertCounts)
	if sampleSize == 0 {
		for _, n := range insertCounts {
			if err := (FilterConfig{BitWidth: bitWidth, HashCount: hashCount, InsertCount: n}).Validate(); err != nil {
				return FalsePositiveCurve{}, err
			}
		}
		return curve, nil
	}
	if sampleSize < 0 {
		return FalsePositiveCurve{}, errors.Wrapf(ErrInvalidConfiguration, "sample size must not be negative (got %d)", sampleSize)
	}
	if probes < 1 {
		return FalsePositiveCurve{}, errors.Wrapf(ErrInvalidConfiguration, "probe count must be at least 1 (got %d)", probes)
	}

	for i, n := range insertCounts {
		cfg := FilterConfig{BitWidth: bitWidth, HashCount: hashCount, InsertCount: n}
		var sum float64
		for range sampleSize {
			b, err := Synthesize(rng, cfg)
			if err != nil {
				return FalsePositiveCurve{}, err
			}
			sum += b.ProbeRate(rng, hashCount, probes)
		}
		curve.Points[i].Observed = sum / float64(sampleSize)
	}
	return curve, nil
}

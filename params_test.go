package bloompress

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

func TestParamsDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/params", func(t *testing.T, td *datadriven.TestData) string {
		var cfg FilterConfig
		switch td.Cmd {
		case "predict":
			var insertCounts []int
			td.ScanArgs(t, "bit-width", &cfg.BitWidth)
			td.ScanArgs(t, "hash-count", &cfg.HashCount)
			td.ScanArgs(t, "insert-counts", &insertCounts)
			var buf strings.Builder
			for _, n := range insertCounts {
				fmt.Fprintf(&buf, "n=%d fpr=%.6f\n", n, EstimateFalsePositiveRate(cfg.BitWidth, cfg.HashCount, n))
			}
			return buf.String()

		case "expect":
			td.ScanArgs(t, "bit-width", &cfg.BitWidth)
			td.ScanArgs(t, "hash-count", &cfg.HashCount)
			td.ScanArgs(t, "insert-count", &cfg.InsertCount)
			return fmt.Sprintf("fill=%.6f entropy=%.2f\n", ExpectedFillRatio(cfg), EntropyBound(cfg))

		case "optimal":
			td.ScanArgs(t, "bit-width", &cfg.BitWidth)
			td.ScanArgs(t, "insert-count", &cfg.InsertCount)
			return fmt.Sprintf("k=%d\n", OptimalHashCount(cfg.BitWidth, cfg.InsertCount))

		case "half-fill":
			td.ScanArgs(t, "bit-width", &cfg.BitWidth)
			td.ScanArgs(t, "hash-count", &cfg.HashCount)
			return fmt.Sprintf("n=%d\n", HalfFillInsertCount(cfg.BitWidth, cfg.HashCount))

		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func TestEstimateFalsePositiveRate(t *testing.T) {
	// Increases with the insert count.
	prev := 0.0
	for n := 0; n <= 20_000; n += 500 {
		fpr := EstimateFalsePositiveRate(1<<16, 5, n)
		if fpr < prev {
			t.Errorf("n=%d: fpr %.6f below previous %.6f", n, fpr, prev)
		}
		if fpr < 0 || fpr > 1 {
			t.Errorf("n=%d: fpr %.6f out of [0, 1]", n, fpr)
		}
		prev = fpr
	}
}

func TestEstimateFalsePositiveRateEdgeCases(t *testing.T) {
	for _, tc := range []struct {
		m, k, n int
	}{
		{0, 5, 100},
		{1 << 16, 0, 100},
		{1 << 16, 5, 0},
		{1 << 16, 5, -1},
	} {
		if got := EstimateFalsePositiveRate(tc.m, tc.k, tc.n); got != 0 {
			t.Errorf("m=%d k=%d n=%d: expected 0, got %f", tc.m, tc.k, tc.n, got)
		}
	}
}

func TestExpectedFillRatioMatchesApproximation(t *testing.T) {
	// For large m, 1 - (1 - 1/m)^(kn) ≈ 1 - e^(-kn/m).
	for _, n := range []int{100, 1000, 10_000, 100_000} {
		cfg := FilterConfig{BitWidth: 1 << 20, HashCount: 4, InsertCount: n}
		approx := 1 - math.Exp(-4*float64(n)/(1<<20))
		if got := ExpectedFillRatio(cfg); math.Abs(got-approx) > 1e-6 {
			t.Errorf("n=%d: got %.8f, want ~%.8f", n, got, approx)
		}
	}
}

func TestEntropyBoundPeaksAtHalfFill(t *testing.T) {
	const m, k = 1 << 16, 5
	half := HalfFillInsertCount(m, k)
	peak := EntropyBound(FilterConfig{BitWidth: m, HashCount: k, InsertCount: half})
	if math.Abs(peak-m/8) > 0.01 {
		t.Errorf("entropy at half fill = %.2f, want %d", peak, m/8)
	}
	for _, n := range []int{0, half / 4, half / 2, 2 * half, 4 * half, 10 * half} {
		e := EntropyBound(FilterConfig{BitWidth: m, HashCount: k, InsertCount: n})
		if e > peak {
			t.Errorf("n=%d: entropy %.2f exceeds half-fill entropy %.2f", n, e, peak)
		}
	}
}

func TestOptimalHashCountEdgeCases(t *testing.T) {
	if k := OptimalHashCount(1<<16, 0); k != 1 {
		t.Errorf("expected 1 for zero items, got %d", k)
	}
	if k := OptimalHashCount(64, 1_000_000); k != 1 {
		t.Errorf("expected k clamped to 1, got %d", k)
	}
	if n := HalfFillInsertCount(1<<16, 0); n != 0 {
		t.Errorf("expected 0 for zero hash count, got %d", n)
	}
}

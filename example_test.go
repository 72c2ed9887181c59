package bloompress_test

import (
	"context"
	"fmt"

	"github.com/jcalabro/bloompress"
	"github.com/jcalabro/bloompress/compression"
)

// This example measures the mean compressed size of a 2^16 bit filter holding
// 1,000 keys, with and without compression.
func Example() {
	codecs, err := compression.NewAll([]compression.Setting{compression.NoCompression, compression.ZlibDefault})
	if err != nil {
		panic(err)
	}
	defer compression.CloseAll(codecs)

	cfg := bloompress.FilterConfig{BitWidth: 1 << 16, HashCount: 5, InsertCount: 1000}
	means, err := bloompress.Sample(bloompress.NewSource(1), cfg, codecs, 10)
	if err != nil {
		panic(err)
	}

	fmt.Printf("uncompressed: %.0f bytes\n", means["none"])
	fmt.Println("zlib smaller:", means["zlib"] < means["none"])

	// Output:
	// uncompressed: 8192 bytes
	// zlib smaller: true
}

// This example sweeps the insert count and prints one series.
func ExampleSweep() {
	codecs, err := compression.NewAll([]compression.Setting{compression.NoCompression})
	if err != nil {
		panic(err)
	}
	defer compression.CloseAll(codecs)

	spec := bloompress.SweepSpec{
		Base:       bloompress.FilterConfig{BitWidth: 1 << 12, HashCount: 3},
		Param:      bloompress.InsertCount,
		Values:     bloompress.Range(0, 301, 100),
		SampleSize: 2,
	}
	res, err := bloompress.Sweep(context.Background(), bloompress.NewSource(1), spec, codecs, bloompress.SweepOptions{})
	if err != nil {
		panic(err)
	}
	for _, p := range res.Series("none") {
		fmt.Printf("%s=%d: %.0f bytes\n", res.Param, p.Value, p.Mean)
	}

	// Output:
	// insert-count=0: 512 bytes
	// insert-count=100: 512 bytes
	// insert-count=200: 512 bytes
	// insert-count=300: 512 bytes
}

func ExampleRange() {
	fmt.Println(bloompress.Range(0, 201, 50))

	// Output:
	// [0 50 100 150 200]
}

func ExampleEstimateFalsePositiveRate() {
	// A 2^16 bit filter with 5 hash functions after 10,000 inserts.
	rate := bloompress.EstimateFalsePositiveRate(1<<16, 5, 10_000)
	fmt.Printf("Estimated FP rate: %.2f%%\n", rate*100)

	// Output:
	// Estimated FP rate: 4.33%
}

func ExampleEntropyBound() {
	for _, n := range []int{1000, bloompress.HalfFillInsertCount(1<<16, 5), 100_000} {
		cfg := bloompress.FilterConfig{BitWidth: 1 << 16, HashCount: 5, InsertCount: n}
		fmt.Printf("n=%d fill=%.3f at least %.0f bytes\n", n, bloompress.ExpectedFillRatio(cfg), bloompress.EntropyBound(cfg))
	}

	// Output:
	// n=1000 fill=0.073 at least 3102 bytes
	// n=9085 fill=0.500 at least 8192 bytes
	// n=100000 fill=1.000 at least 50 bytes
}

func ExampleOptimalHashCount() {
	fmt.Println("k:", bloompress.OptimalHashCount(1<<16, 10_000))

	// Output:
	// k: 5
}

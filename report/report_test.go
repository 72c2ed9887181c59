package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/jcalabro/bloompress"
	"github.com/stretchr/testify/require"
)

func testResult(t *testing.T) *bloompress.SweepResult {
	t.Helper()
	res := bloompress.NewSweepResult(bloompress.InsertCount,
		bloompress.FilterConfig{BitWidth: 1024, HashCount: 3}, []string{"bzip2", "zlib"})
	require.NoError(t, res.Append(0, map[string]float64{"bzip2": 10, "zlib": 12.5}))
	require.NoError(t, res.Append(50, map[string]float64{"bzip2": 60, "zlib": 70.25}))
	require.NoError(t, res.Append(100, map[string]float64{"bzip2": 90, "zlib": 101}))
	return res
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testResult(t)))
	require.Equal(t, `insert-count,bzip2,zlib,uncompressed
0,10,12.5,128
50,60,70.25,128
100,90,101,128
`, buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, testResult(t))
	out := buf.String()
	t.Log("\n" + out)

	for _, s := range []string{"insert-count", "bzip2 ratio", "zlib ratio", "70.2", "101.0", "m=1024", "k=3"} {
		require.Contains(t, out, s)
	}
	// Header, three rows and the caption, plus borders.
	require.GreaterOrEqual(t, strings.Count(out, "\n"), 7)
}

func TestPlot(t *testing.T) {
	out := Plot(testResult(t), PlotOptions{Width: 40, Height: 8})
	t.Log("\n" + out)
	require.Contains(t, out, "over insert-count 0..100")
	require.Contains(t, out, "series: 1=bzip2, 2=zlib, 3=uncompressed")
	require.GreaterOrEqual(t, strings.Count(out, "\n"), 8)

	empty := bloompress.NewSweepResult(bloompress.InsertCount, bloompress.FilterConfig{BitWidth: 64, HashCount: 1}, []string{"x"})
	require.Empty(t, Plot(empty, PlotOptions{}))
}

func TestPlotDoesNotAliasCodecs(t *testing.T) {
	res := testResult(t)
	_ = Plot(res, PlotOptions{})
	require.Equal(t, []string{"bzip2", "zlib"}, res.Codecs())
}

func TestWriteFalsePositiveTable(t *testing.T) {
	var curves []bloompress.FalsePositiveCurve
	for _, k := range []int{4, 5} {
		curves = append(curves, bloompress.PredictedFalsePositiveCurve(1<<16, k, []int{0, 10_000}))
	}
	var buf bytes.Buffer
	WriteFalsePositiveTable(&buf, curves)
	out := buf.String()
	t.Log("\n" + out)
	require.Contains(t, out, "k=4 predicted")
	require.Contains(t, out, "k=5 predicted")
	require.Contains(t, out, "4.33% (1 in 23)")
	require.NotContains(t, out, "observed")

	curve, err := bloompress.CompareFalsePositive(bloompress.NewSource(1), 1<<12, 3, []int{100, 200}, 100, 1)
	require.NoError(t, err)
	buf.Reset()
	WriteFalsePositiveTable(&buf, []bloompress.FalsePositiveCurve{curve})
	require.Contains(t, buf.String(), "k=3 observed")

	buf.Reset()
	WriteFalsePositiveTable(&buf, nil)
	require.Empty(t, buf.String())
}

func TestPlotFalsePositive(t *testing.T) {
	var curves []bloompress.FalsePositiveCurve
	for _, k := range []int{4, 5, 6} {
		curves = append(curves, bloompress.PredictedFalsePositiveCurve(1<<16, k, bloompress.Range(0, 10_000, 500)))
	}
	out := PlotFalsePositive(curves, PlotOptions{Height: 10})
	t.Log("\n" + out)
	require.Contains(t, out, "series: 1=k=4, 2=k=5, 3=k=6")
	require.Contains(t, out, "insert-count 0..9500")
	require.NotContains(t, out, "observed")

	require.Empty(t, PlotFalsePositive(nil, PlotOptions{}))
}

func TestFormatRate(t *testing.T) {
	for _, tc := range []struct {
		rate float64
		want string
	}{
		{math.NaN(), "-"},
		{0, "0%"},
		{0.005, "0.5%"},
		{0.0001234, "0.0123%"},
		{0.25, "25.00% (1 in 4)"},
		{0.0433, "4.33% (1 in 23)"},
	} {
		require.Equal(t, tc.want, formatRate(tc.rate))
	}
}

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/jcalabro/bloompress"
	"github.com/olekukonko/tablewriter"
)

// WriteFalsePositiveTable writes one row per insert count and, per curve, a
// predicted column and an observed column if the curve was measured. Curves
// must share their insert counts.
func WriteFalsePositiveTable(w io.Writer, curves []bloompress.FalsePositiveCurve) {
	if len(curves) == 0 {
		return
	}
	header := []string{"insert-count"}
	for _, c := range curves {
		header = append(header, fmt.Sprintf("k=%d predicted", c.HashCount))
		if observed(c) {
			header = append(header, fmt.Sprintf("k=%d observed", c.HashCount))
		}
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetHeader(header)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, p := range curves[0].Points {
		row := []string{strconv.Itoa(p.InsertCount)}
		for _, c := range curves {
			row = append(row, formatRate(c.Points[i].Predicted))
			if observed(c) {
				row = append(row, formatRate(c.Points[i].Observed))
			}
		}
		tbl.Append(row)
	}
	tbl.SetCaption(true, fmt.Sprintf("false positive rate, m=%d", curves[0].BitWidth))
	tbl.Render()
}

// PlotFalsePositive plots the predicted rate of every curve, followed by the
// observed rates of the measured ones.
func PlotFalsePositive(curves []bloompress.FalsePositiveCurve, opts PlotOptions) string {
	if len(curves) == 0 || len(curves[0].Points) == 0 {
		return ""
	}
	var series [][]float64
	var names []string
	for _, c := range curves {
		series = append(series, rates(c, false))
		names = append(names, fmt.Sprintf("k=%d", c.HashCount))
	}
	for _, c := range curves {
		if observed(c) {
			series = append(series, rates(c, true))
			names = append(names, fmt.Sprintf("k=%d observed", c.HashCount))
		}
	}
	points := curves[0].Points
	caption := fmt.Sprintf("false positive rate over insert-count %d..%d; series: %s",
		points[0].InsertCount, points[len(points)-1].InsertCount, legend(names))
	return asciigraph.PlotMany(series, opts.apply([]asciigraph.Option{
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	})...)
}

func observed(c bloompress.FalsePositiveCurve) bool {
	return len(c.Points) > 0 && !math.IsNaN(c.Points[0].Observed)
}

func rates(c bloompress.FalsePositiveCurve, observed bool) []float64 {
	r := make([]float64, len(c.Points))
	for i, p := range c.Points {
		if observed {
			r[i] = p.Observed
		} else {
			r[i] = p.Predicted
		}
	}
	return r
}

// formatRate prints a rate as a percentage, with "1 in N" for rates that are
// not negligible.
func formatRate(r float64) string {
	switch {
	case math.IsNaN(r):
		return "-"
	case r <= 0:
		return "0%"
	case r >= 0.01:
		return fmt.Sprintf("%.2f%% (1 in %d)", r*100, int(math.Round(1/r)))
	default:
		return strconv.FormatFloat(r*100, 'g', 3, 64) + "%"
	}
}

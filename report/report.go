// Package report renders sweep results and false positive curves as text
// tables, ASCII plots and CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/jcalabro/bloompress"
	"github.com/olekukonko/tablewriter"
)

// UncompressedSeries is the name of the baseline series added to plots and
// CSV output.
const UncompressedSeries = "uncompressed"

// PlotOptions sizes an ASCII plot. Zero values leave the choice to
// asciigraph: one column per point and a height matching the data range.
type PlotOptions struct {
	Width  int
	Height int
}

func (o PlotOptions) apply(opts []asciigraph.Option) []asciigraph.Option {
	if o.Width > 0 {
		opts = append(opts, asciigraph.Width(o.Width))
	}
	if o.Height > 0 {
		opts = append(opts, asciigraph.Height(o.Height))
	}
	return opts
}

// WriteTable writes res as a table with one row per swept value. Each codec
// gets a column with its mean size in bytes and its ratio to the uncompressed
// size.
func WriteTable(w io.Writer, res *bloompress.SweepResult) {
	uncompressed := float64(res.UncompressedSize())
	codecs := res.Codecs()

	header := []string{res.Param.String()}
	for _, name := range codecs {
		header = append(header, name, name+" ratio")
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetHeader(header)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, v := range res.Values {
		row := []string{strconv.Itoa(v)}
		for _, name := range codecs {
			mean := res.Series(name)[i].Mean
			row = append(row,
				strconv.FormatFloat(mean, 'f', 1, 64),
				fmt.Sprintf("%s", crhumanize.Percent(mean, uncompressed)),
			)
		}
		tbl.Append(row)
	}
	tbl.SetCaption(true, fmt.Sprintf("%s (%d bytes uncompressed)", describe(res), res.UncompressedSize()))
	tbl.Render()
}

// Plot returns an ASCII plot of every codec series of res together with the
// uncompressed size as a flat baseline.
func Plot(res *bloompress.SweepResult, opts PlotOptions) string {
	if res.Len() == 0 {
		return ""
	}
	codecs := res.Codecs()
	series := make([][]float64, 0, len(codecs)+1)
	for _, name := range codecs {
		series = append(series, res.Means(name))
	}
	baseline := make([]float64, res.Len())
	for i := range baseline {
		baseline[i] = float64(res.UncompressedSize())
	}
	series = append(series, baseline)

	names := append(append([]string(nil), codecs...), UncompressedSeries)
	caption := fmt.Sprintf("mean size in bytes over %s %d..%d; series: %s",
		res.Param, res.Values[0], res.Values[res.Len()-1], legend(names))
	return asciigraph.PlotMany(series, opts.apply([]asciigraph.Option{
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	})...)
}

// WriteCSV writes res with a header row: the swept parameter, one column per
// codec and the uncompressed size.
func WriteCSV(w io.Writer, res *bloompress.SweepResult) error {
	cw := csv.NewWriter(w)
	codecs := res.Codecs()
	header := []string{res.Param.String()}
	header = append(header, codecs...)
	header = append(header, UncompressedSeries)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	uncompressed := strconv.Itoa(res.UncompressedSize())
	for i, v := range res.Values {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(v))
		for _, name := range codecs {
			row = append(row, strconv.FormatFloat(res.Series(name)[i].Mean, 'f', -1, 64))
		}
		row = append(row, uncompressed)
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing csv row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}

func describe(res *bloompress.SweepResult) string {
	b := res.Base
	switch res.Param {
	case bloompress.HashCount:
		return fmt.Sprintf("m=%d n=%d", b.BitWidth, b.InsertCount)
	default:
		return fmt.Sprintf("m=%d k=%d", b.BitWidth, b.HashCount)
	}
}

// legend numbers the series in plotting order.
func legend(names []string) string {
	var s string
	for i, name := range names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d=%s", i+1, name)
	}
	return s
}

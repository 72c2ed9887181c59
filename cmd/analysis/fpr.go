package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-kit/log/level"
	"github.com/jcalabro/bloompress"
	"github.com/jcalabro/bloompress/report"
	"github.com/spf13/cobra"
)

var (
	hashCountList string
	fprStop       int
	fprStep       int
	probes        int
)

var fprCmd = &cobra.Command{
	Use:   "fpr",
	Short: "compare predicted and observed false positive rates",
	Long: `Prints the predicted false positive rate (1 - e^(-kn/m))^k for each hash
count in --hash-counts over insert counts [--start, --stop) in increments of
--step. With --samples above 0, also synthesizes that many arrays per insert
count and reports the observed rate of --probes random probes.`,
	Args: cobra.NoArgs,
	RunE: runFPR,
}

func runFPR(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	if err := checkFormat("table", "plot"); err != nil {
		return err
	}
	ks, err := parseInts(hashCountList)
	if err != nil {
		return errors.Wrap(err, "parsing --hash-counts")
	}
	insertCounts := bloompress.Range(start, fprStop, fprStep)
	if len(insertCounts) == 0 {
		return errors.Newf("empty insert count range [%d, %d) step %d", start, fprStop, fprStep)
	}

	rng := bloompress.NewSource(resolveSeed())
	curves := make([]bloompress.FalsePositiveCurve, 0, len(ks))
	for _, k := range ks {
		began := time.Now()
		curve, err := bloompress.CompareFalsePositive(rng, bitWidth, k, insertCounts, probes, samples)
		if err != nil {
			level.Error(logger).Log("msg", "false positive comparison failed", "hash_count", k, "err", err)
			return err
		}
		level.Debug(logger).Log("msg", "curve done", "hash_count", k, "points", len(curve.Points), "elapsed", time.Since(began))
		curves = append(curves, curve)
	}

	w := cmd.OutOrStdout()
	if format == "plot" {
		fmt.Fprintln(w, report.PlotFalsePositive(curves, report.PlotOptions{Width: width, Height: height}))
		return nil
	}
	report.WriteFalsePositiveTable(w, curves)
	return nil
}

// parseInts parses a comma separated list of integers, skipping blanks.
func parseInts(list string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("no values given")
	}
	return out, nil
}

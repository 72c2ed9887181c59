package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jcalabro/bloompress"
	"github.com/jcalabro/bloompress/compression"
	"github.com/jcalabro/bloompress/report"
	"github.com/spf13/cobra"
)

var (
	bitWidth    int
	hashCount   int
	insertCount int
	param       string
	start       int
	stop        int
	step        int
	samples     int
	codecList   string
	parallel    int
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "sweep the insert or hash count and report mean compressed sizes",
	Long: `Sweeps the insert count (or hash count with --param hash) over
[--start, --stop) in increments of --step. Each step synthesizes --samples bit
arrays, compresses each with every codec in --codecs and reports the mean
compressed size per codec next to the uncompressed size.`,
	Args: cobra.NoArgs,
	RunE: runCompress,
}

func runCompress(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	ctx, cancel := signalContext(logger)
	defer cancel()

	if err := checkFormat("table", "plot", "csv"); err != nil {
		return err
	}
	spec, err := compressSpec()
	if err != nil {
		return err
	}
	settings, err := compression.ParseSettings(codecList)
	if err != nil {
		return err
	}
	s := resolveSeed()
	level.Info(logger).Log("msg", "starting sweep",
		"param", spec.Param, "steps", len(spec.Values), "samples", spec.SampleSize,
		"bit_width", spec.Base.BitWidth, "codecs", codecList, "seed", s)

	began := time.Now()
	opts := bloompress.SweepOptions{Logger: logger, Parallelism: parallel, Seed: s}
	var res *bloompress.SweepResult
	if parallel > 1 {
		res, err = bloompress.SweepParallel(ctx, spec, bloompress.SettingsFactory(settings), opts)
	} else {
		res, err = sequentialSweep(ctx, spec, settings, s, opts)
	}
	if err != nil {
		level.Error(logger).Log("msg", "sweep failed", "err", err)
		return err
	}
	level.Info(logger).Log("msg", "sweep done", "steps", res.Len(), "elapsed", time.Since(began))
	return writeSweep(cmd.OutOrStdout(), res)
}

func compressSpec() (bloompress.SweepSpec, error) {
	spec := bloompress.SweepSpec{
		Base:       bloompress.FilterConfig{BitWidth: bitWidth, HashCount: hashCount, InsertCount: insertCount},
		Values:     bloompress.Range(start, stop, step),
		SampleSize: samples,
	}
	switch param {
	case "insert", "insert-count", "n":
		spec.Param = bloompress.InsertCount
	case "hash", "hash-count", "k":
		spec.Param = bloompress.HashCount
	default:
		return spec, errors.Newf("unknown --param %q (want insert or hash)", param)
	}
	if len(spec.Values) == 0 {
		return spec, errors.Newf("empty sweep range [%d, %d) step %d", start, stop, step)
	}
	return spec, spec.Validate()
}

func sequentialSweep(
	ctx context.Context, spec bloompress.SweepSpec, settings []compression.Setting, seed uint64, opts bloompress.SweepOptions,
) (*bloompress.SweepResult, error) {
	codecs, err := compression.NewAll(settings)
	if err != nil {
		return nil, err
	}
	defer compression.CloseAll(codecs)
	return bloompress.Sweep(ctx, bloompress.NewSource(seed), spec, codecs, opts)
}

func writeSweep(w io.Writer, res *bloompress.SweepResult) error {
	switch format {
	case "table":
		report.WriteTable(w, res)
	case "plot":
		fmt.Fprintln(w, report.Plot(res, report.PlotOptions{Width: width, Height: height}))
	case "csv":
		return report.WriteCSV(w, res)
	default:
		return errors.Newf("unknown --format %q (want table, plot or csv)", format)
	}
	return nil
}

func checkFormat(allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return errors.Newf("unknown --format %q (want one of %v)", format, allowed)
}

// resolveSeed returns --seed, or a clock-derived seed when it is 0.
func resolveSeed() uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			level.Info(logger).Log("msg", "received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()
	return ctx, cancel
}

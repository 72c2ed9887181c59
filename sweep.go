package bloompress

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jcalabro/bloompress/compression"
	"golang.org/x/sync/errgroup"
)

// Param names the FilterConfig field a sweep varies.
type Param uint8

const (
	// InsertCount sweeps FilterConfig.InsertCount.
	InsertCount Param = iota
	// HashCount sweeps FilterConfig.HashCount.
	HashCount
)

func (p Param) String() string {
	switch p {
	case InsertCount:
		return "insert-count"
	case HashCount:
		return "hash-count"
	default:
		return "unknown"
	}
}

// SweepSpec describes one sweep: Base with Param replaced by each of Values
// in turn.
type SweepSpec struct {
	Base       FilterConfig
	Param      Param
	Values     []int
	SampleSize int
}

// Config returns the FilterConfig of the sweep step taking value v.
func (s SweepSpec) Config(v int) FilterConfig {
	cfg := s.Base
	switch s.Param {
	case InsertCount:
		cfg.InsertCount = v
	case HashCount:
		cfg.HashCount = v
	}
	return cfg
}

// Validate checks the parameter, the ordering of Values, the sample size and
// every derived FilterConfig.
func (s SweepSpec) Validate() error {
	if s.Param != InsertCount && s.Param != HashCount {
		return errors.Wrapf(ErrInvalidConfiguration, "unknown sweep parameter %d", s.Param)
	}
	if len(s.Values) == 0 {
		return errors.Wrap(ErrInvalidConfiguration, "no sweep values")
	}
	if s.SampleSize < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "sample size must be at least 1 (got %d)", s.SampleSize)
	}
	for i, v := range s.Values {
		if i > 0 && v <= s.Values[i-1] {
			return errors.Wrapf(ErrInvalidConfiguration,
				"sweep values must be strictly increasing (%d follows %d)", v, s.Values[i-1])
		}
		if err := s.Config(v).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Range returns start, start+step, ... up to but excluding stop. It returns
// nil when step is not positive or start >= stop.
func Range(start, stop, step int) []int {
	if step <= 0 || start >= stop {
		return nil
	}
	values := make([]int, 0, (stop-start+step-1)/step)
	for v := start; v < stop; v += step {
		values = append(values, v)
	}
	return values
}

// SamplePoint is one step of a series: the swept value and the mean
// compressed size in bytes.
type SamplePoint struct {
	Value int
	Mean  float64
}

// SweepResult holds one series per codec, index-aligned with Values. The
// codec set is fixed at construction and Append only accepts steps that cover
// exactly that set, so every series always has len(Values) points.
type SweepResult struct {
	Param Param
	// Base is the configuration the swept parameter was applied to.
	Base   FilterConfig
	Values []int

	codecs []string
	series map[string][]SamplePoint
}

// NewSweepResult returns an empty result for the given codec names.
func NewSweepResult(param Param, base FilterConfig, codecs []string) *SweepResult {
	r := &SweepResult{
		Param:  param,
		Base:   base,
		codecs: append([]string(nil), codecs...),
		series: make(map[string][]SamplePoint, len(codecs)),
	}
	for _, name := range codecs {
		r.series[name] = nil
	}
	return r
}

// Append records the means of one sweep step. value must exceed the last
// appended value and means must hold exactly one entry per codec.
func (r *SweepResult) Append(value int, means map[string]float64) error {
	if n := len(r.Values); n > 0 && value <= r.Values[n-1] {
		return errors.Wrapf(ErrInvalidConfiguration,
			"sweep value %d does not follow %d", value, r.Values[n-1])
	}
	if len(means) != len(r.codecs) {
		return errors.Wrapf(ErrInvalidConfiguration,
			"step %d has %d means, want %d", value, len(means), len(r.codecs))
	}
	for _, name := range r.codecs {
		if _, ok := means[name]; !ok {
			return errors.Wrapf(ErrInvalidConfiguration, "step %d is missing codec %q", value, name)
		}
	}

	r.Values = append(r.Values, value)
	for _, name := range r.codecs {
		r.series[name] = append(r.series[name], SamplePoint{Value: value, Mean: means[name]})
	}
	return nil
}

// Codecs returns the codec names in the order they were given.
func (r *SweepResult) Codecs() []string {
	return r.codecs
}

// Series returns the points recorded for a codec, or nil if the codec is
// unknown.
func (r *SweepResult) Series(codec string) []SamplePoint {
	return r.series[codec]
}

// Means returns the mean sizes of a codec's series, index-aligned with
// Values.
func (r *SweepResult) Means(codec string) []float64 {
	points := r.series[codec]
	if points == nil {
		return nil
	}
	means := make([]float64, len(points))
	for i, p := range points {
		means[i] = p.Mean
	}
	return means
}

// Len returns the number of recorded steps.
func (r *SweepResult) Len() int {
	return len(r.Values)
}

// UncompressedSize returns the byte length of the arrays being compressed.
func (r *SweepResult) UncompressedSize() int {
	return r.Base.NumBytes()
}

// SweepOptions tune how a sweep runs.
type SweepOptions struct {
	// Logger receives a debug line per completed step. Defaults to a no-op
	// logger.
	Logger log.Logger
	// Parallelism bounds the number of concurrent steps in SweepParallel.
	// Values below 1 mean 1.
	Parallelism int
	// Seed is the sweep-wide seed from which SweepParallel derives the source
	// of each step via StepSeed.
	Seed uint64
}

func (o SweepOptions) logger() log.Logger {
	if o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}

// Sweep runs Sample once per value of spec.Values, in order, drawing every
// step from rng. Any error aborts the sweep. ctx is checked before each step;
// a cancelled sweep returns ctx.Err().
func Sweep(
	ctx context.Context, rng Source, spec SweepSpec, codecs []compression.Codec, opts SweepOptions,
) (*SweepResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	names, err := codecNames(codecs)
	if err != nil {
		return nil, err
	}

	logger := opts.logger()
	res := NewSweepResult(spec.Param, spec.Base, names)
	for i, v := range spec.Values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		means, err := Sample(rng, spec.Config(v), codecs, spec.SampleSize)
		if err != nil {
			return nil, errors.Wrapf(err, "%s=%d", spec.Param, v)
		}
		if err := res.Append(v, means); err != nil {
			return nil, err
		}
		logStep(logger, spec, names, i, v, means)
	}
	return res, nil
}

// CodecFactory builds a fresh codec set. SweepParallel calls it once per
// step since codecs are not safe for concurrent use. Every call must return
// codecs with the same names in the same order.
type CodecFactory func() ([]compression.Codec, error)

// SettingsFactory returns a CodecFactory building codecs from settings.
func SettingsFactory(settings []compression.Setting) CodecFactory {
	return func() ([]compression.Codec, error) {
		return compression.NewAll(settings)
	}
}

// SweepParallel runs the steps of spec concurrently, at most
// opts.Parallelism at a time. Step i draws from NewSource(StepSeed(opts.Seed,
// i)), so the result depends only on the seed and is identical to running
// the steps one by one with those sources. Results are merged in value order.
//
// The first error cancels the remaining steps and is returned.
func SweepParallel(
	ctx context.Context, spec SweepSpec, newCodecs CodecFactory, opts SweepOptions,
) (*SweepResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	probe, err := newCodecs()
	if err != nil {
		return nil, err
	}
	names, err := codecNames(probe)
	compression.CloseAll(probe)
	if err != nil {
		return nil, err
	}

	logger := opts.logger()
	steps := make([]map[string]float64, len(spec.Values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Parallelism, 1))
	for i, v := range spec.Values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			codecs, err := newCodecs()
			if err != nil {
				return err
			}
			defer compression.CloseAll(codecs)

			rng := NewSource(StepSeed(opts.Seed, i))
			means, err := Sample(rng, spec.Config(v), codecs, spec.SampleSize)
			if err != nil {
				return errors.Wrapf(err, "%s=%d", spec.Param, v)
			}
			steps[i] = means
			logStep(logger, spec, names, i, v, means)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := NewSweepResult(spec.Param, spec.Base, names)
	for i, v := range spec.Values {
		if err := res.Append(v, steps[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func logStep(logger log.Logger, spec SweepSpec, names []string, step, value int, means map[string]float64) {
	kvs := []interface{}{
		"msg", "sweep step",
		"step", step + 1,
		"of", len(spec.Values),
		"param", spec.Param,
		"value", value,
	}
	for _, name := range names {
		kvs = append(kvs, name, means[name])
	}
	level.Debug(logger).Log(kvs...)
}

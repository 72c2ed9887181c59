package bloompress

import (
	"github.com/cockroachdb/errors"
	"github.com/jcalabro/bloompress/compression"
)

// Sample estimates the expected compressed size of a bit array synthesized
// from cfg under each codec. It draws sampleSize arrays; each array is fed to
// every codec so that the codecs see identical bit patterns, and the output
// lengths per codec are averaged (sum / sampleSize).
//
// The returned map is keyed by codec name. A codec error aborts the whole
// sample; the error matches ErrCodecFailure.
func Sample(rng Source, cfg FilterConfig, codecs []compression.Codec, sampleSize int) (map[string]float64, error) {
	if err := validateSample(cfg, codecs, sampleSize); err != nil {
		return nil, err
	}

	sums := make([]int, len(codecs))
	// Each codec reuses its own previous output as scratch space.
	bufs := make([][]byte, len(codecs))
	for range sampleSize {
		b, err := Synthesize(rng, cfg)
		if err != nil {
			return nil, err
		}
		for i, c := range codecs {
			out, err := c.Compress(bufs[i], b)
			if err != nil {
				return nil, errors.Mark(errors.Wrapf(err, "compressing with %s", c.Name()), ErrCodecFailure)
			}
			sums[i] += len(out)
			bufs[i] = out[:0]
		}
	}

	means := make(map[string]float64, len(codecs))
	for i, c := range codecs {
		means[c.Name()] = float64(sums[i]) / float64(sampleSize)
	}
	return means, nil
}

func validateSample(cfg FilterConfig, codecs []compression.Codec, sampleSize int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if sampleSize < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "sample size must be at least 1 (got %d)", sampleSize)
	}
	_, err := codecNames(codecs)
	return err
}

// codecNames returns the codec names in order, rejecting an empty list and
// duplicate names.
func codecNames(codecs []compression.Codec) ([]string, error) {
	if len(codecs) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "no codecs")
	}
	names := make([]string, len(codecs))
	seen := make(map[string]struct{}, len(codecs))
	for i, c := range codecs {
		name := c.Name()
		if _, ok := seen[name]; ok {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "duplicate codec %q", name)
		}
		seen[name] = struct{}{}
		names[i] = name
	}
	return names, nil
}

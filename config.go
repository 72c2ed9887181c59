package bloompress

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Defaults of the compression experiment: a 2^16 bit filter, five hash
// functions, ten samples per sweep step.
const (
	DefaultBitWidth   = 1 << 16
	DefaultHashCount  = 5
	DefaultSampleSize = 10
)

var (
	// ErrInvalidConfiguration is returned for malformed inputs: a bit width that
	// is not a positive multiple of 8, a hash count below 1, a negative insert
	// count, a sample size below 1, or an unordered sweep.
	ErrInvalidConfiguration = errors.New("bloompress: invalid configuration")

	// ErrCodecFailure marks errors returned by a codec's Compress. The codec's
	// own error remains reachable through errors.Is and errors.As.
	ErrCodecFailure = errors.New("bloompress: codec failure")
)

// FilterConfig fully determines the distribution of a synthesized bit array.
type FilterConfig struct {
	// BitWidth is the filter size in bits. It must be a positive multiple of 8.
	BitWidth int
	// HashCount is the number of bits set per insertion (k).
	HashCount int
	// InsertCount is the number of insertions (n).
	InsertCount int
}

// Validate reports whether c satisfies the FilterConfig invariants. The
// returned error matches ErrInvalidConfiguration.
func (c FilterConfig) Validate() error {
	switch {
	case c.BitWidth <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "bit width must be positive (got %d)", c.BitWidth)
	case c.BitWidth%8 != 0:
		return errors.Wrapf(ErrInvalidConfiguration, "bit width must be divisible by 8 (got %d)", c.BitWidth)
	case c.HashCount < 1:
		return errors.Wrapf(ErrInvalidConfiguration, "hash count must be at least 1 (got %d)", c.HashCount)
	case c.InsertCount < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "insert count must not be negative (got %d)", c.InsertCount)
	case c.InsertCount > math.MaxInt/c.HashCount:
		return errors.Wrapf(ErrInvalidConfiguration,
			"insert count %d times hash count %d overflows int", c.InsertCount, c.HashCount)
	}
	return nil
}

// NumBytes returns the length of a bit array synthesized from c.
func (c FilterConfig) NumBytes() int {
	return c.BitWidth / 8
}

// Events returns the number of bit-set events a synthesis performs. It does
// not overflow for a config that passes Validate.
func (c FilterConfig) Events() int {
	return c.InsertCount * c.HashCount
}

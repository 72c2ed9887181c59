// Package compression provides the codecs whose output sizes are measured
// against synthesized filters. Every codec is a deterministic function of its
// input; the sampler only looks at the length of the output.
package compression

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Codec compresses byte slices. Compress appends the compressed form of src to
// dst[:0] and returns it, growing dst when needed. It must not modify src.
//
// Codecs hold reusable state and are not safe for concurrent use. Close
// releases that state; the codec must not be used afterwards.
type Codec interface {
	Name() string
	Compress(dst, src []byte) ([]byte, error)
	Close()
}

// Algorithm identifies a compression algorithm.
type Algorithm uint8

const (
	None Algorithm = iota
	Zlib
	Gzip
	Deflate
	Bzip2
	Zstd
	Snappy
	S2
	MinLZ
	LZ4
	Brotli
	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	None:    "none",
	Zlib:    "zlib",
	Gzip:    "gzip",
	Deflate: "deflate",
	Bzip2:   "bzip2",
	Zstd:    "zstd",
	Snappy:  "snappy",
	S2:      "s2",
	MinLZ:   "minlz",
	LZ4:     "lz4",
	Brotli:  "brotli",
}

// defaultLevels holds the level used when a setting leaves it unset. Zlib and
// bzip2 match the defaults of Python's zlib and bz2 modules.
var defaultLevels = [numAlgorithms]int{
	Zlib:    6,
	Gzip:    6,
	Deflate: 6,
	Bzip2:   9,
	Zstd:    3,
	S2:      1,
	MinLZ:   2,
	LZ4:     0,
	Brotli:  6,
}

// levelRanges holds the inclusive [min, max] level accepted per algorithm.
// Algorithms with max == 0 take no level.
var levelRanges = [numAlgorithms][2]int{
	Zlib:    {1, 9},
	Gzip:    {1, 9},
	Deflate: {1, 9},
	Bzip2:   {1, 9},
	Zstd:    {1, 22},
	S2:      {1, 3},
	MinLZ:   {1, 2},
	LZ4:     {1, 9},
	Brotli:  {1, 11},
}

func (a Algorithm) String() string {
	if a < numAlgorithms {
		return algorithmNames[a]
	}
	return "unknown(" + strconv.Itoa(int(a)) + ")"
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, numAlgorithms)
	for a := range numAlgorithms {
		algs = append(algs, a)
	}
	return algs
}

// Setting is an algorithm together with its compression level. A zero Level
// selects the algorithm's default.
type Setting struct {
	Algorithm Algorithm
	Level     int
}

// Settings of the default compression sweep.
var (
	NoCompression = Setting{Algorithm: None}
	ZlibDefault   = Setting{Algorithm: Zlib}
	Bzip2Default  = Setting{Algorithm: Bzip2}
)

// String returns "alg" for a default level and "alg:level" otherwise. It is
// also the name reported by the codec built from the setting.
func (s Setting) String() string {
	if s.Level == 0 {
		return s.Algorithm.String()
	}
	return s.Algorithm.String() + ":" + strconv.Itoa(s.Level)
}

// level returns the effective level of s.
func (s Setting) level() int {
	if s.Level == 0 {
		return defaultLevels[s.Algorithm]
	}
	return s.Level
}

// Validate checks that the algorithm is known and the level is in range.
func (s Setting) Validate() error {
	if s.Algorithm >= numAlgorithms {
		return errors.Newf("compression: unknown algorithm %d", s.Algorithm)
	}
	if s.Level == 0 {
		return nil
	}
	r := levelRanges[s.Algorithm]
	if r[1] == 0 {
		return errors.Newf("compression: %s does not take a level", s.Algorithm)
	}
	if s.Level < r[0] || s.Level > r[1] {
		return errors.Newf("compression: %s level %d out of range [%d, %d]", s.Algorithm, s.Level, r[0], r[1])
	}
	return nil
}

// ParseSetting parses "alg" or "alg:level", e.g. "zlib" or "zstd:19".
func ParseSetting(str string) (Setting, error) {
	name, levelStr, hasLevel := strings.Cut(strings.TrimSpace(str), ":")
	var s Setting
	found := false
	for a, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			s.Algorithm = Algorithm(a)
			found = true
			break
		}
	}
	if !found {
		return Setting{}, errors.Newf("compression: unknown algorithm %q", name)
	}
	if hasLevel {
		level, err := strconv.Atoi(levelStr)
		if err != nil {
			return Setting{}, errors.Wrapf(err, "compression: parsing level of %q", str)
		}
		s.Level = level
	}
	if err := s.Validate(); err != nil {
		return Setting{}, err
	}
	return s, nil
}

// ParseSettings parses a comma separated list of settings. Duplicates are
// rejected since codec names must be unique within a sample.
func ParseSettings(list string) ([]Setting, error) {
	var settings []Setting
	seen := make(map[string]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseSetting(part)
		if err != nil {
			return nil, err
		}
		if seen[s.String()] {
			return nil, errors.Newf("compression: duplicate setting %q", s)
		}
		seen[s.String()] = true
		settings = append(settings, s)
	}
	if len(settings) == 0 {
		return nil, errors.New("compression: no settings given")
	}
	return settings, nil
}

// New returns a codec for s.
func New(s Setting) (Codec, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	name := s.String()
	level := s.level()
	switch s.Algorithm {
	case None:
		return noopCodec{}, nil
	case Zlib:
		return newZlibCodec(name, level)
	case Gzip:
		return newGzipCodec(name, level)
	case Deflate:
		return newDeflateCodec(name, level)
	case Bzip2:
		return newBzip2Codec(name, level), nil
	case Zstd:
		return newZstdCodec(name, level)
	case Snappy:
		return snappyCodec{}, nil
	case S2:
		return newS2Codec(name, level), nil
	case MinLZ:
		return newMinlzCodec(name, level), nil
	case LZ4:
		return newLZ4Codec(name, level), nil
	case Brotli:
		return newBrotliCodec(name, level), nil
	default:
		return nil, errors.AssertionFailedf("compression: unhandled algorithm %s", s.Algorithm)
	}
}

// NewAll returns a codec per setting. On error, codecs created so far are
// closed.
func NewAll(settings []Setting) ([]Codec, error) {
	codecs := make([]Codec, 0, len(settings))
	for _, s := range settings {
		c, err := New(s)
		if err != nil {
			CloseAll(codecs)
			return nil, err
		}
		codecs = append(codecs, c)
	}
	return codecs, nil
}

// CloseAll closes every codec in codecs.
func CloseAll(codecs []Codec) {
	for _, c := range codecs {
		c.Close()
	}
}

package compression

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/pierrec/lz4/v4"
)

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1,
	lz4.Level2,
	lz4.Level3,
	lz4.Level4,
	lz4.Level5,
	lz4.Level6,
	lz4.Level7,
	lz4.Level8,
	lz4.Level9,
}

// lz4Codec writes the LZ4 frame format, so incompressible input still yields
// a well-formed (slightly larger) output.
type lz4Codec struct {
	name  string
	level lz4.CompressionLevel
	buf   bytes.Buffer
	w     *lz4.Writer
}

func newLZ4Codec(name string, level int) *lz4Codec {
	c := &lz4Codec{name: name, level: lz4Levels[level]}
	c.w = lz4.NewWriter(&c.buf)
	return c
}

func (c *lz4Codec) Name() string { return c.name }

func (c *lz4Codec) Compress(dst, src []byte) ([]byte, error) {
	c.buf.Reset()
	c.w.Reset(&c.buf)
	if err := c.w.Apply(lz4.CompressionLevelOption(c.level)); err != nil {
		return nil, errors.Wrapf(err, "%s options", c.name)
	}
	if _, err := c.w.Write(src); err != nil {
		return nil, errors.Wrapf(err, "%s write", c.name)
	}
	if err := c.w.Close(); err != nil {
		return nil, errors.Wrapf(err, "%s close", c.name)
	}
	return append(dst[:0], c.buf.Bytes()...), nil
}

func (c *lz4Codec) Close() {
	c.w = nil
	c.buf = bytes.Buffer{}
}

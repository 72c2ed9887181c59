package compression

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/dsnet/compress/bzip2"
)

// bzip2Codec is the block-sorting (Burrows-Wheeler) codec. The writer is
// rebuilt per call since the bzip2 stream header carries the level.
type bzip2Codec struct {
	name  string
	level int
	buf   bytes.Buffer
}

func newBzip2Codec(name string, level int) *bzip2Codec {
	return &bzip2Codec{name: name, level: level}
}

func (c *bzip2Codec) Name() string { return c.name }

func (c *bzip2Codec) Compress(dst, src []byte) ([]byte, error) {
	c.buf.Reset()
	w, err := bzip2.NewWriter(&c.buf, &bzip2.WriterConfig{Level: c.level})
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s writer", c.name)
	}
	if _, err := w.Write(src); err != nil {
		return nil, errors.Wrapf(err, "%s write", c.name)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "%s close", c.name)
	}
	return append(dst[:0], c.buf.Bytes()...), nil
}

func (c *bzip2Codec) Close() {
	c.buf = bytes.Buffer{}
}

package compression

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// resetWriter is the shape shared by the klauspost deflate-family writers.
type resetWriter interface {
	io.WriteCloser
	Reset(w io.Writer)
}

// streamCodec drives a reusable streaming writer over an internal buffer.
type streamCodec struct {
	name string
	buf  bytes.Buffer
	w    resetWriter
}

func (c *streamCodec) Name() string { return c.name }

func (c *streamCodec) Compress(dst, src []byte) ([]byte, error) {
	c.buf.Reset()
	c.w.Reset(&c.buf)
	if _, err := c.w.Write(src); err != nil {
		return nil, errors.Wrapf(err, "%s write", c.name)
	}
	if err := c.w.Close(); err != nil {
		return nil, errors.Wrapf(err, "%s close", c.name)
	}
	return append(dst[:0], c.buf.Bytes()...), nil
}

func (c *streamCodec) Close() {
	c.w = nil
	c.buf = bytes.Buffer{}
}

func newZlibCodec(name string, level int) (Codec, error) {
	c := &streamCodec{name: name}
	w, err := zlib.NewWriterLevel(&c.buf, level)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s writer", name)
	}
	c.w = w
	return c, nil
}

func newGzipCodec(name string, level int) (Codec, error) {
	c := &streamCodec{name: name}
	w, err := gzip.NewWriterLevel(&c.buf, level)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s writer", name)
	}
	c.w = w
	return c, nil
}

func newDeflateCodec(name string, level int) (Codec, error) {
	c := &streamCodec{name: name}
	w, err := flate.NewWriter(&c.buf, level)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s writer", name)
	}
	c.w = w
	return c, nil
}

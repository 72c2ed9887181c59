package compression

import (
	"bytes"

	"github.com/andybalholm/brotli"
	"github.com/cockroachdb/errors"
)

type brotliCodec struct {
	name string
	buf  bytes.Buffer
	w    *brotli.Writer
}

func newBrotliCodec(name string, level int) *brotliCodec {
	c := &brotliCodec{name: name}
	c.w = brotli.NewWriterLevel(&c.buf, level)
	return c
}

func (c *brotliCodec) Name() string { return c.name }

func (c *brotliCodec) Compress(dst, src []byte) ([]byte, error) {
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

func (c *brotliCodec) Close() {
	c.w = nil
	c.buf = bytes.Buffer{}
}

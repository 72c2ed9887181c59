//go:build !cgo

package compression

import (
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
)

// UseStandardZstdLib reports whether zstd output comes from the reference
// facebook/zstd implementation. Sizes differ slightly between the two builds.
const UseStandardZstdLib = false

type zstdCodec struct {
	name string
	enc  *zstd.Encoder
}

func newZstdCodec(name string, level int) (Codec, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s encoder", name)
	}
	return &zstdCodec{name: name, enc: enc}, nil
}

func (c *zstdCodec) Name() string { return c.name }

func (c *zstdCodec) Compress(dst, src []byte) ([]byte, error) {
	return c.enc.EncodeAll(src, dst[:0]), nil
}

func (c *zstdCodec) Close() {
	if c.enc != nil {
		_ = c.enc.Close()
		c.enc = nil
	}
}

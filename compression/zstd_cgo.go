//go:build cgo

package compression

import (
	"github.com/DataDog/zstd"
	"github.com/cockroachdb/errors"
)

// UseStandardZstdLib reports whether zstd output comes from the reference
// facebook/zstd implementation. Sizes differ slightly between the two builds.
const UseStandardZstdLib = true

type zstdCodec struct {
	name  string
	level int
	ctx   zstd.Ctx
}

func newZstdCodec(name string, level int) (Codec, error) {
	return &zstdCodec{name: name, level: level, ctx: zstd.NewCtx()}, nil
}

func (c *zstdCodec) Name() string { return c.name }

func (c *zstdCodec) Compress(dst, src []byte) ([]byte, error) {
	bound := zstd.CompressBound(len(src))
	if cap(dst) < bound {
		dst = make([]byte, bound)
	}
	result, err := c.ctx.CompressLevel(dst[:bound], src, c.level)
	if err != nil {
		return nil, errors.Wrapf(err, "%s compress", c.name)
	}
	return result, nil
}

func (c *zstdCodec) Close() {}

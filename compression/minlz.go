package compression

import (
	"github.com/cockroachdb/errors"
	"github.com/minio/minlz"
)

type minlzCodec struct {
	name  string
	level int
}

func newMinlzCodec(name string, level int) *minlzCodec {
	lvl := minlz.LevelBalanced
	if level == 1 {
		lvl = minlz.LevelFastest
	}
	return &minlzCodec{name: name, level: lvl}
}

func (c *minlzCodec) Name() string { return c.name }

func (c *minlzCodec) Compress(dst, src []byte) ([]byte, error) {
	// MinLZ cannot encode blocks greater than MaxBlockSize.
	if len(src) > minlz.MaxBlockSize {
		return nil, errors.Newf("%s: input of %d bytes exceeds max block size %d",
			c.name, len(src), minlz.MaxBlockSize)
	}
	compressed, err := minlz.Encode(dst[:0], src, c.level)
	if err != nil {
		return nil, errors.Wrapf(err, "%s compress", c.name)
	}
	return compressed, nil
}

func (c *minlzCodec) Close() {}

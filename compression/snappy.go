package compression

import (
	"github.com/golang/snappy"
	"github.com/klauspost/compress/s2"
)

type snappyCodec struct{}

var _ Codec = snappyCodec{}

func (snappyCodec) Name() string { return Snappy.String() }

func (snappyCodec) Compress(dst, src []byte) ([]byte, error) {
	dst = dst[:cap(dst):cap(dst)]
	return snappy.Encode(dst, src), nil
}

func (snappyCodec) Close() {}

// s2Codec covers the three s2 encoders: 1 is the default, 2 "better" and 3
// "best".
type s2Codec struct {
	name  string
	level int
}

func newS2Codec(name string, level int) *s2Codec {
	return &s2Codec{name: name, level: level}
}

func (c *s2Codec) Name() string { return c.name }

func (c *s2Codec) Compress(dst, src []byte) ([]byte, error) {
	dst = dst[:cap(dst):cap(dst)]
	switch c.level {
	case 2:
		return s2.EncodeBetter(dst, src), nil
	case 3:
		return s2.EncodeBest(dst, src), nil
	default:
		return s2.Encode(dst, src), nil
	}
}

func (c *s2Codec) Close() {}

package compress

import (
	"github.com/klauspost/compress/zstd"
)

// Zstd compresses with klauspost/compress/zstd, reusing one stateless
// encoder/decoder pair across calls (EncodeAll/DecodeAll, no streaming).
// Construct with NewZstd.
type Zstd struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

var _ Compressor = (*Zstd)(nil)

// NewZstd constructs a Zstd compressor. level uses the zstd scale (1..22);
// values outside it are clamped by zstd.EncoderLevelFromZstd.
func NewZstd(level int) (*Zstd, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, err
	}
	return &Zstd{enc: enc, dec: dec}, nil
}

func (c *Zstd) Deflate(b []byte) ([]byte, error) { return c.enc.EncodeAll(b, nil), nil }
func (c *Zstd) Inflate(b []byte) ([]byte, error) { return c.dec.DecodeAll(b, nil) }
func (c *Zstd) Name() string                     { return "zstd" }

package compress

import "github.com/klauspost/compress/s2"

// S2 compresses with klauspost/compress/s2 (snappy-compatible block
// format, faster and denser). The zero value is ready to use.
type S2 struct{}

var _ Compressor = S2{}

func (S2) Deflate(b []byte) ([]byte, error) { return s2.Encode(nil, b), nil }
func (S2) Inflate(b []byte) ([]byte, error) { return s2.Decode(nil, b) }
func (S2) Name() string                     { return "s2" }

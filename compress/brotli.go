package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// DefaultQuality is the brotli quality used by Default.
const DefaultQuality = 5

// Brotli compresses with github.com/andybalholm/brotli at a fixed quality.
// The zero value is NOT ready to use. Construct with NewBrotli or MustBrotli.
type Brotli struct {
	quality int
}

var _ Compressor = Brotli{}

// NewBrotli constructs a Brotli compressor. Quality must be within
// [brotli.BestSpeed, brotli.BestCompression] (0..11).
func NewBrotli(quality int) (Brotli, error) {
	if quality < brotli.BestSpeed || quality > brotli.BestCompression {
		return Brotli{}, fmt.Errorf("compress: brotli quality %d out of range [%d, %d]",
			quality, brotli.BestSpeed, brotli.BestCompression)
	}
	return Brotli{quality: quality}, nil
}

// MustBrotli is like NewBrotli but panics on error.
func MustBrotli(quality int) Brotli {
	c, err := NewBrotli(quality)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the compressor stores fall back to when none is
// configured: brotli at DefaultQuality.
func Default() Brotli {
	return Brotli{quality: DefaultQuality}
}

func (c Brotli) Deflate(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, c.quality)
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c Brotli) Inflate(b []byte) ([]byte, error) {
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c Brotli) Name() string { return "brotli" }

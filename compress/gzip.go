package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gzip compresses with klauspost/compress/gzip at a fixed level.
// The zero value is NOT ready to use. Construct with NewGzip.
type Gzip struct {
	level int
}

var _ Compressor = Gzip{}

// NewGzip constructs a Gzip compressor. level follows the gzip constants
// (gzip.HuffmanOnly .. gzip.BestCompression); gzip.DefaultCompression (-1)
// is accepted.
func NewGzip(level int) (Gzip, error) {
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		return Gzip{}, fmt.Errorf("compress: gzip level %d out of range [%d, %d]",
			level, gzip.HuffmanOnly, gzip.BestCompression)
	}
	return Gzip{level: level}, nil
}

func (c Gzip) Deflate(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c Gzip) Inflate(b []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (c Gzip) Name() string { return "gzip" }

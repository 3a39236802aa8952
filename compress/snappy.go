package compress

import (
	"fmt"

	"github.com/golang/snappy"
)

// Snappy compresses with golang/snappy block encoding. The zero value is
// ready to use.
type Snappy struct {
	// MaxInflate rejects payloads whose announced decoded length exceeds
	// this many bytes, before any allocation. <= 0 disables the cap.
	MaxInflate int
}

var _ Compressor = Snappy{}

func (Snappy) Deflate(b []byte) ([]byte, error) { return snappy.Encode(nil, b), nil }

func (c Snappy) Inflate(b []byte) ([]byte, error) {
	if c.MaxInflate > 0 {
		n, err := snappy.DecodedLen(b)
		if err != nil {
			return nil, err
		}
		if n > c.MaxInflate {
			return nil, fmt.Errorf("compress: snappy decoded length %d exceeds cap %d", n, c.MaxInflate)
		}
	}
	return snappy.Decode(nil, b)
}

func (Snappy) Name() string { return "snappy" }

package wire

import (
	"errors"
	"strconv"
)

// Marker is the first byte of a stored payload whose remainder is
// compressed. Payloads without it hold serialized bytes verbatim, so
// the two forms are distinguishable without a length prefix.
const Marker byte = 0x02

var ErrCorrupt = errors.New("wire: corrupt entry")

// Seal frames an already compressed payload for storage.
func Seal(compressed []byte) []byte {
	out := make([]byte, 1+len(compressed))
	out[0] = Marker
	copy(out[1:], compressed)
	return out
}

// Open splits a stored payload into its body and reports whether the
// body is compressed. Empty payloads are legal raw bodies. A lone marker
// byte is corrupt: compression of any input yields a non-empty body.
func Open(b []byte) (body []byte, compressed bool, err error) {
	if len(b) == 0 || b[0] != Marker {
		return b, false, nil
	}
	if len(b) == 1 {
		return nil, false, ErrCorrupt
	}
	return b[1:], true, nil
}

// EncodeCounter renders a counter the way backends expect for native
// increment support: decimal ASCII, no marker, no framing.
func EncodeCounter(n int64) []byte {
	return strconv.AppendInt(nil, n, 10)
}

// DecodeCounter parses a counter payload. The whole payload must be a
// valid decimal integer; trailing bytes make it corrupt.
func DecodeCounter(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, ErrCorrupt
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, ErrCorrupt
	}
	return n, nil
}

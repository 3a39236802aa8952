package codec

import "fmt"

// LimitCodec rejects oversized payloads before Inner's decoder allocates
// for them. On a shared backend any writer can place a huge entry under
// your key; the store inflates marked payloads before decoding, so the
// limit applies to the inflated size. Encode is forwarded unchanged.
//
// MaxDecode <= 0 disables the guard.
type LimitCodec[V any] struct {
	// Inner is the wrapped codec. It must be set.
	Inner Codec[V]

	// MaxDecode caps the payload length, in bytes, that Decode will hand
	// to Inner. Longer payloads fail without invoking Inner.
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}

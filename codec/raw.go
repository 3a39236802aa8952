package codec

// Bytes is the identity codec for []byte values: the store's threshold and
// compression apply to your bytes directly. An uncompressed payload whose
// first byte is 0x02 collides with the compression marker and is refused
// at write; struct and map encodings start elsewhere, arbitrary binary
// blobs can land on it.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String stores Go strings as their raw UTF-8 bytes, no validation.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }

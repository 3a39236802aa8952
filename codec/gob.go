package codec

import (
	"bytes"
	"encoding/gob"
)

// Gob is a Codec that serializes values with encoding/gob. The zero value
// is ready to use. Output is Go-specific; prefer Msgpack or CBOR when other
// runtimes read the same cache.
type Gob[V any] struct{}

func (Gob[V]) Encode(v V) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Gob[V]) Decode(b []byte) (V, error) {
	var v V
	err := gob.NewDecoder(bytes.NewReader(b)).Decode(&v)
	return v, err
}

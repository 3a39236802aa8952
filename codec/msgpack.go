package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is the store's default codec. The zero value is ready to use.
// Field names follow `msgpack:"..."` tags, not JSON tags.
//
// Struct, map, slice and string encodings never begin with the store's
// compression marker byte, so they are always storable. A bare small
// integer can (fixint 2 encodes as a single 0x02); keep integers in
// counter stores, which skip serialization entirely.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

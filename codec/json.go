package codec

import "encoding/json"

// JSONCodec trades size and speed for inspectability: entries read back
// with redis-cli are plain JSON. Numbers in interface-typed fields decode
// as float64, the usual encoding/json caveat.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

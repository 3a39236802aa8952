package codec

// Codec serializes values V to the bytes a store hands its provider (after
// optional compression) and back. Decode must return an error on bytes it
// cannot interpret rather than a zero value: the store classifies codec
// failures as corrupt payloads and never turns them into cache misses.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

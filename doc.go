// Package brcache implements a provider-agnostic cache store that transparently
// compresses large entries. Values are serialized by a pluggable codec, deflated
// when the encoding meets a size threshold and actually shrinks, and framed with
// a one-byte marker so reads know whether to inflate.
//
// Components:
//   - Provider: byte store with TTL (e.g. Ristretto, BigCache, Redis).
//   - Codec[V]: (de)serializes V <-> []byte.
//   - Compressor: deflate/inflate for stored bytes. Brotli by default,
//     zstd/s2/snappy/gzip ship alongside.
//
// Stored layout:
//
//	br-<key> -> 0x02 + deflate(encode(v))  - compressed entries
//	br-<key> -> encode(v)                  - entries below threshold or not smaller deflated
//	br-<key> -> "42"                       - counter stores (V is a signed integer type)
//
// Usage:
//
//	store, _ := brcache.New[User](brcache.Options[User]{Provider: redisProvider})
//	u, ok, err := store.Fetch(ctx, brcache.StringKey("users/1"), func(ctx context.Context) (User, error) {
//		return loadUser(ctx, 1) // runs on miss, result is cached
//	}, nil)
package brcache

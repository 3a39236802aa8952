package brcache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/brcache/codec"
	"github.com/unkn0wn-root/brcache/compress"
	pr "github.com/unkn0wn-root/brcache/provider"
)

// Producer computes a value on a Fetch miss.
type Producer[V any] func(ctx context.Context) (V, error)

// MultiProducer computes the value for one canonical (unprefixed) key
// during FetchMulti.
type MultiProducer[V any] func(ctx context.Context, key string) (V, error)

// Store is the compression decorator over a byte Provider. V is the
// caller's value type; serialization is handled by a pluggable Codec[V],
// compression by a pluggable Compressor.
//
// Stores over a predeclared signed integer type (int, int8 ... int64) are
// counter stores: values are stored as plain decimal bytes, never encoded
// or compressed, so Increment/Decrement interoperate with Write/Read.
type Store[V any] interface {
	Close(context.Context) error

	// Single
	Fetch(ctx context.Context, key Key, produce Producer[V], opts *CallOptions) (v V, ok bool, err error)
	Read(ctx context.Context, key Key, opts *CallOptions) (v V, ok bool, err error)
	Write(ctx context.Context, key Key, value V, opts *CallOptions) error

	// Multi. One provider round trip each; result maps are keyed by the
	// canonical (unprefixed) key form.
	ReadMulti(ctx context.Context, keys []Key, opts *CallOptions) (map[string]V, error)
	WriteMulti(ctx context.Context, entries map[string]V, opts *CallOptions) error
	FetchMulti(ctx context.Context, keys []Key, produce MultiProducer[V], opts *CallOptions) (map[string]V, error)

	// Maintenance ops delegate with the prefixed key and bypass codec and
	// compressor entirely.
	Exists(ctx context.Context, key Key) (bool, error)
	Delete(ctx context.Context, key Key) (existed bool, err error)
	Clear(ctx context.Context) error

	// Counters operate on backend-native integer representations.
	Increment(ctx context.Context, key Key, delta int64) (int64, error)
	Decrement(ctx context.Context, key Key, delta int64) (int64, error)

	// SupportsCacheVersioning reports that caller-side versioned key
	// schemes pass through unchanged. Always true.
	SupportsCacheVersioning() bool
}

// Options tune the behavior of the store.
// Only Provider is required; others have sensible defaults.
type Options[V any] struct {
	// Required
	Provider pr.Provider

	Codec      c.Codec[V]          // nil => codec.Msgpack[V]
	Compressor compress.Compressor // nil => compress.Default() (brotli)

	// CompressThreshold is the minimum encoded size eligible for
	// compression. 0 => DefaultCompressThreshold.
	CompressThreshold  int
	DisableCompression bool // store raw encodings regardless of size

	// Prefix namespaces storage keys. "" => DefaultPrefix.
	// DisablePrefix stores canonical keys verbatim.
	Prefix        string
	DisablePrefix bool

	// TTL applies to writes without a per-call TTL. 0 => no expiry
	// (whatever the provider does with zero).
	TTL time.Duration

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// CallOptions override store defaults for a single call. A nil *CallOptions
// means "store defaults"; the struct is never mutated by the store.
type CallOptions struct {
	// Force makes Fetch/FetchMulti skip the read and always produce.
	Force bool

	// DisableCompression stores the raw encoding for this call.
	DisableCompression bool

	// Compressor overrides the store compressor for this call: Deflate on
	// writes, Inflate on marked payloads read back. Entries written with
	// one algorithm must be read with the same one.
	Compressor compress.Compressor

	// TTL overrides the store TTL for this call's writes.
	TTL time.Duration
}

func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}

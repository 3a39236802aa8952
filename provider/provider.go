// Package provider defines the storage abstraction used by brcache.
//
// Implementations MUST be byte-for-byte transparent: Read must return exactly
// the same []byte that was previously passed to Write for a key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms they MUST be fully reversed so that the bytes
// returned by Read are identical to the bytes provided to Write. brcache's
// compression framing depends on the first stored byte surviving intact.
package provider

import (
	"context"
	"errors"
	"time"
)

// ErrNotSupported is returned by providers that cannot honor an operation,
// e.g. native counters on an evicting cache with buffered writes.
var ErrNotSupported = errors.New("provider: operation not supported")

// WriteOptions carry per-write knobs down to the backend.
type WriteOptions struct {
	// TTL <= 0 means no expiry (or the backend's global policy).
	TTL time.Duration

	// Compress toggles a backend's own native compression where one
	// exists. brcache always passes false: payloads arrive already
	// compressed and double compression only burns CPU.
	Compress bool
}

// ProduceFunc computes the bytes for one missing key during FetchMulti.
type ProduceFunc func(ctx context.Context, key string) ([]byte, error)

// Provider is a byte store with TTLs, multi-key entry points and native
// integer counters. Must be safe for concurrent use.
type Provider interface {
	// Read returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Read(ctx context.Context, key string) ([]byte, bool, error)

	// Write stores value. Returns ok=false when the store rejected the
	// write under pressure (not an error).
	Write(ctx context.Context, key string, value []byte, opts WriteOptions) (ok bool, err error)

	// ReadMulti resolves all keys in one backend round trip. Misses are
	// simply absent from the result.
	ReadMulti(ctx context.Context, keys []string) (map[string][]byte, error)

	// WriteMulti stores all entries in one backend round trip. ok=false
	// means at least one entry was rejected under pressure.
	WriteMulti(ctx context.Context, entries map[string][]byte, opts WriteOptions) (ok bool, err error)

	// FetchMulti reads all keys, produces the missing ones and writes the
	// produced entries back with opts. The result holds every key that was
	// read or produced. Pressure rejections of the write-back are not
	// surfaced; the produced bytes are still returned.
	FetchMulti(ctx context.Context, keys []string, opts WriteOptions, produce ProduceFunc) (map[string][]byte, error)

	// Exists reports presence without reading the value.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes a key and reports whether it existed.
	Delete(ctx context.Context, key string) (existed bool, err error)

	// Clear drops every entry in the store.
	Clear(ctx context.Context) error

	// IncrBy/DecrBy adjust a native integer entry, creating it from zero
	// when absent, and return the new value. Entries touched by these must
	// hold decimal integer bytes.
	IncrBy(ctx context.Context, key string, delta int64) (int64, error)
	DecrBy(ctx context.Context, key string, delta int64) (int64, error)

	// Close releases resources.
	Close(ctx context.Context) error
}

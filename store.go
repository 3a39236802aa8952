package brcache

import (
	"context"
	"fmt"
	"time"

	c "github.com/unkn0wn-root/brcache/codec"
	"github.com/unkn0wn-root/brcache/compress"
	"github.com/unkn0wn-root/brcache/internal/wire"
	pr "github.com/unkn0wn-root/brcache/provider"
)

type store[V any] struct {
	provider  pr.Provider
	codec     c.Codec[V]
	comp      compress.Compressor
	threshold int
	noDeflate bool
	prefix    string // "" when prefixing is disabled
	ttl       time.Duration
	log       Logger
	hooks     Hooks
	counter   bool // V is a predeclared signed integer kind
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("brcache: provider is required")
	}
	if opts.CompressThreshold < 0 {
		return nil, fmt.Errorf("brcache: compress threshold must not be negative")
	}
	if opts.Prefix != "" && opts.DisablePrefix {
		return nil, fmt.Errorf("brcache: Prefix and DisablePrefix are mutually exclusive")
	}

	s := &store[V]{
		provider:  opts.Provider,
		noDeflate: opts.DisableCompression,
		ttl:       opts.TTL,
		counter:   isCounterKind[V](),
	}

	// defaults
	s.codec = opts.Codec
	if s.codec == nil {
		s.codec = c.Msgpack[V]{}
	}
	s.comp = opts.Compressor
	if s.comp == nil {
		s.comp = compress.Default()
	}
	s.threshold = coalesce(opts.CompressThreshold, DefaultCompressThreshold)
	if !opts.DisablePrefix {
		s.prefix = coalesce(opts.Prefix, DefaultPrefix)
	}
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	return s, nil
}

func (s *store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store[V]) SupportsCacheVersioning() bool { return true }

func (s *store[V]) Fetch(ctx context.Context, key Key, produce Producer[V], opts *CallOptions) (V, bool, error) {
	var zero V
	force := opts != nil && opts.Force
	if !force {
		v, ok, err := s.Read(ctx, key, opts)
		if err != nil || ok {
			return v, ok, err
		}
	}
	if produce == nil {
		if force {
			return zero, false, ErrNoProducer
		}
		return zero, false, nil
	}
	v, err := produce(ctx)
	if err != nil {
		return zero, false, err
	}
	if err := s.Write(ctx, key, v, opts); err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (s *store[V]) Read(ctx context.Context, key Key, opts *CallOptions) (V, bool, error) {
	var zero V
	k := s.storageKey(key)
	raw, ok, err := s.provider.Read(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := s.decode(k, raw, opts)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (s *store[V]) Write(ctx context.Context, key Key, value V, opts *CallOptions) error {
	k := s.storageKey(key)
	payload, err := s.encode(k, value, opts)
	if err != nil {
		return err
	}
	ok, err := s.provider.Write(ctx, k, payload, s.writeOptions(opts))
	if err != nil {
		return err
	}
	if !ok {
		s.hooks.WriteRejected(k, false)
		s.log.Debug("write rejected by provider (pressure)", Fields{"key": k})
	}
	return nil
}

func (s *store[V]) ReadMulti(ctx context.Context, keys []Key, opts *CallOptions) (map[string]V, error) {
	out := make(map[string]V, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	canonical, storage := s.storageKeys(keys)
	got, err := s.provider.ReadMulti(ctx, storage)
	if err != nil {
		return nil, err
	}
	for i, sk := range storage {
		raw, ok := got[sk]
		if !ok {
			continue
		}
		v, err := s.decode(sk, raw, opts)
		if err != nil {
			return nil, err
		}
		out[canonical[i]] = v
	}
	return out, nil
}

func (s *store[V]) WriteMulti(ctx context.Context, entries map[string]V, opts *CallOptions) error {
	if len(entries) == 0 {
		return nil
	}
	payloads := make(map[string][]byte, len(entries))
	for ck, v := range entries {
		sk := s.prefix + ck
		p, err := s.encode(sk, v, opts)
		if err != nil {
			return err
		}
		payloads[sk] = p
	}
	ok, err := s.provider.WriteMulti(ctx, payloads, s.writeOptions(opts))
	if err != nil {
		return err
	}
	if !ok {
		s.hooks.WriteRejected("", true)
		s.log.Debug("multi write rejected by provider (pressure)", Fields{"entries": len(entries)})
	}
	return nil
}

func (s *store[V]) FetchMulti(ctx context.Context, keys []Key, produce MultiProducer[V], opts *CallOptions) (map[string]V, error) {
	if produce == nil {
		return nil, ErrNoProducer
	}
	out := make(map[string]V, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	canonical, storage := s.storageKeys(keys)

	if opts != nil && opts.Force {
		entries := make(map[string]V, len(canonical))
		for _, ck := range canonical {
			v, err := produce(ctx, ck)
			if err != nil {
				return nil, err
			}
			entries[ck] = v
			out[ck] = v
		}
		if err := s.WriteMulti(ctx, entries, opts); err != nil {
			return nil, err
		}
		return out, nil
	}

	// producer and result mapping both see canonical keys
	unprefix := make(map[string]string, len(storage))
	for i, sk := range storage {
		unprefix[sk] = canonical[i]
	}

	got, err := s.provider.FetchMulti(ctx, storage, s.writeOptions(opts), func(ctx context.Context, sk string) ([]byte, error) {
		v, err := produce(ctx, unprefix[sk])
		if err != nil {
			return nil, err
		}
		return s.encode(sk, v, opts)
	})
	if err != nil {
		return nil, err
	}
	for sk, raw := range got {
		ck, known := unprefix[sk]
		if !known {
			continue
		}
		v, err := s.decode(sk, raw, opts)
		if err != nil {
			return nil, err
		}
		out[ck] = v
	}
	return out, nil
}

func (s *store[V]) Exists(ctx context.Context, key Key) (bool, error) {
	return s.provider.Exists(ctx, s.storageKey(key))
}

func (s *store[V]) Delete(ctx context.Context, key Key) (bool, error) {
	return s.provider.Delete(ctx, s.storageKey(key))
}

func (s *store[V]) Clear(ctx context.Context) error {
	return s.provider.Clear(ctx)
}

func (s *store[V]) Increment(ctx context.Context, key Key, delta int64) (int64, error) {
	return s.provider.IncrBy(ctx, s.storageKey(key), delta)
}

func (s *store[V]) Decrement(ctx context.Context, key Key, delta int64) (int64, error) {
	return s.provider.DecrBy(ctx, s.storageKey(key), delta)
}

// encode runs a value through the codec and conditional compression into
// its stored form. Counter stores bypass both.
func (s *store[V]) encode(storageKey string, v V, opts *CallOptions) ([]byte, error) {
	if s.counter {
		n, _ := counterValue(v)
		return wire.EncodeCounter(n), nil
	}
	raw, err := s.codec.Encode(v)
	if err != nil {
		return nil, err
	}
	if s.shouldCompress(len(raw), opts) {
		deflated, err := s.compressor(opts).Deflate(raw)
		if err != nil {
			return nil, err
		}
		if len(deflated) < len(raw) {
			s.hooks.Compressed(storageKey, len(raw), len(deflated)+1)
			return wire.Seal(deflated), nil
		}
		s.hooks.CompressionRejected(storageKey, len(raw), len(deflated))
	}
	if len(raw) > 0 && raw[0] == wire.Marker {
		return nil, ErrMarkerConflict
	}
	return raw, nil
}

// decode reverses encode. Corruption surfaces as an error; entries are
// never deleted or retried from here.
func (s *store[V]) decode(storageKey string, payload []byte, opts *CallOptions) (V, error) {
	var zero V
	if s.counter {
		n, err := wire.DecodeCounter(payload)
		if err != nil {
			s.hooks.CorruptPayload(storageKey, "counter")
			return zero, fmt.Errorf("%w: bad counter bytes", ErrCorruptPayload)
		}
		return counterOf[V](n), nil
	}
	body, compressed, err := wire.Open(payload)
	if err != nil {
		s.hooks.CorruptPayload(storageKey, "inflate")
		return zero, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	if compressed {
		body, err = s.compressor(opts).Inflate(body)
		if err != nil {
			s.hooks.CorruptPayload(storageKey, "inflate")
			return zero, fmt.Errorf("%w: %v", ErrDecompression, err)
		}
	}
	v, err := s.codec.Decode(body)
	if err != nil {
		s.hooks.CorruptPayload(storageKey, "decode")
		return zero, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	return v, nil
}

func (s *store[V]) shouldCompress(size int, opts *CallOptions) bool {
	if s.noDeflate || (opts != nil && opts.DisableCompression) {
		return false
	}
	return size >= s.threshold
}

func (s *store[V]) compressor(opts *CallOptions) compress.Compressor {
	if opts != nil && opts.Compressor != nil {
		return opts.Compressor
	}
	return s.comp
}

func (s *store[V]) writeOptions(opts *CallOptions) pr.WriteOptions {
	ttl := s.ttl
	if opts != nil && opts.TTL > 0 {
		ttl = opts.TTL
	}
	// payloads arrive deflated already; a backend must not re-compress
	return pr.WriteOptions{TTL: ttl, Compress: false}
}

func (s *store[V]) storageKey(k Key) string {
	return s.prefix + k.CacheKey()
}

// storageKeys canonicalizes and prefixes keys, dropping duplicates while
// preserving first-seen order.
func (s *store[V]) storageKeys(keys []Key) (canonical, storage []string) {
	canonical = make([]string, 0, len(keys))
	storage = make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		ck := k.CacheKey()
		if _, dup := seen[ck]; dup {
			continue
		}
		seen[ck] = struct{}{}
		canonical = append(canonical, ck)
		storage = append(storage, s.prefix+ck)
	}
	return canonical, storage
}

// isCounterKind reports whether V is one of the predeclared signed integer
// types. Named types with an integer underlying type do not match; they go
// through the codec like any other value.
func isCounterKind[V any]() bool {
	var zero V
	switch any(zero).(type) {
	case int, int8, int16, int32, int64:
		return true
	}
	return false
}

func counterValue[V any](v V) (int64, bool) {
	switch n := any(v).(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func counterOf[V any](n int64) V {
	var v V
	switch p := any(&v).(type) {
	case *int:
		*p = int(n)
	case *int8:
		*p = int8(n)
	case *int16:
		*p = int16(n)
	case *int32:
		*p = int32(n)
	case *int64:
		*p = n
	}
	return v
}

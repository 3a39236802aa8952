package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/brcache/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

type Redis struct {
	rdb         goredis.UniversalClient
	closeClient bool
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this provider exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{rdb: cfg.Client, closeClient: cfg.CloseClient}, nil
}

func (p *Redis) Read(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Write(ctx context.Context, key string, value []byte, opts pr.WriteOptions) (bool, error) {
	if err := p.rdb.Set(ctx, key, value, ttlOf(opts)).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// ReadMulti is a single MGET. Nil replies (misses) are left out of the map.
func (p *Redis) ReadMulti(ctx context.Context, keys []string) (map[string][]byte, error) {
	if len(keys) == 0 {
		return map[string][]byte{}, nil
	}
	vals, err := p.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(keys))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		out[keys[i]] = []byte(s)
	}
	return out, nil
}

// WriteMulti pipelines one SET per entry. MSET would be a single command but
// cannot carry TTLs.
func (p *Redis) WriteMulti(ctx context.Context, entries map[string][]byte, opts pr.WriteOptions) (bool, error) {
	if len(entries) == 0 {
		return true, nil
	}
	ttl := ttlOf(opts)
	_, err := p.rdb.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, k, v, ttl)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Redis) FetchMulti(ctx context.Context, keys []string, opts pr.WriteOptions, produce pr.ProduceFunc) (map[string][]byte, error) {
	out, err := p.ReadMulti(ctx, keys)
	if err != nil {
		return nil, err
	}
	var missing map[string][]byte
	for _, k := range keys {
		if _, ok := out[k]; ok {
			continue
		}
		b, err := produce(ctx, k)
		if err != nil {
			return nil, err
		}
		if missing == nil {
			missing = make(map[string][]byte)
		}
		missing[k] = b
		out[k] = b
	}
	if len(missing) > 0 {
		if _, err := p.WriteMulti(ctx, missing, opts); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p *Redis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := p.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (p *Redis) Delete(ctx context.Context, key string) (bool, error) {
	n, err := p.rdb.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Clear flushes the whole logical database, not only cache entries. Point
// the client at a dedicated DB index if that matters.
func (p *Redis) Clear(ctx context.Context) error {
	return p.rdb.FlushDB(ctx).Err()
}

func (p *Redis) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	return p.rdb.IncrBy(ctx, key, delta).Result()
}

func (p *Redis) DecrBy(ctx context.Context, key string, delta int64) (int64, error) {
	return p.rdb.DecrBy(ctx, key, delta).Result()
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

func ttlOf(opts pr.WriteOptions) time.Duration {
	if opts.TTL <= 0 {
		return 0 // no expiry per provider contract
	}
	return opts.TTL
}

package bigcache

import (
	"context"
	"strconv"
	"sync"
	"time"

	bc "github.com/allegro/bigcache/v3"

	pr "github.com/unkn0wn-root/brcache/provider"
)

type Provider struct {
	c *bc.BigCache

	// guards counter read-modify-write; BigCache has no native INCR
	mu sync.Mutex
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Provider, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Read(_ context.Context, key string) ([]byte, bool, error) {
	b, err := p.c.Get(key)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

// Write stores value. BigCache does not support per-entry TTL; entries age
// out with the global LifeWindow.
func (p *Provider) Write(_ context.Context, key string, value []byte, _ pr.WriteOptions) (bool, error) {
	if err := p.c.Set(key, value); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Provider) ReadMulti(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		b, ok, err := p.Read(ctx, k)
		if err != nil {
			return nil, err
		}
		if ok {
			out[k] = b
		}
	}
	return out, nil
}

func (p *Provider) WriteMulti(ctx context.Context, entries map[string][]byte, opts pr.WriteOptions) (bool, error) {
	for k, v := range entries {
		if _, err := p.Write(ctx, k, v, opts); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (p *Provider) FetchMulti(ctx context.Context, keys []string, opts pr.WriteOptions, produce pr.ProduceFunc) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		b, ok, err := p.Read(ctx, k)
		if err != nil {
			return nil, err
		}
		if !ok {
			if b, err = produce(ctx, k); err != nil {
				return nil, err
			}
			if _, err := p.Write(ctx, k, b, opts); err != nil {
				return nil, err
			}
		}
		out[k] = b
	}
	return out, nil
}

func (p *Provider) Exists(ctx context.Context, key string) (bool, error) {
	_, ok, err := p.Read(ctx, key)
	return ok, err
}

func (p *Provider) Delete(_ context.Context, key string) (bool, error) {
	err := p.c.Delete(key)
	if err == bc.ErrEntryNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Provider) Clear(_ context.Context) error {
	return p.c.Reset()
}

// IncrBy emulates a native counter with a locked read-modify-write over
// decimal bytes, so entries stay interoperable with other backends.
func (p *Provider) IncrBy(_ context.Context, key string, delta int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var cur int64
	b, err := p.c.Get(key)
	switch err {
	case nil:
		cur, err = strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return 0, err
		}
	case bc.ErrEntryNotFound:
		// start from zero
	default:
		return 0, err
	}
	cur += delta
	if err := p.c.Set(key, []byte(strconv.FormatInt(cur, 10))); err != nil {
		return 0, err
	}
	return cur, nil
}

func (p *Provider) DecrBy(ctx context.Context, key string, delta int64) (int64, error) {
	return p.IncrBy(ctx, key, -delta)
}

func (p *Provider) Close(_ context.Context) error {
	return p.c.Close()
}

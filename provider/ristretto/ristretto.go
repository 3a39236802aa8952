package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/brcache/provider"
)

type Provider struct {
	c *rc.Cache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Read(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Write uses the payload length as cost. SetWithTTL returning false is the
// admission policy rejecting the entry, which maps to ok=false.
func (p *Provider) Write(_ context.Context, key string, value []byte, opts pr.WriteOptions) (bool, error) {
	return p.c.SetWithTTL(key, value, int64(len(value)), opts.TTL), nil
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
	all := true
	for k, v := range entries {
		ok, err := p.Write(ctx, k, v, opts)
		if err != nil {
			return false, err
		}
		all = all && ok
	}
	return all, nil
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
			// admission may still drop it; the produced bytes are returned anyway
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

// Delete reports existence on a best-effort basis; Get and Del are two
// independent calls here.
func (p *Provider) Delete(_ context.Context, key string) (bool, error) {
	_, ok := p.c.Get(key)
	p.c.Del(key)
	return ok, nil
}

func (p *Provider) Clear(_ context.Context) error {
	p.c.Clear()
	return nil
}

// IncrBy is not supported: writes go through buffers and the admission
// policy, so a read-modify-write emulation would silently lose updates.
func (p *Provider) IncrBy(context.Context, string, int64) (int64, error) {
	return 0, pr.ErrNotSupported
}

func (p *Provider) DecrBy(context.Context, string, int64) (int64, error) {
	return 0, pr.ErrNotSupported
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Wait blocks until buffered writes have been applied, making prior Write
// and Delete calls visible to Read. Not part of the provider contract.
func (p *Provider) Wait() { p.c.Wait() }

// Metrics exposes the underlying ristretto counters when Config.Metrics is
// set. Not part of the provider contract.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }

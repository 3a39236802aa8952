// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/brcache"
//	"github.com/unkn0wn-root/brcache/hooks/async"
//	sloghook "github.com/unkn0wn-root/brcache/hooks/slog"
//
// )
//
//	raw := sloghook.New(slog.Default(), sloghook.Options{
//	    CompressedEvery: 100, // sample logs: ~every 100th compression
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	store, _ := brcache.New[User](brcache.Options[User]{
//	    Provider: provider,
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/brcache"
)

// Hooks decouples hook work from the caller: events are handed to a small
// worker pool over a bounded queue and dropped when the queue is full.
type Hooks struct {
	inner brcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ brcache.Hooks = (*Hooks)(nil)

func New(inner brcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Compressed(k string, rawLen, storedLen int) {
	h.try(func() { h.inner.Compressed(k, rawLen, storedLen) })
}

func (h *Hooks) CompressionRejected(k string, rawLen, deflatedLen int) {
	h.try(func() { h.inner.CompressionRejected(k, rawLen, deflatedLen) })
}

func (h *Hooks) CorruptPayload(k, reason string) {
	h.try(func() { h.inner.CorruptPayload(k, reason) })
}

func (h *Hooks) WriteRejected(k string, isMulti bool) {
	h.try(func() { h.inner.WriteRejected(k, isMulti) })
}

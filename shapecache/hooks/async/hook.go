// Package asynchook moves hook callbacks off the cache's hot path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    SelfHealEvery: 10, // sample logs: ~every 10th self-heal
//	})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := shapecache.New(shapecache.Options{
//	    Namespace: "routes",
//	    Provider:  provider,
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/polyline/shapecache"
)

type Hooks struct {
	inner shapecache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ shapecache.Hooks = (*Hooks)(nil)

func New(inner shapecache.Hooks, workers, qlen int) *Hooks {
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

func (h *Hooks) SelfHeal(k, r string) { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) DecodeFailed(ns string, err error) {
	h.try(func() { h.inner.DecodeFailed(ns, err) })
}
func (h *Hooks) ProviderSetRejected(k string, points int) {
	h.try(func() { h.inner.ProviderSetRejected(k, points) })
}

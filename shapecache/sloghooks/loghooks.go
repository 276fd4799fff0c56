package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/polyline/shapecache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery     uint64
	DecodeFailedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr  atomic.Uint64
	decFailedCtr atomic.Uint64
}

var _ shapecache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("shapecache.self_heal",
		"key", storageKey,
		"reason", reason)
}

func (h *Hooks) DecodeFailed(ns string, err error) {
	if h.l == nil || !sample(h.opts.DecodeFailedEvery, &h.decFailedCtr) {
		return
	}
	h.l.Info("shapecache.decode_failed",
		"ns", ns,
		"err", err)
}

func (h *Hooks) ProviderSetRejected(storageKey string, points int) {
	if h.l == nil {
		return
	}
	h.l.Warn("shapecache.provider_set_rejected",
		"key", storageKey,
		"points", points)
}

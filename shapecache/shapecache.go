// Package shapecache memoizes polyline decoding over a pluggable byte store.
//
// Routing responses repeat shapes constantly - the same road geometry is
// served to every client viewing the same route - while decoding is a pure
// function of the encoded string. Entries can therefore be corrupt but never
// stale: there is no invalidation protocol, only strict frame validation with
// self-healing deletes on read.
//
// Keys: shape:<ns>:<digest>, where digest is a fixed-size hash of the encoded
// string (encoded shapes run to thousands of bytes; provider keys stay short).
package shapecache

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/polyline"
	"github.com/unkn0wn-root/polyline/codec"
	"github.com/unkn0wn-root/polyline/internal/keys"
	"github.com/unkn0wn-root/polyline/internal/wire"
	"github.com/unkn0wn-root/polyline/provider"
)

// SetCostFunc lets callers weigh entries for cost-aware providers.
type SetCostFunc func(storageKey string, raw []byte, points int) int64

// Options tune the cache. Only Namespace and Provider are required; others
// have sensible defaults.
type Options struct {
	// Required
	Namespace string // logical namespace to avoid collisions, e.g. "routes", "shapes:prod"
	Provider  provider.Provider

	// Codec serializes geometries into the frame payload. Default is
	// codec.Geometry (the polyline string itself); wrap it in codec.Limit to
	// bound entry size, or swap in codec.JSON when other readers share the
	// store.
	Codec codec.Codec[[]polyline.Position]

	Logger         Logger        // if nil, NopLogger is used
	Hooks          Hooks         // if nil, NopHooks is used
	TTL            time.Duration // 0 => 1h
	ComputeSetCost SetCostFunc   // default: len(raw)
	Disabled       bool          // default false (enabled)
}

// Cache is a read-through decode cache. Safe for concurrent use as long as
// the provider is.
type Cache struct {
	ns       string
	provider provider.Provider
	log      Logger
	hooks    Hooks
	ttl      time.Duration
	cost     SetCostFunc
	enabled  bool
	geom     codec.Codec[[]polyline.Position]
}

func New(opts Options) (*Cache, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("shapecache: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("shapecache: namespace is required")
	}

	c := &Cache{
		ns:       opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.ttl = coalesce[time.Duration](opts.TTL, time.Hour)
	if opts.Codec != nil {
		c.geom = opts.Codec
	} else {
		c.geom = codec.Geometry{}
	}
	if opts.ComputeSetCost != nil {
		c.cost = opts.ComputeSetCost
	} else {
		c.cost = func(_ string, raw []byte, _ int) int64 { return int64(len(raw)) }
	}
	return c, nil
}

func (c *Cache) Enabled() bool { return c.enabled }

func (c *Cache) Close(ctx context.Context) error {
	if c.provider != nil {
		return c.provider.Close(ctx)
	}
	return nil
}

// Decode returns the geometry for an encoded polyline, consulting the store
// first and back-filling on miss. Invalid or truncated encodings fail with
// the root codec's error and are never cached. The empty string decodes to an
// empty geometry without touching the store.
func (c *Cache) Decode(ctx context.Context, encoded string) ([]polyline.Position, error) {
	if encoded == "" {
		return nil, nil
	}
	if !c.enabled {
		return polyline.Decode(encoded)
	}

	k := c.storageKey(encoded)
	if pts, ok := c.lookup(ctx, k); ok {
		return pts, nil
	}

	pts, err := polyline.Decode(encoded)
	if err != nil {
		c.hooks.DecodeFailed(c.ns, err)
		return nil, err
	}

	payload, err := c.geom.Encode(pts)
	if err != nil {
		// the decode succeeded; a payload error only costs us the memoization
		c.log.Warn("payload encode failed", Fields{"key": k, "err": err})
		return pts, nil
	}
	raw := wire.EncodeFrame(uint32(len(pts)), payload)
	ok, err := c.provider.Set(ctx, k, raw, c.cost(k, raw, len(pts)), c.ttl)
	if err != nil {
		// the decode succeeded; a store error only costs us the memoization
		c.log.Warn("set failed", Fields{"key": k, "err": err})
		return pts, nil
	}
	if !ok {
		c.hooks.ProviderSetRejected(k, len(pts))
		c.log.Debug("set rejected by provider (pressure)", Fields{"key": k, "points": len(pts)})
	}
	return pts, nil
}

// DecodeAll decodes a batch of encoded polylines, preserving order. The first
// failure aborts with the offending index in the error.
func (c *Cache) DecodeAll(ctx context.Context, encoded []string) ([][]polyline.Position, error) {
	out := make([][]polyline.Position, len(encoded))
	for i, s := range encoded {
		pts, err := c.Decode(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("shapecache: shape %d: %w", i, err)
		}
		out[i] = pts
	}
	return out, nil
}

// Contains reports whether a healthy entry for the encoded string is present,
// applying the same validation a Decode hit does; unhealthy entries are
// self-healed and reported absent. It never decodes the input string and
// never back-fills.
func (c *Cache) Contains(ctx context.Context, encoded string) bool {
	if !c.enabled || encoded == "" {
		return false
	}
	_, ok := c.lookup(ctx, c.storageKey(encoded))
	return ok
}

// Invalidate evicts the entry for an encoded string (manual memory reclaim;
// entries never go stale on their own).
func (c *Cache) Invalidate(ctx context.Context, encoded string) error {
	if !c.enabled || encoded == "" {
		return nil
	}
	return c.provider.Del(ctx, c.storageKey(encoded))
}

// lookup fetches and validates a cached entry. Anything unhealthy is deleted
// (self-heal) and reported as a miss.
func (c *Cache) lookup(ctx context.Context, k string) ([]polyline.Position, bool) {
	raw, ok, err := c.provider.Get(ctx, k)
	if err != nil {
		c.log.Warn("get failed", Fields{"key": k, "err": err})
		return nil, false
	}
	if !ok {
		return nil, false
	}

	count, payload, err := wire.DecodeFrame(raw)
	if err != nil {
		c.heal(ctx, k, "corrupt")
		return nil, false
	}
	pts, err := c.geom.Decode(payload)
	if err != nil {
		c.heal(ctx, k, "geometry")
		return nil, false
	}
	if uint32(len(pts)) != count {
		c.heal(ctx, k, "count_mismatch")
		return nil, false
	}
	return pts, true
}

func (c *Cache) heal(ctx context.Context, k, reason string) {
	_ = c.provider.Del(ctx, k)
	c.hooks.SelfHeal(k, reason)
	c.log.Debug("self-healed entry", Fields{"key": k, "reason": reason})
}

func (c *Cache) storageKey(encoded string) string {
	return keys.Digest("shape:"+c.ns, encoded)
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

package shapecache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// An unhealthy entry was deleted by the cache on read.
	// reason ∈ {"corrupt", "geometry", "count_mismatch"}
	SelfHeal(storageKey, reason string)

	// An encoded string failed to decode (truncated or malformed input).
	// Nothing was cached.
	DecodeFailed(namespace string, err error)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string, points int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)         {}
func (NopHooks) DecodeFailed(string, error)      {}
func (NopHooks) ProviderSetRejected(string, int) {}

package runreg

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the registry and the decode cache call
// them while scanning.
type Hooks interface {
	// A persisted entry was skipped during a registry scan.
	// reason ∈ {"parse", "shape", "keys", "version", "type", "decode", "dead"}
	SkippedEntry(name, reason string)

	// A cached decode was dropped by the cache on read.
	// reason ∈ {"corrupt", "raw_mismatch", "value_decode"}
	CacheSelfHeal(key, reason string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SkippedEntry(string, string)  {}
func (NopHooks) CacheSelfHeal(string, string) {}

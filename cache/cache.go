// Package cache is an optional read-through cache of decoded registry
// entries, for callers that rescan the registry frequently (say, a
// long-lived find-or-start daemon polling a busy machine).
//
// Correctness rule: a cached decode is only served when the SHA-256 of the
// raw bytes it was decoded from matches the raw bytes just read from the
// store. The registry on disk stays the single source of truth; the cache
// can only ever skip redundant strict-decode work, never resurrect a stale
// or deleted entry. Corrupt or mismatched cache entries self-heal by
// deletion on read.
package cache

import (
	"context"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/unkn0wn-root/runreg"
	"github.com/unkn0wn-root/runreg/codec"
	"github.com/unkn0wn-root/runreg/internal/wire"
)

const defaultTTL = 10 * time.Minute

// Options tune the decode cache. Only Provider is required.
type Options struct {
	Provider Provider                 // required
	Codec    codec.Codec[runreg.Info] // nil => codec.Msgpack
	TTL      time.Duration            // 0 => 10m
	Logger   runreg.Logger            // nil => NopLogger
	Hooks    runreg.Hooks             // nil => NopHooks
}

type Cache struct {
	p     Provider
	codec codec.Codec[runreg.Info]
	ttl   time.Duration
	log   runreg.Logger
	hooks runreg.Hooks
}

func New(opts Options) (*Cache, error) {
	if opts.Provider == nil {
		return nil, errors.New("cache: provider is required")
	}
	c := &Cache{
		p:     opts.Provider,
		codec: opts.Codec,
		ttl:   opts.TTL,
		log:   opts.Logger,
		hooks: opts.Hooks,
	}
	if c.codec == nil {
		c.codec = codec.Msgpack[runreg.Info]{}
	}
	if c.ttl == 0 {
		c.ttl = defaultTTL
	}
	if c.log == nil {
		c.log = runreg.NopLogger{}
	}
	if c.hooks == nil {
		c.hooks = runreg.NopHooks{}
	}
	return c, nil
}

// Lookup returns the decode previously cached under key, but only if it was
// produced from exactly the bytes raw. Any corruption, hash mismatch, or
// payload decode failure deletes the entry and reads as a miss.
func (c *Cache) Lookup(ctx context.Context, key string, raw []byte) (runreg.Info, bool) {
	var zero runreg.Info
	b, ok, err := c.p.Get(ctx, key)
	if err != nil || !ok {
		return zero, false
	}
	sum, payload, err := wire.DecodeEntry(b)
	if err != nil {
		c.selfHeal(ctx, key, "corrupt")
		return zero, false
	}
	if sum != sha256.Sum256(raw) {
		c.selfHeal(ctx, key, "raw_mismatch")
		return zero, false
	}
	info, err := c.codec.Decode(payload)
	if err != nil {
		c.selfHeal(ctx, key, "value_decode")
		return zero, false
	}
	return info, true
}

// Store caches info as the decode of raw under key. Best-effort: failures
// are logged, never surfaced, since the caller already holds the decode.
func (c *Cache) Store(ctx context.Context, key string, raw []byte, info runreg.Info) {
	payload, err := c.codec.Encode(info)
	if err != nil {
		c.log.Debug("cache encode failed", runreg.Fields{"key": key, "err": err.Error()})
		return
	}
	entry := wire.EncodeEntry(sha256.Sum256(raw), payload)
	ok, err := c.p.Set(ctx, key, entry, int64(len(entry)), c.ttl)
	if err != nil {
		c.log.Debug("cache set failed", runreg.Fields{"key": key, "err": err.Error()})
		return
	}
	if !ok {
		c.log.Debug("cache set rejected by provider (pressure)", runreg.Fields{"key": key})
	}
}

func (c *Cache) Close(ctx context.Context) error {
	return c.p.Close(ctx)
}

func (c *Cache) selfHeal(ctx context.Context, key, reason string) {
	_ = c.p.Del(ctx, key)
	c.hooks.CacheSelfHeal(key, reason)
	c.log.Debug("cache self-heal", runreg.Fields{"key": key, "reason": reason})
}

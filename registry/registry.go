// Package registry maintains the shared registry of running instances: one
// persisted entry per process, written and removed by the instance itself
// and scanned by anyone looking for a server to reuse.
//
// The registry is deliberately forgiving on read: GetAll skips entries it
// cannot trust (malformed, written by an incompatible build, or left behind
// by a dead process) instead of failing, because a single stale file must
// never take down every client on the machine. Each skip is reported through
// Hooks and the Logger.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/unkn0wn-root/runreg"
	"github.com/unkn0wn-root/runreg/cache"
	"github.com/unkn0wn-root/runreg/store"
)

// EntryName returns the store name under which the instance with the given
// pid registers itself. One process owns exactly one entry.
func EntryName(pid int) string { return fmt.Sprintf("pid-%d.info", pid) }

// Options tune the registry manager. Only Store is required.
type Options struct {
	Store store.Store // required

	Logger runreg.Logger // nil => NopLogger
	Hooks  runreg.Hooks  // nil => NopHooks

	// Alive reports whether the process with the given pid still runs.
	// Liveness checking lives outside this module; nil disables the check
	// and GetAll returns entries of exited processes too.
	Alive func(pid int) bool

	// Cache is an optional decode cache consulted by GetAll. Nil disables
	// caching; every scan then strict-decodes every entry.
	Cache *cache.Cache
}

type Manager struct {
	store store.Store
	log   runreg.Logger
	hooks runreg.Hooks
	alive func(int) bool
	cache *cache.Cache
}

func New(opts Options) (*Manager, error) {
	if opts.Store == nil {
		return nil, errors.New("registry: store is required")
	}
	m := &Manager{
		store: opts.Store,
		log:   opts.Logger,
		hooks: opts.Hooks,
		alive: opts.Alive,
		cache: opts.Cache,
	}
	if m.log == nil {
		m.log = runreg.NopLogger{}
	}
	if m.hooks == nil {
		m.hooks = runreg.NopHooks{}
	}
	return m, nil
}

// Register encodes info and persists it under its pid's entry name. The
// encode enforces that info describes this build (exact version match), so a
// registry never accumulates entries the writing build could not itself read.
func (m *Manager) Register(ctx context.Context, info runreg.Info) error {
	s, err := runreg.Encode(info)
	if err != nil {
		return err
	}
	name := EntryName(info.PID)
	if err := m.store.Put(ctx, name, []byte(s)); err != nil {
		return fmt.Errorf("registry: put %q: %w", name, err)
	}
	m.log.Debug("registered instance", runreg.Fields{"name": name, "port": info.Port})
	return nil
}

// Deregister removes the entry for pid. Removing an absent entry is fine:
// shutdown paths race with cleanup sweeps.
func (m *Manager) Deregister(ctx context.Context, pid int) error {
	name := EntryName(pid)
	if err := m.store.Delete(ctx, name); err != nil {
		return fmt.Errorf("registry: delete %q: %w", name, err)
	}
	m.log.Debug("deregistered instance", runreg.Fields{"name": name})
	return nil
}

// GetAll returns every trustworthy entry in the registry, ordered by start
// time (ties broken by pid). Untrustworthy entries are skipped, never fatal;
// only a failure to list the store itself is returned as an error.
func (m *Manager) GetAll(ctx context.Context) ([]runreg.Info, error) {
	entries, err := m.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("registry: list: %w", err)
	}

	out := make([]runreg.Info, 0, len(entries))
	for name, raw := range entries {
		info, ok := m.decodeEntry(ctx, name, raw)
		if !ok {
			continue
		}
		if m.alive != nil && !m.alive(info.PID) {
			m.hooks.SkippedEntry(name, "dead")
			m.log.Debug("skipping entry of exited process", runreg.Fields{"name": name, "pid": info.PID})
			continue
		}
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].PID < out[j].PID
	})
	return out, nil
}

func (m *Manager) decodeEntry(ctx context.Context, name string, raw []byte) (runreg.Info, bool) {
	if m.cache != nil {
		if info, ok := m.cache.Lookup(ctx, name, raw); ok {
			return info, true
		}
	}
	info, err := runreg.Decode(string(raw))
	if err != nil {
		reason := skipReason(err)
		m.hooks.SkippedEntry(name, reason)
		m.log.Warn("skipping unreadable registry entry",
			runreg.Fields{"name": name, "reason": reason, "err": err.Error()})
		return runreg.Info{}, false
	}
	if m.cache != nil {
		m.cache.Store(ctx, name, raw, info)
	}
	return info, true
}

func skipReason(err error) string {
	switch {
	case errors.As(err, new(*runreg.ParseError)):
		return "parse"
	case errors.As(err, new(*runreg.ShapeError)):
		return "shape"
	case errors.As(err, new(*runreg.KeySetError)):
		return "keys"
	case errors.As(err, new(*runreg.VersionError)):
		return "version"
	case errors.As(err, new(*runreg.TypeMismatchError)):
		return "type"
	default:
		return "decode"
	}
}

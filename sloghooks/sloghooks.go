// Package sloghooks implements runreg.Hooks on top of log/slog, with
// sampling so a directory full of junk cannot flood the log on every scan.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/runreg"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SkippedEvery  uint64
	SelfHealEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	skippedCtr  atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ runreg.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SkippedEntry(name, reason string) {
	if h.l == nil || !sample(h.opts.SkippedEvery, &h.skippedCtr) {
		return
	}
	h.l.Info("runreg.skipped_entry",
		"name", name,
		"reason", reason)
}

func (h *Hooks) CacheSelfHeal(key, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("runreg.cache_self_heal",
		"key", key,
		"reason", reason)
}

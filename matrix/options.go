// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and algorithms.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no implicit randomness; results never depend on
//     scheduling, only wall-clock time does.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Kind/Context options apply to constructors (declared kind and precision).
//   - CloneLimit, ParallelCutoff and Workers tune algorithms; they never
//     change a result, only how it is computed.
package matrix

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvnum/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCloneLimit is the dimension below which Identity.Scale materializes
	// a Diagonal; at or above it a Parametric generator is returned instead.
	DefaultCloneLimit = 1024

	// DefaultParallelCutoff is the dimension at or below which recursive
	// multiplication sub-tasks run inline on the calling goroutine.
	DefaultParallelCutoff = 8
)

// DefaultWorkers returns the default bound on concurrently running tasks
// (multiplication permits and cofactor pool size): runtime.GOMAXPROCS(0).
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicKindInvalid       = "matrix: WithKind: kind outside the numeric tower"
	panicCloneLimitInvalid = "matrix: WithCloneLimit: limit must be > 0"
	panicCutoffInvalid     = "matrix: WithParallelCutoff: cutoff must be >= 1"
	panicWorkersInvalid    = "matrix: WithWorkers: workers must be >= 1"
	panicLoggerNil         = "matrix: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	kind    numeric.Kind
	kindSet bool
	ctx     numeric.Context
	ctxSet  bool

	cloneLimit int
	cutoff     int
	workers    int

	logger *slog.Logger
}

// WithKind declares the numeric kind of a constructed matrix.
// Entries are widened to k; narrowing that would lose information fails with
// a *numeric.CoercionError at construction time.
//
// Panics when k is not one of the four tower kinds.
func WithKind(k numeric.Kind) Option {
	if !k.Valid() {
		panic(panicKindInvalid)
	}

	return func(o *Options) { o.kind, o.kindSet = k, true }
}

// WithContext declares the precision context of a constructed matrix.
// Exact entries widened into Real/Complex use this precision.
func WithContext(ctx numeric.Context) Option {
	return func(o *Options) { o.ctx, o.ctxSet = ctx, true }
}

// WithCloneLimit sets the Identity.Scale materialization threshold.
//
// AI-Hints:
//   - Lower it when scaling huge identities whose product is consumed lazily.
func WithCloneLimit(n int) Option {
	if n <= 0 {
		panic(panicCloneLimitInvalid)
	}

	return func(o *Options) { o.cloneLimit = n }
}

// WithParallelCutoff sets the dimension at or below which recursive
// multiplication stops forking. WithParallelCutoff(1) forks at every level
// that has a free permit (useful in tests).
func WithParallelCutoff(n int) Option {
	if n < 1 {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.cutoff = n }
}

// WithWorkers bounds the number of concurrently running tasks for both the
// multiplication scheduler and the cofactor pool.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes debug records of a single call to l instead of the
// package logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		kind:       numeric.KindInteger,
		ctx:        numeric.Unlimited,
		cloneLimit: DefaultCloneLimit,
		cutoff:     DefaultParallelCutoff,
		workers:    DefaultWorkers(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = packageLogger()
	}

	return o
}

// declared resolves the kind and context of a new matrix: explicit options win,
// otherwise the widest kind and weakest context among values.
func (o *Options) declared(values []numeric.Numeric) (numeric.Kind, numeric.Context) {
	k, ctx := numeric.Widest(values...), numeric.ContextOf(values...)
	if o.kindSet {
		k = o.kind
	}
	if o.ctxSet {
		ctx = o.ctx
	}

	return k, ctx
}

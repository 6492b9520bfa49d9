// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// options.go — functional options for solver tuning.
//
// Mirrors prim_kruskal.MSTOptions/Option and builder.BuilderOption: a plain
// struct plus Option func(*Options) constructors and a DefaultOptions().

package assignment

// Options configures the builders and engine. Use DefaultOptions() for the
// spec-described behavior; override individual knobs for testing or for
// callers who understand the correctness/performance trade-off involved.
//
// Fields:
//
//	RetentionK       int  — overrides the per-left-vertex edge-retention cap
//	                        K (see SPEC_FULL.md §4.2). Zero means "use the
//	                        entry point's default" (min(h,w) for the matrix
//	                        path, |L| for the adjacency/graph paths).
//	                        Lowering K below the default may discard edges
//	                        needed for an optimal matching; it exists for
//	                        benchmarking the retention step's cost, not for
//	                        production use.
//	DisableGreedyInit bool — skips the initial greedy tight-edge matching
//	                        pass before the engine's augmenting-path search.
//	                        Exists for test determinism (comparing against
//	                        the brute-force oracle without the shortcut
//	                        changing which optimal assignment is found) and
//	                        for benchmarking the shortcut's contribution.
type Options struct {
	RetentionK        int
	DisableGreedyInit bool
}

// Option configures Options. All Option functions mutate the pointed Options.
type Option func(*Options)

// WithRetentionK overrides the per-left-vertex edge-retention cap.
func WithRetentionK(k int) Option {
	return func(o *Options) {
		o.RetentionK = k
	}
}

// WithGreedyInitDisabled skips the initial greedy matching shortcut.
func WithGreedyInitDisabled() Option {
	return func(o *Options) {
		o.DisableGreedyInit = true
	}
}

// DefaultOptions returns Options initialized for spec-default behavior:
//
//	– RetentionK        = 0 (entry point chooses its default)
//	– DisableGreedyInit = false
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		RetentionK:        0,
		DisableGreedyInit: false,
	}
}

// resolve applies opts over DefaultOptions() and returns the final Options.
func resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Package cycles defines the options, result shape, and sentinel errors for
// cycle detection over a core.Graph.
package cycles

import "errors"

// Unbounded disables the depth bound: returning paths of any edge length are
// considered. It is the MaxDepth default.
const Unbounded = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FindCycles.
	ErrGraphNil = errors.New("cycles: graph is nil")

	// ErrNegativeMaxDepth is returned when WithMaxDepth received a negative
	// bound (other than the explicit Unbounded sentinel).
	ErrNegativeMaxDepth = errors.New("cycles: negative max depth")
)

// Option configures optional behavior of cycle detection.
// Use with FindCycles(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for cycle detection.
type Options struct {
	// MaxDepth bounds the number of edges (path length) considered when
	// searching for a returning path back to the path's origin. A cycle
	// whose edge count exceeds MaxDepth is not reported; a cycle within the
	// bound is reported regardless of how deep unrelated branches go.
	// MaxDepth = 0 disables detection entirely. Default is Unbounded.
	MaxDepth int
}

// DefaultOptions returns an Options struct with no depth bound.
func DefaultOptions() Options {
	return Options{MaxDepth: Unbounded}
}

// WithMaxDepth returns an Option that bounds the search to limit edges.
// A limit of 0 means no cycle can ever be reported. Passing Unbounded
// restores the default; any other negative value makes FindCycles return
// ErrNegativeMaxDepth.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a cycle-detection run.
type Result struct {
	// HasCycles is true iff Cycles is non-empty.
	HasCycles bool

	// Cycles holds each distinct elementary cycle exactly once, as an open
	// sequence of vertex ids in traversal direction, rotated to its
	// lexicographically minimal form. Order is first-discovery order, which
	// is deterministic because the store enumerates vertices in insertion
	// order.
	Cycles [][]string
}

package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current path (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// ErrCycleDetected indicates that TopologicalSort met a back-edge.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// Neighbors returns the successors of a vertex. The order of the returned
// slice is the order in which they are explored.
type Neighbors[N comparable] func(N) []N

// Option configures optional behavior of Walk.
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for a Walk.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[N comparable] struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order)
	// together with its depth. Returning an error aborts the walk.
	OnVisit func(v N, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order). Returning an error aborts the walk.
	OnExit func(v N) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// Filter, if non-nil, is called for each edge from→to before the walk
	// follows it. Return false to skip that edge.
	Filter func(from, to N) bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and no filtering.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[N comparable](fn func(v N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[N comparable](fn func(v N) error) Option[N] {
	return func(o *Options[N]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *Options[N]) {
		o.MaxDepth = limit
	}
}

// WithFilter restricts which edges the walk follows.
func WithFilter[N comparable](fn func(from, to N) bool) Option[N] {
	return func(o *Options[N]) {
		o.Filter = fn
	}
}

// Result captures the outcome of a depth-first walk.
type Result[N comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []N

	// Depth maps each vertex to its distance (#edges) from the start along
	// the DFS tree.
	Depth map[N]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// The start vertex has no entry.
	Parent map[N]N

	// Visited flags which vertices were reached.
	Visited map[N]bool
}

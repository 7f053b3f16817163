package dfs

import (
	"context"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable] struct {
	nbrs  Neighbors[N]
	opts  topoOptions
	state map[N]int // visitation state: White (absent), Gray, Black
	order []N       // recorded post-order sequence
	stack []frame[N]
}

// TopologicalSort orders vertices so that for every edge u→v reported by
// next, u precedes v. Roots are tried in the order given by vertices, which
// makes the result deterministic. Vertices reachable through next but
// missing from vertices are included as well.
// If a cycle is detected, returns ErrCycleDetected.
func TopologicalSort[N comparable](vertices []N, next Neighbors[N], options ...TopoOption) ([]N, error) {
	// 1. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Initialize sorter state
	sorter := &topoSorter[N]{
		nbrs:  next,
		opts:  opts,
		state: make(map[N]int, len(vertices)),
		order: make([]N, 0, len(vertices)),
	}
	// 3. Drive DFS from every unvisited vertex
	for _, v := range vertices {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit runs one DFS tree from root, marking states and detecting cycles.
func (t *topoSorter[N]) visit(root N) error {
	t.push(root)
	for len(t.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		top := &t.stack[len(t.stack)-1]
		// 2. Finished: mark Black and record in post-order
		if top.i >= len(top.next) {
			t.state[top.v] = Black
			t.order = append(t.order, top.v)
			t.stack = t.stack[:len(t.stack)-1]
			continue
		}
		to := top.next[top.i]
		top.i++
		switch t.state[to] {
		case Gray:
			// 3. Back-edge onto the current path
			return ErrCycleDetected
		case White:
			t.push(to)
		}
	}

	return nil
}

func (t *topoSorter[N]) push(v N) {
	t.state[v] = Gray
	t.stack = append(t.stack, frame[N]{v: v, next: t.nbrs(v)})
}

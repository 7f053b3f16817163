package dfs

import (
	"fmt"
)

// frame is one entry of the explicit DFS stack: a vertex whose successors
// are being explored, and the index of the next successor to try.
type frame[N comparable] struct {
	v     N
	depth int
	next  []N
	i     int
}

// walker encapsulates state during a walk.
type walker[N comparable] struct {
	nbrs  Neighbors[N]
	opts  Options[N]
	res   *Result[N]
	stack []frame[N]
}

// Walk performs a depth‑first search from start, following next.
// Returns the Result or an error if aborted by context or a hook; on error
// the partial Result is returned with an empty Order.
func Walk[N comparable](start N, next Neighbors[N], opts ...Option[N]) (*Result[N], error) {
	// 1. Apply options
	o := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Initialize result
	res := &Result[N]{
		Depth:   make(map[N]int),
		Parent:  make(map[N]N),
		Visited: make(map[N]bool),
	}
	w := &walker[N]{nbrs: next, opts: o, res: res}

	// 3. Traverse
	if err := w.run(start); err != nil {
		res.Order = nil
		return res, err
	}

	return res, nil
}

// run drives the explicit stack until every reachable vertex is finished.
func (w *walker[N]) run(start N) error {
	if err := w.enter(start, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 2. All successors explored: finish the vertex (post-order)
		if top.i >= len(top.next) {
			v := top.v
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(v); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
				}
			}
			w.res.Order = append(w.res.Order, v)
			continue
		}

		// 3. Try the next successor
		from, to, depth := top.v, top.next[top.i], top.depth+1
		top.i++
		if w.opts.Filter != nil && !w.opts.Filter(from, to) {
			continue
		}
		if w.res.Visited[to] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[to] = from
		if err := w.enter(to, depth); err != nil {
			return err
		}
	}

	return nil
}

// enter marks v discovered, runs the pre-order hook and pushes its frame.
func (w *walker[N]) enter(v N, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}
	w.stack = append(w.stack, frame[N]{v: v, depth: depth, next: w.nbrs(v)})

	return nil
}

// Package dfs implements depth‑first search and topological sort over any
// implicit graph whose vertices are comparable values.
//
// What:
//
//   - Walk: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre‑order (OnVisit) and post‑order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - TopologicalSort: computes a linear ordering of vertices such that
//     every edge u→v has u before v, returning ErrCycleDetected if the
//     graph is not a DAG.
//
// Graphs are never materialised: callers pass a Neighbors function that
// yields the successors of a vertex on demand. Grid cells, page numbers
// and string IDs all work as vertices.
//
// Both algorithms drive an explicit stack of frames instead of recursing,
// so depth is bounded by memory rather than the goroutine stack.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option[N]: functional options for Walk
//   - Result[N]: post‑order, Depth, Parent, Visited
//
// Complexity:
//
//   - Walk:            Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrCycleDetected   cycle discovered by TopologicalSort
//   - context.Canceled   traversal canceled via context
//   - hook errors        propagated from OnVisit or OnExit
package dfs

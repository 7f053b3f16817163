// Package grid stores a rectangular 2-D field of cells and answers the
// neighbourhood questions that grid puzzles ask of it.
//
// What:
//
//   - Grid[T] wraps row-major [][]T data validated to be rectangular.
//   - Reads (Get, GetPoint) are total: an out-of-bounds read reports false.
//   - Writes (Set, SetPoint, SetRow, SetCol) are preconditions: an
//     out-of-bounds write or a length mismatch panics.
//   - Adjacent4 and Adjacent8 return fixed-order neighbourhood snapshots in
//     which off-grid neighbours are nil.
//   - MatchKernel tests a small template of expected values, with wildcard
//     slots, against the grid at an offset.
//
// Complexity:
//
//   - New:              O(W×H) time and memory (deep copy).
//   - Get/Set/Adjacent: O(1).
//   - SetRow/SetCol:    O(W) / O(H).
//   - MatchKernel:      O(K²) for a K×K kernel.
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
package grid

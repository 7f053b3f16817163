// Package patrol simulates a guard walking a lab floor and detects when
// the walk turns into an endless loop.
//
// What:
//
//   - Map overlays a guard (position + heading) on a grid of Empty and
//     Obstacle spots.
//   - Step advances one transition: turn right in front of an obstacle,
//     otherwise move forward; leaving the grid ends the walk.
//   - Every transition records the (position, heading) pair. Seeing a pair
//     twice means the guard is in a loop, because the walk is deterministic.
//   - Part2 re-runs the walk once per candidate obstacle cell.
//
// Complexity:
//
//   - Run:   O(W×H×4) transitions at most, since each state is seen once
//     before a loop is reported.
//   - Part2: O(P × W×H×4) with P = distinct cells on the unobstructed walk.
//
// Hooks:
//
//   - WithOnStep installs an observer called after every transition, for
//     visualisation or tracing. It is not part of the simulation state.
package patrol

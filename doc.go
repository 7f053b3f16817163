// Package aoc2024 collects Advent of Code 2024 solutions on top of a small
// set of grid primitives.
//
// 🚀 What is in here?
//
//	Shared building blocks:
//		• point:     comparable N-dimensional integer points (up to 4-D)
//		• direction: cardinal and compass directions with rotations
//		• grid:      rectangular 2-D grids, 4/8-adjacency, kernel matching
//		• dfs:       generic iterative depth-first walk and topological sort
//
//	One package per puzzle day, each with Parse, Part1 and Part2:
//		• listdist (1), reports (2), mulscan (3), wordsearch (4),
//		  printorder (5), patrol (6), calibrate (7), antenna (8),
//		  diskmap (9), trailhead (10)
//
//	Plumbing:
//		• calendar: day → solver dispatch table
//		• runner:   input resolution, timing and result lines
//		• config:   aoc.yaml, .env and AOC_* environment settings
//		• logger:   zerolog setup
//		• cmd/aoc:  the command-line entry point
//
// Quick start:
//
//	go run ./cmd/aoc 6 --example
//	🎄 d6p1 41 (412.5μs)
//	🎄 d6p2 6 (1.873ms)
//
// Puzzle inputs go in input/d<DAY>; they are personal and not committed.
// Bundled examples live in examples/.
package aoc2024

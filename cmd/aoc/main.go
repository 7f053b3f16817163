// Command aoc runs Advent of Code 2024 solutions.
//
//	aoc 6                 both parts of day 6 from input/d6
//	aoc 6 --part 2 -e     part 2 of day 6 from examples/d6
//	aoc all               every day, skipping missing inputs
//	aoc list              registered days
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

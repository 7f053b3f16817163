package trailhead_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/aoc2024/trailhead"
)

// BenchmarkScore_Example runs one reachability walk per trailhead.
func BenchmarkScore_Example(b *testing.B) {
	m, err := trailhead.Parse(example)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trailhead.Part1(context.Background(), m)
	}
}

// BenchmarkRating_Example enumerates every trail.
func BenchmarkRating_Example(b *testing.B) {
	m, err := trailhead.Parse(example)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = trailhead.Part2(m)
	}
}

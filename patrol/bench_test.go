package patrol_test

import (
	"testing"

	"github.com/katalvlaran/aoc2024/patrol"
)

// BenchmarkPart2_Example re-runs the walk once per candidate obstacle.
func BenchmarkPart2_Example(b *testing.B) {
	m, err := patrol.Parse(example)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = patrol.Part2(m)
	}
}

package motion_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/brownian/motion"
	"github.com/katalvlaran/brownian/rng"
)

// sinks to defeat dead-code elimination
var (
	sinkTraj motion.Trajectory2D
	sinkSet  motion.PathSet
)

func BenchmarkWalk2D(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("steps=%d", n), func(b *testing.B) {
			src := rng.New(1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				traj, err := motion.Walk2D(n, 1, 1, motion.WithSource(src))
				if err != nil {
					b.Fatal(err)
				}
				sinkTraj = traj
			}
		})
	}
}

func BenchmarkPaths(b *testing.B) {
	b.ReportAllocs()
	for _, paths := range []int{1, 16} {
		b.Run(fmt.Sprintf("samples=10000/paths=%d", paths), func(b *testing.B) {
			src := rng.New(4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ps, err := motion.Paths(10_000, paths, 1, motion.WithSource(src))
				if err != nil {
					b.Fatal(err)
				}
				sinkSet = ps
			}
		})
	}
}

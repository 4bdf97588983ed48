package fuse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/simfuse/coo"
	"github.com/katalvlaran/simfuse/fuse"
)

// randomGraph builds a row-major sorted random similarity graph over n
// points with roughly degree edges per row, using a fixed seed so every
// benchmark run sees identical input.
func randomGraph(n, degree int, seed int64) *coo.Matrix {
	rng := rand.New(rand.NewSource(seed))

	g, _ := coo.NewWithCapacity(n, n*degree)
	for i := 0; i < n; i++ {
		seen := make(map[int]bool, degree)
		for d := 0; d < degree; d++ {
			j := rng.Intn(n)
			if j == i || seen[j] {
				continue
			}
			seen[j] = true
			g.Append(i, j, 0.05+0.95*rng.Float64())
		}
	}
	coo.Sort(g)

	return g
}

// benchmarkCategorical runs categorical fusion over an n-point graph with
// the given worker count.
func benchmarkCategorical(b *testing.B, n, workers int) {
	g := randomGraph(n, 8, 1)
	labels := make([]float64, n)
	for i := range labels {
		labels[i] = float64(i % 10)
	}
	opts := fuse.DefaultOptions()
	opts.Workers = workers

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := fuse.Categorical(g, labels, opts); err != nil {
			b.Fatalf("Categorical failed: %v", err)
		}
	}
}

// benchmarkGeneral runs general fusion over an n-point graph with the
// given worker count.
func benchmarkGeneral(b *testing.B, n, workers int) {
	g := randomGraph(n, 8, 1)
	rng := rand.New(rand.NewSource(2))
	target := make([]float64, n)
	for i := range target {
		target[i] = rng.NormFloat64()
	}
	opts := fuse.DefaultOptions()
	opts.Workers = workers
	opts.TargetNeighbors = 8

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fuse.General(g, target, opts); err != nil {
			b.Fatalf("General failed: %v", err)
		}
	}
}

// BenchmarkCategorical_1kSerial benchmarks the categorical path, one worker.
func BenchmarkCategorical_1kSerial(b *testing.B) { benchmarkCategorical(b, 1000, 1) }

// BenchmarkCategorical_1kParallel benchmarks the categorical path on all cores.
func BenchmarkCategorical_1kParallel(b *testing.B) { benchmarkCategorical(b, 1000, 0) }

// BenchmarkGeneral_1kSerial benchmarks the general path, one worker.
func BenchmarkGeneral_1kSerial(b *testing.B) { benchmarkGeneral(b, 1000, 1) }

// BenchmarkGeneral_1kParallel benchmarks the general path on all cores.
func BenchmarkGeneral_1kParallel(b *testing.B) { benchmarkGeneral(b, 1000, 0) }

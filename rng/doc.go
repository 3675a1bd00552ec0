// Package rng is the Gaussian increment source shared by the Brownian
// generators.
//
// Goals:
//   - Injection: generators draw from a caller-owned Source; there is no
//     package-level random state.
//   - Determinism: New(seed) yields identical streams for identical seeds.
//   - Independence: Derive splits a base stream into decorrelated children
//     so that concurrent callers never share a *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; give each worker its own stream via Derive.
//
// Usage:
//
//	src := rng.New(42)
//	dx, err := rng.Normal(src, 999, sigma*math.Sqrt(stepSize))
package rng

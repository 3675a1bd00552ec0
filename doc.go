// Package brownian simulates Brownian motion as a discrete-time Gaussian
// random walk.
//
// 🚀 What is brownian?
//
//	A small, dependency-light toolkit that brings together:
//		• Seeded Gaussian increment streams (reproducible or unseeded)
//		• 2D positional walks: one particle's (x, y) positions over time
//		• Multi-path generators: P independent Wiener paths over [0, T]
//		• Column-oriented matrix helpers: cumulative sums, differences, statistics
//		• Plot-ready export: CSV or JSON under unique file names
//
// ✨ Why choose brownian?
//
//   - Deterministic by choice: inject a Source or a seed and get the same trajectory back
//   - Strict validation: bad parameters fail with ErrInvalidParameter before any draw
//   - Pure Go numerics: no cgo, no BLAS
//
// Under the hood, everything is organized under these subpackages:
//
//	rng/      Source interface, seeding policy, Normal / NormalMatrix draws
//	matrix/   Dense row-major matrix with PrependZeroRow, CumSumCols, DiffRows, statistics
//	motion/   Walk2D and Paths generators, parameter validation, increment summaries
//	config/   defaults → INI/YAML file → BROWNIAN_* env → flags
//	naming/   timestamp or UUID artifact names
//	export/   CSV / JSON trajectory writers
//	logging/  slog text logger with string levels
//	cmd/brownian  the CLI: walk2d, paths, config, version
//
// Scaling law:
//
//	Var[X(t+Δt) − X(t)] = σ²·Δt
//
//	Walk2D uses σ·√stepSize per axis; Paths uses √dt with dt = T/(n−1).
//
//	go install github.com/katalvlaran/brownian/cmd/brownian@latest
package brownian

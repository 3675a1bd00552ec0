// Package motion generates discrete-time Brownian motion trajectories.
//
// 🚀 What is here?
//
//	Two generators share one statistical model: an increment over a time
//	interval Δt is drawn from N(0, (σ·√Δt)²).
//	  • Walk2D: one particle's (x, y) positions over stepCount fixed steps,
//	    with independent increments per axis of deviation sigma·√stepSize.
//	  • Paths:  pathCount independent 1D displacement paths sampled at
//	    sampleCount uniform points over [0, totalTime] (a Wiener process,
//	    increments N(0, dt)).
//
// ✨ Guarantees:
//   - Every trajectory starts at the origin (X[0] = Y[0] = 0, row 0 of the
//     displacement matrix is all zeros).
//   - Parameters are validated before any allocation or random draw; a
//     violation returns a *ParamError that matches ErrInvalidParameter.
//   - Randomness comes only from the injected source. With WithSeed or
//     WithSource the output is bit-for-bit reproducible; without either each
//     call draws from a fresh unseeded stream.
//
// ⚙️ Usage:
//
//	traj, err := motion.Walk2D(1000, 1, 1, motion.WithSeed(42))
//	ps, err := motion.Paths(1000, 5, 1.0, motion.WithSeed(42))
//	fmt.Println(ps.IncrementSummary()) // mean ≈ 0, std ≈ √dt
//
// Concurrency:
//
//	Generators hold no state. A *rand.Rand source is not goroutine-safe, so
//	concurrent callers must each own one (see rng.Derive).
//
// Complexity:
//
//	Walk2D: O(stepCount) time and memory.
//	Paths:  O(sampleCount·pathCount) time and memory.
package motion

package motion_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/brownian/matrix"
	"github.com/katalvlaran/brownian/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPaths_MinimalScenario is the sampleCount=2, pathCount=1, totalTime=0.1 case.
func TestPaths_MinimalScenario(t *testing.T) {
	ps, err := motion.Paths(2, 1, 0.1, motion.WithSeed(seedDet))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.1}, ps.Time)
	assert.Equal(t, 2, ps.Displacement.Rows())
	assert.Equal(t, 1, ps.Displacement.Cols())

	v, err := ps.Displacement.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestPaths_ShapeAndTimeAxis checks the axis invariants and the zero row.
func TestPaths_ShapeAndTimeAxis(t *testing.T) {
	cases := []struct {
		samples, paths int
		total          float64
	}{
		{2, 1, 1}, {3, 4, 0.5}, {1000, 1, 1.0}, {101, 7, 12.5},
	}
	for _, tc := range cases {
		ps, err := motion.Paths(tc.samples, tc.paths, tc.total, motion.WithSeed(seedDet))
		require.NoError(t, err)

		require.Len(t, ps.Time, tc.samples)
		assert.Equal(t, tc.samples, ps.Len())
		assert.Equal(t, tc.paths, ps.PathCount())
		assert.Zero(t, ps.Time[0])
		assert.Equal(t, tc.total, ps.Time[tc.samples-1])
		for i := 1; i < len(ps.Time); i++ {
			require.Greater(t, ps.Time[i], ps.Time[i-1], "time axis must be strictly increasing at %d", i)
		}
		assert.InDelta(t, tc.total/float64(tc.samples-1), ps.Dt(), 1e-12)

		assert.Equal(t, tc.samples, ps.Displacement.Rows())
		assert.Equal(t, tc.paths, ps.Displacement.Cols())
		row0, err := ps.Displacement.Row(0)
		require.NoError(t, err)
		assert.Equal(t, make([]float64, tc.paths), row0, "every path starts at the origin")
	}
}

// TestPaths_ScalingLaw pins ΔW = √dt·Z with a scripted source.
func TestPaths_ScalingLaw(t *testing.T) {
	// T = 1 over 5 samples ⇒ dt = 0.25, √dt = 0.5.
	src := &countingSource{value: 1}
	ps, err := motion.Paths(5, 2, 1, motion.WithSource(src))
	require.NoError(t, err)
	assert.Equal(t, 8, src.calls, "(sampleCount-1)·pathCount draws")

	for j := 0; j < 2; j++ {
		path, err := ps.Path(j)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5, 2}, path, 1e-12)
	}
}

// TestPaths_InvalidParameters checks each parameter independently.
func TestPaths_InvalidParameters(t *testing.T) {
	cases := []struct {
		name    string
		samples int
		paths   int
		total   float64
		param   string
	}{
		{"zero samples", 0, 1, 1, "sampleCount"},
		{"one sample", 1, 1, 1, "sampleCount"},
		{"negative samples", -3, 1, 1, "sampleCount"},
		{"zero paths", 1000, 0, 1, "pathCount"},
		{"negative paths", 1000, -1, 1, "pathCount"},
		{"zero total time", 1000, 1, 0, "totalTime"},
		{"negative total time", 1000, 1, -2, "totalTime"},
		{"NaN total time", 1000, 1, math.NaN(), "totalTime"},
		{"Inf total time", 1000, 1, math.Inf(1), "totalTime"},
		{"spacing underflow", 3, 1, math.SmallestNonzeroFloat64, "totalTime"},
		{"sampleCount reported first", 0, 0, 0, "sampleCount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &countingSource{value: 1}
			ps, err := motion.Paths(tc.samples, tc.paths, tc.total, motion.WithSource(src))
			require.ErrorIs(t, err, motion.ErrInvalidParameter)

			var pe *motion.ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.param, pe.Name)
			assert.Equal(t, "Paths", pe.Op)

			assert.Nil(t, ps.Time)
			assert.Nil(t, ps.Displacement)
			assert.Zero(t, src.calls)
		})
	}
}

// TestPaths_OversizedMatrix covers valid counts whose sample×path product
// does not fit in an int: the generator reports an error instead of panicking.
func TestPaths_OversizedMatrix(t *testing.T) {
	src := &countingSource{value: 1}

	var ps motion.PathSet
	var err error
	require.NotPanics(t, func() {
		ps, err = motion.Paths(3, math.MaxInt/2+1, 1, motion.WithSource(src))
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	assert.NotErrorIs(t, err, motion.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "Paths: ")

	assert.Nil(t, ps.Displacement)
	assert.Zero(t, src.calls)
}

// TestPaths_IncrementStatistics checks mean → 0 and std → √dt for n = 10⁴.
func TestPaths_IncrementStatistics(t *testing.T) {
	for _, paths := range []int{1, 3} {
		ps, err := motion.Paths(10_000, paths, 1.0, motion.WithSeed(seedDet))
		require.NoError(t, err)

		s, err := ps.IncrementSummary()
		require.NoError(t, err)
		assert.Equal(t, 9_999*paths, s.N)
		assert.InDelta(t, 0, s.Mean, 0.1)
		assert.InDelta(t, math.Sqrt(ps.Dt()), s.Std, 0.1)
	}
}

// TestPaths_MeanSquaredDisplacement checks E[W(t)²] ≈ t over many paths.
func TestPaths_MeanSquaredDisplacement(t *testing.T) {
	ps, err := motion.Paths(11, 4000, 1.0, motion.WithSeed(seedDet))
	require.NoError(t, err)

	msd, err := ps.MeanSquaredDisplacement()
	require.NoError(t, err)
	require.Len(t, msd, 11)
	assert.Zero(t, msd[0])
	assert.InDelta(t, 1.0, msd[10], 0.1)
	assert.InDelta(t, 0.5, msd[5], 0.1)
}

// TestPaths_SeedDeterminism checks bit-for-bit equality under a fixed seed.
func TestPaths_SeedDeterminism(t *testing.T) {
	a, err := motion.Paths(200, 3, 2.0, motion.WithSeed(seedDet))
	require.NoError(t, err)
	b, err := motion.PathsWith(motion.PathParams{SampleCount: 200, PathCount: 3, TotalTime: 2.0}, motion.WithSeed(seedDet))
	require.NoError(t, err)

	assert.Equal(t, a.Time, b.Time)
	assert.Equal(t, a.Displacement.Values(), b.Displacement.Values())
}

// TestPaths_ColumnsDiffer guards against every path reusing one stream slice.
func TestPaths_ColumnsDiffer(t *testing.T) {
	ps, err := motion.Paths(50, 2, 1, motion.WithSeed(seedDet))
	require.NoError(t, err)
	p0, _ := ps.Path(0)
	p1, _ := ps.Path(1)
	assert.NotEqual(t, p0, p1)
}

// TestPathSet_ZeroValue checks accessors on an empty PathSet.
func TestPathSet_ZeroValue(t *testing.T) {
	var ps motion.PathSet
	assert.Zero(t, ps.Len())
	assert.Zero(t, ps.PathCount())
	assert.Zero(t, ps.Dt())
	_, err := ps.Path(0)
	assert.Error(t, err)
	_, err = ps.Increments()
	assert.Error(t, err)
}

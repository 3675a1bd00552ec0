package motion_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/brownian/motion"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, motion.Summary{}, motion.Summarize(nil))

	s := motion.Summarize([]float64{1, 3, 5})
	assert.Equal(t, 3, s.N)
	assert.InDelta(t, 3, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(8.0/3.0), s.Std, 1e-12)
	assert.Equal(t, "n=3 mean=3 std=1.63299", s.String())
}

func TestParamError_Message(t *testing.T) {
	err := &motion.ParamError{Op: "Walk2D", Name: "sigma", Value: 0.0, Reason: "positive"}
	assert.Equal(t, "Walk2D: sigma must be positive (got 0)", err.Error())
	assert.ErrorIs(t, err, motion.ErrInvalidParameter)
}

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, motion.Walk2DParams{StepCount: 1, StepSize: 1, Sigma: 1}.Validate())
	assert.ErrorIs(t, motion.Walk2DParams{}.Validate(), motion.ErrInvalidParameter)

	assert.NoError(t, motion.PathParams{SampleCount: 2, PathCount: 1, TotalTime: 0.1}.Validate())
	assert.ErrorIs(t, motion.PathParams{SampleCount: 2}.Validate(), motion.ErrInvalidParameter)
}

package motion

import "math"

// Reasons used in ParamError.
const (
	reasonPositive = "positive"
	reasonFinite   = "positive and finite"
	reasonMinTwo   = ">= 2"
	reasonSpacing  = "large enough for a positive sample spacing"
)

// requirePositiveInt rejects v <= 0.
func requirePositiveInt(op, name string, v int) error {
	if v <= 0 {
		return &ParamError{Op: op, Name: name, Value: v, Reason: reasonPositive}
	}

	return nil
}

// requireAtLeast rejects v < lo.
func requireAtLeast(op, name string, v, lo int, reason string) error {
	if v < lo {
		return &ParamError{Op: op, Name: name, Value: v, Reason: reason}
	}

	return nil
}

// requirePositiveFloat rejects v <= 0, NaN and ±Inf.
func requirePositiveFloat(op, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Op: op, Name: name, Value: v, Reason: reasonFinite}
	}
	if v <= 0 {
		return &ParamError{Op: op, Name: name, Value: v, Reason: reasonPositive}
	}

	return nil
}

// Validate checks p in the order stepCount, stepSize, sigma and returns the
// first violation.
func (p Walk2DParams) Validate() error {
	if err := requirePositiveInt(opWalk2D, "stepCount", p.StepCount); err != nil {
		return err
	}
	if err := requirePositiveFloat(opWalk2D, "stepSize", p.StepSize); err != nil {
		return err
	}

	return requirePositiveFloat(opWalk2D, "sigma", p.Sigma)
}

// Validate checks p in the order sampleCount, pathCount, totalTime and
// returns the first violation. A totalTime so small that the sample spacing
// underflows to zero is also rejected.
func (p PathParams) Validate() error {
	if err := requireAtLeast(opPaths, "sampleCount", p.SampleCount, 2, reasonMinTwo); err != nil {
		return err
	}
	if err := requirePositiveInt(opPaths, "pathCount", p.PathCount); err != nil {
		return err
	}
	if err := requirePositiveFloat(opPaths, "totalTime", p.TotalTime); err != nil {
		return err
	}
	if !(p.TotalTime/float64(p.SampleCount-1) > 0) {
		return &ParamError{Op: opPaths, Name: "totalTime", Value: p.TotalTime, Reason: reasonSpacing}
	}

	return nil
}

package motion_test

// countingSource returns a fixed value and records how many draws were taken.
type countingSource struct {
	value float64
	calls int
}

func (c *countingSource) NormFloat64() float64 {
	c.calls++
	return c.value
}

// seedDet is the fixed seed used by determinism tests.
const seedDet int64 = 20240601

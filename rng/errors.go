package rng

import "errors"

var (
	// ErrNilSource indicates a draw was requested from a nil Source.
	ErrNilSource = errors.New("rng: source is nil")

	// ErrNegativeCount indicates a negative draw count or matrix dimension.
	ErrNegativeCount = errors.New("rng: count must be >= 0")

	// ErrBadSigma indicates a standard deviation that is negative, NaN or Inf.
	ErrBadSigma = errors.New("rng: sigma must be finite and >= 0")
)

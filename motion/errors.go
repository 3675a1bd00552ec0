package motion

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the single validation error kind of this package.
// Every *ParamError unwraps to it, so callers branch with
// errors.Is(err, ErrInvalidParameter).
var ErrInvalidParameter = errors.New("motion: invalid parameter")

// ParamError reports which parameter violated its constraint.
// Use errors.As to read Name.
type ParamError struct {
	Op     string // generator name, e.g. "Walk2D"
	Name   string // offending parameter, e.g. "stepSize"
	Value  any    // rejected value
	Reason string // constraint, e.g. "positive" or ">= 2"
}

// Error renders "<Op>: <Name> must be <Reason> (got <Value>)".
func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s must be %s (got %v)", e.Op, e.Name, e.Reason, e.Value)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

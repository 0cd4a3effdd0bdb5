package fire

import (
	"errors"
	"fmt"
)

// ErrNotComputable marks inputs for which the closed-form period solver has
// no valid solution (non-positive log argument, zero rate with zero payment).
// Callers recover by falling back to the iterative solver.
var ErrNotComputable = errors.New("closed form not computable")

// ErrNotAchievable marks targets that no solver reaches within the bounded
// horizon. Surfaced to callers as achieved=false rather than a failure.
var ErrNotAchievable = errors.New("not achievable within horizon")

// CalcError describes a calculation failure with its operation context.
type CalcError struct {
	Op      string
	Message string
	Cause   error
}

func (e *CalcError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

package paymentplan

import (
	"errors"
	"fmt"
)

// ErrInvalidParams wraps every input validation failure: malformed or
// out-of-range parameters are rejected before any computation starts.
var ErrInvalidParams = errors.New("invalid payment plan parameters")

// ErrRateNotConverged is returned when the effective-rate solver cannot
// bracket or converge on a root. The call fails; the rate is never
// silently approximated.
var ErrRateNotConverged = errors.New("effective interest rate did not converge")

// ConstraintError reports a plan that violates a configured monetary
// constraint. The computation is aborted, never clamped.
type ConstraintError struct {
	Constraint string  // "min_installment_amount" or "max_total_amount"
	Limit      float64
	Actual     float64
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("payment plan violates %s: limit %.2f, got %.2f", e.Constraint, e.Limit, e.Actual)
}

func invalidParams(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}

package enrollment

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when an enrollment id does not resolve.
var ErrNotFound = errors.New("enrollment not found")

// ErrPlanNotFound is returned by stores when a plan id does not resolve to
// an active plan.
var ErrPlanNotFound = errors.New("plan not found")

// ValidationError is a business-rule rejection. It is caller-correctable
// and never triggers storage failover.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is a business-rule rejection.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func errInvalidPlan(id uint) error {
	return &ValidationError{Message: fmt.Sprintf("Plan with ID %d not found or inactive", id)}
}

func errContributionTooLow(min int) error {
	return &ValidationError{Message: fmt.Sprintf("Monthly contribution must be at least $%d", min)}
}

func errContributionTooHigh(max int) error {
	return &ValidationError{Message: fmt.Sprintf("Monthly contribution cannot exceed $%d", max)}
}

package payment

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
//
//	Pending ──> Processing ──┬──> Completed ──> Refunded
//	                         └──> Failed
//
// Cancellation is possible from any non-final status. Completed, Failed,
// Refunded and Cancelled are final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after the payment is created.
	StatusPending

	// StatusProcessing means a payment strategy is working on the payment.
	StatusProcessing

	// StatusCompleted means the payment went through. Final.
	StatusCompleted

	// StatusFailed means the payment did not go through. Final.
	StatusFailed

	// StatusRefunded means a completed payment was returned. Final.
	StatusRefunded

	// StatusCancelled means the payment was abandoned before finishing. Final.
	StatusCancelled
)

type statusSpec struct {
	name        string
	description string
}

func getStatusSpecs() map[Status]statusSpec {
	//nolint:exhaustive // Unknown has no spec
	return map[Status]statusSpec{
		StatusPending:    {"Pending", "Payment initiated"},
		StatusProcessing: {"Processing", "Payment being processed"},
		StatusCompleted:  {"Completed", "Payment successful"},
		StatusFailed:     {"Failed", "Payment failed"},
		StatusRefunded:   {"Refunded", "Payment refunded"},
		StatusCancelled:  {"Cancelled", "Payment cancelled"},
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusSpecs()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the display name of the status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if spec, ok := getStatusSpecs()[s]; ok {
		return spec.name
	}
	return "Unknown"
}

// Description returns a short explanation of the status.
func (s Status) Description() string {
	return getStatusSpecs()[s].description
}

// IsFinal reports whether the status is terminal.
func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusFailed ||
		s == StatusRefunded || s == StatusCancelled
}

// IsSuccessful reports whether the payment went through.
func (s Status) IsSuccessful() bool {
	return s == StatusCompleted
}

package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The usual flow is:
//
//	Draft ──> PendingPayment ──> Paid ──> Confirmed ──> Preparing ──> Ready
//	                                                                    │
//	            Completed <── Delivered <── OutForDelivery <────────────┘
//
// Cancellation is possible from Draft, PendingPayment, Paid and Confirmed.
// Once the kitchen starts preparing, the order can no longer be cancelled.
//
// Status is a value object that answers which operations the order permits
// in its current state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status while the order is being assembled.
	// Only draft orders can be edited.
	StatusDraft

	// StatusPendingPayment means the order waits for payment.
	StatusPendingPayment

	// StatusPaid means payment was confirmed.
	StatusPaid

	// StatusConfirmed means the order was validated and sent to the kitchen.
	StatusConfirmed

	// StatusPreparing means the kitchen is working on the order.
	StatusPreparing

	// StatusReady means the order is ready for pickup or delivery.
	StatusReady

	// StatusOutForDelivery means a courier is on the way.
	StatusOutForDelivery

	// StatusDelivered means the order reached the customer.
	StatusDelivered

	// StatusCompleted means the order is fully done. Final.
	StatusCompleted

	// StatusCancelled means the order was cancelled. Final.
	StatusCancelled
)

type statusSpec struct {
	name        string
	description string
}

func getStatusSpecs() map[Status]statusSpec {
	//nolint:exhaustive // Unknown has no spec
	return map[Status]statusSpec{
		StatusDraft:          {"Draft", "Order is being created"},
		StatusPendingPayment: {"Pending Payment", "Waiting for payment"},
		StatusPaid:           {"Paid", "Payment confirmed"},
		StatusConfirmed:      {"Confirmed", "Order confirmed, sent to kitchen"},
		StatusPreparing:      {"Preparing", "Being prepared in kitchen"},
		StatusReady:          {"Ready", "Ready for pickup/delivery"},
		StatusOutForDelivery: {"Out for Delivery", "Courier is on the way"},
		StatusDelivered:      {"Delivered", "Successfully delivered"},
		StatusCompleted:      {"Completed", "Order completed"},
		StatusCancelled:      {"Cancelled", "Order cancelled"},
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusSpecs()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
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

// IsEditable reports whether the order's composition may still change.
// Only draft orders are editable.
func (s Status) IsEditable() bool {
	return s == StatusDraft
}

// IsCancellable reports whether an order in this status may be cancelled.
// Cancellation is allowed until the kitchen starts preparing.
func (s Status) IsCancellable() bool {
	return s == StatusDraft || s == StatusPendingPayment ||
		s == StatusPaid || s == StatusConfirmed
}

// IsFinal reports whether the status is terminal.
func (s Status) IsFinal() bool {
	return s == StatusDelivered || s == StatusCompleted || s == StatusCancelled
}

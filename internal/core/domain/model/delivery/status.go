package delivery

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Nearby ──> Arrived ──> Delivered
//
// Failed can be entered from any non-final status. Delivered and Failed
// are final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending means no courier is assigned yet.
	StatusPending

	// StatusAssigned means a courier took the delivery.
	StatusAssigned

	// StatusPickedUp means the courier picked up the order.
	StatusPickedUp

	// StatusInTransit means the courier is on the way to the customer.
	StatusInTransit

	// StatusNearby means the courier is about five minutes away.
	StatusNearby

	// StatusArrived means the courier reached the destination.
	StatusArrived

	// StatusDelivered means the order was handed over. Final.
	StatusDelivered

	// StatusFailed means the delivery did not succeed. Final.
	StatusFailed
)

type statusSpec struct {
	name        string
	description string
}

func getStatusSpecs() map[Status]statusSpec {
	//nolint:exhaustive // Unknown has no spec
	return map[Status]statusSpec{
		StatusPending:   {"Pending", "Delivery not yet assigned"},
		StatusAssigned:  {"Assigned", "Assigned to courier"},
		StatusPickedUp:  {"Picked Up", "Courier picked up the order"},
		StatusInTransit: {"In Transit", "On the way to customer"},
		StatusNearby:    {"Nearby", "Courier is nearby (5 min)"},
		StatusArrived:   {"Arrived", "Courier arrived at destination"},
		StatusDelivered: {"Delivered", "Successfully delivered"},
		StatusFailed:    {"Failed", "Delivery failed"},
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusSpecs()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s))
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
	return s == StatusDelivered || s == StatusFailed
}

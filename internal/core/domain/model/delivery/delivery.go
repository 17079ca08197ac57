package delivery

import (
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/pkg/errs"
)

// defaultEstimatedMinutes is assumed until a better estimate is set.
const defaultEstimatedMinutes = 30

// trackingCodePrefix and trackingCodeLength shape customer-facing
// tracking codes, e.g. "TRK-3F2A9B1C".
const (
	trackingCodePrefix = "TRK"
	trackingCodeLength = 8
)

// Delivery connects an order to a courier and tracks the trip to the
// customer. A delivery starts Pending without a courier; assigning one
// moves it to Assigned, and the courier then walks it through the status
// flow to Delivered or Failed.
//
// Timestamps follow the status: assignedAt, pickedUpAt and deliveredAt
// are stamped the first time the matching status is entered. Unassigning
// the courier clears assignedAt so a later assignment stamps it again.
//
// Delivery is not safe for concurrent use; the caller serializes access.
type Delivery struct {
	id               kernel.UUID
	order            *order.Order
	deliveryAddress  kernel.Address
	courier          *user.Courier
	status           Status
	createdAt        time.Time
	assignedAt       *time.Time
	pickedUpAt       *time.Time
	deliveredAt      *time.Time
	deliveryFee      kernel.Money
	estimatedMinutes int
	trackingCode     string
	notes            string
}

// NewDelivery creates a pending delivery for the order with a fresh
// tracking code and the default time estimate.
func NewDelivery(o *order.Order, deliveryAddress kernel.Address, deliveryFee kernel.Money) (*Delivery, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}
	if err := deliveryAddress.Validate(); err != nil {
		return nil, err
	}
	if err := deliveryFee.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:               kernel.NewUUID(),
		order:            o,
		deliveryAddress:  deliveryAddress,
		status:           StatusPending,
		createdAt:        time.Now().UTC(),
		deliveryFee:      deliveryFee,
		estimatedMinutes: defaultEstimatedMinutes,
		trackingCode:     kernel.NewReferenceCode(trackingCodePrefix, trackingCodeLength),
	}, nil
}

// ID returns the unique identifier of the delivery.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Order returns the order being delivered.
func (d *Delivery) Order() *order.Order {
	return d.order
}

// DeliveryAddress returns the destination address.
func (d *Delivery) DeliveryAddress() kernel.Address {
	return d.deliveryAddress
}

// Courier returns the assigned courier.
// The second return value is false while no courier is assigned.
func (d *Delivery) Courier() (*user.Courier, bool) {
	if d.courier == nil {
		return nil, false
	}
	return d.courier, true
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// AssignedAt returns when a courier was assigned.
// The second return value is false while no courier was ever assigned.
func (d *Delivery) AssignedAt() (time.Time, bool) {
	if d.assignedAt == nil {
		return time.Time{}, false
	}
	return *d.assignedAt, true
}

// PickedUpAt returns when the courier picked up the order.
// The second return value is false until pickup.
func (d *Delivery) PickedUpAt() (time.Time, bool) {
	if d.pickedUpAt == nil {
		return time.Time{}, false
	}
	return *d.pickedUpAt, true
}

// DeliveredAt returns when the order was handed over.
// The second return value is false until the delivery succeeds.
func (d *Delivery) DeliveredAt() (time.Time, bool) {
	if d.deliveredAt == nil {
		return time.Time{}, false
	}
	return *d.deliveredAt, true
}

// DeliveryFee returns the fee charged for this delivery.
func (d *Delivery) DeliveryFee() kernel.Money {
	return d.deliveryFee
}

// SetDeliveryFee replaces the delivery fee.
func (d *Delivery) SetDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	d.deliveryFee = fee
	return nil
}

// EstimatedMinutes returns the current delivery time estimate.
func (d *Delivery) EstimatedMinutes() int {
	return d.estimatedMinutes
}

// SetEstimatedMinutes updates the time estimate. Must be positive.
func (d *Delivery) SetEstimatedMinutes(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedMinutes",
			fmt.Errorf("%d is not positive", minutes))
	}
	d.estimatedMinutes = minutes
	return nil
}

// TrackingCode returns the customer-facing tracking code.
func (d *Delivery) TrackingCode() string {
	return d.trackingCode
}

// Notes returns the courier's free-form notes.
func (d *Delivery) Notes() string {
	return d.notes
}

// SetNotes replaces the courier's notes.
func (d *Delivery) SetNotes(notes string) {
	d.notes = notes
}

// AssignCourier assigns an available courier and moves the delivery to
// Assigned. Fails when a courier is already assigned, when the delivery
// already left Pending, or when the courier is not available.
func (d *Delivery) AssignCourier(courier *user.Courier) error {
	if courier == nil {
		return errs.NewValueIsRequiredError("courier")
	}
	if d.courier != nil {
		return errs.NewInvalidStateError("assign courier", d.status.String())
	}
	if d.status != StatusPending {
		return errs.NewInvalidStateError("assign courier", d.status.String())
	}
	if !courier.IsAvailable() {
		return errs.NewInvalidStateError("assign courier", "courier unavailable")
	}

	d.courier = courier
	d.setStatus(StatusAssigned)
	return nil
}

// UnassignCourier releases the courier and returns the delivery to
// Pending. The assignment timestamp is cleared so a later assignment
// stamps it anew. Fails once the courier picked up the order.
func (d *Delivery) UnassignCourier() error {
	if d.courier == nil {
		return errs.NewInvalidStateError("unassign courier", d.status.String())
	}
	if d.status != StatusAssigned {
		return errs.NewInvalidStateError("unassign courier", d.status.String())
	}

	d.courier = nil
	d.status = StatusPending
	d.assignedAt = nil
	return nil
}

// IsAssigned reports whether a courier is assigned.
func (d *Delivery) IsAssigned() bool {
	return d.courier != nil
}

// IsCompleted reports whether the delivery reached a final status,
// successful or not.
func (d *Delivery) IsCompleted() bool {
	return d.status.IsFinal()
}

// ActualDeliveryTime returns the minutes between pickup and handover.
// The second return value is false until both happened.
func (d *Delivery) ActualDeliveryTime() (int, bool) {
	if d.pickedUpAt == nil || d.deliveredAt == nil {
		return 0, false
	}
	return int(d.deliveredAt.Sub(*d.pickedUpAt).Minutes()), true
}

// TransitionTo changes the delivery status and stamps the matching
// timestamp on first entry. Fails on undefined target values and once
// the delivery is final.
func (d *Delivery) TransitionTo(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if d.status.IsFinal() {
		return errs.NewInvalidStateError("change delivery status", d.status.String())
	}
	d.setStatus(status)
	return nil
}

// String renders the delivery for logs. Implements fmt.Stringer.
func (d *Delivery) String() string {
	courierName := "unassigned"
	if d.courier != nil {
		courierName = d.courier.Name()
	}
	return fmt.Sprintf("Delivery{id=%s, order=%s, status=%s, courier=%s, tracking=%s}",
		d.id, d.order.ID(), d.status, courierName, d.trackingCode)
}

// setStatus changes the status and stamps timestamps on first entry.
func (d *Delivery) setStatus(status Status) {
	d.status = status

	now := time.Now().UTC()
	if status == StatusAssigned && d.assignedAt == nil {
		d.assignedAt = &now
	}
	if status == StatusPickedUp && d.pickedUpAt == nil {
		d.pickedUpAt = &now
	}
	if status == StatusDelivered && d.deliveredAt == nil {
		d.deliveredAt = &now
	}
}

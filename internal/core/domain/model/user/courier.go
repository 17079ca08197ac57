package user

import (
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// defaultMaxActiveDeliveries caps how many deliveries a courier carries at once.
const defaultMaxActiveDeliveries = 2

// defaultVehicleType is assumed when a courier is registered without one.
const defaultVehicleType = "Bike"

// Courier delivers orders. A courier tracks their position on the delivery
// grid and the deliveries currently assigned to them. Capacity is a simple
// counter: a courier is available while active and below their concurrency
// limit. The caller serializes access; Courier itself is not safe for
// concurrent use.
type Courier struct {
	profile
	location            kernel.Location
	vehicleType         string
	salary              kernel.Money
	activeDeliveryIDs   []kernel.UUID
	maxActiveDeliveries int
	completedDeliveries int
}

// NewCourier registers a courier. An empty vehicle type defaults to
// defaultVehicleType. The courier has no position until UpdateLocation
// is called.
func NewCourier(name string, email Email, phone Phone, salary kernel.Money, vehicleType string) (*Courier, error) {
	p, err := newProfile(name, email, phone)
	if err != nil {
		return nil, err
	}
	if err = salary.Validate(); err != nil {
		return nil, err
	}

	vehicleType = strings.TrimSpace(vehicleType)
	if vehicleType == "" {
		vehicleType = defaultVehicleType
	}

	return &Courier{
		profile:             p,
		vehicleType:         vehicleType,
		salary:              salary,
		maxActiveDeliveries: defaultMaxActiveDeliveries,
	}, nil
}

// Role returns "COURIER".
func (c *Courier) Role() string {
	return "COURIER"
}

// CurrentLocation returns the courier's last reported position.
// Fails until the courier reports a position for the first time.
func (c *Courier) CurrentLocation() (kernel.Location, error) {
	if err := c.location.Validate(); err != nil {
		return kernel.Location{}, errs.NewObjectNotFoundError("location", c.id)
	}
	return c.location, nil
}

// UpdateLocation records the courier's position on the delivery grid.
func (c *Courier) UpdateLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

// VehicleType returns the courier's vehicle, e.g. "Bike", "Car", "Scooter".
func (c *Courier) VehicleType() string {
	return c.vehicleType
}

// SetVehicleType updates the courier's vehicle.
func (c *Courier) SetVehicleType(vehicleType string) error {
	vehicleType = strings.TrimSpace(vehicleType)
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	c.vehicleType = vehicleType
	return nil
}

// Salary returns the courier's salary.
func (c *Courier) Salary() kernel.Money {
	return c.salary
}

// ActiveDeliveryIDs returns a copy of the currently assigned delivery ids.
func (c *Courier) ActiveDeliveryIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.activeDeliveryIDs))
	copy(ids, c.activeDeliveryIDs)
	return ids
}

// ActiveDeliveryCount returns how many deliveries are currently assigned.
func (c *Courier) ActiveDeliveryCount() int {
	return len(c.activeDeliveryIDs)
}

// MaxActiveDeliveries returns the courier's concurrency limit.
func (c *Courier) MaxActiveDeliveries() int {
	return c.maxActiveDeliveries
}

// SetMaxActiveDeliveries updates the concurrency limit. Must be at least 1.
func (c *Courier) SetMaxActiveDeliveries(limit int) error {
	if limit < 1 {
		return errs.NewValueIsInvalidErrorWithCause("maxActiveDeliveries",
			fmt.Errorf("%d is less than 1", limit))
	}
	c.maxActiveDeliveries = limit
	return nil
}

// IsAvailable reports whether the courier can take another delivery:
// the account is active and the courier is below the concurrency limit.
func (c *Courier) IsAvailable() bool {
	return c.active && len(c.activeDeliveryIDs) < c.maxActiveDeliveries
}

// AcceptDelivery assigns a delivery to the courier.
// Fails when the courier is inactive or at capacity.
func (c *Courier) AcceptDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	if !c.active {
		return errs.NewInvalidStateError("accept delivery", "inactive")
	}
	if len(c.activeDeliveryIDs) >= c.maxActiveDeliveries {
		return errs.NewInsufficientCapacityError("courier", c.maxActiveDeliveries)
	}

	c.activeDeliveryIDs = append(c.activeDeliveryIDs, deliveryID)
	return nil
}

// CompleteDelivery releases a delivery from the courier and counts it as
// completed. Fails when the delivery is not assigned to this courier.
func (c *Courier) CompleteDelivery(deliveryID kernel.UUID) error {
	for i, id := range c.activeDeliveryIDs {
		if id.IsEqual(deliveryID) {
			c.activeDeliveryIDs = append(c.activeDeliveryIDs[:i], c.activeDeliveryIDs[i+1:]...)
			c.completedDeliveries++
			return nil
		}
	}
	return errs.NewObjectNotFoundError("deliveryID", deliveryID)
}

// CompletedDeliveries returns how many deliveries the courier has finished.
func (c *Courier) CompletedDeliveries() int {
	return c.completedDeliveries
}

// String renders the courier for logs. Implements fmt.Stringer.
func (c *Courier) String() string {
	return fmt.Sprintf("COURIER{id=%s, name=%s, vehicle=%s}", c.id, c.name, c.vehicleType)
}

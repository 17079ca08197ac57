package user

import (
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// defaultMaxConcurrentOrders caps how many orders a cook prepares at once.
const defaultMaxConcurrentOrders = 3

// defaultSpecialization is assumed when a cook is registered without one.
const defaultSpecialization = "All-rounder"

// Cook prepares orders in the kitchen. Like Courier, capacity is a plain
// counter guarded by the caller: a cook is available while active and below
// their concurrency limit.
type Cook struct {
	profile
	specialization      string
	salary              kernel.Money
	currentOrderIDs     []kernel.UUID
	maxConcurrentOrders int
	completedOrders     int
}

// NewCook registers a cook. An empty specialization defaults to
// defaultSpecialization.
func NewCook(name string, email Email, phone Phone, salary kernel.Money, specialization string) (*Cook, error) {
	p, err := newProfile(name, email, phone)
	if err != nil {
		return nil, err
	}
	if err = salary.Validate(); err != nil {
		return nil, err
	}

	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		specialization = defaultSpecialization
	}

	return &Cook{
		profile:             p,
		specialization:      specialization,
		salary:              salary,
		maxConcurrentOrders: defaultMaxConcurrentOrders,
	}, nil
}

// Role returns "COOK".
func (c *Cook) Role() string {
	return "COOK"
}

// Specialization returns the cook's specialty, e.g. "Pizza Master".
func (c *Cook) Specialization() string {
	return c.specialization
}

// SetSpecialization updates the cook's specialty.
func (c *Cook) SetSpecialization(specialization string) error {
	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return errs.NewValueIsRequiredError("specialization")
	}
	c.specialization = specialization
	return nil
}

// Salary returns the cook's salary.
func (c *Cook) Salary() kernel.Money {
	return c.salary
}

// CurrentOrderIDs returns a copy of the order ids currently in progress.
func (c *Cook) CurrentOrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.currentOrderIDs))
	copy(ids, c.currentOrderIDs)
	return ids
}

// CurrentOrderCount returns how many orders are currently in progress.
func (c *Cook) CurrentOrderCount() int {
	return len(c.currentOrderIDs)
}

// MaxConcurrentOrders returns the cook's concurrency limit.
func (c *Cook) MaxConcurrentOrders() int {
	return c.maxConcurrentOrders
}

// SetMaxConcurrentOrders updates the concurrency limit. Must be at least 1.
func (c *Cook) SetMaxConcurrentOrders(limit int) error {
	if limit < 1 {
		return errs.NewValueIsInvalidErrorWithCause("maxConcurrentOrders",
			fmt.Errorf("%d is less than 1", limit))
	}
	c.maxConcurrentOrders = limit
	return nil
}

// IsAvailable reports whether the cook can take another order:
// the account is active and the cook is below the concurrency limit.
func (c *Cook) IsAvailable() bool {
	return c.active && len(c.currentOrderIDs) < c.maxConcurrentOrders
}

// AcceptOrder assigns an order to the cook.
// Fails when the cook is inactive or at capacity.
func (c *Cook) AcceptOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !c.active {
		return errs.NewInvalidStateError("accept order", "inactive")
	}
	if len(c.currentOrderIDs) >= c.maxConcurrentOrders {
		return errs.NewInsufficientCapacityError("cook", c.maxConcurrentOrders)
	}

	c.currentOrderIDs = append(c.currentOrderIDs, orderID)
	return nil
}

// CompleteOrder releases an order from the cook and counts it as completed.
// Fails when the order is not assigned to this cook.
func (c *Cook) CompleteOrder(orderID kernel.UUID) error {
	for i, id := range c.currentOrderIDs {
		if id.IsEqual(orderID) {
			c.currentOrderIDs = append(c.currentOrderIDs[:i], c.currentOrderIDs[i+1:]...)
			c.completedOrders++
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderID", orderID)
}

// CompletedOrders returns how many orders the cook has finished.
func (c *Cook) CompletedOrders() int {
	return c.completedOrders
}

// String renders the cook for logs. Implements fmt.Stringer.
func (c *Cook) String() string {
	return fmt.Sprintf("COOK{id=%s, name=%s, specialization=%s}", c.id, c.name, c.specialization)
}

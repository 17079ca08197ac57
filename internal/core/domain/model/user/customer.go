package user

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// vipOrderThreshold is the number of completed orders after which a customer
// counts as VIP.
const vipOrderThreshold = 10

// Customer is a pizzeria client. A customer keeps a book of delivery
// addresses with one marked as default, collects loyalty points and tracks
// how many orders they have placed. Customers with no order history qualify
// for the first order discount.
type Customer struct {
	profile
	addresses      []kernel.Address
	defaultAddress kernel.Address
	loyaltyPoints  int
	totalOrders    int
}

// NewCustomer registers a customer with no addresses and no order history.
func NewCustomer(name string, email Email, phone Phone) (*Customer, error) {
	p, err := newProfile(name, email, phone)
	if err != nil {
		return nil, err
	}

	return &Customer{profile: p}, nil
}

// Role returns "CUSTOMER".
func (c *Customer) Role() string {
	return "CUSTOMER"
}

// AddDeliveryAddress adds an address to the customer's address book.
// Duplicates are ignored. The first address becomes the default.
func (c *Customer) AddDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	for _, existing := range c.addresses {
		if existing.IsEqual(address) {
			return nil
		}
	}

	c.addresses = append(c.addresses, address)
	if len(c.addresses) == 1 {
		c.defaultAddress = address
	}
	return nil
}

// RemoveDeliveryAddress removes an address from the address book. When the
// default address is removed, the first remaining address takes its place.
func (c *Customer) RemoveDeliveryAddress(address kernel.Address) {
	for i, existing := range c.addresses {
		if existing.IsEqual(address) {
			c.addresses = append(c.addresses[:i], c.addresses[i+1:]...)
			break
		}
	}

	if !address.IsEqual(c.defaultAddress) {
		return
	}
	if len(c.addresses) > 0 {
		c.defaultAddress = c.addresses[0]
	} else {
		c.defaultAddress = kernel.Address{}
	}
}

// DeliveryAddresses returns a copy of the address book.
func (c *Customer) DeliveryAddresses() []kernel.Address {
	addresses := make([]kernel.Address, len(c.addresses))
	copy(addresses, c.addresses)
	return addresses
}

// DefaultAddress returns the customer's default delivery address.
// Fails when the address book is empty.
func (c *Customer) DefaultAddress() (kernel.Address, error) {
	if err := c.defaultAddress.Validate(); err != nil {
		return kernel.Address{}, errs.NewObjectNotFoundError("defaultAddress", c.id)
	}
	return c.defaultAddress, nil
}

// SetDefaultAddress marks an already registered address as the default.
func (c *Customer) SetDefaultAddress(address kernel.Address) error {
	for _, existing := range c.addresses {
		if existing.IsEqual(address) {
			c.defaultAddress = address
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("address",
		fmt.Errorf("address must be added first: %s", address))
}

// LoyaltyPoints returns the customer's current loyalty balance.
func (c *Customer) LoyaltyPoints() int {
	return c.loyaltyPoints
}

// AddLoyaltyPoints credits loyalty points.
func (c *Customer) AddLoyaltyPoints(points int) error {
	if points < 0 {
		return errs.NewValueIsInvalidErrorWithCause("points",
			fmt.Errorf("%d is negative", points))
	}
	c.loyaltyPoints += points
	return nil
}

// UseLoyaltyPoints debits loyalty points. Fails when the balance is too low.
func (c *Customer) UseLoyaltyPoints(points int) error {
	if points < 0 {
		return errs.NewValueIsInvalidErrorWithCause("points",
			fmt.Errorf("%d is negative", points))
	}
	if points > c.loyaltyPoints {
		return errs.NewValueIsInvalidErrorWithCause("points",
			fmt.Errorf("%d exceeds balance of %d", points, c.loyaltyPoints))
	}
	c.loyaltyPoints -= points
	return nil
}

// TotalOrders returns how many orders the customer has placed.
func (c *Customer) TotalOrders() int {
	return c.totalOrders
}

// IncrementTotalOrders records one more placed order.
func (c *Customer) IncrementTotalOrders() {
	c.totalOrders++
}

// IsVIP reports whether the customer has placed enough orders for VIP perks.
func (c *Customer) IsVIP() bool {
	return c.totalOrders >= vipOrderThreshold
}

// String renders the customer for logs. Implements fmt.Stringer.
func (c *Customer) String() string {
	return fmt.Sprintf("CUSTOMER{id=%s, name=%s, email=%s}", c.id, c.name, c.email)
}

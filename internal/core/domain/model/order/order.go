package order

import (
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/pkg/errs"
)

// Order is the central aggregate of the system: a customer's order with its
// lines, derived totals, lifecycle status and timestamps.
//
// Pricing is recomputed, never patched incrementally. Every composition or
// price change triggers a full recalculation:
//
//	subtotal = sum of line totals (at current menu prices)
//	total    = subtotal - discount + deliveryFee
//
// The recalculation computes into temporaries and assigns only on success,
// so a failing change leaves the previous totals intact.
//
// Composition changes (AddItem, RemoveItem, ClearItems) are only allowed
// while the order is editable, which means Draft.
type Order struct {
	id          kernel.UUID
	customer    *user.Customer
	items       []*Item
	status      Status
	createdAt   time.Time
	confirmedAt *time.Time
	completedAt *time.Time
	subtotal    kernel.Money
	discount    kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money
	notes       string
}

// NewOrder creates an empty draft order for the customer, priced in the
// given currency. An empty currency defaults to kernel.DefaultCurrency.
func NewOrder(customer *user.Customer, currency string) (*Order, error) {
	if customer == nil {
		return nil, errs.NewValueIsRequiredError("customer")
	}

	zero := kernel.Zero(currency)
	return &Order{
		id:          kernel.NewUUID(),
		customer:    customer,
		status:      StatusDraft,
		createdAt:   time.Now().UTC(),
		subtotal:    zero,
		discount:    zero,
		deliveryFee: zero,
		total:       zero,
	}, nil
}

// ID returns the unique identifier of the order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() *user.Customer {
	return o.customer
}

// Items returns a copy of the order lines.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns when the order was first confirmed.
// The second return value is false while the order was never confirmed.
func (o *Order) ConfirmedAt() (time.Time, bool) {
	if o.confirmedAt == nil {
		return time.Time{}, false
	}
	return *o.confirmedAt, true
}

// CompletedAt returns when the order was first completed.
// The second return value is false while the order was never completed.
func (o *Order) CompletedAt() (time.Time, bool) {
	if o.completedAt == nil {
		return time.Time{}, false
	}
	return *o.completedAt, true
}

// Notes returns the customer's free-form wishes for the order.
func (o *Order) Notes() string {
	return o.notes
}

// SetNotes replaces the customer's notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// AddItem adds a menu item to the order. When a line for the same menu item
// already exists its quantity grows instead of creating a second line.
// Only draft orders can be modified.
func (o *Order) AddItem(menuItem menu.Item, quantity int) error {
	if !o.status.IsEditable() {
		return errs.NewInvalidStateError("modify order", o.status.String())
	}

	for _, item := range o.items {
		if item.IsSameMenuItem(menuItem) {
			if err := item.SetQuantity(item.Quantity() + quantity); err != nil {
				return err
			}
			return o.Recalculate()
		}
	}

	item, err := NewItem(menuItem, quantity)
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	return o.Recalculate()
}

// RemoveItem removes the line referencing the given menu item.
// Only draft orders can be modified.
func (o *Order) RemoveItem(menuItem menu.Item) error {
	if !o.status.IsEditable() {
		return errs.NewInvalidStateError("modify order", o.status.String())
	}

	for i, item := range o.items {
		if item.IsSameMenuItem(menuItem) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			break
		}
	}
	return o.Recalculate()
}

// ClearItems removes all lines. Only draft orders can be modified.
func (o *Order) ClearItems() error {
	if !o.status.IsEditable() {
		return errs.NewInvalidStateError("modify order", o.status.String())
	}

	o.items = nil
	return o.Recalculate()
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// ItemCount returns the total number of units across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.items {
		count += item.Quantity()
	}
	return count
}

// Subtotal returns the sum of all line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Discount returns the discount applied to the order.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// SetDiscount applies a discount and recalculates the totals.
// Fails when the discount would push the total below zero.
func (o *Order) SetDiscount(discount kernel.Money) error {
	if err := discount.Validate(); err != nil {
		return err
	}

	previous := o.discount
	o.discount = discount
	if err := o.Recalculate(); err != nil {
		o.discount = previous
		return err
	}
	return nil
}

// DeliveryFee returns the delivery fee added to the order.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// SetDeliveryFee sets the delivery fee and recalculates the totals.
func (o *Order) SetDeliveryFee(deliveryFee kernel.Money) error {
	if err := deliveryFee.Validate(); err != nil {
		return err
	}

	previous := o.deliveryFee
	o.deliveryFee = deliveryFee
	if err := o.Recalculate(); err != nil {
		o.deliveryFee = previous
		return err
	}
	return nil
}

// Total returns the amount the customer pays:
// subtotal - discount + delivery fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Recalculate recomputes subtotal and total from the current lines, discount
// and delivery fee. Because lines reference live menu items, the result
// reflects current menu prices. On failure the previous totals are kept.
func (o *Order) Recalculate() error {
	subtotal := kernel.Zero(o.subtotal.Currency())
	for _, item := range o.items {
		lineTotal, err := item.TotalPrice()
		if err != nil {
			return err
		}
		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return err
		}
	}

	afterDiscount, err := subtotal.Subtract(o.discount)
	if err != nil {
		return err
	}
	total, err := afterDiscount.Add(o.deliveryFee)
	if err != nil {
		return err
	}

	o.subtotal = subtotal
	o.total = total
	return nil
}

// TransitionTo moves the order to the given status. The target value must
// be a defined status; the move itself is not restricted, sanctioned
// workflows live in the order service. Confirmation and completion
// timestamps are stamped on the first transition into their status and
// never overwritten.
func (o *Order) TransitionTo(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	now := time.Now().UTC()
	if status == StatusConfirmed && o.confirmedAt == nil {
		o.confirmedAt = &now
	}
	if status == StatusCompleted && o.completedAt == nil {
		o.completedAt = &now
	}
	return nil
}

// Confirm moves the order to Confirmed and stamps the confirmation time.
func (o *Order) Confirm() error {
	return o.TransitionTo(StatusConfirmed)
}

// Cancel moves the order to Cancelled.
// Fails with errs.ErrNotCancellable once the kitchen started preparing.
func (o *Order) Cancel() error {
	if !o.status.IsCancellable() {
		return errs.NewNotCancellableError(o.status.String())
	}
	return o.TransitionTo(StatusCancelled)
}

// Complete moves the order to Completed and stamps the completion time.
func (o *Order) Complete() error {
	return o.TransitionTo(StatusCompleted)
}

// IsCancellable reports whether the order can still be cancelled.
func (o *Order) IsCancellable() bool {
	return o.status.IsCancellable()
}

// IsFinished reports whether the order reached a terminal status.
func (o *Order) IsFinished() bool {
	return o.status.IsFinal()
}

// String renders the order for logs. Implements fmt.Stringer.
func (o *Order) String() string {
	return fmt.Sprintf("Order{id=%s, customer=%s, status=%s, total=%s, items=%d}",
		o.id, o.customer.Name(), o.status, o.total, len(o.items))
}

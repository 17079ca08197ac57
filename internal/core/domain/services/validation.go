package services

import (
	"fmt"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/errs"
)

// ValidateOrder collects everything that would stop the order from being
// confirmed. An empty result means the order is good to go.
func ValidateOrder(o *order.Order) []string {
	if o == nil {
		return []string{"order cannot be nil"}
	}

	var violations []string
	if o.Customer() == nil {
		violations = append(violations, "order must have a customer")
	}
	if o.IsEmpty() {
		violations = append(violations, "order must have at least one item")
	}

	for _, item := range o.Items() {
		if !item.MenuItem().IsAvailable() {
			violations = append(violations,
				fmt.Sprintf("item %q is not available", item.MenuItem().Name()))
		}
		if item.Quantity() <= 0 {
			violations = append(violations,
				fmt.Sprintf("invalid quantity for item %q", item.MenuItem().Name()))
		}
	}

	if o.Total().IsZero() {
		violations = append(violations, "order total cannot be zero")
	}
	if tooBig, err := o.Discount().IsGreaterThan(o.Subtotal()); err == nil && tooBig {
		violations = append(violations, "discount cannot exceed subtotal")
	}

	return violations
}

// IsOrderValid reports whether the order passes validation.
func IsOrderValid(o *order.Order) bool {
	return len(ValidateOrder(o)) == 0
}

// CheckOrder returns a ValidationError listing all violations, nil when
// the order is valid.
func CheckOrder(o *order.Order) error {
	if violations := ValidateOrder(o); len(violations) > 0 {
		return errs.NewValidationError("order", violations)
	}
	return nil
}

// ValidatePayment collects everything that would stop the payment from
// being processed.
func ValidatePayment(p *payment.Payment) []string {
	if p == nil {
		return []string{"payment cannot be nil"}
	}

	var violations []string
	if p.Order() == nil {
		violations = append(violations, "payment must be associated with an order")
	}

	if p.Method() == nil {
		violations = append(violations, "payment method cannot be nil")
	} else if !p.Method().IsValid() {
		violations = append(violations, "payment method is not valid")
	}

	if p.Amount().IsZero() {
		violations = append(violations, "payment amount must be positive")
	}
	if p.Order() != nil && !p.Amount().IsEqual(p.Order().Total()) {
		violations = append(violations, "payment amount must match order total")
	}

	return violations
}

// IsPaymentValid reports whether the payment passes validation.
func IsPaymentValid(p *payment.Payment) bool {
	return len(ValidatePayment(p)) == 0
}

// CheckPayment returns a ValidationError listing all violations, nil when
// the payment is valid.
func CheckPayment(p *payment.Payment) error {
	if violations := ValidatePayment(p); len(violations) > 0 {
		return errs.NewValidationError("payment", violations)
	}
	return nil
}

// ValidateDelivery collects everything that would stop the delivery from
// being dispatched.
func ValidateDelivery(d *delivery.Delivery) []string {
	if d == nil {
		return []string{"delivery cannot be nil"}
	}

	var violations []string
	if d.Order() == nil {
		violations = append(violations, "delivery must be associated with an order")
	}
	if err := d.DeliveryAddress().Validate(); err != nil {
		violations = append(violations, "delivery address is not valid")
	}
	if err := d.DeliveryFee().Validate(); err != nil {
		violations = append(violations, "delivery fee is not valid")
	}
	if d.EstimatedMinutes() <= 0 {
		violations = append(violations, "estimated delivery time must be positive")
	}
	if courier, ok := d.Courier(); ok && !courier.IsActive() {
		violations = append(violations, "assigned courier is not active")
	}

	return violations
}

// IsDeliveryValid reports whether the delivery passes validation.
func IsDeliveryValid(d *delivery.Delivery) bool {
	return len(ValidateDelivery(d)) == 0
}

// CheckDelivery returns a ValidationError listing all violations, nil when
// the delivery is valid.
func CheckDelivery(d *delivery.Delivery) error {
	if violations := ValidateDelivery(d); len(violations) > 0 {
		return errs.NewValidationError("delivery", violations)
	}
	return nil
}

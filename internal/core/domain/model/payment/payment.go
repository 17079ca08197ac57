package payment

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// Payment links an order to a payment method and tracks the money flow for
// it. The amount is fixed at creation time from the order's current total;
// an order can have several payments over its life (for example a failed
// card attempt followed by cash).
//
// Timestamps follow the status: processedAt is stamped when processing
// starts and completedAt when the payment reaches any final status, each
// only once.
type Payment struct {
	id            kernel.UUID
	order         *order.Order
	method        Method
	amount        kernel.Money
	status        Status
	createdAt     time.Time
	processedAt   *time.Time
	completedAt   *time.Time
	transactionID string
	errorMessage  string
	notes         string
}

// NewPayment creates a pending payment for the order's current total.
// The order must have a positive total and the method must be valid.
func NewPayment(o *order.Order, method Method) (*Payment, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}
	if method == nil {
		return nil, errs.NewValueIsRequiredError("method")
	}
	if o.Total().IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("amount must be positive"))
	}
	if !method.IsValid() {
		return nil, errs.NewValueIsInvalidErrorWithCause("method",
			errors.New("payment method is not valid"))
	}

	return &Payment{
		id:        kernel.NewUUID(),
		order:     o,
		method:    method,
		amount:    o.Total(),
		status:    StatusPending,
		createdAt: time.Now().UTC(),
	}, nil
}

// ID returns the unique identifier of the payment.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Order returns the order this payment pays for.
func (p *Payment) Order() *order.Order {
	return p.order
}

// Method returns the payment method.
func (p *Payment) Method() Method {
	return p.method
}

// Amount returns the amount charged, the order total at creation time.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Status returns the current payment status.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns when the payment was created.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// ProcessedAt returns when processing started.
// The second return value is false while processing never started.
func (p *Payment) ProcessedAt() (time.Time, bool) {
	if p.processedAt == nil {
		return time.Time{}, false
	}
	return *p.processedAt, true
}

// CompletedAt returns when the payment reached a final status.
// The second return value is false while the payment is not final.
func (p *Payment) CompletedAt() (time.Time, bool) {
	if p.completedAt == nil {
		return time.Time{}, false
	}
	return *p.completedAt, true
}

// TransactionID returns the reference issued by the payment backend,
// empty until the payment completes.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// ErrorMessage returns why the payment failed, empty otherwise.
func (p *Payment) ErrorMessage() string {
	return p.errorMessage
}

// Notes returns free-form notes, e.g. the change due on a cash payment.
func (p *Payment) Notes() string {
	return p.notes
}

// SetNotes replaces the payment notes.
func (p *Payment) SetNotes(notes string) {
	p.notes = notes
}

// StartProcessing moves the payment from Pending to Processing.
func (p *Payment) StartProcessing() error {
	if p.status != StatusPending {
		return errs.NewInvalidStateError("process payment", p.status.String())
	}
	p.setStatus(StatusProcessing)
	return nil
}

// Complete marks a processing payment as successful and records the
// transaction reference.
func (p *Payment) Complete(transactionID string) error {
	if p.status != StatusProcessing {
		return errs.NewInvalidStateError("complete payment", p.status.String())
	}
	p.transactionID = transactionID
	p.setStatus(StatusCompleted)
	return nil
}

// Fail marks the payment as failed with the given reason.
// Fails itself when the payment already reached a final status.
func (p *Payment) Fail(errorMessage string) error {
	if p.status.IsFinal() {
		return errs.NewInvalidStateError("fail payment", p.status.String())
	}
	p.errorMessage = errorMessage
	p.setStatus(StatusFailed)
	return nil
}

// Refund returns a completed payment.
func (p *Payment) Refund() error {
	if p.status != StatusCompleted {
		return errs.NewInvalidStateError("refund payment", p.status.String())
	}
	p.setStatus(StatusRefunded)
	return nil
}

// Cancel abandons a payment that has not reached a final status yet.
func (p *Payment) Cancel() error {
	if p.status.IsFinal() {
		return errs.NewInvalidStateError("cancel payment", p.status.String())
	}
	p.setStatus(StatusCancelled)
	return nil
}

// IsCompleted reports whether the payment reached any final status,
// successful or not.
func (p *Payment) IsCompleted() bool {
	return p.status.IsFinal()
}

// IsSuccessful reports whether the payment went through.
func (p *Payment) IsSuccessful() bool {
	return p.status.IsSuccessful()
}

// IsRefundable reports whether the payment can be refunded.
func (p *Payment) IsRefundable() bool {
	return p.status == StatusCompleted
}

// String renders the payment for logs. Implements fmt.Stringer.
func (p *Payment) String() string {
	return fmt.Sprintf("Payment{id=%s, order=%s, amount=%s, method=%s, status=%s}",
		p.id, p.order.ID(), p.amount, p.method.Type(), p.status)
}

// setStatus changes the status and stamps timestamps on first entry.
func (p *Payment) setStatus(status Status) {
	p.status = status

	now := time.Now().UTC()
	if status == StatusProcessing && p.processedAt == nil {
		p.processedAt = &now
	}
	if status.IsFinal() && p.completedAt == nil {
		p.completedAt = &now
	}
}

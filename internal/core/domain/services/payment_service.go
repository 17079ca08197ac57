package services

import (
	"log/slog"
	"strings"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/errs"
)

// PaymentService owns the payment registry and routes each payment to the
// first registered strategy that can handle its method.
//
// PaymentService is safe for concurrent use.
type PaymentService struct {
	mu         sync.Mutex
	payments   map[kernel.UUID]*payment.Payment
	strategies []namedStrategy
	logger     *slog.Logger
}

type namedStrategy struct {
	name     string
	strategy PaymentStrategy
}

// NewPaymentService creates a payment service with no strategies. Register
// at least one strategy before processing payments.
func NewPaymentService(logger *slog.Logger) *PaymentService {
	return &PaymentService{
		payments: make(map[kernel.UUID]*payment.Payment),
		logger:   logger.With("component", "payment_service"),
	}
}

// RegisterStrategy adds a payment strategy under a name. Registering a
// second strategy under the same name replaces the first.
func (s *PaymentService) RegisterStrategy(name string, strategy PaymentStrategy) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if strategy == nil {
		return errs.NewValueIsRequiredError("strategy")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.strategies {
		if existing.name == name {
			s.strategies[i].strategy = strategy
			return nil
		}
	}
	s.strategies = append(s.strategies, namedStrategy{name: name, strategy: strategy})
	return nil
}

// CreatePayment opens a pending payment for the order's current total.
func (s *PaymentService) CreatePayment(o *order.Order, method payment.Method) (*payment.Payment, error) {
	p, err := payment.NewPayment(o, method)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.payments[p.ID()] = p
	s.mu.Unlock()
	return p, nil
}

// ProcessPayment validates the payment and runs it through the first
// strategy that can handle its method. Returns true when the payment
// completed. A payment no strategy can handle is marked failed and
// reported as false without an error.
func (s *PaymentService) ProcessPayment(paymentID kernel.UUID) (bool, error) {
	s.mu.Lock()
	p, err := s.find(paymentID)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	strategy, found := s.strategyFor(p.Method())
	s.mu.Unlock()

	if err = CheckPayment(p); err != nil {
		return false, err
	}

	if !found {
		if err = p.Fail("no suitable payment strategy found"); err != nil {
			return false, err
		}
		s.logger.Warn("no strategy for payment method",
			"payment_id", p.ID(),
			"method", p.Method().Type())
		return false, nil
	}

	return strategy.ProcessPayment(p)
}

// RefundPayment returns a completed payment to the customer.
func (s *PaymentService) RefundPayment(paymentID kernel.UUID) error {
	s.mu.Lock()
	p, err := s.find(paymentID)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if err = p.Refund(); err != nil {
		return err
	}
	s.logger.Info("payment refunded",
		"payment_id", p.ID(),
		"amount", p.Amount().String())
	return nil
}

// FindPayment returns a registered payment by id.
func (s *PaymentService) FindPayment(paymentID kernel.UUID) (*payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(paymentID)
}

// FindPaymentByOrder returns the most recent payment created for the order.
func (s *PaymentService) FindPaymentByOrder(o *order.Order) (*payment.Payment, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *payment.Payment
	for _, p := range s.payments {
		if !p.Order().ID().IsEqual(o.ID()) {
			continue
		}
		if latest == nil || p.CreatedAt().After(latest.CreatedAt()) {
			latest = p
		}
	}
	if latest == nil {
		return nil, errs.NewObjectNotFoundError("orderID", o.ID())
	}
	return latest, nil
}

// SuccessfulPayments returns all payments that went through.
func (s *PaymentService) SuccessfulPayments() []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*payment.Payment
	for _, p := range s.payments {
		if p.IsSuccessful() {
			result = append(result, p)
		}
	}
	return result
}

// AllPayments returns every registered payment.
func (s *PaymentService) AllPayments() []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*payment.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		result = append(result, p)
	}
	return result
}

// strategyFor returns the first registered strategy that can process the
// method, in registration order.
func (s *PaymentService) strategyFor(method payment.Method) (PaymentStrategy, bool) {
	for _, candidate := range s.strategies {
		if candidate.strategy.CanProcess(method) {
			return candidate.strategy, true
		}
	}
	return nil, false
}

func (s *PaymentService) find(paymentID kernel.UUID) (*payment.Payment, error) {
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("paymentID", paymentID)
	}
	return p, nil
}

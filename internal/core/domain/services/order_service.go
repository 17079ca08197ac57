package services

import (
	"log/slog"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/pkg/errs"
)

// OrderService owns the order registry and drives orders through their
// lifecycle: creation, discounting, confirmation, cancellation and
// completion. Every lifecycle change goes out through the notifier.
//
// OrderService is safe for concurrent use; individual orders are still
// mutated under the service's lock only.
type OrderService struct {
	mu       sync.Mutex
	orders   map[kernel.UUID]*order.Order
	notifier *OrderNotifier
	currency string
	logger   *slog.Logger
}

// NewOrderService creates an order service that prices orders in the given
// currency and publishes events through the notifier.
func NewOrderService(notifier *OrderNotifier, currency string, logger *slog.Logger) (*OrderService, error) {
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}

	return &OrderService{
		orders:   make(map[kernel.UUID]*order.Order),
		notifier: notifier,
		currency: currency,
		logger:   logger.With("component", "order_service"),
	}, nil
}

// Notifier returns the notifier so callers can register observers.
func (s *OrderService) Notifier() *OrderNotifier {
	return s.notifier
}

// CreateOrder opens a draft order for the customer and announces it.
func (s *OrderService) CreateOrder(customer *user.Customer) (*order.Order, error) {
	o, err := order.NewOrder(customer, s.currency)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders[o.ID()] = o
	s.mu.Unlock()

	s.notifier.NotifyOrderCreated(o)
	return o, nil
}

// AddItem adds a menu item to a registered order.
func (s *OrderService) AddItem(orderID kernel.UUID, menuItem menu.Item, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.find(orderID)
	if err != nil {
		return err
	}
	return o.AddItem(menuItem, quantity)
}

// ApplyDiscount runs the strategy against the order and applies whatever
// discount it yields. A strategy that does not apply leaves the order
// untouched.
func (s *OrderService) ApplyDiscount(orderID kernel.UUID, strategy DiscountStrategy) error {
	if strategy == nil {
		return errs.NewValueIsRequiredError("strategy")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.find(orderID)
	if err != nil {
		return err
	}

	applicable, err := strategy.IsApplicable(o)
	if err != nil {
		return err
	}
	if !applicable {
		return nil
	}

	discount, err := strategy.CalculateDiscount(o)
	if err != nil {
		return err
	}
	if err = o.SetDiscount(discount); err != nil {
		return err
	}

	s.logger.Info("discount applied",
		"order_id", o.ID(),
		"discount", discount.String(),
		"strategy", strategy.Description())
	return nil
}

// ConfirmOrder validates the order and moves it to Confirmed.
func (s *OrderService) ConfirmOrder(orderID kernel.UUID) error {
	s.mu.Lock()
	o, err := s.find(orderID)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	if err = CheckOrder(o); err != nil {
		s.mu.Unlock()
		return err
	}
	if err = o.Confirm(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notifier.NotifyOrderStatusChanged(o)
	return nil
}

// CancelOrder cancels the order if its status still allows it.
func (s *OrderService) CancelOrder(orderID kernel.UUID) error {
	s.mu.Lock()
	o, err := s.find(orderID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err = o.Cancel(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notifier.NotifyOrderCancelled(o)
	return nil
}

// CompleteOrder finishes the order and counts it towards the customer's
// order history.
func (s *OrderService) CompleteOrder(orderID kernel.UUID) error {
	s.mu.Lock()
	o, err := s.find(orderID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err = o.Complete(); err != nil {
		s.mu.Unlock()
		return err
	}
	o.Customer().IncrementTotalOrders()
	s.mu.Unlock()

	s.notifier.NotifyOrderCompleted(o)
	return nil
}

// UpdateStatus moves the order to the given status and announces the
// change.
func (s *OrderService) UpdateStatus(orderID kernel.UUID, status order.Status) error {
	s.mu.Lock()
	o, err := s.find(orderID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err = o.TransitionTo(status); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notifier.NotifyOrderStatusChanged(o)
	return nil
}

// FindOrder returns a registered order by id.
func (s *OrderService) FindOrder(orderID kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(orderID)
}

// FindOrdersByCustomer returns all orders belonging to the customer.
func (s *OrderService) FindOrdersByCustomer(customer *user.Customer) []*order.Order {
	if customer == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*order.Order
	for _, o := range s.orders {
		if o.Customer().ID().IsEqual(customer.ID()) {
			result = append(result, o)
		}
	}
	return result
}

// FindOrdersByStatus returns all orders currently in the given status.
func (s *OrderService) FindOrdersByStatus(status order.Status) []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*order.Order
	for _, o := range s.orders {
		if o.Status() == status {
			result = append(result, o)
		}
	}
	return result
}

// AllOrders returns every registered order.
func (s *OrderService) AllOrders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, o)
	}
	return result
}

func (s *OrderService) find(orderID kernel.UUID) (*order.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	return o, nil
}

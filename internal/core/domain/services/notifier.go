package services

import (
	"log/slog"
	"sync"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// OrderObserver receives order lifecycle events. Implementations must not
// assume they are the only observer and must tolerate being called from
// multiple goroutines.
type OrderObserver interface {
	OnOrderCreated(o *order.Order)
	OnOrderStatusChanged(o *order.Order)
	OnOrderCancelled(o *order.Order)
	OnOrderCompleted(o *order.Order)
}

// OrderNotifier fans order events out to registered observers. Registration
// is idempotent. A panicking observer is logged and skipped so one broken
// subscriber never blocks the others.
//
// OrderNotifier is safe for concurrent use.
type OrderNotifier struct {
	mu        sync.RWMutex
	observers []OrderObserver
	logger    *slog.Logger
}

// NewOrderNotifier creates a notifier with no observers.
func NewOrderNotifier(logger *slog.Logger) *OrderNotifier {
	return &OrderNotifier{
		logger: logger.With("component", "order_notifier"),
	}
}

// AddObserver registers an observer. Registering the same observer twice
// keeps a single registration.
func (n *OrderNotifier) AddObserver(observer OrderObserver) error {
	if observer == nil {
		return errs.NewValueIsRequiredError("observer")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, existing := range n.observers {
		if existing == observer {
			return nil
		}
	}
	n.observers = append(n.observers, observer)
	return nil
}

// RemoveObserver unregisters an observer. Removing an unknown observer is
// a no-op.
func (n *OrderNotifier) RemoveObserver(observer OrderObserver) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, existing := range n.observers {
		if existing == observer {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// ClearObservers unregisters all observers.
func (n *OrderNotifier) ClearObservers() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = nil
}

// ObserverCount returns how many observers are registered.
func (n *OrderNotifier) ObserverCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.observers)
}

// NotifyOrderCreated tells all observers a new order exists.
func (n *OrderNotifier) NotifyOrderCreated(o *order.Order) {
	n.notify(o, "order created", func(observer OrderObserver) {
		observer.OnOrderCreated(o)
	})
}

// NotifyOrderStatusChanged tells all observers the order changed status.
func (n *OrderNotifier) NotifyOrderStatusChanged(o *order.Order) {
	n.notify(o, "order status changed", func(observer OrderObserver) {
		observer.OnOrderStatusChanged(o)
	})
}

// NotifyOrderCancelled tells all observers the order was cancelled.
func (n *OrderNotifier) NotifyOrderCancelled(o *order.Order) {
	n.notify(o, "order cancelled", func(observer OrderObserver) {
		observer.OnOrderCancelled(o)
	})
}

// NotifyOrderCompleted tells all observers the order was completed.
func (n *OrderNotifier) NotifyOrderCompleted(o *order.Order) {
	n.notify(o, "order completed", func(observer OrderObserver) {
		observer.OnOrderCompleted(o)
	})
}

// notify calls fn for every observer registered at call time, recovering
// from observer panics so the remaining observers still get the event.
func (n *OrderNotifier) notify(o *order.Order, event string, fn func(OrderObserver)) {
	if o == nil {
		return
	}

	n.mu.RLock()
	observers := make([]OrderObserver, len(n.observers))
	copy(observers, n.observers)
	n.mu.RUnlock()

	for _, observer := range observers {
		n.safeNotify(observer, o, event, fn)
	}
}

func (n *OrderNotifier) safeNotify(observer OrderObserver, o *order.Order, event string, fn func(OrderObserver)) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("observer panicked",
				"event", event,
				"order_id", o.ID(),
				"panic", r)
		}
	}()
	fn(observer)
}

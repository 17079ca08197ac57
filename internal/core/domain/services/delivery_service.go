package services

import (
	"fmt"
	"log/slog"
	"sync"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/pkg/errs"
)

// DeliveryService owns the delivery and route registries and coordinates
// couriers: assigning keeps the delivery's status and the courier's
// workload counter in step.
//
// DeliveryService is safe for concurrent use.
type DeliveryService struct {
	mu          sync.Mutex
	deliveries  map[kernel.UUID]*delivery.Delivery
	routes      map[kernel.UUID]*delivery.Route
	standardFee kernel.Money
	logger      *slog.Logger
}

// NewDeliveryService creates a delivery service that charges the given
// standard fee for deliveries created without an explicit one.
func NewDeliveryService(standardFee kernel.Money, logger *slog.Logger) (*DeliveryService, error) {
	if err := standardFee.Validate(); err != nil {
		return nil, err
	}

	return &DeliveryService{
		deliveries:  make(map[kernel.UUID]*delivery.Delivery),
		routes:      make(map[kernel.UUID]*delivery.Route),
		standardFee: standardFee,
		logger:      logger.With("component", "delivery_service"),
	}, nil
}

// StandardFee returns the fee charged by default.
func (s *DeliveryService) StandardFee() kernel.Money {
	return s.standardFee
}

// CreateDelivery opens a pending delivery for the order at the standard fee.
func (s *DeliveryService) CreateDelivery(o *order.Order, address kernel.Address) (*delivery.Delivery, error) {
	return s.CreateDeliveryWithFee(o, address, s.standardFee)
}

// CreateDeliveryWithFee opens a pending delivery with a custom fee.
func (s *DeliveryService) CreateDeliveryWithFee(o *order.Order, address kernel.Address, fee kernel.Money) (*delivery.Delivery, error) {
	d, err := delivery.NewDelivery(o, address, fee)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.deliveries[d.ID()] = d
	s.mu.Unlock()

	s.logger.Info("delivery created",
		"delivery_id", d.ID(),
		"order_id", o.ID(),
		"tracking", d.TrackingCode())
	return d, nil
}

// AssignCourier validates the delivery, assigns the courier and charges
// the delivery against the courier's workload counter.
func (s *DeliveryService) AssignCourier(deliveryID kernel.UUID, courier *user.Courier) error {
	if courier == nil {
		return errs.NewValueIsRequiredError("courier")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.findDelivery(deliveryID)
	if err != nil {
		return err
	}
	if err = CheckDelivery(d); err != nil {
		return err
	}

	if err = courier.AcceptDelivery(d.ID()); err != nil {
		return err
	}
	if err = d.AssignCourier(courier); err != nil {
		// release the slot taken above
		_ = courier.CompleteDelivery(d.ID())
		return err
	}

	s.logger.Info("courier assigned",
		"delivery_id", d.ID(),
		"courier", courier.Name())
	return nil
}

// UpdateStatus moves the delivery to the given status.
func (s *DeliveryService) UpdateStatus(deliveryID kernel.UUID, status delivery.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.findDelivery(deliveryID)
	if err != nil {
		return err
	}
	return d.TransitionTo(status)
}

// MarkDelivered finishes the delivery successfully and releases the
// courier's workload slot.
func (s *DeliveryService) MarkDelivered(deliveryID kernel.UUID) error {
	return s.finish(deliveryID, delivery.StatusDelivered, "")
}

// MarkFailed finishes the delivery unsuccessfully, records the reason in
// the notes and releases the courier's workload slot.
func (s *DeliveryService) MarkFailed(deliveryID kernel.UUID, reason string) error {
	return s.finish(deliveryID, delivery.StatusFailed, reason)
}

func (s *DeliveryService) finish(deliveryID kernel.UUID, status delivery.Status, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.findDelivery(deliveryID)
	if err != nil {
		return err
	}
	if err = d.TransitionTo(status); err != nil {
		return err
	}
	if reason != "" {
		d.SetNotes(fmt.Sprintf("Failed: %s", reason))
	}

	if courier, ok := d.Courier(); ok {
		if err = courier.CompleteDelivery(d.ID()); err != nil {
			return err
		}
	}

	s.logger.Info("delivery finished",
		"delivery_id", d.ID(),
		"status", status.String())
	return nil
}

// CreateRoute opens an empty route starting at the given location.
func (s *DeliveryService) CreateRoute(start kernel.Location) (*delivery.Route, error) {
	route, err := delivery.NewRoute(start)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.routes[route.ID()] = route
	s.mu.Unlock()
	return route, nil
}

// AddDeliveryToRoute puts a registered delivery on a registered route.
func (s *DeliveryService) AddDeliveryToRoute(routeID, deliveryID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	route, ok := s.routes[routeID]
	if !ok {
		return errs.NewObjectNotFoundError("routeID", routeID)
	}
	d, err := s.findDelivery(deliveryID)
	if err != nil {
		return err
	}
	return route.AddDelivery(d)
}

// FindDelivery returns a registered delivery by id.
func (s *DeliveryService) FindDelivery(deliveryID kernel.UUID) (*delivery.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findDelivery(deliveryID)
}

// FindDeliveryByTrackingCode returns the delivery with the given tracking
// code. This is the lookup behind customer-facing order tracking.
func (s *DeliveryService) FindDeliveryByTrackingCode(trackingCode string) (*delivery.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.deliveries {
		if d.TrackingCode() == trackingCode {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("trackingCode", trackingCode)
}

// FindDeliveryByOrder returns the delivery created for the order.
func (s *DeliveryService) FindDeliveryByOrder(o *order.Order) (*delivery.Delivery, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.deliveries {
		if d.Order().ID().IsEqual(o.ID()) {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderID", o.ID())
}

// FindDeliveriesByCourier returns all deliveries assigned to the courier.
func (s *DeliveryService) FindDeliveriesByCourier(courier *user.Courier) []*delivery.Delivery {
	if courier == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*delivery.Delivery
	for _, d := range s.deliveries {
		if assigned, ok := d.Courier(); ok && assigned.ID().IsEqual(courier.ID()) {
			result = append(result, d)
		}
	}
	return result
}

// FindDeliveriesByStatus returns all deliveries currently in the given
// status.
func (s *DeliveryService) FindDeliveriesByStatus(status delivery.Status) []*delivery.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*delivery.Delivery
	for _, d := range s.deliveries {
		if d.Status() == status {
			result = append(result, d)
		}
	}
	return result
}

// PendingDeliveries returns all deliveries waiting for a courier.
func (s *DeliveryService) PendingDeliveries() []*delivery.Delivery {
	return s.FindDeliveriesByStatus(delivery.StatusPending)
}

// AllDeliveries returns every registered delivery.
func (s *DeliveryService) AllDeliveries() []*delivery.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*delivery.Delivery, 0, len(s.deliveries))
	for _, d := range s.deliveries {
		result = append(result, d)
	}
	return result
}

// AllRoutes returns every registered route.
func (s *DeliveryService) AllRoutes() []*delivery.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*delivery.Route, 0, len(s.routes))
	for _, route := range s.routes {
		result = append(result, route)
	}
	return result
}

func (s *DeliveryService) findDelivery(deliveryID kernel.UUID) (*delivery.Delivery, error) {
	d, ok := s.deliveries[deliveryID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryID", deliveryID)
	}
	return d, nil
}

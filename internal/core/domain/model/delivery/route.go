package delivery

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Route groups several deliveries into one courier trip starting at the
// restaurant. Distance and time are set by whoever plans the route; any
// change to the delivery list drops the optimized flag so the plan gets
// recalculated.
//
// Route is not safe for concurrent use; the caller serializes access.
type Route struct {
	id                 kernel.UUID
	startLocation      kernel.Location
	currentLocation    kernel.Location
	deliveries         []*Delivery
	totalDistanceM     int
	estimatedTotalTime int
	optimized          bool
}

// NewRoute creates an empty route starting at the given location.
func NewRoute(startLocation kernel.Location) (*Route, error) {
	if err := startLocation.Validate(); err != nil {
		return nil, err
	}

	return &Route{
		id:              kernel.NewUUID(),
		startLocation:   startLocation,
		currentLocation: startLocation,
	}, nil
}

// ID returns the unique identifier of the route.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// StartLocation returns where the route begins, normally the restaurant.
func (r *Route) StartLocation() kernel.Location {
	return r.startLocation
}

// CurrentLocation returns the courier's position along the route.
func (r *Route) CurrentLocation() kernel.Location {
	return r.currentLocation
}

// SetCurrentLocation updates the courier's position along the route.
func (r *Route) SetCurrentLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.currentLocation = location
	return nil
}

// Deliveries returns a copy of the deliveries on the route.
func (r *Route) Deliveries() []*Delivery {
	deliveries := make([]*Delivery, len(r.deliveries))
	copy(deliveries, r.deliveries)
	return deliveries
}

// TotalDistance returns the planned route length in meters.
func (r *Route) TotalDistance() int {
	return r.totalDistanceM
}

// SetTotalDistance records the planned route length in meters.
func (r *Route) SetTotalDistance(meters int) error {
	if meters < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalDistance",
			fmt.Errorf("%d is negative", meters))
	}
	r.totalDistanceM = meters
	return nil
}

// EstimatedTotalTime returns the planned route duration in minutes.
func (r *Route) EstimatedTotalTime() int {
	return r.estimatedTotalTime
}

// SetEstimatedTotalTime records the planned route duration in minutes.
func (r *Route) SetEstimatedTotalTime(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedTotalTime",
			fmt.Errorf("%d is negative", minutes))
	}
	r.estimatedTotalTime = minutes
	return nil
}

// IsOptimized reports whether the current plan matches the delivery list.
func (r *Route) IsOptimized() bool {
	return r.optimized
}

// SetOptimized marks the route as planned for its current delivery list.
func (r *Route) SetOptimized(optimized bool) {
	r.optimized = optimized
}

// AddDelivery appends a delivery to the route and drops the optimized
// flag. Fails when the delivery is already on the route.
func (r *Route) AddDelivery(delivery *Delivery) error {
	if delivery == nil {
		return errs.NewValueIsRequiredError("delivery")
	}
	for _, existing := range r.deliveries {
		if existing.ID().IsEqual(delivery.ID()) {
			return errs.NewInvalidStateError("add delivery", "already in route")
		}
	}

	r.deliveries = append(r.deliveries, delivery)
	r.optimized = false
	return nil
}

// RemoveDelivery takes a delivery off the route and drops the optimized
// flag. Removing a delivery that is not on the route is a no-op.
func (r *Route) RemoveDelivery(deliveryID kernel.UUID) {
	for i, existing := range r.deliveries {
		if existing.ID().IsEqual(deliveryID) {
			r.deliveries = append(r.deliveries[:i], r.deliveries[i+1:]...)
			break
		}
	}
	r.optimized = false
}

// ClearDeliveries empties the route and resets distance and time.
func (r *Route) ClearDeliveries() {
	r.deliveries = nil
	r.totalDistanceM = 0
	r.estimatedTotalTime = 0
	r.optimized = false
}

// IsEmpty reports whether the route has no deliveries.
func (r *Route) IsEmpty() bool {
	return len(r.deliveries) == 0
}

// DeliveryCount returns how many deliveries are on the route.
func (r *Route) DeliveryCount() int {
	return len(r.deliveries)
}

// NextDelivery returns the first delivery that has not reached a final
// status. The second return value is false when all are done or the
// route is empty.
func (r *Route) NextDelivery() (*Delivery, bool) {
	for _, delivery := range r.deliveries {
		if !delivery.IsCompleted() {
			return delivery, true
		}
	}
	return nil, false
}

// IsCompleted reports whether the route has deliveries and all of them
// reached a final status. An empty route is not completed.
func (r *Route) IsCompleted() bool {
	if len(r.deliveries) == 0 {
		return false
	}
	for _, delivery := range r.deliveries {
		if !delivery.IsCompleted() {
			return false
		}
	}
	return true
}

// CompletedCount returns how many deliveries reached a final status.
func (r *Route) CompletedCount() int {
	count := 0
	for _, delivery := range r.deliveries {
		if delivery.IsCompleted() {
			count++
		}
	}
	return count
}

// Progress returns the completed share of the route between 0.0 and 1.0.
// An empty route has progress 0.0.
func (r *Route) Progress() float64 {
	if len(r.deliveries) == 0 {
		return 0.0
	}
	return float64(r.CompletedCount()) / float64(len(r.deliveries))
}

// String renders the route for logs. Implements fmt.Stringer.
func (r *Route) String() string {
	return fmt.Sprintf("DeliveryRoute{id=%s, deliveries=%d, completed=%d/%d, distance=%dm, time=%dmin}",
		r.id, len(r.deliveries), r.CompletedCount(), len(r.deliveries),
		r.totalDistanceM, r.estimatedTotalTime)
}

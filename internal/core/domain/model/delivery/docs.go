// Package delivery models the last mile: the Delivery aggregate that ties
// an order and its courier to a status flow with automatic timestamps and
// a customer-facing tracking code, and the Route that groups several
// deliveries into one courier trip.
//
// A delivery only holds state; deciding which courier takes which delivery
// and updating courier workload counters is the job of the services layer.
package delivery

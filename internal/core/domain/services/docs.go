// Package services holds the domain services that coordinate aggregates:
//
//   - OrderService, PaymentService and DeliveryService keep in-memory
//     registries and drive the lifecycle of their aggregates.
//   - DiscountStrategy and PaymentStrategy implementations make pricing
//     campaigns and payment handling pluggable.
//   - OrderNotifier fans order events out to OrderObserver implementations
//     (logging, email, SMS).
//   - The Validate*/Check* functions gate lifecycle transitions on the
//     rules a single aggregate cannot check alone.
//
// Services mutate aggregates under their own locks; aggregates themselves
// stay single-threaded.
package services

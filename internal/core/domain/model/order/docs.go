// Package order provides domain entities and business logic for order
// management in the pizzeria. It implements the Order aggregate root with
// derived pricing, lifecycle management and state checks.
//
// The package includes:
//   - Order: The aggregate root that manages order lines, totals and lifecycle
//   - Item: One order line, referencing a live menu item with a quantity
//   - Status: The order lifecycle state with editability and cancellability rules
//
// Key business rules:
//   - Order composition can only change while the order is a Draft
//   - Totals are always recomputed from live menu prices, never cached per line
//   - Orders are cancellable until the kitchen starts preparing
//   - Confirmation and completion timestamps are stamped once and kept
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

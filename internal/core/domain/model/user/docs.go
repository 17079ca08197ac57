// Package user models the people of the pizzeria: customers with their
// address books and loyalty balances, couriers with delivery capacity and
// grid positions, and cooks with kitchen capacity.
//
// Couriers and cooks expose explicit capacity counters. Acceptance is a
// check-then-increment operation and the caller is responsible for
// serializing access to a given courier or cook.
package user

package services

import (
	"fmt"
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
)

// MessageSender delivers a notification text to a recipient. The default
// implementations only log; a real deployment would plug in an email or
// SMS provider here.
type MessageSender func(recipient, subject, body string)

// LoggingObserver writes every order event to the structured log.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates an observer that logs order events.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{
		logger: logger.With("component", "order_log"),
	}
}

// OnOrderCreated implements OrderObserver.
func (l *LoggingObserver) OnOrderCreated(o *order.Order) {
	l.logger.Info("order created",
		"order_id", o.ID(),
		"customer", o.Customer().Name(),
		"items", o.ItemCount(),
		"total", o.Total().String())
}

// OnOrderStatusChanged implements OrderObserver.
func (l *LoggingObserver) OnOrderStatusChanged(o *order.Order) {
	l.logger.Info("order status changed",
		"order_id", o.ID(),
		"status", o.Status().String())
}

// OnOrderCancelled implements OrderObserver.
func (l *LoggingObserver) OnOrderCancelled(o *order.Order) {
	l.logger.Info("order cancelled",
		"order_id", o.ID(),
		"customer", o.Customer().Name())
}

// OnOrderCompleted implements OrderObserver.
func (l *LoggingObserver) OnOrderCompleted(o *order.Order) {
	l.logger.Info("order completed",
		"order_id", o.ID(),
		"customer", o.Customer().Name(),
		"total", o.Total().String())
}

// EmailObserver sends order notifications to the customer's email address.
type EmailObserver struct {
	send MessageSender
}

// NewEmailObserver creates an observer that notifies customers by email
// through the given sender.
func NewEmailObserver(send MessageSender) *EmailObserver {
	return &EmailObserver{send: send}
}

// OnOrderCreated implements OrderObserver.
func (e *EmailObserver) OnOrderCreated(o *order.Order) {
	e.send(o.Customer().Email().Address(), "Order Confirmation",
		fmt.Sprintf("Your order #%s has been created. Total: %s", shortID(o), o.Total()))
}

// OnOrderStatusChanged implements OrderObserver.
func (e *EmailObserver) OnOrderStatusChanged(o *order.Order) {
	e.send(o.Customer().Email().Address(), "Order Status Update",
		fmt.Sprintf("Order #%s status changed to: %s", shortID(o), o.Status()))
}

// OnOrderCancelled implements OrderObserver.
func (e *EmailObserver) OnOrderCancelled(o *order.Order) {
	e.send(o.Customer().Email().Address(), "Order Cancelled",
		fmt.Sprintf("Order #%s has been cancelled.", shortID(o)))
}

// OnOrderCompleted implements OrderObserver.
func (e *EmailObserver) OnOrderCompleted(o *order.Order) {
	e.send(o.Customer().Email().Address(), "Order Completed",
		fmt.Sprintf("Order #%s has been completed. Thank you for your order!", shortID(o)))
}

// SMSObserver sends order notifications to the customer's phone. Status
// change texts are off by default to keep the message volume down; enable
// them with notifyEveryStatus.
type SMSObserver struct {
	send              MessageSender
	notifyEveryStatus bool
}

// NewSMSObserver creates an observer that notifies customers by SMS
// through the given sender.
func NewSMSObserver(send MessageSender, notifyEveryStatus bool) *SMSObserver {
	return &SMSObserver{
		send:              send,
		notifyEveryStatus: notifyEveryStatus,
	}
}

// OnOrderCreated implements OrderObserver.
func (s *SMSObserver) OnOrderCreated(o *order.Order) {
	s.send(o.Customer().Phone().Number(), "",
		fmt.Sprintf("Order #%s created. Total: %s", shortID(o), o.Total()))
}

// OnOrderStatusChanged implements OrderObserver. Silent unless the
// observer was created with notifyEveryStatus.
func (s *SMSObserver) OnOrderStatusChanged(o *order.Order) {
	if !s.notifyEveryStatus {
		return
	}
	s.send(o.Customer().Phone().Number(), "",
		fmt.Sprintf("Order #%s: %s", shortID(o), o.Status()))
}

// OnOrderCancelled implements OrderObserver.
func (s *SMSObserver) OnOrderCancelled(o *order.Order) {
	s.send(o.Customer().Phone().Number(), "",
		fmt.Sprintf("Order #%s cancelled", shortID(o)))
}

// OnOrderCompleted implements OrderObserver.
func (s *SMSObserver) OnOrderCompleted(o *order.Order) {
	s.send(o.Customer().Phone().Number(), "",
		fmt.Sprintf("Order #%s completed. Enjoy!", shortID(o)))
}

// shortID returns the first 8 characters of the order id for customer
// facing messages.
func shortID(o *order.Order) string {
	id := o.ID().String()
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package cmd

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/services"
)

// CompositionRoot wires the domain services together from a Config. All
// state lives in memory; the root is created once at startup and handed
// to whatever frontend drives the application.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	recipeBook *menu.RecipeBook
	notifier   *services.OrderNotifier
	orders     *services.OrderService
	payments   *services.PaymentService
	deliveries *services.DeliveryService
}

// NewCompositionRoot builds the full service graph. The notifier comes
// pre-wired with the logging, email and SMS observers; payment strategies
// for cash and card are registered.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	recipeBook, err := menu.NewRecipeBook(config.Currency)
	if err != nil {
		return nil, err
	}

	notifier := services.NewOrderNotifier(logger)
	if err = notifier.AddObserver(services.NewLoggingObserver(logger)); err != nil {
		return nil, err
	}
	if err = notifier.AddObserver(services.NewEmailObserver(logSender(logger, "email"))); err != nil {
		return nil, err
	}
	if err = notifier.AddObserver(services.NewSMSObserver(logSender(logger, "sms"), config.SMSForEveryStatus)); err != nil {
		return nil, err
	}

	orders, err := services.NewOrderService(notifier, config.Currency, logger)
	if err != nil {
		return nil, err
	}

	payments := services.NewPaymentService(logger)
	if err = payments.RegisterStrategy("cash", services.NewCashStrategy(logger)); err != nil {
		return nil, err
	}
	cardFee, err := decimal.NewFromString(config.CardFeePercent)
	if err != nil {
		return nil, err
	}
	cardStrategy, err := services.NewCreditCardStrategy(cardFee, logger)
	if err != nil {
		return nil, err
	}
	if err = payments.RegisterStrategy("card", cardStrategy); err != nil {
		return nil, err
	}

	standardFee, err := kernel.MoneyFromString(config.StandardDeliveryFee, config.Currency)
	if err != nil {
		return nil, err
	}
	deliveries, err := services.NewDeliveryService(standardFee, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		recipeBook: recipeBook,
		notifier:   notifier,
		orders:     orders,
		payments:   payments,
		deliveries: deliveries,
	}, nil
}

// RecipeBook returns the menu's recipe book.
func (c *CompositionRoot) RecipeBook() *menu.RecipeBook {
	return c.recipeBook
}

// Notifier returns the order notifier.
func (c *CompositionRoot) Notifier() *services.OrderNotifier {
	return c.notifier
}

// OrderService returns the order service.
func (c *CompositionRoot) OrderService() *services.OrderService {
	return c.orders
}

// PaymentService returns the payment service.
func (c *CompositionRoot) PaymentService() *services.PaymentService {
	return c.payments
}

// DeliveryService returns the delivery service.
func (c *CompositionRoot) DeliveryService() *services.DeliveryService {
	return c.deliveries
}

// logSender stands in for real email/SMS providers: notifications end up
// in the structured log.
func logSender(logger *slog.Logger, channel string) services.MessageSender {
	sender := logger.With("channel", channel)
	return func(recipient, subject, body string) {
		sender.Info("notification sent",
			"recipient", recipient,
			"subject", subject,
			"body", body)
	}
}

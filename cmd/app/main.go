package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"pizzeria/cmd"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/core/domain/services"
)

func main() {
	config := getConfig()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("failed to build composition root: %v", err)
	}

	if err = runDemo(root, config); err != nil {
		log.Fatalf("demo workflow failed: %v", err)
	}
}

func getConfig() cmd.Config {
	// .env is optional; the defaults work out of the box
	_ = godotenv.Load(".env")

	return cmd.Config{
		Currency:            envOrDefault("CURRENCY", "USD"),
		StandardDeliveryFee: envOrDefault("STANDARD_DELIVERY_FEE", "5.00"),
		CardFeePercent:      envOrDefault("CARD_FEE_PERCENT", "2.5"),
		SMSForEveryStatus:   os.Getenv("SMS_FOR_EVERY_STATUS") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// runDemo walks one order through the whole system: menu, discount,
// payment, kitchen and delivery.
func runDemo(root *cmd.CompositionRoot, config cmd.Config) error {
	customer, address, err := registerCustomer()
	if err != nil {
		return err
	}

	orders := root.OrderService()
	o, err := orders.CreateOrder(customer)
	if err != nil {
		return err
	}

	pizza, err := root.RecipeBook().CreatePizza(menu.PizzaTypePepperoni, menu.SizeLarge)
	if err != nil {
		return err
	}
	if err = orders.AddItem(o.ID(), pizza, 1); err != nil {
		return err
	}
	drinks, err := menu.StandardDrinks(config.Currency)
	if err != nil {
		return err
	}
	if err = orders.AddItem(o.ID(), drinks[0], 2); err != nil {
		return err
	}

	if err = orders.ApplyDiscount(o.ID(), services.NewDefaultFirstOrderDiscount()); err != nil {
		return err
	}

	if err = orders.ConfirmOrder(o.ID()); err != nil {
		return err
	}

	card, err := demoCard()
	if err != nil {
		return err
	}
	p, err := root.PaymentService().CreatePayment(o, card)
	if err != nil {
		return err
	}
	paid, err := root.PaymentService().ProcessPayment(p.ID())
	if err != nil {
		return err
	}
	if !paid {
		return orders.CancelOrder(o.ID())
	}
	if err = orders.UpdateStatus(o.ID(), order.StatusPaid); err != nil {
		return err
	}

	for _, status := range []order.Status{order.StatusPreparing, order.StatusReady} {
		if err = orders.UpdateStatus(o.ID(), status); err != nil {
			return err
		}
	}

	if err = deliverOrder(root, config, o, address); err != nil {
		return err
	}

	if err = orders.UpdateStatus(o.ID(), order.StatusDelivered); err != nil {
		return err
	}
	return orders.CompleteOrder(o.ID())
}

func deliverOrder(root *cmd.CompositionRoot, config cmd.Config, o *order.Order, address kernel.Address) error {
	deliveries := root.DeliveryService()

	d, err := deliveries.CreateDelivery(o, address)
	if err != nil {
		return err
	}

	courier, err := registerCourier(config.Currency)
	if err != nil {
		return err
	}
	if err = deliveries.AssignCourier(d.ID(), courier); err != nil {
		return err
	}

	if err = root.OrderService().UpdateStatus(o.ID(), order.StatusOutForDelivery); err != nil {
		return err
	}
	for _, status := range []delivery.Status{
		delivery.StatusPickedUp,
		delivery.StatusInTransit,
		delivery.StatusNearby,
		delivery.StatusArrived,
	} {
		if err = deliveries.UpdateStatus(d.ID(), status); err != nil {
			return err
		}
	}
	return deliveries.MarkDelivered(d.ID())
}

func registerCustomer() (*user.Customer, kernel.Address, error) {
	email, err := user.NewEmail("mario@example.com")
	if err != nil {
		return nil, kernel.Address{}, err
	}
	phone, err := user.NewPhone("+15550001234")
	if err != nil {
		return nil, kernel.Address{}, err
	}
	customer, err := user.NewCustomer("Mario Rossi", email, phone)
	if err != nil {
		return nil, kernel.Address{}, err
	}

	address, err := kernel.NewAddress("Main St", "42", "7", "Springfield", "12345", "ring twice")
	if err != nil {
		return nil, kernel.Address{}, err
	}
	if err = customer.AddDeliveryAddress(address); err != nil {
		return nil, kernel.Address{}, err
	}
	return customer, address, nil
}

func registerCourier(currency string) (*user.Courier, error) {
	email, err := user.NewEmail("luigi@example.com")
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone("+15550005678")
	if err != nil {
		return nil, err
	}
	salary, err := kernel.MoneyFromString("1800.00", currency)
	if err != nil {
		return nil, err
	}
	courier, err := user.NewCourier("Luigi Verdi", email, phone, salary, "Scooter")
	if err != nil {
		return nil, err
	}

	start, err := kernel.NewLocation(1, 1)
	if err != nil {
		return nil, err
	}
	if err = courier.UpdateLocation(start); err != nil {
		return nil, err
	}
	return courier, nil
}

func demoCard() (payment.CreditCard, error) {
	expiry := time.Now().AddDate(2, 0, 0)
	return payment.NewCreditCard("4111 1111 1111 1111", "Mario Rossi", expiry.Year(), expiry.Month(), "123")
}

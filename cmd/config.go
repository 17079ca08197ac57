package cmd

// Config carries the runtime settings of the pizzeria application, read
// from the environment by cmd/app.
type Config struct {
	// Currency is the ISO code all menu prices and orders use.
	Currency string

	// StandardDeliveryFee is the default fee for new deliveries, e.g. "5.00".
	StandardDeliveryFee string

	// CardFeePercent is the card processing fee percentage, e.g. "2.5".
	CardFeePercent string

	// SMSForEveryStatus enables SMS notifications on every status change
	// instead of only the major lifecycle events.
	SMSForEveryStatus bool
}

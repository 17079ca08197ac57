package payment

// Method is the contract every payment instrument implements. The payment
// strategies in the services layer pick a strategy by inspecting the
// concrete method type.
type Method interface {
	// Type returns the method discriminator, e.g. "CASH" or "CREDIT_CARD".
	Type() string

	// Description returns a human-readable description of the method.
	Description() string

	// IsValid reports whether the method can be used for a payment right
	// now. For a card this re-checks number, CVV and expiry.
	IsValid() bool

	// MaskedInfo renders the method for display without exposing
	// sensitive data.
	MaskedInfo() string
}

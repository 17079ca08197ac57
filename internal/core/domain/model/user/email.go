package user

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when attempting to use an improperly initialized Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

// Email is an immutable value object for an email address. The address is
// trimmed and lowercased on construction. Validation is intentionally light:
// an "@" followed by a dotted domain is required, nothing more.
type Email struct {
	address string
	guard   guard.ConstructorGuard
}

// NewEmail creates a validated Email.
func NewEmail(address string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(address))
	if trimmed == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	at := strings.Index(trimmed, "@")
	if at < 1 || !strings.Contains(trimmed[at:], ".") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("invalid email format: %s", address))
	}

	return Email{
		address: trimmed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Email was created through the constructor.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// Address returns the normalized email address.
func (e Email) Address() string {
	return e.address
}

// Domain returns the part after the "@".
func (e Email) Domain() string {
	return e.address[strings.Index(e.address, "@")+1:]
}

// IsEqual compares two emails by normalized address.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

// String returns the normalized address. Implements fmt.Stringer.
func (e Email) String() string {
	return e.address
}

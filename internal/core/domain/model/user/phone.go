package user

import (
	"fmt"
	"regexp"
	"strings"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrPhoneIsNotConstructed is returned when attempting to use an improperly initialized Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

// Phone is an immutable value object for a phone number. Spaces and dashes
// are stripped on construction; the remainder must be 10 to 15 digits with
// an optional leading "+".
type Phone struct {
	number string
	guard  guard.ConstructorGuard
}

// NewPhone creates a validated Phone.
func NewPhone(number string) (Phone, error) {
	if strings.TrimSpace(number) == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if !phonePattern.MatchString(cleaned) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("phone number must be 10 to 15 digits: %s", number))
	}

	return Phone{
		number: cleaned,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Phone was created through the constructor.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// Number returns the cleaned phone number.
func (p Phone) Number() string {
	return p.number
}

// IsEqual compares two phones by cleaned number.
func (p Phone) IsEqual(other Phone) bool {
	return p.number == other.number
}

// String returns the cleaned number. Implements fmt.Stringer.
func (p Phone) String() string {
	return p.number
}

package payment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"pizzeria/internal/pkg/errs"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	masterCardPattern = regexp.MustCompile(`^5[1-5]`)
	amexPattern       = regexp.MustCompile(`^3[47]`)
)

// CreditCard is an immutable payment method holding validated card data.
// The card number must be 13 to 19 digits and pass the Luhn check, the CVV
// 3 or 4 digits, and the expiry must not lie in the past. The brand is
// detected from the number prefix.
type CreditCard struct {
	cardNumber     string
	cardholderName string
	expiryYear     int
	expiryMonth    time.Month
	cvv            string
	cardType       string
}

// NewCreditCard creates a validated CreditCard. Spaces in the card number
// are stripped; the cardholder name is trimmed and uppercased.
func NewCreditCard(cardNumber, cardholderName string, expiryYear int, expiryMonth time.Month, cvv string) (CreditCard, error) {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	if !isValidCardNumber(cleaned) {
		return CreditCard{}, errs.NewValueIsInvalidErrorWithCause("cardNumber",
			errors.New("invalid card number"))
	}

	name := strings.ToUpper(strings.TrimSpace(cardholderName))
	if name == "" {
		return CreditCard{}, errs.NewValueIsRequiredError("cardholderName")
	}

	if isExpired(expiryYear, expiryMonth) {
		return CreditCard{}, errs.NewValueIsInvalidErrorWithCause("expiryDate",
			fmt.Errorf("card is expired: %04d-%02d", expiryYear, expiryMonth))
	}

	if !cvvPattern.MatchString(cvv) {
		return CreditCard{}, errs.NewValueIsInvalidErrorWithCause("cvv",
			errors.New("CVV must be 3 or 4 digits"))
	}

	return CreditCard{
		cardNumber:     cleaned,
		cardholderName: name,
		expiryYear:     expiryYear,
		expiryMonth:    expiryMonth,
		cvv:            cvv,
		cardType:       detectCardType(cleaned),
	}, nil
}

// CardholderName returns the uppercased cardholder name.
func (c CreditCard) CardholderName() string {
	return c.cardholderName
}

// ExpiryYear returns the expiry year.
func (c CreditCard) ExpiryYear() int {
	return c.expiryYear
}

// ExpiryMonth returns the expiry month.
func (c CreditCard) ExpiryMonth() time.Month {
	return c.expiryMonth
}

// CardType returns the detected brand, e.g. "VISA" or "MasterCard".
func (c CreditCard) CardType() string {
	return c.cardType
}

// LastFourDigits returns the last four digits of the card number.
func (c CreditCard) LastFourDigits() string {
	if len(c.cardNumber) >= 4 {
		return c.cardNumber[len(c.cardNumber)-4:]
	}
	return c.cardNumber
}

// Type returns "CREDIT_CARD".
func (c CreditCard) Type() string {
	return "CREDIT_CARD"
}

// Description returns e.g. "VISA ending in 1111".
func (c CreditCard) Description() string {
	return fmt.Sprintf("%s ending in %s", c.cardType, c.LastFourDigits())
}

// IsValid re-checks the number, CVV and expiry. A card that was valid at
// construction can become invalid once its expiry month passes.
func (c CreditCard) IsValid() bool {
	return !isExpired(c.expiryYear, c.expiryMonth) &&
		isValidCardNumber(c.cardNumber) &&
		cvvPattern.MatchString(c.cvv)
}

// MaskedInfo renders the card with all but the last four digits hidden.
func (c CreditCard) MaskedInfo() string {
	return fmt.Sprintf("%s **** **** **** %s (%s)",
		c.cardType, c.LastFourDigits(), c.cardholderName)
}

// IsEqual compares cards by number and expiry.
func (c CreditCard) IsEqual(other CreditCard) bool {
	return c.cardNumber == other.cardNumber &&
		c.expiryYear == other.expiryYear &&
		c.expiryMonth == other.expiryMonth
}

// String implements fmt.Stringer.
func (c CreditCard) String() string {
	return c.MaskedInfo()
}

func isExpired(year int, month time.Month) bool {
	now := time.Now()
	if year != now.Year() {
		return year < now.Year()
	}
	return month < now.Month()
}

func isValidCardNumber(number string) bool {
	return cardNumberPattern.MatchString(number) && luhnCheck(number)
}

// luhnCheck validates the card number checksum.
func luhnCheck(number string) bool {
	sum := 0
	alternate := false

	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if alternate {
			digit *= 2
			if digit > 9 {
				digit = digit%10 + 1
			}
		}
		sum += digit
		alternate = !alternate
	}

	return sum%10 == 0
}

func detectCardType(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "VISA"
	case masterCardPattern.MatchString(number):
		return "MasterCard"
	case amexPattern.MatchString(number):
		return "American Express"
	case strings.HasPrefix(number, "6"):
		return "Discover"
	default:
		return "Unknown"
	}
}

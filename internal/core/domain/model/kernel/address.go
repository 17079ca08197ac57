package kernel

import (
	"errors"
	"strings"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is an immutable value object representing a delivery address.
// Street, building and city are required; apartment, postal code and
// additional info (entrance, floor, intercom) are optional. The zero value
// is invalid; use NewAddress.
type Address struct { //nolint:recvcheck //using for validation
	street         string
	building       string
	apartment      string
	city           string
	postalCode     string
	additionalInfo string
	guard          guard.ConstructorGuard
}

// NewAddress creates a validated Address. Required fields are trimmed and
// must be non-empty; optional fields are trimmed and may be empty.
func NewAddress(street, building, apartment, city, postalCode, additionalInfo string) (Address, error) {
	addr := Address{
		apartment:      strings.TrimSpace(apartment),
		postalCode:     strings.TrimSpace(postalCode),
		additionalInfo: strings.TrimSpace(additionalInfo),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setBuilding(building),
		addr.setCity(city),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// NewSimpleAddress creates an Address from the three required fields only.
func NewSimpleAddress(street, building, city string) (Address, error) {
	return NewAddress(street, building, "", city, "", "")
}

// Validate checks that the Address was created through a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Building returns the building number.
func (a Address) Building() string {
	return a.building
}

// Apartment returns the apartment number, possibly empty.
func (a Address) Apartment() string {
	return a.apartment
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code, possibly empty.
func (a Address) PostalCode() string {
	return a.postalCode
}

// AdditionalInfo returns free-form directions such as entrance or intercom, possibly empty.
func (a Address) AdditionalInfo() string {
	return a.additionalInfo
}

// FullAddress renders the address as a single display line:
// "City, Street, Building[, apt. N][, PostalCode]".
func (a Address) FullAddress() string {
	var sb strings.Builder
	sb.WriteString(a.city)
	sb.WriteString(", ")
	sb.WriteString(a.street)
	sb.WriteString(", ")
	sb.WriteString(a.building)

	if a.apartment != "" {
		sb.WriteString(", apt. ")
		sb.WriteString(a.apartment)
	}
	if a.postalCode != "" {
		sb.WriteString(", ")
		sb.WriteString(a.postalCode)
	}

	return sb.String()
}

// IsEqual compares two addresses field-wise, ignoring additional info.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.building == other.building &&
		a.apartment == other.apartment &&
		a.city == other.city &&
		a.postalCode == other.postalCode
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.FullAddress()
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setBuilding(building string) error {
	building = strings.TrimSpace(building)
	if building == "" {
		return errs.NewValueIsRequiredError("building")
	}
	a.building = building
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

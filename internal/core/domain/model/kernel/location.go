package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// Coordinate represents a position value on the city delivery grid.
// Valid coordinates range from LocationMinX/Y to LocationMaxX/Y inclusive.
type Coordinate int8

const (
	// LocationMinX is the minimum valid X coordinate on the delivery grid.
	LocationMinX Coordinate = 1
	// LocationMinY is the minimum valid Y coordinate on the delivery grid.
	LocationMinY Coordinate = 1
	// LocationMaxX is the maximum valid X coordinate on the delivery grid.
	LocationMaxX Coordinate = 10
	// LocationMaxY is the maximum valid Y coordinate on the delivery grid.
	LocationMaxY Coordinate = 10
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created using NewLocation or NewRandomLocation constructors to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewRandomLocation constructors")

// Location is an immutable value object representing a point on the city
// delivery grid. Couriers report their current position as a Location and
// delivery routes track a start and current Location. The zero value is
// invalid; use the constructors.
//
// Example:
//
//	loc, err := kernel.NewLocation(5, 7)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Location(5,7)
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the given coordinates. Both must lie
// within [LocationMinX..LocationMaxX] and [LocationMinY..LocationMaxY].
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewRandomLocation creates a Location with random in-bounds coordinates.
// Useful for tests and for seeding demo courier positions.
func NewRandomLocation() (Location, error) {
	x := Coordinate(rand.IntN(int(LocationMaxX-LocationMinX+1)) + int(LocationMinX)) //nolint:gosec // it's ok
	y := Coordinate(rand.IntN(int(LocationMaxY-LocationMinY+1)) + int(LocationMinY)) //nolint:gosec // it's ok
	return NewLocation(x, y)
}

// Validate checks that the Location was created through a constructor.
// The zero value of Location is invalid.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate.
func (l Location) Y() Coordinate {
	return l.y
}

// String returns "Location(x,y)". Implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations coordinate-wise. Both locations must be
// properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance returns the Manhattan distance between two locations:
// |x1-x2| + |y1-y2|. Both locations must be properly constructed.
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(l.x - other.x)
	dy := abs(l.y - other.y)
	return int(dx + dy), nil
}

// setX sets the x coordinate with validation. The private setters use
// pointer receivers to self-encapsulate construction-time validation.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}

func abs(x Coordinate) Coordinate {
	if x < 0 {
		return -x
	}
	return x
}

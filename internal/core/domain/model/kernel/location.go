package kernel

import (
	"fmt"
	"strings"

	"visibility/internal/pkg/errs"
)

// ErrLocationCodeIsRequired is returned when validating an empty LocationCode.
var ErrLocationCodeIsRequired = errs.NewValueIsRequiredError("location code")

// LocationCode is the string code of a stop (warehouse, port, customer site).
//
// Segments and orders are correlated only by equality of their location codes; there is
// no foreign key between them. Codes are compared exactly as authored: no case folding,
// no trimming beyond what NewLocationCode rejects.
//
// The zero value is the "no location" marker used by optional location filters.
type LocationCode struct {
	code string
}

// NewLocationCode creates a LocationCode.
//
// Returns:
//   - ErrLocationCodeIsRequired if code is empty
//   - ValueIsInvalidError if code has leading or trailing whitespace
func NewLocationCode(code string) (LocationCode, error) {
	if code == "" {
		return LocationCode{}, ErrLocationCodeIsRequired
	}
	if strings.TrimSpace(code) != code {
		return LocationCode{}, errs.NewValueIsInvalidErrorWithCause(
			"location code",
			fmt.Errorf("%q has surrounding whitespace", code),
		)
	}
	return LocationCode{code: code}, nil
}

// MustLocationCode is NewLocationCode for fixtures and constants; it panics on invalid input.
func MustLocationCode(code string) LocationCode {
	loc, err := NewLocationCode(code)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate returns ErrLocationCodeIsRequired for the zero value.
func (l LocationCode) Validate() error {
	if l.code == "" {
		return ErrLocationCodeIsRequired
	}
	return nil
}

// IsZero reports whether l is the "no location" marker.
func (l LocationCode) IsZero() bool {
	return l.code == ""
}

// IsEqual reports whether both codes are identical.
func (l LocationCode) IsEqual(other LocationCode) bool {
	return l.code == other.code
}

func (l LocationCode) String() string {
	return l.code
}

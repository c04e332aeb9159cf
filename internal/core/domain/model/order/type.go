package order

import (
	"fmt"

	"visibility/internal/pkg/errs"
)

// Type tells whether an order record describes the pickup or the drop of its cargo.
type Type string

const (
	// Pickup marks the record of the cargo being collected at a stop.
	Pickup Type = "P"

	// Drop marks the record of the cargo being delivered at a stop.
	Drop Type = "D"
)

// ParseType converts the source data discriminator ("P" or "D") into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate returns a ValueIsInvalidError for anything but Pickup and Drop.
func (t Type) Validate() error {
	if t != Pickup && t != Drop {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not P or D", string(t)))
	}
	return nil
}

func (t Type) String() string {
	return string(t)
}

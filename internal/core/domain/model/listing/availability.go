package listing

import (
	"fmt"

	"lifelink/internal/pkg/errs"
)

// Availability is the reservation state of an organ listing.
//
// State transitions:
//
//	Available ──> Unavailable
//
// A listing flips to Unavailable exactly when a transport request is created
// against it and never reverts automatically.
type Availability string

const (
	// Available means the organ can still be requested for transport.
	Available Availability = "Available"

	// Unavailable means a transport request has consumed the listing.
	Unavailable Availability = "Unavailable"
)

// AvailabilityFromString parses a raw availability value. An empty value
// defaults to Available, matching the listing form's default.
func AvailabilityFromString(s string) (Availability, error) {
	switch s {
	case "":
		return Available, nil
	case string(Available):
		return Available, nil
	case string(Unavailable):
		return Unavailable, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not a valid availability status", s))
	}
}

// String returns the stored form of the availability status.
func (a Availability) String() string {
	return string(a)
}

// Validate checks that the value is one of the two known states.
func (a Availability) Validate() error {
	if a != Available && a != Unavailable {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not a valid availability status", string(a)))
	}
	return nil
}

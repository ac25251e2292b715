package order

import (
	"lifelink/internal/pkg/errs"
)

// ErrInvalidStatus rejects a status value outside the allowed set. The
// text is surfaced verbatim on the driver status form.
var ErrInvalidStatus = errs.NewValueIsInvalidErrorWithMessage("Invalid status")

// Status is the lifecycle state of a transport request.
//
// State transitions:
//
//	Requested ──> Assigned ──> En-route ──> Delivered
//	    ^            │
//	    └────────────┘
//	      (reversion clears the driver)
//
// Delivered is terminal: no further mutation of the request is permitted.
// The driver status form may also jump between non-terminal states (for
// example Assigned straight to Delivered); only the terminal rule and the
// reversion rule are enforced.
type Status string

const (
	// Requested is the initial state: the request is waiting for a driver.
	Requested Status = "Requested"

	// Assigned means a driver has claimed the request.
	Assigned Status = "Assigned"

	// EnRoute means the driver is transporting the organ.
	EnRoute Status = "En-route"

	// Delivered is the terminal state.
	Delivered Status = "Delivered"
)

// StatusFromString parses a raw status value, rejecting anything outside
// the allowed set.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// String returns the stored form of the status.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the value is one of the four known states.
func (s Status) Validate() error {
	switch s {
	case Requested, Assigned, EnRoute, Delivered:
		return nil
	default:
		return ErrInvalidStatus
	}
}

// IsActive reports whether the status counts toward a driver's
// one-active-order limit.
func (s Status) IsActive() bool {
	return s == Assigned || s == EnRoute
}

// IsTerminal reports whether the status forbids further mutation.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

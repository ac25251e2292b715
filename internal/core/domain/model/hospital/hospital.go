// Package hospital contains the Hospital entity. Hospitals offer organ
// listings and place transport requests; once registered they are immutable
// and are referenced by name in listings and requests.
package hospital

import (
	"errors"
	"fmt"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

// ErrHospitalIsNotConstructed is returned when a Hospital was not created
// through NewHospital or RestoreHospital.
var ErrHospitalIsNotConstructed = errors.New("Hospital must be created via NewHospital constructor")

// Hospital is a registered facility. Name, city, and state are denormalized
// into listings and requests at creation time, so the entity never changes
// after registration.
type Hospital struct {
	id    kernel.UUID
	name  string
	city  string
	state string
	email string

	guard guard.ConstructorGuard
}

// NewHospital registers a hospital. All fields are required.
func NewHospital(id kernel.UUID, name, city, state, email string) (*Hospital, error) {
	h := &Hospital{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		h.setID(id),
		h.setName(name),
		h.setCity(city),
		h.setState(state),
		h.setEmail(email),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHospital reconstructs a hospital from persistence.
// It applies the same validation as NewHospital.
func RestoreHospital(id kernel.UUID, name, city, state, email string) (*Hospital, error) {
	return NewHospital(id, name, city, state, email)
}

// Validate ensures the entity was built through a constructor.
func (h *Hospital) Validate() error {
	if h == nil {
		return ErrHospitalIsNotConstructed
	}
	return h.guard.Validate(ErrHospitalIsNotConstructed)
}

// ID returns the hospital's unique identifier.
func (h *Hospital) ID() kernel.UUID {
	return h.id
}

// Name returns the hospital's display name.
func (h *Hospital) Name() string {
	return h.name
}

// City returns the hospital's city.
func (h *Hospital) City() string {
	return h.city
}

// State returns the hospital's state.
func (h *Hospital) State() string {
	return h.state
}

// Email returns the hospital's contact email.
func (h *Hospital) Email() string {
	return h.email
}

// OriginLabel is the denormalized origin string carried by transport
// requests sourced from this hospital: "Name (City, State)".
func (h *Hospital) OriginLabel() string {
	return fmt.Sprintf("%s (%s, %s)", h.name, h.city, h.state)
}

func (h *Hospital) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Hospital) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	h.name = name
	return nil
}

func (h *Hospital) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	h.city = city
	return nil
}

func (h *Hospital) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	h.state = state
	return nil
}

func (h *Hospital) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	h.email = email
	return nil
}

package commands

import (
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

var (
	ErrRegisterHospitalCommandIsNotConstructed = errors.New(
		"RegisterHospitalCommand must be created via NewRegisterHospitalCommand constructor",
	)
)

// RegisterHospitalCommand adds a hospital to the network directory.
type RegisterHospitalCommand struct { //nolint:recvcheck //using for validation
	hospitalID kernel.UUID
	name       string
	city       string
	state      string
	email      string

	guard guard.ConstructorGuard
}

// NewRegisterHospitalCommand validates and builds the command. All fields
// are required.
func NewRegisterHospitalCommand(
	hospitalID kernel.UUID,
	name string,
	city string,
	state string,
	email string,
) (RegisterHospitalCommand, error) {
	cmd := RegisterHospitalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHospitalID(hospitalID),
		cmd.setName(name),
		cmd.setCity(city),
		cmd.setState(state),
		cmd.setEmail(email),
	); err != nil {
		return RegisterHospitalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterHospitalCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHospitalCommandIsNotConstructed)
}

// HospitalID returns the identifier assigned to the new hospital.
func (c RegisterHospitalCommand) HospitalID() kernel.UUID {
	return c.hospitalID
}

// Name returns the hospital name.
func (c RegisterHospitalCommand) Name() string {
	return c.name
}

// City returns the hospital's city.
func (c RegisterHospitalCommand) City() string {
	return c.city
}

// State returns the hospital's state.
func (c RegisterHospitalCommand) State() string {
	return c.state
}

// Email returns the hospital's contact email.
func (c RegisterHospitalCommand) Email() string {
	return c.email
}

func (c *RegisterHospitalCommand) setHospitalID(hospitalID kernel.UUID) error {
	if err := hospitalID.Validate(); err != nil {
		return err
	}
	c.hospitalID = hospitalID
	return nil
}

func (c *RegisterHospitalCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterHospitalCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}

func (c *RegisterHospitalCommand) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	c.state = state
	return nil
}

func (c *RegisterHospitalCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

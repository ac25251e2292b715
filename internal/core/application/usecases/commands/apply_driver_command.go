package commands

import (
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

var (
	ErrApplyDriverCommandIsNotConstructed = errors.New(
		"ApplyDriverCommand must be created via NewApplyDriverCommand constructor",
	)
)

// ApplyDriverCommand files a driver application and activates the driver.
// Intake is auto-approved, so the command carries two identifiers: one for
// the application record and one for the driver it becomes.
type ApplyDriverCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	driverID      kernel.UUID
	firstName     string
	lastName      string
	email         string
	phone         string
	cdl           string

	guard guard.ConstructorGuard
}

// NewApplyDriverCommand validates and builds the command. All fields are
// required.
func NewApplyDriverCommand(
	applicationID kernel.UUID,
	driverID kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phone string,
	cdl string,
) (ApplyDriverCommand, error) {
	cmd := ApplyDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setDriverID(driverID),
		cmd.setName(firstName, lastName),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setCDL(cdl),
	); err != nil {
		return ApplyDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDriverCommand) Validate() error {
	return c.guard.Validate(ErrApplyDriverCommandIsNotConstructed)
}

// ApplicationID returns the identifier for the application record.
func (c ApplyDriverCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// DriverID returns the identifier for the activated driver.
func (c ApplyDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// FirstName returns the applicant's first name.
func (c ApplyDriverCommand) FirstName() string {
	return c.firstName
}

// LastName returns the applicant's last name.
func (c ApplyDriverCommand) LastName() string {
	return c.lastName
}

// Email returns the applicant's email.
func (c ApplyDriverCommand) Email() string {
	return c.email
}

// Phone returns the applicant's phone number.
func (c ApplyDriverCommand) Phone() string {
	return c.phone
}

// CDL returns the applicant's commercial driver's license number.
func (c ApplyDriverCommand) CDL() string {
	return c.cdl
}

func (c *ApplyDriverCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}
	c.applicationID = applicationID
	return nil
}

func (c *ApplyDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *ApplyDriverCommand) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *ApplyDriverCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *ApplyDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *ApplyDriverCommand) setCDL(cdl string) error {
	if cdl == "" {
		return errs.NewValueIsRequiredError("cdl")
	}
	c.cdl = cdl
	return nil
}

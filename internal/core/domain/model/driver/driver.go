// Package driver contains the Driver entity and the Application intake
// record. Drivers claim transport requests through the driver portal;
// applications are stored for review but have no lifecycle of their own.
package driver

import (
	"errors"
	"fmt"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver was not created
// through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a registered transport driver. A driver may hold at most one
// active order at a time; that invariant is enforced by the claim workflow,
// not by this entity.
type Driver struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	cdl       string

	guard guard.ConstructorGuard
}

// NewDriver registers a driver. All fields are required.
func NewDriver(id kernel.UUID, firstName, lastName, email, phone, cdl string) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setName(firstName, lastName),
		d.setEmail(email),
		d.setPhone(phone),
		d.setCDL(cdl),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.UUID, firstName, lastName, email, phone, cdl string) (*Driver, error) {
	return NewDriver(id, firstName, lastName, email, phone, cdl)
}

// Validate ensures the entity was built through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// FirstName returns the driver's first name.
func (d *Driver) FirstName() string {
	return d.firstName
}

// LastName returns the driver's last name.
func (d *Driver) LastName() string {
	return d.lastName
}

// FullName returns "First Last" for display on confirmations and portals.
func (d *Driver) FullName() string {
	return fmt.Sprintf("%s %s", d.firstName, d.lastName)
}

// Email returns the driver's contact email.
func (d *Driver) Email() string {
	return d.email
}

// Phone returns the driver's contact phone.
func (d *Driver) Phone() string {
	return d.phone
}

// CDL returns the driver's commercial license number.
func (d *Driver) CDL() string {
	return d.cdl
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	d.firstName = firstName
	d.lastName = lastName
	return nil
}

func (d *Driver) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	d.email = email
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setCDL(cdl string) error {
	if cdl == "" {
		return errs.NewValueIsRequiredError("cdl")
	}
	d.cdl = cdl
	return nil
}

package driver

import (
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/guard"
)

// ErrApplicationIsNotConstructed is returned when an Application was not
// created through NewApplication.
var ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")

// Application is a driver application kept for review. Applicants are also
// registered as drivers immediately, so the record is write-once and has no
// further lifecycle.
type Application struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	cdl       string

	guard guard.ConstructorGuard
}

// NewApplication files a driver application. Field requirements mirror NewDriver.
func NewApplication(id kernel.UUID, firstName, lastName, email, phone, cdl string) (*Application, error) {
	// An application carries exactly the fields of a driver; reuse the
	// driver validation rather than restating it.
	d, err := NewDriver(id, firstName, lastName, email, phone, cdl)
	if err != nil {
		return nil, err
	}

	return &Application{
		id:        d.ID(),
		firstName: d.FirstName(),
		lastName:  d.LastName(),
		email:     d.Email(),
		phone:     d.Phone(),
		cdl:       d.CDL(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was built through the constructor.
func (a *Application) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

// FirstName returns the applicant's first name.
func (a *Application) FirstName() string {
	return a.firstName
}

// LastName returns the applicant's last name.
func (a *Application) LastName() string {
	return a.lastName
}

// Email returns the applicant's contact email.
func (a *Application) Email() string {
	return a.email
}

// Phone returns the applicant's contact phone.
func (a *Application) Phone() string {
	return a.phone
}

// CDL returns the applicant's commercial license number.
func (a *Application) CDL() string {
	return a.cdl
}

package commands

import (
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

var (
	ErrCreateEmergencyRequestCommandIsNotConstructed = errors.New(
		"CreateEmergencyRequestCommand must be created via NewCreateEmergencyRequestCommand constructor",
	)
)

// CreateEmergencyRequestCommand places an ad-hoc transport request with no
// listing linkage. Priority is forced to Emergency by the domain model.
type CreateEmergencyRequestCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	hospital     string
	organType    string
	origin       string
	destination  string
	contactPhone string
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateEmergencyRequestCommand validates and builds the command.
// Hospital, organ type, origin, and destination are required; contact
// phone and notes are optional on the emergency form.
func NewCreateEmergencyRequestCommand(
	requestID kernel.UUID,
	hospital string,
	organType string,
	origin string,
	destination string,
	contactPhone string,
	notes string,
) (CreateEmergencyRequestCommand, error) {
	cmd := CreateEmergencyRequestCommand{
		contactPhone: contactPhone,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setHospital(hospital),
		cmd.setOrganType(organType),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
	); err != nil {
		return CreateEmergencyRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmergencyRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmergencyRequestCommandIsNotConstructed)
}

// RequestID returns the identifier assigned to the new request.
func (c CreateEmergencyRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Hospital returns the requesting hospital's name.
func (c CreateEmergencyRequestCommand) Hospital() string {
	return c.hospital
}

// OrganType returns the organ to transport.
func (c CreateEmergencyRequestCommand) OrganType() string {
	return c.organType
}

// Origin returns the pickup location.
func (c CreateEmergencyRequestCommand) Origin() string {
	return c.origin
}

// Destination returns the delivery address.
func (c CreateEmergencyRequestCommand) Destination() string {
	return c.destination
}

// ContactPhone returns the optional contact phone.
func (c CreateEmergencyRequestCommand) ContactPhone() string {
	return c.contactPhone
}

// Notes returns optional handling notes.
func (c CreateEmergencyRequestCommand) Notes() string {
	return c.notes
}

func (c *CreateEmergencyRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *CreateEmergencyRequestCommand) setHospital(hospital string) error {
	if hospital == "" {
		return errs.NewValueIsRequiredError("hospital")
	}
	c.hospital = hospital
	return nil
}

func (c *CreateEmergencyRequestCommand) setOrganType(organType string) error {
	if organType == "" {
		return errs.NewValueIsRequiredError("organ type")
	}
	c.organType = organType
	return nil
}

func (c *CreateEmergencyRequestCommand) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	c.origin = origin
	return nil
}

func (c *CreateEmergencyRequestCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

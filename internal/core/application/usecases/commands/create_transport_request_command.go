package commands

import (
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

var (
	ErrCreateTransportRequestCommandIsNotConstructed = errors.New(
		"CreateTransportRequestCommand must be created via NewCreateTransportRequestCommand constructor",
	)
)

// CreateTransportRequestCommand places a transport request against an
// available organ listing on behalf of a requesting hospital.
//
// Example:
//
//	requestID := kernel.NewUUID()
//	cmd, err := NewCreateTransportRequestCommand(
//	    requestID, listingID, hospitalID, "123 Main St", "555-1111", "fragile")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CreateTransportRequestCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	listingID    kernel.UUID
	hospitalID   kernel.UUID
	destination  string
	contactPhone string
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateTransportRequestCommand validates and builds the command.
// Destination and contact phone are required; notes are optional.
func NewCreateTransportRequestCommand(
	requestID kernel.UUID,
	listingID kernel.UUID,
	hospitalID kernel.UUID,
	destination string,
	contactPhone string,
	notes string,
) (CreateTransportRequestCommand, error) {
	cmd := CreateTransportRequestCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setListingID(listingID),
		cmd.setHospitalID(hospitalID),
		cmd.setDestination(destination),
		cmd.setContactPhone(contactPhone),
	); err != nil {
		return CreateTransportRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportRequestCommandIsNotConstructed)
}

// RequestID returns the identifier assigned to the new transport request.
func (c CreateTransportRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ListingID returns the listing being consumed.
func (c CreateTransportRequestCommand) ListingID() kernel.UUID {
	return c.listingID
}

// HospitalID returns the requesting hospital.
func (c CreateTransportRequestCommand) HospitalID() kernel.UUID {
	return c.hospitalID
}

// Destination returns the delivery address.
func (c CreateTransportRequestCommand) Destination() string {
	return c.destination
}

// ContactPhone returns the requester's contact phone.
func (c CreateTransportRequestCommand) ContactPhone() string {
	return c.contactPhone
}

// Notes returns optional handling notes.
func (c CreateTransportRequestCommand) Notes() string {
	return c.notes
}

func (c *CreateTransportRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *CreateTransportRequestCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *CreateTransportRequestCommand) setHospitalID(hospitalID kernel.UUID) error {
	if err := hospitalID.Validate(); err != nil {
		return err
	}
	c.hospitalID = hospitalID
	return nil
}

func (c *CreateTransportRequestCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

func (c *CreateTransportRequestCommand) setContactPhone(contactPhone string) error {
	if contactPhone == "" {
		return errs.NewValueIsRequiredError("contact phone")
	}
	c.contactPhone = contactPhone
	return nil
}

package commands

import (
	"errors"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

var (
	ErrCreateListingCommandIsNotConstructed = errors.New(
		"CreateListingCommand must be created via NewCreateListingCommand constructor",
	)
)

// CreateListingCommand publishes an organ listing for an offering hospital.
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID    kernel.UUID
	hospitalID   kernel.UUID
	organType    string
	bloodType    string
	age          int
	weightKg     float64
	priority     kernel.Priority
	availability listing.Availability

	guard guard.ConstructorGuard
}

// NewCreateListingCommand validates and builds the command. An empty
// priority defaults to Normal, an empty availability to Available; donor
// age and weight ranges are enforced by the listing aggregate.
func NewCreateListingCommand(
	listingID kernel.UUID,
	hospitalID kernel.UUID,
	organType string,
	bloodType string,
	age int,
	weightKg float64,
	priority string,
	availability string,
) (CreateListingCommand, error) {
	cmd := CreateListingCommand{
		age:      age,
		weightKg: weightKg,
		priority: kernel.PriorityFromString(priority),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setHospitalID(hospitalID),
		cmd.setOrganType(organType),
		cmd.setBloodType(bloodType),
		cmd.setAvailability(availability),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

// ListingID returns the identifier assigned to the new listing.
func (c CreateListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

// HospitalID returns the offering hospital.
func (c CreateListingCommand) HospitalID() kernel.UUID {
	return c.hospitalID
}

// OrganType returns the organ offered.
func (c CreateListingCommand) OrganType() string {
	return c.organType
}

// BloodType returns the donor blood type.
func (c CreateListingCommand) BloodType() string {
	return c.bloodType
}

// Age returns the donor age in years.
func (c CreateListingCommand) Age() int {
	return c.age
}

// WeightKg returns the donor weight in kilograms.
func (c CreateListingCommand) WeightKg() float64 {
	return c.weightKg
}

// Priority returns the listing urgency.
func (c CreateListingCommand) Priority() kernel.Priority {
	return c.priority
}

// Availability returns the initial availability.
func (c CreateListingCommand) Availability() listing.Availability {
	return c.availability
}

func (c *CreateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *CreateListingCommand) setHospitalID(hospitalID kernel.UUID) error {
	if err := hospitalID.Validate(); err != nil {
		return err
	}
	c.hospitalID = hospitalID
	return nil
}

func (c *CreateListingCommand) setOrganType(organType string) error {
	if organType == "" {
		return errs.NewValueIsRequiredError("organ type")
	}
	c.organType = organType
	return nil
}

func (c *CreateListingCommand) setBloodType(bloodType string) error {
	if bloodType == "" {
		return errs.NewValueIsRequiredError("blood type")
	}
	c.bloodType = bloodType
	return nil
}

func (c *CreateListingCommand) setAvailability(availability string) error {
	parsed, err := listing.AvailabilityFromString(availability)
	if err != nil {
		return err
	}
	c.availability = parsed
	return nil
}

package listing

import (
	"errors"
	"fmt"
	"time"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

// ErrListingIsNotConstructed is returned when a Listing was not created
// through NewListing or RestoreListing.
var ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")

// ErrListingUnavailable is returned when a transport request targets a
// listing that has already been consumed.
var ErrListingUnavailable = errs.NewInvalidStateError("Listing is no longer available")

// Listing is an offered organ available for transport from a hospital.
// Hospital name, city, and state are denormalized at creation so the
// catalog and origin strings never need a join back to the hospital.
//
// Invariants:
//   - availability flips to Unavailable exactly once, via Reserve
//   - it never flips back; a consumed listing stays consumed
type Listing struct {
	id           kernel.UUID
	hospitalID   kernel.UUID
	hospitalName string
	organType    string
	bloodType    string
	age          int
	weightKg     float64
	priority     kernel.Priority
	availability Availability
	city         string
	state        string
	createdAt    time.Time

	// persistedAvailability is the availability the aggregate was loaded
	// with. The repository uses it as an optimistic guard so two
	// concurrent transport requests cannot both consume the listing.
	persistedAvailability Availability

	guard guard.ConstructorGuard
}

// maxDonorAge bounds the donor age field; values above it are data-entry errors.
const maxDonorAge = 120

// NewListing creates a listing offered by the given hospital. Hospital
// name, city, and state are captured from the hospital row at creation.
func NewListing(
	id kernel.UUID,
	hospitalID kernel.UUID,
	hospitalName string,
	organType string,
	bloodType string,
	age int,
	weightKg float64,
	priority kernel.Priority,
	availability Availability,
	city string,
	state string,
	createdAt time.Time,
) (*Listing, error) {
	l := &Listing{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setID(id),
		l.setHospital(hospitalID, hospitalName, city, state),
		l.setOrgan(organType, bloodType),
		l.setDonor(age, weightKg),
		l.setPriority(priority),
		l.setAvailability(availability),
	); err != nil {
		return nil, err
	}

	l.createdAt = createdAt
	l.persistedAvailability = l.availability
	return l, nil
}

// RestoreListing reconstructs a listing from persistence.
func RestoreListing(
	id kernel.UUID,
	hospitalID kernel.UUID,
	hospitalName string,
	organType string,
	bloodType string,
	age int,
	weightKg float64,
	priority kernel.Priority,
	availability Availability,
	city string,
	state string,
	createdAt time.Time,
) (*Listing, error) {
	return NewListing(id, hospitalID, hospitalName, organType, bloodType,
		age, weightKg, priority, availability, city, state, createdAt)
}

// Validate ensures the aggregate was built through a constructor.
func (l *Listing) Validate() error {
	if l == nil {
		return ErrListingIsNotConstructed
	}
	return l.guard.Validate(ErrListingIsNotConstructed)
}

// Reserve consumes the listing for a transport request, flipping it to
// Unavailable. Returns ErrListingUnavailable if it was already consumed.
func (l *Listing) Reserve() error {
	if l.availability != Available {
		return ErrListingUnavailable
	}
	l.availability = Unavailable
	return nil
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// HospitalID returns the offering hospital's identifier.
func (l *Listing) HospitalID() kernel.UUID {
	return l.hospitalID
}

// HospitalName returns the offering hospital's denormalized name.
func (l *Listing) HospitalName() string {
	return l.hospitalName
}

// OrganType returns the organ offered, e.g. "Kidney".
func (l *Listing) OrganType() string {
	return l.organType
}

// BloodType returns the donor blood type, e.g. "O+".
func (l *Listing) BloodType() string {
	return l.bloodType
}

// Age returns the donor age in years.
func (l *Listing) Age() int {
	return l.age
}

// WeightKg returns the donor weight in kilograms.
func (l *Listing) WeightKg() float64 {
	return l.weightKg
}

// Priority returns the listing's urgency tier.
func (l *Listing) Priority() kernel.Priority {
	return l.priority
}

// Availability returns the current reservation state.
func (l *Listing) Availability() Availability {
	return l.availability
}

// City returns the offering hospital's denormalized city.
func (l *Listing) City() string {
	return l.city
}

// State returns the offering hospital's denormalized state.
func (l *Listing) State() string {
	return l.state
}

// CreatedAt returns when the listing was posted.
func (l *Listing) CreatedAt() time.Time {
	return l.createdAt
}

// OriginLabel is the origin string stamped onto transport requests created
// against this listing: "Hospital (City, State)".
func (l *Listing) OriginLabel() string {
	return fmt.Sprintf("%s (%s, %s)", l.hospitalName, l.city, l.state)
}

// PersistedAvailability returns the availability the aggregate had when
// loaded from storage. Repositories condition updates on it so a stale
// aggregate cannot double-consume the listing.
func (l *Listing) PersistedAvailability() Availability {
	return l.persistedAvailability
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setHospital(hospitalID kernel.UUID, name, city, state string) error {
	if err := hospitalID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("hospital name")
	}
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	l.hospitalID = hospitalID
	l.hospitalName = name
	l.city = city
	l.state = state
	return nil
}

func (l *Listing) setOrgan(organType, bloodType string) error {
	if organType == "" {
		return errs.NewValueIsRequiredError("organ type")
	}
	if bloodType == "" {
		return errs.NewValueIsRequiredError("blood type")
	}
	l.organType = organType
	l.bloodType = bloodType
	return nil
}

func (l *Listing) setDonor(age int, weightKg float64) error {
	if age < 0 || age > maxDonorAge {
		return errs.NewValueIsOutOfRangeError("age", age, 0, maxDonorAge)
	}
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	l.age = age
	l.weightKg = weightKg
	return nil
}

func (l *Listing) setPriority(priority kernel.Priority) error {
	if priority == "" {
		return errs.NewValueIsRequiredError("priority")
	}
	l.priority = priority
	return nil
}

func (l *Listing) setAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	l.availability = availability
	return nil
}

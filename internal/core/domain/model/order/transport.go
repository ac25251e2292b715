package order

import (
	"errors"
	"time"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/guard"
)

var (
	// ErrTransportRequestIsNotConstructed is returned when a TransportRequest
	// was not created through one of the constructors.
	ErrTransportRequestIsNotConstructed = errors.New(
		"TransportRequest must be created via NewTransportRequest, NewEmergencyRequest, or RestoreTransportRequest")

	// ErrOrderNoLongerAvailable is returned when claiming an order that is
	// not in Requested status (already claimed, delivered, or missing).
	ErrOrderNoLongerAvailable = errs.NewInvalidStateError("Order is no longer available")

	// ErrDeliveredIsImmutable is returned when mutating a delivered order.
	ErrDeliveredIsImmutable = errs.NewInvalidStateError("Delivered orders cannot be modified")
)

// TransportRequest is the aggregate root of the order lifecycle. It tracks
// an organ transport from request through driver assignment to delivery.
//
// Invariants:
//   - Assigned and En-route requests always carry a driver
//   - a Requested request never carries a driver
//   - a Delivered request is immutable but keeps its driver for the
//     completed-orders history
//   - reverting to Requested clears the driver
//
// listingID is nil for ad-hoc emergency requests, which consume no listing.
type TransportRequest struct {
	id           kernel.UUID
	listingID    *kernel.UUID
	hospital     string
	organType    string
	origin       string
	destination  string
	contactPhone string
	notes        string
	priority     kernel.Priority
	status       Status
	driverID     *kernel.UUID
	createdAt    time.Time
	updatedAt    time.Time

	// persistedStatus is the status the aggregate was loaded with. The
	// repository uses it as an optimistic guard so that two concurrent
	// claims cannot both win.
	persistedStatus Status

	guard guard.ConstructorGuard
}

// NewTransportRequest creates a Requested transport against a listing.
// The request carries the listing's priority and computed origin string;
// destination and contact phone are required.
func NewTransportRequest(
	id kernel.UUID,
	listingID kernel.UUID,
	hospital string,
	organType string,
	origin string,
	destination string,
	contactPhone string,
	notes string,
	priority kernel.Priority,
	now time.Time,
) (*TransportRequest, error) {
	tr := &TransportRequest{
		status:          Requested,
		persistedStatus: Requested,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tr.setID(id),
		tr.setListingID(listingID),
		tr.setRoute(hospital, organType, origin),
		tr.setDestination(destination),
		tr.setContactPhone(contactPhone),
		tr.setPriority(priority),
	); err != nil {
		return nil, err
	}

	tr.notes = notes
	tr.createdAt = now
	tr.updatedAt = now
	return tr, nil
}

// NewEmergencyRequest creates an ad-hoc Requested transport with no listing
// linkage. Priority is forced to Emergency. Contact phone and notes are
// optional on the emergency form.
func NewEmergencyRequest(
	id kernel.UUID,
	hospital string,
	organType string,
	origin string,
	destination string,
	contactPhone string,
	notes string,
	now time.Time,
) (*TransportRequest, error) {
	tr := &TransportRequest{
		status:          Requested,
		persistedStatus: Requested,
		priority:        kernel.PriorityEmergency,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tr.setID(id),
		tr.setRoute(hospital, organType, origin),
		tr.setDestination(destination),
	); err != nil {
		return nil, err
	}

	tr.contactPhone = contactPhone
	tr.notes = notes
	tr.createdAt = now
	tr.updatedAt = now
	return tr, nil
}

// RestoreTransportRequest reconstructs a request from persistence. Field
// content is trusted as stored; only the identifier and status are checked.
// The restored status becomes the optimistic guard for the next update.
func RestoreTransportRequest(
	id kernel.UUID,
	listingID *kernel.UUID,
	hospital string,
	organType string,
	origin string,
	destination string,
	contactPhone string,
	notes string,
	priority kernel.Priority,
	status Status,
	driverID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*TransportRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &TransportRequest{
		id:              id,
		listingID:       listingID,
		hospital:        hospital,
		organType:       organType,
		origin:          origin,
		destination:     destination,
		contactPhone:    contactPhone,
		notes:           notes,
		priority:        priority,
		status:          status,
		driverID:        driverID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		persistedStatus: status,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the aggregate was built through a constructor.
func (tr *TransportRequest) Validate() error {
	if tr == nil {
		return ErrTransportRequestIsNotConstructed
	}
	return tr.guard.Validate(ErrTransportRequestIsNotConstructed)
}

// Claim assigns the request to a driver. Only a Requested order can be
// claimed; anything else returns ErrOrderNoLongerAvailable. The caller is
// responsible for the one-active-order-per-driver check.
func (tr *TransportRequest) Claim(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if tr.status != Requested {
		return ErrOrderNoLongerAvailable
	}

	tr.driverID = &driverID
	tr.status = Assigned
	tr.updatedAt = now
	return nil
}

// ChangeStatus moves the request to newStatus. Delivered orders reject any
// change. Reverting to Requested releases the order back to the pool by
// clearing the driver; every other transition preserves the driver.
func (tr *TransportRequest) ChangeStatus(newStatus Status, now time.Time) error {
	if tr.status.IsTerminal() {
		return ErrDeliveredIsImmutable
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == Requested {
		tr.driverID = nil
	}
	tr.status = newStatus
	tr.updatedAt = now
	return nil
}

// ID returns the request's unique identifier.
func (tr *TransportRequest) ID() kernel.UUID {
	return tr.id
}

// ListingID returns the consumed listing's identifier, or nil for
// emergency requests.
func (tr *TransportRequest) ListingID() *kernel.UUID {
	return tr.listingID
}

// Hospital returns the requesting hospital's name.
func (tr *TransportRequest) Hospital() string {
	return tr.hospital
}

// OrganType returns the organ being transported.
func (tr *TransportRequest) OrganType() string {
	return tr.organType
}

// Origin returns the pickup label, "Hospital (City, State)" for
// listing-backed requests.
func (tr *TransportRequest) Origin() string {
	return tr.origin
}

// Destination returns the delivery address.
func (tr *TransportRequest) Destination() string {
	return tr.destination
}

// ContactPhone returns the requester's contact phone.
func (tr *TransportRequest) ContactPhone() string {
	return tr.contactPhone
}

// Notes returns free-form handling notes.
func (tr *TransportRequest) Notes() string {
	return tr.notes
}

// Priority returns the request's urgency tier.
func (tr *TransportRequest) Priority() kernel.Priority {
	return tr.priority
}

// Status returns the current lifecycle state.
func (tr *TransportRequest) Status() Status {
	return tr.status
}

// Driver returns the assigned driver's ID, or nil if unassigned.
func (tr *TransportRequest) Driver() *kernel.UUID {
	return tr.driverID
}

// CreatedAt returns when the request was placed.
func (tr *TransportRequest) CreatedAt() time.Time {
	return tr.createdAt
}

// UpdatedAt returns when the request last changed.
func (tr *TransportRequest) UpdatedAt() time.Time {
	return tr.updatedAt
}

// PersistedStatus returns the status the aggregate had when loaded from
// storage. Repositories condition updates on it so a stale aggregate
// cannot overwrite a concurrent transition.
func (tr *TransportRequest) PersistedStatus() Status {
	return tr.persistedStatus
}

func (tr *TransportRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	tr.id = id
	return nil
}

func (tr *TransportRequest) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	tr.listingID = &listingID
	return nil
}

func (tr *TransportRequest) setRoute(hospital, organType, origin string) error {
	if hospital == "" {
		return errs.NewValueIsRequiredError("hospital")
	}
	if organType == "" {
		return errs.NewValueIsRequiredError("organ type")
	}
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	tr.hospital = hospital
	tr.organType = organType
	tr.origin = origin
	return nil
}

func (tr *TransportRequest) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	tr.destination = destination
	return nil
}

func (tr *TransportRequest) setContactPhone(contactPhone string) error {
	if contactPhone == "" {
		return errs.NewValueIsRequiredError("contact phone")
	}
	tr.contactPhone = contactPhone
	return nil
}

func (tr *TransportRequest) setPriority(priority kernel.Priority) error {
	if priority == "" {
		return errs.NewValueIsRequiredError("priority")
	}
	tr.priority = priority
	return nil
}

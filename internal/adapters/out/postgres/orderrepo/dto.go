// Package orderrepo persists transport request aggregates. It maps the
// aggregate to the transport_requests table and implements the
// conditional-write contract that makes claims race-safe.
package orderrepo

import (
	"time"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TransportRequestDTO is the database representation of a transport
// request. The listing and driver references are nullable: emergency
// requests never carry a listing, and unclaimed orders have no driver.
// Timestamps are owned by the domain model, not by GORM's auto-tracking.
type TransportRequestDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ListingID      *uuid.UUID `gorm:"type:uuid;index"`
	Hospital       string
	OrganType      string
	Origin         string
	Destination    string
	ContactPhone   string
	Notes          string
	PriorityStatus string     `gorm:"index"`
	Status         string     `gorm:"index"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime:false"`
}

// TableName overrides GORM's default naming to use "transport_requests".
func (TransportRequestDTO) TableName() string {
	return "transport_requests"
}

func fromDomain(tr *order.TransportRequest) TransportRequestDTO {
	var listingID *uuid.UUID
	if id := tr.ListingID(); id != nil {
		raw := id.Bytes()
		listingID = &raw
	}

	var driverID *uuid.UUID
	if id := tr.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return TransportRequestDTO{
		ID:             tr.ID().Bytes(),
		ListingID:      listingID,
		Hospital:       tr.Hospital(),
		OrganType:      tr.OrganType(),
		Origin:         tr.Origin(),
		Destination:    tr.Destination(),
		ContactPhone:   tr.ContactPhone(),
		Notes:          tr.Notes(),
		PriorityStatus: string(tr.Priority()),
		Status:         tr.Status().String(),
		DriverID:       driverID,
		CreatedAt:      tr.CreatedAt(),
		UpdatedAt:      tr.UpdatedAt(),
	}
}

func toDomain(dto TransportRequestDTO) (*order.TransportRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var listingID *kernel.UUID
	if dto.ListingID != nil {
		lID, listingErr := kernel.UUIDFromBytes((*dto.ListingID)[:])
		if listingErr != nil {
			return nil, listingErr
		}
		listingID = &lID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return order.RestoreTransportRequest(
		id,
		listingID,
		dto.Hospital,
		dto.OrganType,
		dto.Origin,
		dto.Destination,
		dto.ContactPhone,
		dto.Notes,
		kernel.Priority(dto.PriorityStatus),
		order.Status(dto.Status),
		driverID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

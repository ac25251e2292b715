// Package listingrepo persists organ listing aggregates in the
// organ_listings table. The availability column doubles as the optimistic
// guard that prevents a listing from being consumed twice.
package listingrepo

import (
	"time"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO is the database representation of an organ listing. The
// offering hospital's name and location are denormalized so catalog reads
// need no join.
type ListingDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	HospitalID         uuid.UUID `gorm:"type:uuid;index"`
	HospitalName       string    `gorm:"index"`
	OrganType          string
	BloodType          string
	Age                int
	WeightKg           float64
	PriorityStatus     string `gorm:"index"`
	AvailabilityStatus string `gorm:"index"`
	City               string
	State              string
	CreatedAt          time.Time `gorm:"autoCreateTime:false"`
}

// TableName overrides GORM's default naming to use "organ_listings".
func (ListingDTO) TableName() string {
	return "organ_listings"
}

func fromDomain(l *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:                 l.ID().Bytes(),
		HospitalID:         l.HospitalID().Bytes(),
		HospitalName:       l.HospitalName(),
		OrganType:          l.OrganType(),
		BloodType:          l.BloodType(),
		Age:                l.Age(),
		WeightKg:           l.WeightKg(),
		PriorityStatus:     string(l.Priority()),
		AvailabilityStatus: string(l.Availability()),
		City:               l.City(),
		State:              l.State(),
		CreatedAt:          l.CreatedAt(),
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	hospitalID, err := kernel.UUIDFromBytes(dto.HospitalID[:])
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id,
		hospitalID,
		dto.HospitalName,
		dto.OrganType,
		dto.BloodType,
		dto.Age,
		dto.WeightKg,
		kernel.Priority(dto.PriorityStatus),
		listing.Availability(dto.AvailabilityStatus),
		dto.City,
		dto.State,
		dto.CreatedAt,
	)
}

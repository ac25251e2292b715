// Package hospitalrepo persists hospital entities in the hospitals table.
package hospitalrepo

import (
	"lifelink/internal/core/domain/model/hospital"
	"lifelink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HospitalDTO is the database representation of a hospital.
type HospitalDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"index"`
	City  string
	State string
	Email string
}

// TableName overrides GORM's default naming to use "hospitals".
func (HospitalDTO) TableName() string {
	return "hospitals"
}

func fromDomain(h *hospital.Hospital) HospitalDTO {
	return HospitalDTO{
		ID:    h.ID().Bytes(),
		Name:  h.Name(),
		City:  h.City(),
		State: h.State(),
		Email: h.Email(),
	}
}

func toDomain(dto HospitalDTO) (*hospital.Hospital, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return hospital.RestoreHospital(id, dto.Name, dto.City, dto.State, dto.Email)
}

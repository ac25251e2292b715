// Package driverrepo persists drivers and their intake applications. Both
// records share the same field shape; applications keep the raw submission
// while the drivers table holds the active roster.
package driverrepo

import (
	"time"

	"lifelink/internal/core/domain/model/driver"
	"lifelink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database representation of an active driver.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"index:idx_drivers_name"`
	LastName  string    `gorm:"index:idx_drivers_name"`
	Email     string
	Phone     string
	CDL       string `gorm:"column:cdl"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// DriverApplicationDTO is the stored intake submission.
type DriverApplicationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CDL       string `gorm:"column:cdl"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "driver_applications".
func (DriverApplicationDTO) TableName() string {
	return "driver_applications"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        d.ID().Bytes(),
		FirstName: d.FirstName(),
		LastName:  d.LastName(),
		Email:     d.Email(),
		Phone:     d.Phone(),
		CDL:       d.CDL(),
	}
}

func applicationFromDomain(a *driver.Application) DriverApplicationDTO {
	return DriverApplicationDTO{
		ID:        a.ID().Bytes(),
		FirstName: a.FirstName(),
		LastName:  a.LastName(),
		Email:     a.Email(),
		Phone:     a.Phone(),
		CDL:       a.CDL(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.FirstName, dto.LastName, dto.Email, dto.Phone, dto.CDL)
}

package postgres

import (
	"context"
	"log/slog"
	"time"

	"lifelink/internal/adapters/out/postgres/driverrepo"
	"lifelink/internal/adapters/out/postgres/hospitalrepo"
	"lifelink/internal/adapters/out/postgres/listingrepo"
	"lifelink/internal/adapters/out/postgres/orderrepo"
	"lifelink/internal/core/domain/model/driver"
	"lifelink/internal/core/domain/model/hospital"
	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/core/domain/model/listing"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&hospitalrepo.HospitalDTO{},
		&driverrepo.DriverDTO{},
		&driverrepo.DriverApplicationDTO{},
		&listingrepo.ListingDTO{},
		&orderrepo.TransportRequestDTO{},
	)
}

// SeedIfEmpty loads demo hospitals, drivers, and listings when the
// hospitals table is empty. Runs in one transaction through the unit of
// work so a partial seed never survives.
func SeedIfEmpty(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&hospitalrepo.HospitalDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("seeding demo data")

	uow := NewGormUnitOfWorkFactory(db).Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hospitals, err := seedHospitals(ctx, uow.HospitalRepository().Add)
	if err != nil {
		return err
	}

	if err = seedDrivers(ctx, uow.DriverRepository().Add); err != nil {
		return err
	}

	if err = seedListings(ctx, hospitals, uow.ListingRepository().Add); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func seedHospitals(
	ctx context.Context,
	add func(context.Context, *hospital.Hospital) error,
) ([]*hospital.Hospital, error) {
	rows := []struct {
		name, city, state, email string
	}{
		{"Houston Methodist", "Houston", "TX", "transplant@houstonmethodist.org"},
		{"Baylor St. Luke's", "Houston", "TX", "organs@stlukeshealth.org"},
		{"Medical City Dallas", "Dallas", "TX", "transplant@medicalcity.com"},
		{"University Hospital", "San Antonio", "TX", "donornetwork@universityhealth.com"},
	}

	hospitals := make([]*hospital.Hospital, 0, len(rows))
	for _, row := range rows {
		h, err := hospital.NewHospital(kernel.NewUUID(), row.name, row.city, row.state, row.email)
		if err != nil {
			return nil, err
		}
		if err = add(ctx, h); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, h)
	}

	return hospitals, nil
}

func seedDrivers(
	ctx context.Context,
	add func(context.Context, *driver.Driver) error,
) error {
	rows := []struct {
		first, last, email, phone, cdl string
	}{
		{"Marcus", "Webb", "marcus.webb@lifelink.example", "713-555-0142", "TX-CDL-88123"},
		{"Dana", "Ruiz", "dana.ruiz@lifelink.example", "214-555-0187", "TX-CDL-55409"},
		{"Kofi", "Mensah", "kofi.mensah@lifelink.example", "210-555-0123", "TX-CDL-77310"},
	}

	for _, row := range rows {
		d, err := driver.NewDriver(kernel.NewUUID(), row.first, row.last, row.email, row.phone, row.cdl)
		if err != nil {
			return err
		}
		if err = add(ctx, d); err != nil {
			return err
		}
	}

	return nil
}

func seedListings(
	ctx context.Context,
	hospitals []*hospital.Hospital,
	add func(context.Context, *listing.Listing) error,
) error {
	rows := []struct {
		hospital  int
		organType string
		bloodType string
		age       int
		weightKg  float64
		priority  kernel.Priority
	}{
		{0, "Kidney", "O+", 34, 70.5, kernel.PriorityUrgent},
		{0, "Liver", "A-", 41, 82.0, kernel.PriorityCritical},
		{1, "Heart", "B+", 27, 65.3, kernel.PriorityEmergency},
		{2, "Kidney", "AB+", 52, 88.1, kernel.PriorityNormal},
		{2, "Lung", "O-", 38, 74.6, kernel.PriorityCritical},
		{3, "Pancreas", "A+", 45, 79.9, kernel.PriorityNormal},
	}

	now := time.Now().UTC()
	for _, row := range rows {
		h := hospitals[row.hospital]
		l, err := listing.NewListing(
			kernel.NewUUID(),
			h.ID(),
			h.Name(),
			row.organType,
			row.bloodType,
			row.age,
			row.weightKg,
			row.priority,
			listing.Available,
			h.City(),
			h.State(),
			now,
		)
		if err != nil {
			return err
		}
		if err = add(ctx, l); err != nil {
			return err
		}
	}

	return nil
}

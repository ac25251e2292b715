package queries

import (
	"context"

	"lifelink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrgansQueryHandler serves the unfiltered listing dump backing the
// JSON API. Reuses the catalog row shape.
type GetAllOrgansQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrgansQueryHandler creates a handler for the listing dump.
func NewGetAllOrgansQueryHandler(db *gorm.DB) GetAllOrgansQueryHandler {
	return GetAllOrgansQueryHandler{db: db}
}

// Handle executes the dump, newest listings first.
func (h GetAllOrgansQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrgansQuery,
) ([]ListListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			hospital_id,
			hospital_name,
			organ_type,
			blood_type,
			age,
			weight_kg,
			priority_status,
			availability_status,
			city,
			state,
			created_at
		FROM organ_listings
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]ListListingsQueryResponse, 0)
	for rows.Next() {
		var resp ListListingsQueryResponse
		var id, hospitalID uuid.UUID

		err = rows.Scan(
			&id,
			&hospitalID,
			&resp.HospitalName,
			&resp.OrganType,
			&resp.BloodType,
			&resp.Age,
			&resp.WeightKg,
			&resp.Priority,
			&resp.Availability,
			&resp.City,
			&resp.State,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		listingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = listingID

		ownerID, idErr := kernel.UUIDFromBytes(hospitalID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.HospitalID = ownerID

		listings = append(listings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}

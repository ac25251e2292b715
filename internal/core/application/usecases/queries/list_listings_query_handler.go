package queries

import (
	"context"
	"strings"

	"lifelink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListListingsQueryHandler serves the organ catalog. Rows come back most
// urgent first (Emergency, Critical, Urgent, then everything else) and
// newest first within the same urgency.
type ListListingsQueryHandler struct {
	db *gorm.DB
}

// NewListListingsQueryHandler creates a handler for catalog queries.
func NewListListingsQueryHandler(db *gorm.DB) ListListingsQueryHandler {
	return ListListingsQueryHandler{db: db}
}

// Handle executes the catalog query with the requested filters.
func (h ListListingsQueryHandler) Handle(
	ctx context.Context,
	query ListListingsQuery,
) ([]ListListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 7)

	if organType := query.OrganType(); organType != "" && organType != "All" {
		sql += " AND lower(organ_type) = ?"
		args = append(args, strings.ToLower(organType))
	}

	switch query.Availability() {
	case "Available":
		sql += " AND availability_status = 'Available'"
	case "Unavailable":
		sql += " AND availability_status = 'Unavailable'"
	}

	if term := strings.ToLower(strings.TrimSpace(query.SearchTerm())); term != "" {
		like := "%" + term + "%"
		sql += ` AND (
			lower(organ_type) LIKE ?
			OR lower(blood_type) LIKE ?
			OR lower(hospital_name) LIKE ?
			OR lower(city) LIKE ?
			OR lower(state) LIKE ?
		)`
		args = append(args, like, like, like, like, like)
	}

	sql += `
		ORDER BY CASE priority_status
			WHEN 'Emergency' THEN 1
			WHEN 'Critical' THEN 2
			WHEN 'Urgent' THEN 3
			ELSE 4
		END, created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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

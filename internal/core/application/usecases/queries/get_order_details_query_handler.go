package queries

import (
	"context"
	"database/sql"
	"time"

	"lifelink/internal/core/domain/model/kernel"
	"lifelink/internal/pkg/errs"
	"lifelink/internal/pkg/localtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler reads the confirmation view of a transport
// request, joining in the source listing and the assigned driver when they
// exist. Timestamps are converted to the configured display zone.
type GetOrderDetailsQueryHandler struct {
	db    *gorm.DB
	clock *localtime.Converter
}

// NewGetOrderDetailsQueryHandler creates a handler for order lookups.
func NewGetOrderDetailsQueryHandler(db *gorm.DB, clock *localtime.Converter) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db, clock: clock}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError if the
// request does not exist.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tr.id,
			tr.listing_id,
			tr.hospital,
			tr.organ_type,
			tr.origin,
			tr.destination,
			tr.contact_phone,
			tr.notes,
			tr.priority_status,
			tr.status,
			tr.created_at,
			tr.updated_at,
			ol.hospital_name AS source_hospital,
			ol.city AS source_city,
			ol.state AS source_state,
			ol.organ_type AS listing_organ_type,
			ol.blood_type AS listing_blood_type,
			d.first_name,
			d.last_name,
			d.phone AS driver_phone
		FROM transport_requests tr
		LEFT JOIN organ_listings ol ON tr.listing_id = ol.id
		LEFT JOIN drivers d ON tr.driver_id = d.id
		WHERE tr.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderDetailsQueryResponse{}, err
		}
		return GetOrderDetailsQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var resp GetOrderDetailsQueryResponse
	var id uuid.UUID
	var listingID uuid.NullUUID
	var createdAt, updatedAt time.Time
	var sourceHospital, sourceCity, sourceState sql.NullString
	var listingOrganType, listingBloodType sql.NullString
	var firstName, lastName, driverPhone sql.NullString

	err = rows.Scan(
		&id,
		&listingID,
		&resp.Hospital,
		&resp.OrganType,
		&resp.Origin,
		&resp.Destination,
		&resp.ContactPhone,
		&resp.Notes,
		&resp.Priority,
		&resp.Status,
		&createdAt,
		&updatedAt,
		&sourceHospital,
		&sourceCity,
		&sourceState,
		&listingOrganType,
		&listingBloodType,
		&firstName,
		&lastName,
		&driverPhone,
	)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.ID = orderID

	if listingID.Valid {
		lid, idErr := kernel.UUIDFromBytes(listingID.UUID[:])
		if idErr != nil {
			return GetOrderDetailsQueryResponse{}, idErr
		}
		resp.ListingID = &lid
	}

	resp.SourceHospital = sourceHospital.String
	resp.SourceCity = sourceCity.String
	resp.SourceState = sourceState.String
	resp.ListingOrganType = listingOrganType.String
	resp.ListingBloodType = listingBloodType.String

	if firstName.Valid {
		resp.DriverName = firstName.String + " " + lastName.String
		resp.DriverPhone = driverPhone.String
	}

	resp.Created = h.clock.String(&createdAt)
	resp.Updated = h.clock.String(&updatedAt)

	return resp, rows.Err()
}

package queries

import (
	"context"
	"database/sql"

	"lifelink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetHospitalBoardQueryHandler assembles the hospital dashboard with a
// handful of read queries. Outbound requests match on the requesting
// hospital's name; inbound requests match on the listing owner's name,
// since listings denormalize their hospital.
type GetHospitalBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetHospitalBoardQueryHandler creates a handler for hospital dashboards.
func NewGetHospitalBoardQueryHandler(db *gorm.DB) GetHospitalBoardQueryHandler {
	return GetHospitalBoardQueryHandler{db: db}
}

// Handle executes the dashboard queries. An unknown or absent selection
// falls back to the first hospital by name; with no hospitals registered
// the response carries an empty directory and a nil selection.
func (h GetHospitalBoardQueryHandler) Handle(
	ctx context.Context,
	query GetHospitalBoardQuery,
) (GetHospitalBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetHospitalBoardQueryResponse{}, err
	}

	resp := GetHospitalBoardQueryResponse{
		Hospitals: make([]HospitalDirectoryEntry, 0),
		Outbound:  make([]BoardOrderResponse, 0),
		Inbound:   make([]BoardOrderResponse, 0),
		Listings:  make([]ListListingsQueryResponse, 0),
	}

	if err := h.loadDirectory(ctx, &resp); err != nil {
		return GetHospitalBoardQueryResponse{}, err
	}
	if len(resp.Hospitals) == 0 {
		return resp, nil
	}

	resp.Selected = &resp.Hospitals[0]
	if selectedID := query.SelectedHospitalID(); selectedID != nil {
		for i := range resp.Hospitals {
			if resp.Hospitals[i].ID.IsEqual(*selectedID) {
				resp.Selected = &resp.Hospitals[i]
				break
			}
		}
	}

	name := resp.Selected.Name

	outbound, err := h.boardOrders(ctx, "tr.hospital = ?", name)
	if err != nil {
		return GetHospitalBoardQueryResponse{}, err
	}
	resp.Outbound = outbound

	inbound, err := h.boardOrders(ctx, "ol.hospital_name = ?", name)
	if err != nil {
		return GetHospitalBoardQueryResponse{}, err
	}
	resp.Inbound = inbound

	listings, err := h.ownListings(ctx, name)
	if err != nil {
		return GetHospitalBoardQueryResponse{}, err
	}
	resp.Listings = listings

	return resp, nil
}

func (h GetHospitalBoardQueryHandler) loadDirectory(
	ctx context.Context,
	resp *GetHospitalBoardQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, city, state, email
		FROM hospitals
		ORDER BY name ASC
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HospitalDirectoryEntry
		var id uuid.UUID

		if err = rows.Scan(&id, &entry.Name, &entry.City, &entry.State, &entry.Email); err != nil {
			return err
		}

		hospitalID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		entry.ID = hospitalID
		resp.Hospitals = append(resp.Hospitals, entry)
	}

	return rows.Err()
}

func (h GetHospitalBoardQueryHandler) boardOrders(
	ctx context.Context,
	condition string,
	name string,
) ([]BoardOrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tr.id,
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
			ol.blood_type AS listing_blood_type
		FROM transport_requests tr
		LEFT JOIN organ_listings ol ON tr.listing_id = ol.id
		WHERE `+condition+`
		ORDER BY tr.created_at DESC
	`, name).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]BoardOrderResponse, 0)
	for rows.Next() {
		var resp BoardOrderResponse
		var id uuid.UUID
		var sourceHospital, sourceCity, sourceState sql.NullString
		var listingOrganType, listingBloodType sql.NullString

		err = rows.Scan(
			&id,
			&resp.Hospital,
			&resp.OrganType,
			&resp.Origin,
			&resp.Destination,
			&resp.ContactPhone,
			&resp.Notes,
			&resp.Priority,
			&resp.Status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
			&sourceHospital,
			&sourceCity,
			&sourceState,
			&listingOrganType,
			&listingBloodType,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.SourceHospital = sourceHospital.String
		resp.SourceCity = sourceCity.String
		resp.SourceState = sourceState.String
		resp.ListingOrganType = listingOrganType.String
		resp.ListingBloodType = listingBloodType.String

		orders = append(orders, resp)
	}

	return orders, rows.Err()
}

func (h GetHospitalBoardQueryHandler) ownListings(
	ctx context.Context,
	name string,
) ([]ListListingsQueryResponse, error) {
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
		WHERE hospital_name = ?
		ORDER BY created_at DESC
	`, name).Rows()
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

	return listings, rows.Err()
}

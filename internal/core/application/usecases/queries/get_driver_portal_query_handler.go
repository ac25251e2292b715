package queries

import (
	"context"
	"database/sql"

	"lifelink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverPortalQueryHandler assembles the driver dashboard. The
// claimable pool is ordered by dispatch urgency (Emergency, Urgent,
// Critical, then everything else) and oldest first within the same
// urgency, so the longest-waiting critical transports surface on top.
type GetDriverPortalQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverPortalQueryHandler creates a handler for driver dashboards.
func NewGetDriverPortalQueryHandler(db *gorm.DB) GetDriverPortalQueryHandler {
	return GetDriverPortalQueryHandler{db: db}
}

// Handle executes the portal queries. An unknown or absent selection falls
// back to the first driver; the claimable pool is served even with no
// drivers registered.
func (h GetDriverPortalQueryHandler) Handle(
	ctx context.Context,
	query GetDriverPortalQuery,
) (GetDriverPortalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverPortalQueryResponse{}, err
	}

	resp := GetDriverPortalQueryResponse{
		Drivers:         make([]DriverDirectoryEntry, 0),
		CompletedOrders: make([]PortalOrderResponse, 0),
		AvailableOrders: make([]PortalOrderResponse, 0),
	}

	if err := h.loadDirectory(ctx, &resp); err != nil {
		return GetDriverPortalQueryResponse{}, err
	}

	if len(resp.Drivers) > 0 {
		resp.Selected = &resp.Drivers[0]
		if selectedID := query.SelectedDriverID(); selectedID != nil {
			for i := range resp.Drivers {
				if resp.Drivers[i].ID.IsEqual(*selectedID) {
					resp.Selected = &resp.Drivers[i]
					break
				}
			}
		}

		driverID := resp.Selected.ID.Bytes()

		current, err := h.portalOrders(ctx, `
			WHERE tr.driver_id = ?
			  AND tr.status IN ('Assigned', 'En-route')
			ORDER BY tr.created_at DESC
			LIMIT 1
		`, driverID)
		if err != nil {
			return GetDriverPortalQueryResponse{}, err
		}
		if len(current) > 0 {
			resp.CurrentOrder = &current[0]
		}

		completed, err := h.portalOrders(ctx, `
			WHERE tr.driver_id = ?
			  AND tr.status = 'Delivered'
			ORDER BY tr.updated_at DESC
			LIMIT 20
		`, driverID)
		if err != nil {
			return GetDriverPortalQueryResponse{}, err
		}
		resp.CompletedOrders = completed
	}

	available, err := h.portalOrders(ctx, `
		WHERE tr.status = 'Requested'
		  AND tr.driver_id IS NULL
		ORDER BY CASE tr.priority_status
			WHEN 'Emergency' THEN 1
			WHEN 'Urgent' THEN 2
			WHEN 'Critical' THEN 3
			ELSE 4
		END, tr.created_at ASC
	`)
	if err != nil {
		return GetDriverPortalQueryResponse{}, err
	}
	resp.AvailableOrders = available

	return resp, nil
}

func (h GetDriverPortalQueryHandler) loadDirectory(
	ctx context.Context,
	resp *GetDriverPortalQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, email, phone, cdl
		FROM drivers
		ORDER BY first_name, last_name
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entry DriverDirectoryEntry
		var id uuid.UUID

		err = rows.Scan(&id, &entry.FirstName, &entry.LastName, &entry.Email, &entry.Phone, &entry.CDL)
		if err != nil {
			return err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		entry.ID = driverID
		resp.Drivers = append(resp.Drivers, entry)
	}

	return rows.Err()
}

func (h GetDriverPortalQueryHandler) portalOrders(
	ctx context.Context,
	tail string,
	args ...any,
) ([]PortalOrderResponse, error) {
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
			ol.organ_type AS listing_organ_type,
			ol.blood_type AS listing_blood_type
		FROM transport_requests tr
		LEFT JOIN organ_listings ol ON tr.listing_id = ol.id
	`+tail, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]PortalOrderResponse, 0)
	for rows.Next() {
		var resp PortalOrderResponse
		var id uuid.UUID
		var sourceHospital, listingOrganType, listingBloodType sql.NullString

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
		resp.ListingOrganType = listingOrganType.String
		resp.ListingBloodType = listingBloodType.String

		orders = append(orders, resp)
	}

	return orders, rows.Err()
}

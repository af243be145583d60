package queries

import (
	"context"
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProviderBookingsQueryHandler retrieves a provider's bookings from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetProviderBookingsQueryHandler(db)
//	query, _ := NewGetProviderBookingsQuery(providerID)
//
//	bookings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get provider bookings: %v", err)
//	    return err
//	}
type GetProviderBookingsQueryHandler struct {
	db *gorm.DB
}

// NewGetProviderBookingsQueryHandler creates a handler for provider agenda queries.
// Requires a GORM database connection for query execution.
func NewGetProviderBookingsQueryHandler(db *gorm.DB) GetProviderBookingsQueryHandler {
	return GetProviderBookingsQueryHandler{db: db}
}

// Handle executes the query to retrieve all bookings for the provider.
// Results are sorted by start time so the agenda reads chronologically.
func (h GetProviderBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetProviderBookingsQuery,
) ([]GetProviderBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bookings := make([]GetProviderBookingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service_id,
			customer_id,
			starts_at,
			duration_minutes,
			price,
			status,
			rating
		FROM bookings
		WHERE provider_id = ?
		ORDER BY starts_at
	`, query.ProviderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bookingResp GetProviderBookingsQueryResponse
		var id, serviceID, customerID uuid.UUID
		var startsAt time.Time
		var status int
		var rating sql.NullInt64

		err = rows.Scan(
			&id,
			&serviceID,
			&customerID,
			&startsAt,
			&bookingResp.DurationMinutes,
			&bookingResp.Price,
			&status,
			&rating,
		)
		if err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		bookingResp.ID = bookingID

		svcID, idErr := kernel.UUIDFromBytes(serviceID[:])
		if idErr != nil {
			return nil, idErr
		}
		bookingResp.ServiceID = svcID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		bookingResp.CustomerID = custID

		bookingResp.StartsAt = startsAt
		bookingResp.Status = booking.Status(status).String()
		if rating.Valid {
			value := int(rating.Int64)
			bookingResp.Rating = &value
		}
		bookings = append(bookings, bookingResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

package rentalrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rental"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRentalRepository implements RentalRepository using GORM.
type GormRentalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRentalRepository creates a new GORM rental repository.
func NewGormRentalRepository(db *gorm.DB, tracker aggregateTracker) *GormRentalRepository {
	return &GormRentalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rental to the database.
func (r *GormRentalRepository) Add(ctx context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rental to the database.
func (r *GormRentalRepository) Update(ctx context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RentalDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rental by ID.
func (r *GormRentalRepository) Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RentalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rental", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a rental by ID. Lifecycle rules (active rentals may not be
// deleted) are enforced by the caller before reaching the repository.
func (r *GormRentalRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RentalDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rental", id.String())
	}

	return nil
}

// GetHoldingByBoxForUpdate retrieves the rentals currently holding a storage
// box and locks their rows, so concurrent rental creation against the same box
// serializes on the availability check.
func (r *GormRentalRepository) GetHoldingByBoxForUpdate(
	ctx context.Context, storageBoxID kernel.UUID,
) ([]*rental.Rental, error) {
	if err := storageBoxID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RentalDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "storage_box_id = ? AND status IN ?",
			storageBoxID.Bytes(), []int{int(rental.Pending), int(rental.Active)}).Error
	if err != nil {
		return nil, err
	}

	rentals := make([]*rental.Rental, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, aggregate)
	}

	return rentals, nil
}

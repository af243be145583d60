package boxrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storagebox"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorageBoxRepository implements StorageBoxRepository using GORM.
type GormStorageBoxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStorageBoxRepository creates a new GORM storage box repository.
func NewGormStorageBoxRepository(db *gorm.DB, tracker aggregateTracker) *GormStorageBoxRepository {
	return &GormStorageBoxRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new storage box to the database.
func (r *GormStorageBoxRepository) Add(ctx context.Context, aggregate *storagebox.StorageBox) error {
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

// Update saves an existing storage box to the database.
func (r *GormStorageBoxRepository) Update(ctx context.Context, aggregate *storagebox.StorageBox) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StorageBoxDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a storage box by ID.
func (r *GormStorageBoxRepository) Get(ctx context.Context, id kernel.UUID) (*storagebox.StorageBox, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StorageBoxDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storageBox", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a storage box by ID and locks its row for the duration
// of the transaction. Rental creation uses this to make the availability check
// and the status flip atomic.
func (r *GormStorageBoxRepository) GetForUpdate(
	ctx context.Context, id kernel.UUID,
) (*storagebox.StorageBox, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StorageBoxDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storageBox", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

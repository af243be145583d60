package contractrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/contract"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM.
type GormContractRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContractRepository creates a new GORM contract repository.
func NewGormContractRepository(db *gorm.DB, tracker aggregateTracker) *GormContractRepository {
	return &GormContractRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new contract to the database.
func (r *GormContractRepository) Add(ctx context.Context, aggregate *contract.Contract) error {
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

// Update saves an existing contract to the database. All columns are written:
// a draft edit may legitimately carry zero values (a contract value of 0),
// which struct-based Updates would otherwise skip.
func (r *GormContractRepository) Update(ctx context.Context, aggregate *contract.Contract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ContractDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a contract by ID.
func (r *GormContractRepository) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contract", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a contract by ID. Lifecycle rules (only drafts may be deleted)
// are enforced by the caller before reaching the repository.
func (r *GormContractRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ContractDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("contract", id.String())
	}

	return nil
}

// GetActiveExpiredBefore retrieves active contracts whose expiry date has
// passed the given deadline. Used by the expiry sweep.
func (r *GormContractRepository) GetActiveExpiredBefore(
	ctx context.Context, deadline time.Time,
) ([]*contract.Contract, error) {
	var dtos []ContractDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND expires_at IS NOT NULL AND expires_at < ?",
			int(contract.Active), deadline).Error
	if err != nil {
		return nil, err
	}

	contracts := make([]*contract.Contract, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, aggregate)
	}

	return contracts, nil
}

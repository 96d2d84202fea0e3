package driverrepo

import (
	"context"
	"errors"

	"gasline/internal/core/domain/model/driver"
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver roster entry to the user table.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves availability changes for an existing driver.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ? AND role = ?", dto.ID, driverRole).
		Updates(map[string]any{
			"name":      dto.Name,
			"phone":     dto.Phone,
			"available": dto.Available,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a driver by identity. Users holding a different role are
// reported as not found, never surfaced as drivers.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND role = ?", id.Bytes(), driverRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves every driver free to take an assignment, sorted
// by name for stable dispatch UI ordering.
func (r *GormDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "role = ? AND available", driverRole).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, dErr := toDomain(dto)
		if dErr != nil {
			return nil, dErr
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

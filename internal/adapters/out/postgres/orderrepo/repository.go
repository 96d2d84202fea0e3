package orderrepo

import (
	"context"
	"errors"
	"time"

	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"
	"gasline/internal/core/ports"
	"gasline/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
// Update is a conditional write: the row is mutated only while its stored
// status still matches what the caller read, which is how contested
// assignments are arbitrated without in-process locks.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items and initial history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order, conditioned on the stored status still
// being expectedStatus. Zero affected rows means another writer moved the
// order first (or the order is gone); either way the caller's read is stale
// and ports.ErrConcurrencyConflict is returned with the store untouched.
//
// Line items are immutable and never rewritten. History rows are appended
// with a do-nothing conflict clause, so re-persisting already stored entries
// is harmless.
func (r *GormOrderRepository) Update(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]any{
			"status":         dto.Status,
			"admin_approved": dto.AdminApproved,
			"driver_id":      dto.DriverID,
			"driver_name":    dto.DriverName,
			"driver_phone":   dto.DriverPhone,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrConcurrencyConflict
	}

	if len(dto.History) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "order_id"}, {Name: "seq"}},
				DoNothing: true,
			}).
			Create(&dto.History).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its line items and history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloaded(ctx).Order("created_at DESC").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllInStatus retrieves all orders resting in the given status, newest first.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Order("created_at DESC").
		Find(&dtos, "status = ?", int(status)).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("idx")
		}).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		})
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

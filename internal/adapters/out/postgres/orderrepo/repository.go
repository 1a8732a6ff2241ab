package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QueueNumberSequence is the PostgreSQL sequence queue numbers are drawn from.
const QueueNumberSequence = "order_queue_number_seq"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. Pass the
// transaction handle to make its operations part of a unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add reserves the pickup code and saves the order with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	code := PickupCodeDTO{Code: dto.PickupCode, OrderID: dto.ID, CreatedAt: dto.CreatedAt}
	if err := db.Create(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("pickup code", err)
		}
		return err
	}

	if err := db.Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("queue number", err)
		}
		return err
	}

	return nil
}

// Update writes the mutable columns and replaces the order lines.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":               dto.Status,
		"notes":                dto.Notes,
		"total_price_cents":    dto.TotalPriceCents,
		"total_estimated_time": dto.TotalEstimatedTime,
		"updated_at":           dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	return db.Create(&dto.Items).Error
}

// Delete removes the items and then the order. The pickup code row stays.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order by ID and holds a row lock on it until the
// surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err := r.loadItems(ctx, []*OrderDTO{&dto}); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

// GetByPickupCode retrieves the order holding code.
func (r *GormOrderRepository) GetByPickupCode(ctx context.Context, code string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "pickup_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup code", code)
		}
		return nil, err
	}

	if err := r.loadItems(ctx, []*OrderDTO{&dto}); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

// PickupCodeExists looks the code up in the reservation ledger.
func (r *GormOrderRepository) PickupCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PickupCodeDTO{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAllActive returns orders that still occupy the queue, oldest queue number first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	active := order.ActiveStatuses()
	names := make([]string, 0, len(active))
	for _, s := range active {
		names = append(names, s.String())
	}

	return r.find(ctx, r.db.WithContext(ctx).
		Where("status IN ?", names).
		Order("queue_number ASC"))
}

func (r *GormOrderRepository) GetAllByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, queue_number DESC"))
}

func (r *GormOrderRepository) GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("updated_at DESC, queue_number DESC"))
}

func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, r.db.WithContext(ctx).Order("created_at DESC, queue_number DESC"))
}

// NextQueueNumber draws from the queue sequence. nextval is not transactional,
// so numbers drawn by rolled back transactions are skipped rather than reused.
func (r *GormOrderRepository) NextQueueNumber(ctx context.Context) (int, error) {
	var next int64
	if err := r.db.WithContext(ctx).Raw(fmt.Sprintf("SELECT nextval('%s')", QueueNumberSequence)).Scan(&next).Error; err != nil {
		return 0, err
	}
	return int(next), nil
}

func (r *GormOrderRepository) find(ctx context.Context, query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	refs := make([]*OrderDTO, 0, len(dtos))
	for i := range dtos {
		refs = append(refs, &dtos[i])
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, err
	}

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

// loadItems fills Items of every dto with one query. It runs separately from
// the order query so that a FOR UPDATE lock is only taken on the orders rows.
func (r *GormOrderRepository) loadItems(ctx context.Context, dtos []*OrderDTO) error {
	if len(dtos) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*OrderDTO, len(dtos))
	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
		ids = append(ids, dto.ID)
	}

	var items []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", ids).
		Order("order_id, position").
		Find(&items).Error; err != nil {
		return err
	}

	for _, item := range items {
		if dto, ok := byID[item.OrderID]; ok {
			dto.Items = append(dto.Items, item)
		}
	}
	return nil
}

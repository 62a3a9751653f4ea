package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/order"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements order.Repository using GORM. The finance
// core only reads orders; writing belongs to the order service.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListItems returns the line items of an order
func (r *GormOrderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*order.OrderItem, error) {
	var itemModels []models.OrderItemModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]*order.OrderItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToDomain()
	}
	return items, nil
}

// DebtBearingTotal sums the non-returned value of every line item
func (r *GormOrderRepository) DebtBearingTotal(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.OrderItemModel{}).
		Select("COALESCE(SUM(price * (quantity - returned_qty)), 0)").
		Where("order_id = ?", orderID).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// CategoryTotal sums the non-returned value of the order's line items
// tagged with the given category
func (r *GormOrderRepository) CategoryTotal(ctx context.Context, orderID uuid.UUID, categoryID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.OrderItemModel{}).
		Select("COALESCE(SUM(price * (quantity - returned_qty)), 0)").
		Where("order_id = ? AND category_id = ?", orderID, categoryID).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/persistence/models"
)

// GormCashierRepository implements ledger.CashierRepository using GORM
type GormCashierRepository struct {
	db *gorm.DB
}

// NewGormCashierRepository creates a new GormCashierRepository
func NewGormCashierRepository(db *gorm.DB) *GormCashierRepository {
	return &GormCashierRepository{db: db}
}

// FindByMethod finds the cashier account of a payment method
func (r *GormCashierRepository) FindByMethod(ctx context.Context, methodID uuid.UUID) (*ledger.Cashier, error) {
	var model models.CashierModel
	if err := r.db.WithContext(ctx).
		Where("method_id = ?", methodID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOrCreateByMethodForUpdate returns the cashier account of a method
// holding its row lock, creating the row lazily on first use. The unique
// index on method_id resolves a concurrent first-payment race: the losing
// insert falls back to locking the winner's row.
func (r *GormCashierRepository) FindOrCreateByMethodForUpdate(ctx context.Context, methodID uuid.UUID) (*ledger.Cashier, error) {
	cashier, err := r.findByMethodForUpdate(ctx, methodID)
	if err == nil {
		return cashier, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	fresh, err := ledger.NewCashier(methodID, "")
	if err != nil {
		return nil, err
	}
	model := models.CashierModelFromDomain(fresh)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "method_id"}}, DoNothing: true}).
		Create(model).Error; err != nil {
		return nil, err
	}
	return r.findByMethodForUpdate(ctx, methodID)
}

func (r *GormCashierRepository) findByMethodForUpdate(ctx context.Context, methodID uuid.UUID) (*ledger.Cashier, error) {
	var model models.CashierModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("method_id = ?", methodID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all cashier accounts
func (r *GormCashierRepository) List(ctx context.Context) ([]*ledger.Cashier, error) {
	var cashierModels []models.CashierModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&cashierModels).Error; err != nil {
		return nil, err
	}
	return cashierModelsToDomain(cashierModels), nil
}

func cashierModelsToDomain(cashierModels []models.CashierModel) []*ledger.Cashier {
	cashiers := make([]*ledger.Cashier, len(cashierModels))
	for i := range cashierModels {
		cashiers[i] = cashierModels[i].ToDomain()
	}
	return cashiers
}

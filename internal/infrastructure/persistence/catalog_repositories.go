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

// GormPaymentMethodRepository implements ledger.PaymentMethodRepository
type GormPaymentMethodRepository struct {
	db *gorm.DB
}

// NewGormPaymentMethodRepository creates a new GormPaymentMethodRepository
func NewGormPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{db: db}
}

// Create inserts a new payment method
func (r *GormPaymentMethodRepository) Create(ctx context.Context, method *ledger.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(models.PaymentMethodModelFromDomain(method)).Error
}

// FindByID finds a payment method by ID
func (r *GormPaymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.PaymentMethod, error) {
	var model models.PaymentMethodModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a payment method by ID holding its row lock
func (r *GormPaymentMethodRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.PaymentMethod, error) {
	var model models.PaymentMethodModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListAllForUpdate locks every payment method row in id order. Shift close
// uses it as a fence: payment recording locks its method row, and method
// rows always pre-exist payments, so a concurrent create serializes behind
// the close even when the method's cashier row is not provisioned yet.
func (r *GormPaymentMethodRepository) ListAllForUpdate(ctx context.Context) ([]*ledger.PaymentMethod, error) {
	var methodModels []models.PaymentMethodModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id ASC").
		Find(&methodModels).Error; err != nil {
		return nil, err
	}
	methods := make([]*ledger.PaymentMethod, len(methodModels))
	for i := range methodModels {
		methods[i] = methodModels[i].ToDomain()
	}
	return methods, nil
}

// List returns all payment methods
func (r *GormPaymentMethodRepository) List(ctx context.Context) ([]*ledger.PaymentMethod, error) {
	var methodModels []models.PaymentMethodModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&methodModels).Error; err != nil {
		return nil, err
	}
	methods := make([]*ledger.PaymentMethod, len(methodModels))
	for i := range methodModels {
		methods[i] = methodModels[i].ToDomain()
	}
	return methods, nil
}

// GormOutlayItemRepository implements ledger.OutlayItemRepository
type GormOutlayItemRepository struct {
	db *gorm.DB
}

// NewGormOutlayItemRepository creates a new GormOutlayItemRepository
func NewGormOutlayItemRepository(db *gorm.DB) *GormOutlayItemRepository {
	return &GormOutlayItemRepository{db: db}
}

// Create inserts a new outlay item
func (r *GormOutlayItemRepository) Create(ctx context.Context, item *ledger.OutlayItem) error {
	return r.db.WithContext(ctx).Create(models.OutlayItemModelFromDomain(item)).Error
}

// FindByID finds an outlay item by ID
func (r *GormOutlayItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.OutlayItem, error) {
	var model models.OutlayItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all outlay items
func (r *GormOutlayItemRepository) List(ctx context.Context) ([]*ledger.OutlayItem, error) {
	var itemModels []models.OutlayItemModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]*ledger.OutlayItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToDomain()
	}
	return items, nil
}

// GormIncomeItemRepository implements ledger.IncomeItemRepository
type GormIncomeItemRepository struct {
	db *gorm.DB
}

// NewGormIncomeItemRepository creates a new GormIncomeItemRepository
func NewGormIncomeItemRepository(db *gorm.DB) *GormIncomeItemRepository {
	return &GormIncomeItemRepository{db: db}
}

// Create inserts a new income item
func (r *GormIncomeItemRepository) Create(ctx context.Context, item *ledger.IncomeItem) error {
	return r.db.WithContext(ctx).Create(models.IncomeItemModelFromDomain(item)).Error
}

// FindByID finds an income item by ID
func (r *GormIncomeItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.IncomeItem, error) {
	var model models.IncomeItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all income items
func (r *GormIncomeItemRepository) List(ctx context.Context) ([]*ledger.IncomeItem, error) {
	var itemModels []models.IncomeItemModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]*ledger.IncomeItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToDomain()
	}
	return items, nil
}

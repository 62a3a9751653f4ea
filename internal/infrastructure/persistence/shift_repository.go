package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/persistence/models"
)

// GormShiftRepository implements shift.Repository using GORM
type GormShiftRepository struct {
	db *gorm.DB
}

// NewGormShiftRepository creates a new GormShiftRepository
func NewGormShiftRepository(db *gorm.DB) *GormShiftRepository {
	return &GormShiftRepository{db: db}
}

// Create inserts a new shift. A second open shift for the same operator
// trips the partial unique index and surfaces as ErrAlreadyExists.
func (r *GormShiftRepository) Create(ctx context.Context, s *shift.CashierShift) error {
	if err := r.db.WithContext(ctx).Create(models.CashierShiftModelFromDomain(s)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID finds a shift by ID
func (r *GormShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*shift.CashierShift, error) {
	var model models.CashierShiftModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOpenByOperator returns the operator's open shift or nil if none
func (r *GormShiftRepository) FindOpenByOperator(ctx context.Context, operatorID uuid.UUID) (*shift.CashierShift, error) {
	var model models.CashierShiftModel
	if err := r.db.WithContext(ctx).
		Where("operator_id = ? AND ended_at IS NULL", operatorID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOpenByOperatorForUpdate returns the operator's open shift holding its
// row lock, or nil if none
func (r *GormShiftRepository) FindOpenByOperatorForUpdate(ctx context.Context, operatorID uuid.UUID) (*shift.CashierShift, error) {
	var model models.CashierShiftModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("operator_id = ? AND ended_at IS NULL", operatorID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the current state of an existing shift
func (r *GormShiftRepository) Save(ctx context.Context, s *shift.CashierShift) error {
	return r.db.WithContext(ctx).Save(models.CashierShiftModelFromDomain(s)).Error
}

// ListByOperator lists an operator's shifts newest first
func (r *GormShiftRepository) ListByOperator(ctx context.Context, operatorID uuid.UUID) ([]*shift.CashierShift, error) {
	var shiftModels []models.CashierShiftModel
	if err := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		Order("started_at DESC").
		Find(&shiftModels).Error; err != nil {
		return nil, err
	}
	shifts := make([]*shift.CashierShift, len(shiftModels))
	for i := range shiftModels {
		shifts[i] = shiftModels[i].ToDomain()
	}
	return shifts, nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/persistence/models"
)

// GormPaymentRepository implements ledger.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Create inserts a new payment
func (r *GormPaymentRepository) Create(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a payment by ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a payment by ID holding its row lock
func (r *GormPaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	var model models.PaymentModel
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

// Save persists the current state of an existing payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// List returns payments matching the filter with a total count
func (r *GormPaymentRepository) List(ctx context.Context, filter ledger.PaymentFilter) ([]*ledger.Payment, int64, error) {
	var paymentModels []models.PaymentModel
	var total int64

	base := r.db.WithContext(ctx).Model(&models.PaymentModel{})
	base = applyPaymentFilter(base, filter)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := applyPaymentFilter(r.db.WithContext(ctx).Model(&models.PaymentModel{}), filter).
		Order("created_at DESC, id DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, 0, err
	}

	payments := make([]*ledger.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, total, nil
}

func applyPaymentFilter(query *gorm.DB, filter ledger.PaymentFilter) *gorm.DB {
	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}
	if filter.Direction != nil {
		query = query.Where("direction = ?", *filter.Direction)
	}
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.ProviderID != nil {
		query = query.Where("provider_id = ?", *filter.ProviderID)
	}
	if filter.WorkerID != nil {
		query = query.Where("worker_id = ?", *filter.WorkerID)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}
	return query
}

// ListDebtByOrder returns the non-deleted debt-settling income payments of
// an order in waterfall order, created_at ascending with the time-ordered
// id as tie-break.
func (r *GormPaymentRepository) ListDebtByOrder(ctx context.Context, orderID uuid.UUID) ([]*ledger.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND kind = ? AND direction = ? AND is_debt = ? AND is_deleted = ?",
			orderID, ledger.KindOrder, ledger.DirectionIncome, true, false).
		Order("created_at ASC, id ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]*ledger.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments, nil
}

// windowTotalsRow receives the aggregate projection of WindowTotals
type windowTotalsRow struct {
	Income      decimal.Decimal
	Outcome     decimal.Decimal
	CashIncome  decimal.Decimal
	CashOutcome decimal.Decimal
}

// WindowTotals aggregates non-deleted payments inside [Start, End) into the
// four shift totals. Cash-only sums join the payment method category.
func (r *GormPaymentRepository) WindowTotals(ctx context.Context, window ledger.TotalsWindow) (ledger.WindowTotals, error) {
	var row windowTotalsRow

	query := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select(`
			COALESCE(SUM(CASE WHEN payments.direction = ? THEN payments.amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN payments.direction = ? THEN payments.amount ELSE 0 END), 0) AS outcome,
			COALESCE(SUM(CASE WHEN payments.direction = ? AND payment_methods.category = ? THEN payments.amount ELSE 0 END), 0) AS cash_income,
			COALESCE(SUM(CASE WHEN payments.direction = ? AND payment_methods.category = ? THEN payments.amount ELSE 0 END), 0) AS cash_outcome`,
			ledger.DirectionIncome,
			ledger.DirectionOutcome,
			ledger.DirectionIncome, ledger.MethodCategoryCash,
			ledger.DirectionOutcome, ledger.MethodCategoryCash,
		).
		Joins("JOIN payment_methods ON payment_methods.id = payments.method_id").
		Where("payments.is_deleted = ?", false).
		Where("payments.created_at >= ? AND payments.created_at < ?", window.Start, window.End)

	if window.CreatedBy != nil {
		query = query.Where("payments.created_by = ?", *window.CreatedBy)
	}

	if err := query.Scan(&row).Error; err != nil {
		return ledger.WindowTotals{}, err
	}
	return ledger.WindowTotals{
		Income:      row.Income,
		Outcome:     row.Outcome,
		CashIncome:  row.CashIncome,
		CashOutcome: row.CashOutcome,
	}, nil
}

package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/persistence/models"
)

// GormAccountEntryRepository implements ledger.AccountEntryRepository using
// GORM. The table is append-only: entries are inserted and summed, never
// updated or removed.
type GormAccountEntryRepository struct {
	db *gorm.DB
}

// NewGormAccountEntryRepository creates a new GormAccountEntryRepository
func NewGormAccountEntryRepository(db *gorm.DB) *GormAccountEntryRepository {
	return &GormAccountEntryRepository{db: db}
}

// Append inserts the given entries
func (r *GormAccountEntryRepository) Append(ctx context.Context, entries []ledger.AccountEntry) error {
	if len(entries) == 0 {
		return nil
	}
	entryModels := make([]*models.AccountEntryModel, len(entries))
	for i := range entries {
		entryModels[i] = models.AccountEntryModelFromDomain(entries[i])
	}
	return r.db.WithContext(ctx).Create(entryModels).Error
}

// netRow receives one per-account aggregate row
type netRow struct {
	AccountType ledger.AccountType
	AccountID   uuid.UUID
	Amount      decimal.Decimal
}

// NetByPayment sums a payment's entries per touched account
func (r *GormAccountEntryRepository) NetByPayment(ctx context.Context, paymentID uuid.UUID) ([]ledger.AccountNet, error) {
	var rows []netRow
	if err := r.db.WithContext(ctx).
		Model(&models.AccountEntryModel{}).
		Select("account_type, account_id, COALESCE(SUM(amount), 0) AS amount").
		Where("payment_id = ?", paymentID).
		Group("account_type, account_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	nets := make([]ledger.AccountNet, len(rows))
	for i, row := range rows {
		nets[i] = ledger.AccountNet{
			AccountType: row.AccountType,
			AccountID:   row.AccountID,
			Amount:      row.Amount,
		}
	}
	return nets, nil
}

// Balance folds all entries of one account into its current balance
func (r *GormAccountEntryRepository) Balance(ctx context.Context, accountType ledger.AccountType, accountID uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.AccountEntryModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("account_type = ? AND account_id = ?", accountType, accountID).
		Scan(&balance).Error; err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// ListByPayment returns a payment's entries in insertion order
func (r *GormAccountEntryRepository) ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]ledger.AccountEntry, error) {
	var entryModels []models.AccountEntryModel
	if err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("created_at ASC, id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]ledger.AccountEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries, nil
}

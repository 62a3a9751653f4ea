package persistence

import (
	"context"

	"gorm.io/gorm"

	appledger "github.com/Wh0mever/Palma-backend-sub000/internal/application/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/order"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/partner"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
)

// GormLedgerTransactionScope implements the ledger TransactionScope using
// GORM transactions. Every repository it hands out shares one transaction,
// so the payment row, its account entries and the locked counter-account
// rows commit or roll back together.
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GormLedgerTransactionScope
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TxRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepositories{tx: tx})
	})
}

type gormTxRepositories struct {
	tx *gorm.DB
}

func (r *gormTxRepositories) Payments() ledger.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

func (r *gormTxRepositories) Entries() ledger.AccountEntryRepository {
	return NewGormAccountEntryRepository(r.tx)
}

func (r *gormTxRepositories) Cashiers() ledger.CashierRepository {
	return NewGormCashierRepository(r.tx)
}

func (r *gormTxRepositories) Methods() ledger.PaymentMethodRepository {
	return NewGormPaymentMethodRepository(r.tx)
}

func (r *gormTxRepositories) OutlayItems() ledger.OutlayItemRepository {
	return NewGormOutlayItemRepository(r.tx)
}

func (r *gormTxRepositories) IncomeItems() ledger.IncomeItemRepository {
	return NewGormIncomeItemRepository(r.tx)
}

func (r *gormTxRepositories) Providers() partner.ProviderRepository {
	return NewGormProviderRepository(r.tx)
}

func (r *gormTxRepositories) Workers() partner.WorkerRepository {
	return NewGormWorkerRepository(r.tx)
}

func (r *gormTxRepositories) Orders() order.Repository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTxRepositories) Shifts() shift.Repository {
	return NewGormShiftRepository(r.tx)
}

// Ensure GormLedgerTransactionScope implements TransactionScope
var _ appledger.TransactionScope = (*GormLedgerTransactionScope)(nil)

// Ensure gormTxRepositories implements TxRepositories
var _ appledger.TxRepositories = (*gormTxRepositories)(nil)

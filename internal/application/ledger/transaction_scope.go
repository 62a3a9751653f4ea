package ledger

import (
	"context"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/order"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/partner"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
)

// TransactionScope provides transactional access to the finance
// repositories. Every mutating ledger sequence runs through Execute so the
// payment row, its account entries and the locked counter-account rows
// commit or roll back together. Partial application is the bug class this
// boundary exists to prevent.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TxRepositories) error) error
}

// TxRepositories provides access to all finance repositories within a
// transaction. All repositories returned share the same underlying
// database transaction.
type TxRepositories interface {
	Payments() ledger.PaymentRepository
	Entries() ledger.AccountEntryRepository
	Cashiers() ledger.CashierRepository
	Methods() ledger.PaymentMethodRepository
	OutlayItems() ledger.OutlayItemRepository
	IncomeItems() ledger.IncomeItemRepository
	Providers() partner.ProviderRepository
	Workers() partner.WorkerRepository
	Orders() order.Repository
	Shifts() shift.Repository
}

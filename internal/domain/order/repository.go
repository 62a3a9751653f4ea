package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals is the catalog-side contract the debt waterfall consumes. Both
// queries treat returns as deductions: a fully returned line contributes
// nothing.
type Totals interface {
	// DebtBearingTotal returns the order's full invoice value that debt is
	// measured against.
	DebtBearingTotal(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)
	// CategoryTotal returns the invoice value attributable to one
	// category: non-returned category-tagged line items minus returns.
	CategoryTotal(ctx context.Context, orderID uuid.UUID, categoryID uuid.UUID) (decimal.Decimal, error)
}

// Repository persists orders. The ledger only reads them.
type Repository interface {
	Totals
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListItems(ctx context.Context, orderID uuid.UUID) ([]*OrderItem, error)
}

package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentFilter carries list filtering and pagination options
type PaymentFilter struct {
	Kind           *PaymentKind
	Direction      *PaymentDirection
	OrderID        *uuid.UUID
	ProviderID     *uuid.UUID
	WorkerID       *uuid.UUID
	CreatedBy      *uuid.UUID
	From           *time.Time
	To             *time.Time
	IncludeDeleted bool
	Page           int
	PageSize       int
}

// TotalsWindow bounds a shift aggregation: the half-open interval
// [Start, End), optionally restricted to payments created by one operator.
type TotalsWindow struct {
	Start     time.Time
	End       time.Time
	CreatedBy *uuid.UUID
}

// WindowTotals holds the four sums a shift close freezes
type WindowTotals struct {
	Income      decimal.Decimal
	Outcome     decimal.Decimal
	CashIncome  decimal.Decimal
	CashOutcome decimal.Decimal
}

// PaymentRepository persists payments
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	// FindByIDForUpdate loads the payment holding a row lock for the
	// duration of the surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Payment, error)
	Save(ctx context.Context, payment *Payment) error
	List(ctx context.Context, filter PaymentFilter) ([]*Payment, int64, error)
	// ListDebtByOrder returns the non-deleted debt-settling income payments
	// of an order ordered by (created_at ASC, id ASC). Back-dated payments
	// may share a timestamp; ids are time-ordered UUIDv7, so the tie-break
	// follows insertion order.
	ListDebtByOrder(ctx context.Context, orderID uuid.UUID) ([]*Payment, error)
	// WindowTotals aggregates non-deleted payments inside the window into
	// overall and cash-only income/outcome sums.
	WindowTotals(ctx context.Context, window TotalsWindow) (WindowTotals, error)
}

// AccountEntryRepository persists the append-only account entry ledger
type AccountEntryRepository interface {
	Append(ctx context.Context, entries []AccountEntry) error
	// NetByPayment sums a payment's entries per touched account. A payment
	// whose effect has been fully reversed nets to zero rows or zero
	// amounts.
	NetByPayment(ctx context.Context, paymentID uuid.UUID) ([]AccountNet, error)
	// Balance folds all entries of one account into its current balance
	Balance(ctx context.Context, accountType AccountType, accountID uuid.UUID) (decimal.Decimal, error)
	ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]AccountEntry, error)
}

// CashierRepository persists cash register accounts
type CashierRepository interface {
	FindByMethod(ctx context.Context, methodID uuid.UUID) (*Cashier, error)
	// FindOrCreateByMethodForUpdate returns the cashier account of a
	// method, creating it lazily on first use, and holds its row lock for
	// the duration of the surrounding transaction.
	FindOrCreateByMethodForUpdate(ctx context.Context, methodID uuid.UUID) (*Cashier, error)
	List(ctx context.Context) ([]*Cashier, error)
}

// PaymentMethodRepository persists payment methods
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *PaymentMethod) error
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentMethod, error)
	// FindByIDForUpdate loads the method holding its row lock. Payment
	// recording locks the method row so it serializes with a shift close
	// in progress.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*PaymentMethod, error)
	// ListAllForUpdate locks every method row in id order. Shift close
	// uses it as a fence against concurrent payment recording: method rows
	// always pre-exist payments, unlike lazily provisioned cashier rows.
	ListAllForUpdate(ctx context.Context) ([]*PaymentMethod, error)
	List(ctx context.Context) ([]*PaymentMethod, error)
}

// OutlayItemRepository persists outlay items
type OutlayItemRepository interface {
	Create(ctx context.Context, item *OutlayItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*OutlayItem, error)
	List(ctx context.Context) ([]*OutlayItem, error)
}

// IncomeItemRepository persists income items
type IncomeItemRepository interface {
	Create(ctx context.Context, item *IncomeItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*IncomeItem, error)
	List(ctx context.Context) ([]*IncomeItem, error)
}

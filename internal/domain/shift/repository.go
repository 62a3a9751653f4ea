package shift

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists cashier shifts
type Repository interface {
	Create(ctx context.Context, shift *CashierShift) error
	FindByID(ctx context.Context, id uuid.UUID) (*CashierShift, error)
	// FindOpenByOperator returns the operator's single open shift or nil.
	// At most one open shift exists per operator.
	FindOpenByOperator(ctx context.Context, operatorID uuid.UUID) (*CashierShift, error)
	// FindOpenByOperatorForUpdate additionally holds the row lock for the
	// duration of the surrounding transaction.
	FindOpenByOperatorForUpdate(ctx context.Context, operatorID uuid.UUID) (*CashierShift, error)
	Save(ctx context.Context, shift *CashierShift) error
	ListByOperator(ctx context.Context, operatorID uuid.UUID) ([]*CashierShift, error)
}

package shift

import (
	"fmt"
	"time"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StateError reports a shift operation attempted in the wrong state:
// opening while a shift is already open, or closing with none open. It is a
// normal business condition surfaced to the operator, not a system failure.
type StateError struct {
	Code    string
	Message string
}

// Error implements the error interface
func (e *StateError) Error() string {
	return e.Message
}

// NewAlreadyOpenError reports an operator who already has an open shift
func NewAlreadyOpenError(operatorID uuid.UUID) *StateError {
	return &StateError{
		Code:    "SHIFT_ALREADY_OPEN",
		Message: fmt.Sprintf("Operator %s already has an open shift", operatorID),
	}
}

// NewNoOpenShiftError reports an operator with no open shift to close
func NewNoOpenShiftError(operatorID uuid.UUID) *StateError {
	return &StateError{
		Code:    "SHIFT_NOT_OPEN",
		Message: fmt.Sprintf("Operator %s has no open shift", operatorID),
	}
}

// CashierShift is one operator's accountability window over the register.
// It is OPEN from creation until Close freezes the four totals; the
// OPEN->CLOSED transition is one-way and happens exactly once. The frozen
// snapshot is a point-in-time report: payments edited after close do not
// recompute it.
type CashierShift struct {
	shared.BaseEntity
	OperatorID     uuid.UUID
	StartedAt      time.Time
	EndedAt        *time.Time
	ClosedBy       *uuid.UUID
	OverallIncome  decimal.Decimal
	OverallOutcome decimal.Decimal
	CashIncome     decimal.Decimal
	CashOutcome    decimal.Decimal
}

// Open creates a new open shift for an operator
func Open(operatorID uuid.UUID) (*CashierShift, error) {
	if operatorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OPERATOR", "Operator ID is required")
	}
	s := &CashierShift{
		BaseEntity:     shared.NewBaseEntity(),
		OperatorID:     operatorID,
		StartedAt:      time.Now(),
		OverallIncome:  decimal.Zero,
		OverallOutcome: decimal.Zero,
		CashIncome:     decimal.Zero,
		CashOutcome:    decimal.Zero,
	}
	return s, nil
}

// IsOpen returns true until the shift has been closed
func (s *CashierShift) IsOpen() bool {
	return s.EndedAt == nil
}

// Close freezes the aggregated totals onto the shift and stamps the end
// time and closing operator. Closing an already-closed shift fails; the
// snapshot is never recomputed.
func (s *CashierShift) Close(totals ledger.WindowTotals, closedBy uuid.UUID, endedAt time.Time) error {
	if !s.IsOpen() {
		return shared.NewDomainError("INVALID_STATE", "Shift is already closed")
	}
	if closedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Closing user ID is required")
	}
	if endedAt.Before(s.StartedAt) {
		return shared.NewDomainError("INVALID_END_TIME", "Shift cannot end before it started")
	}

	s.OverallIncome = totals.Income
	s.OverallOutcome = totals.Outcome
	s.CashIncome = totals.CashIncome
	s.CashOutcome = totals.CashOutcome
	s.EndedAt = &endedAt
	s.ClosedBy = &closedBy
	s.UpdatedAt = time.Now()
	return nil
}

// TotalProfit returns overall income minus overall outcome. It may be
// negative.
func (s *CashierShift) TotalProfit() decimal.Decimal {
	return s.OverallIncome.Sub(s.OverallOutcome)
}

// TotalProfitCash returns the cash-only income minus cash-only outcome
func (s *CashierShift) TotalProfitCash() decimal.Decimal {
	return s.CashIncome.Sub(s.CashOutcome)
}

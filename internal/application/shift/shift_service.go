package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appledger "github.com/Wh0mever/Palma-backend-sub000/internal/application/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
)

// Service manages cashier shifts: one open window per operator, closed into
// a frozen snapshot of the ledger totals over that window.
type Service struct {
	scope     appledger.TransactionScope
	shiftRepo shift.Repository
	logger    *zap.Logger
}

// NewService creates a new shift Service
func NewService(scope appledger.TransactionScope, shiftRepo shift.Repository, logger *zap.Logger) *Service {
	return &Service{
		scope:     scope,
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// CloseOptions controls the close aggregation
type CloseOptions struct {
	// OwnPaymentsOnly restricts the frozen totals to payments created by
	// the shift operator instead of all payments in the window.
	OwnPaymentsOnly bool
}

// Open starts a new shift for the operator. An operator with an open shift
// gets a StateError and the existing shift stays untouched.
func (s *Service) Open(ctx context.Context, operatorID uuid.UUID) (*shift.CashierShift, error) {
	var opened *shift.CashierShift
	err := s.scope.Execute(ctx, func(repos appledger.TxRepositories) error {
		existing, err := repos.Shifts().FindOpenByOperator(ctx, operatorID)
		if err != nil {
			return fmt.Errorf("open shift lookup failed: %w", err)
		}
		if existing != nil {
			return shift.NewAlreadyOpenError(operatorID)
		}
		sh, err := shift.Open(operatorID)
		if err != nil {
			return err
		}
		if err := repos.Shifts().Create(ctx, sh); err != nil {
			// A concurrent Open for the same operator can slip past the
			// lookup; the partial unique index on open shifts rejects the
			// loser here.
			if errors.Is(err, shared.ErrAlreadyExists) {
				return shift.NewAlreadyOpenError(operatorID)
			}
			return fmt.Errorf("shift insert failed: %w", err)
		}
		opened = sh
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("shift opened",
		zap.String("shift_id", opened.ID.String()),
		zap.String("operator_id", operatorID.String()))
	return opened, nil
}

// Close locates the operator's open shift, aggregates the ledger over
// [start, now) and freezes the four totals. The whole sequence runs in one
// transaction that locks the shift row and every payment method row, so no
// payment can be recorded between the aggregate read and the snapshot write:
// payment creation locks its method row and therefore serializes behind the
// close. Method rows always exist before any payment references them, which
// is not true of the lazily provisioned cashier rows.
func (s *Service) Close(ctx context.Context, operatorID, closedBy uuid.UUID, opts CloseOptions) (*shift.CashierShift, error) {
	var closed *shift.CashierShift
	err := s.scope.Execute(ctx, func(repos appledger.TxRepositories) error {
		open, err := repos.Shifts().FindOpenByOperatorForUpdate(ctx, operatorID)
		if err != nil {
			return fmt.Errorf("open shift lookup failed: %w", err)
		}
		if open == nil {
			return shift.NewNoOpenShiftError(operatorID)
		}

		if _, err := repos.Methods().ListAllForUpdate(ctx); err != nil {
			return fmt.Errorf("method fence failed: %w", err)
		}

		now := time.Now()
		window := ledger.TotalsWindow{Start: open.StartedAt, End: now}
		if opts.OwnPaymentsOnly {
			window.CreatedBy = &operatorID
		}
		totals, err := repos.Payments().WindowTotals(ctx, window)
		if err != nil {
			return fmt.Errorf("window aggregation failed: %w", err)
		}

		if err := open.Close(totals, closedBy, now); err != nil {
			return err
		}
		if err := repos.Shifts().Save(ctx, open); err != nil {
			return fmt.Errorf("shift save failed: %w", err)
		}
		closed = open
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("shift closed",
		zap.String("shift_id", closed.ID.String()),
		zap.String("operator_id", operatorID.String()),
		zap.String("total_profit", closed.TotalProfit().String()))
	return closed, nil
}

// FindOpen returns the operator's open shift, or nil if none
func (s *Service) FindOpen(ctx context.Context, operatorID uuid.UUID) (*shift.CashierShift, error) {
	return s.shiftRepo.FindOpenByOperator(ctx, operatorID)
}

// History lists an operator's shifts
func (s *Service) History(ctx context.Context, operatorID uuid.UUID) ([]*shift.CashierShift, error) {
	return s.shiftRepo.ListByOperator(ctx, operatorID)
}

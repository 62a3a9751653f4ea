package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appledger "github.com/Wh0mever/Palma-backend-sub000/internal/application/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
)

// DebtAllocator retroactively decomposes an order's lump debt payments into
// per-category portions for reporting. It is read-only: the breakdown is
// recomputed from the order totals and payment list on every call and
// nothing is written back, which keeps the payment schema category-agnostic.
type DebtAllocator struct {
	scope appledger.TransactionScope
}

// NewDebtAllocator creates a new DebtAllocator
func NewDebtAllocator(scope appledger.TransactionScope) *DebtAllocator {
	return &DebtAllocator{scope: scope}
}

// Window bounds a report to payments created inside [From, To). Nil bounds
// are unbounded.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls inside the window
func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && !t.Before(*w.To) {
		return false
	}
	return true
}

// PaymentAllocation is one payment's decomposition. The portions always sum
// to the payment amount.
type PaymentAllocation struct {
	PaymentID       uuid.UUID       `json:"payment_id"`
	CreatedAt       time.Time       `json:"created_at"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryPortion decimal.Decimal `json:"category_portion"`
	OtherPortion    decimal.Decimal `json:"other_portion"`
}

// OrderDebtBreakdown is the per-order waterfall report
type OrderDebtBreakdown struct {
	OrderID           uuid.UUID           `json:"order_id"`
	CategoryID        uuid.UUID           `json:"category_id"`
	CategorySum       decimal.Decimal     `json:"category_sum"`
	OtherSum          decimal.Decimal     `json:"other_sum"`
	Allocations       []PaymentAllocation `json:"allocations"`
	CategorySettled   decimal.Decimal     `json:"category_settled"`
	TotalSettled      decimal.Decimal     `json:"total_settled"`
	RemainingCategory decimal.Decimal     `json:"remaining_category_debt"`
}

// AllocateOrder computes the waterfall breakdown for one order. All inputs
// are read inside a single transaction so the report never observes a
// half-written payment.
func (a *DebtAllocator) AllocateOrder(ctx context.Context, orderID, categoryID uuid.UUID, window Window) (*OrderDebtBreakdown, error) {
	var breakdown *OrderDebtBreakdown
	err := a.scope.Execute(ctx, func(repos appledger.TxRepositories) error {
		ord, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("order lookup failed: %w", err)
		}
		debtBearing, err := repos.Orders().DebtBearingTotal(ctx, orderID)
		if err != nil {
			return fmt.Errorf("debt-bearing total failed: %w", err)
		}
		categorySum, err := repos.Orders().CategoryTotal(ctx, orderID, categoryID)
		if err != nil {
			return fmt.Errorf("category total failed: %w", err)
		}
		otherSum := clampZero(debtBearing.Sub(categorySum))

		payments, err := repos.Payments().ListDebtByOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("payment list failed: %w", err)
		}

		allocations := Decompose(otherSum, payments)

		categorySettled := decimal.Zero
		totalSettled := decimal.Zero
		windowed := make([]PaymentAllocation, 0, len(allocations))
		for _, alloc := range allocations {
			if !window.Contains(alloc.CreatedAt) {
				continue
			}
			windowed = append(windowed, alloc)
			categorySettled = categorySettled.Add(alloc.CategoryPortion)
			totalSettled = totalSettled.Add(alloc.Amount)
		}

		breakdown = &OrderDebtBreakdown{
			OrderID:           orderID,
			CategoryID:        categoryID,
			CategorySum:       categorySum,
			OtherSum:          otherSum,
			Allocations:       windowed,
			CategorySettled:   categorySettled,
			TotalSettled:      totalSettled,
			RemainingCategory: clampZero(decimal.Min(ord.Debt, categorySum)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

// Decompose walks the payments in their given order (created_at ASC, id ASC)
// and splits each amount between the other bucket and the tracked category.
// The other bucket is the strict priority claimant: a payment feeds the
// category only with whatever exceeds the other bucket's remainder. Every
// subtraction is floored at zero.
func Decompose(otherSum decimal.Decimal, payments []*ledger.Payment) []PaymentAllocation {
	allocations := make([]PaymentAllocation, 0, len(payments))
	priorSum := decimal.Zero
	for _, p := range payments {
		remainingOther := clampZero(otherSum.Sub(priorSum))
		categoryPortion := clampZero(p.Amount.Sub(remainingOther))
		otherPortion := p.Amount.Sub(categoryPortion)

		allocations = append(allocations, PaymentAllocation{
			PaymentID:       p.ID,
			CreatedAt:       p.CreatedAt,
			Amount:          p.Amount,
			CategoryPortion: categoryPortion,
			OtherPortion:    otherPortion,
		})
		priorSum = priorSum.Add(p.Amount)
	}
	return allocations
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

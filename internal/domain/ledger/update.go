package ledger

import (
	"time"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentUpdate carries the fields an update may change. Nil fields are
// left untouched. The counter-account reference of a payment never changes;
// a payment against the wrong target is deleted and re-created.
type PaymentUpdate struct {
	Amount    *decimal.Decimal
	Direction *PaymentDirection
	MethodID  *uuid.UUID
	Comment   *string
	IsDebt    *bool
}

// ApplyUpdate mutates the updatable fields after validation. Callers must
// reverse the payment's current account entries before calling and re-apply
// afterwards; patching the amount or method in place without reversing
// first double-counts.
func (p *Payment) ApplyUpdate(u PaymentUpdate) error {
	if p.IsDeleted {
		return shared.NewDomainError("ALREADY_DELETED", "Cannot update a deleted payment")
	}
	if u.Amount != nil && u.Amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if u.Direction != nil && !u.Direction.IsValid() {
		return shared.NewDomainError("INVALID_DIRECTION", "Payment direction is not valid")
	}
	if u.MethodID != nil && *u.MethodID == uuid.Nil {
		return shared.NewDomainError("INVALID_METHOD", "Payment method is required")
	}

	if u.Amount != nil {
		p.Amount = *u.Amount
	}
	if u.Direction != nil {
		p.Direction = *u.Direction
	}
	if u.MethodID != nil {
		p.MethodID = *u.MethodID
	}
	if u.Comment != nil {
		p.Comment = *u.Comment
	}
	if u.IsDebt != nil {
		p.IsDebt = *u.IsDebt
	}
	p.UpdatedAt = time.Now()
	return nil
}

// VerifyConsistent checks that the payment's declared kind has its matching
// counter-account reference populated. A failure means the row is corrupted
// and every mutating operation on it must abort.
func (p *Payment) VerifyConsistent() error {
	switch p.Kind {
	case KindOrder:
		if p.OrderID == nil {
			return missingReference(p, "order")
		}
	case KindProvider:
		if p.ProviderID == nil {
			return missingReference(p, "provider")
		}
	case KindIncome:
		if p.IncomeItemID == nil {
			return missingReference(p, "income item")
		}
	case KindOutlay:
		if p.OutlayItemID == nil {
			return missingReference(p, "outlay item")
		}
	default:
		return shared.NewDomainError("LEDGER_INCONSISTENT", "Payment has unknown kind")
	}
	return nil
}

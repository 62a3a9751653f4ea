package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
)

// CreateOrderPaymentRequest records a payment against a client order
type CreateOrderPaymentRequest struct {
	OrderID   uuid.UUID
	ClientID  *uuid.UUID
	Amount    decimal.Decimal
	Direction ledger.PaymentDirection
	MethodID  uuid.UUID
	Comment   string
	IsDebt    bool
}

// CreateProviderPaymentRequest records a payment against a provider
type CreateProviderPaymentRequest struct {
	ProviderID uuid.UUID
	Amount     decimal.Decimal
	Direction  ledger.PaymentDirection
	MethodID   uuid.UUID
	Comment    string
}

// CreateIncomePaymentRequest records a non-order income
type CreateIncomePaymentRequest struct {
	IncomeItemID uuid.UUID
	Amount       decimal.Decimal
	MethodID     uuid.UUID
	Comment      string
}

// CreateOutlayPaymentRequest records an expense
type CreateOutlayPaymentRequest struct {
	OutlayItemID uuid.UUID
	WorkerID     *uuid.UUID
	Amount       decimal.Decimal
	MethodID     uuid.UUID
	Comment      string
}

// UpdatePaymentRequest carries the updatable payment fields; nil fields are
// left unchanged
type UpdatePaymentRequest struct {
	Amount    *decimal.Decimal
	Direction *ledger.PaymentDirection
	MethodID  *uuid.UUID
	Comment   *string
	IsDebt    *bool
}

func (r UpdatePaymentRequest) toDomain() ledger.PaymentUpdate {
	return ledger.PaymentUpdate{
		Amount:    r.Amount,
		Direction: r.Direction,
		MethodID:  r.MethodID,
		Comment:   r.Comment,
		IsDebt:    r.IsDebt,
	}
}

// AccountBalance pairs an account with its folded balance
type AccountBalance struct {
	AccountType ledger.AccountType `json:"account_type"`
	AccountID   uuid.UUID          `json:"account_id"`
	Balance     decimal.Decimal    `json:"balance"`
}

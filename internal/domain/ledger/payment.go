package ledger

import (
	"fmt"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDirection represents the direction of money movement
type PaymentDirection string

const (
	// DirectionIncome represents money entering the register
	DirectionIncome PaymentDirection = "INCOME"
	// DirectionOutcome represents money leaving the register
	DirectionOutcome PaymentDirection = "OUTCOME"
)

// String returns the string representation of PaymentDirection
func (d PaymentDirection) String() string {
	return string(d)
}

// IsValid returns true if the direction is valid
func (d PaymentDirection) IsValid() bool {
	switch d {
	case DirectionIncome, DirectionOutcome:
		return true
	}
	return false
}

// PaymentKind represents the counter-account category of a payment.
// The set is closed - every switch over it must handle all four members.
type PaymentKind string

const (
	// KindOrder is a payment against a client order
	KindOrder PaymentKind = "ORDER"
	// KindProvider is a payment against a supplier of goods
	KindProvider PaymentKind = "PROVIDER"
	// KindIncome is a non-order income item (e.g. found cash, rebate)
	KindIncome PaymentKind = "INCOME"
	// KindOutlay is an expense item (rent, salary, utilities)
	KindOutlay PaymentKind = "OUTLAY"
)

// String returns the string representation of PaymentKind
func (k PaymentKind) String() string {
	return string(k)
}

// IsValid returns true if the kind is valid
func (k PaymentKind) IsValid() bool {
	switch k {
	case KindOrder, KindProvider, KindIncome, KindOutlay:
		return true
	}
	return false
}

// Payment is a journal line of the financial ledger. A payment is immutable
// in the accounting sense: it is never physically removed, only soft-deleted
// after its account effect has been reversed with negating entries.
type Payment struct {
	shared.BaseEntity
	Amount       decimal.Decimal
	Direction    PaymentDirection
	Kind         PaymentKind
	MethodID     uuid.UUID
	OrderID      *uuid.UUID
	ProviderID   *uuid.UUID
	IncomeItemID *uuid.UUID
	OutlayItemID *uuid.UUID
	WorkerID     *uuid.UUID
	ClientID     *uuid.UUID
	CreatedBy    uuid.UUID
	Comment      string
	IsDebt       bool
	IsDeleted    bool
	DeletedBy    *uuid.UUID
}

// newPayment validates the fields shared by every payment kind
func newPayment(
	amount decimal.Decimal,
	direction PaymentDirection,
	kind PaymentKind,
	methodID uuid.UUID,
	createdBy uuid.UUID,
	comment string,
	isDebt bool,
) (*Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Payment direction is not valid")
	}
	if methodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_METHOD", "Payment method is required")
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Creating user ID is required")
	}

	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		Amount:     amount,
		Direction:  direction,
		Kind:       kind,
		MethodID:   methodID,
		CreatedBy:  createdBy,
		Comment:    comment,
		IsDebt:     isDebt,
	}, nil
}

// NewOrderPayment creates a payment whose counter-account is a client order
func NewOrderPayment(
	orderID uuid.UUID,
	clientID *uuid.UUID,
	amount decimal.Decimal,
	direction PaymentDirection,
	methodID uuid.UUID,
	createdBy uuid.UUID,
	comment string,
	isDebt bool,
) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID is required for an order payment")
	}
	p, err := newPayment(amount, direction, KindOrder, methodID, createdBy, comment, isDebt)
	if err != nil {
		return nil, err
	}
	p.OrderID = &orderID
	p.ClientID = clientID
	return p, nil
}

// NewProviderPayment creates a payment whose counter-account is a provider
func NewProviderPayment(
	providerID uuid.UUID,
	amount decimal.Decimal,
	direction PaymentDirection,
	methodID uuid.UUID,
	createdBy uuid.UUID,
	comment string,
) (*Payment, error) {
	if providerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Provider ID is required for a provider payment")
	}
	p, err := newPayment(amount, direction, KindProvider, methodID, createdBy, comment, false)
	if err != nil {
		return nil, err
	}
	p.ProviderID = &providerID
	return p, nil
}

// NewIncomePayment creates a payment recording a non-order income item
func NewIncomePayment(
	incomeItemID uuid.UUID,
	amount decimal.Decimal,
	methodID uuid.UUID,
	createdBy uuid.UUID,
	comment string,
) (*Payment, error) {
	if incomeItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INCOME_ITEM", "Income item ID is required for an income payment")
	}
	p, err := newPayment(amount, DirectionIncome, KindIncome, methodID, createdBy, comment, false)
	if err != nil {
		return nil, err
	}
	p.IncomeItemID = &incomeItemID
	return p, nil
}

// NewOutlayPayment creates a payment recording an expense item. A worker
// reference is mandatory when the outlay item is categorized as workers
// (payroll); callers resolve the item category before constructing.
func NewOutlayPayment(
	outlayItemID uuid.UUID,
	workerID *uuid.UUID,
	workerRequired bool,
	amount decimal.Decimal,
	methodID uuid.UUID,
	createdBy uuid.UUID,
	comment string,
) (*Payment, error) {
	if outlayItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OUTLAY_ITEM", "Outlay item ID is required for an outlay payment")
	}
	if workerRequired && (workerID == nil || *workerID == uuid.Nil) {
		return nil, shared.NewDomainError("WORKER_REQUIRED", "A workers outlay payment must reference a worker")
	}
	if workerID != nil && *workerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WORKER", "Worker ID cannot be the zero UUID")
	}
	p, err := newPayment(amount, DirectionOutcome, KindOutlay, methodID, createdBy, comment, false)
	if err != nil {
		return nil, err
	}
	p.OutlayItemID = &outlayItemID
	p.WorkerID = workerID
	return p, nil
}

// SignedAmount returns the amount signed by direction: positive for income,
// negative for outcome.
func (p *Payment) SignedAmount() decimal.Decimal {
	if p.Direction == DirectionOutcome {
		return p.Amount.Neg()
	}
	return p.Amount
}

// Entries derives the account entries this payment applies, one per
// counter-account it touches. The cashier account of the payment method is
// always touched; provider and worker accounts depend on the kind. The
// switch is exhaustive over the closed kind set; a kind whose declared
// reference is nil yields a consistency error and no entries.
func (p *Payment) Entries(cashierID uuid.UUID, reverse bool) ([]AccountEntry, error) {
	if cashierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CASHIER", "Cashier account ID is required")
	}

	entries := []AccountEntry{NewCashierEntry(p, cashierID, reverse)}

	switch p.Kind {
	case KindOrder:
		if p.OrderID == nil {
			return nil, missingReference(p, "order")
		}
	case KindProvider:
		if p.ProviderID == nil {
			return nil, missingReference(p, "provider")
		}
		entries = append(entries, NewProviderEntry(p, *p.ProviderID, reverse))
	case KindIncome:
		if p.IncomeItemID == nil {
			return nil, missingReference(p, "income item")
		}
	case KindOutlay:
		if p.OutlayItemID == nil {
			return nil, missingReference(p, "outlay item")
		}
		if p.WorkerID != nil {
			entries = append(entries, NewWorkerEntry(p, *p.WorkerID, reverse))
		}
	default:
		return nil, shared.NewDomainError("LEDGER_INCONSISTENT",
			fmt.Sprintf("Payment %s has unknown kind %q", p.ID, p.Kind))
	}

	return entries, nil
}

// missingReference reports a payment whose declared kind lacks its matching
// counter-account reference. This indicates a corrupted row, not user error.
func missingReference(p *Payment, ref string) error {
	return shared.NewDomainError("LEDGER_INCONSISTENT",
		fmt.Sprintf("Payment %s of kind %s has no %s reference", p.ID, p.Kind, ref))
}

// MarkDeleted soft-deletes the payment recording the deleting actor.
// The caller is responsible for reversing the account entries first.
func (p *Payment) MarkDeleted(deletedBy uuid.UUID) error {
	if p.IsDeleted {
		return shared.NewDomainError("ALREADY_DELETED", "Payment is already deleted")
	}
	if deletedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Deleting user ID is required")
	}
	p.IsDeleted = true
	p.DeletedBy = &deletedBy
	return nil
}

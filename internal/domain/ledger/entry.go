package ledger

import (
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType identifies which counter-account ledger an entry belongs to
type AccountType string

const (
	// AccountCashier is the cash register account of a payment method
	AccountCashier AccountType = "CASHIER"
	// AccountProvider is a supplier settlement account
	AccountProvider AccountType = "PROVIDER"
	// AccountWorker is a worker payroll account
	AccountWorker AccountType = "WORKER"
)

// String returns the string representation of AccountType
func (t AccountType) String() string {
	return string(t)
}

// IsValid returns true if the account type is valid
func (t AccountType) IsValid() bool {
	switch t {
	case AccountCashier, AccountProvider, AccountWorker:
		return true
	}
	return false
}

// EntryKind tags an account entry as an original application or a reversal
type EntryKind string

const (
	// EntryApply is the entry written when a payment is recorded
	EntryApply EntryKind = "APPLY"
	// EntryReversal negates earlier entries of the same payment
	EntryReversal EntryKind = "REVERSAL"
)

// String returns the string representation of EntryKind
func (k EntryKind) String() string {
	return string(k)
}

// AccountEntry is one immutable signed movement on a counter-account.
// An account balance is always the sum of its entries; entries are never
// updated or removed. Reversing a payment appends REVERSAL entries instead
// of undoing a mutation.
type AccountEntry struct {
	shared.BaseEntity
	PaymentID   uuid.UUID
	AccountType AccountType
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Kind        EntryKind
}

// signedFor computes the entry amount for a payment: the signed amount,
// flipped when reverse is set. The same rule covers cashier, provider and
// worker accounts.
func signedFor(p *Payment, reverse bool) (decimal.Decimal, EntryKind) {
	amount := p.SignedAmount()
	if reverse {
		return amount.Neg(), EntryReversal
	}
	return amount, EntryApply
}

// NewCashierEntry builds the entry a payment applies to the cash register
// account of its payment method.
func NewCashierEntry(p *Payment, cashierID uuid.UUID, reverse bool) AccountEntry {
	amount, kind := signedFor(p, reverse)
	return AccountEntry{
		BaseEntity:  shared.NewBaseEntity(),
		PaymentID:   p.ID,
		AccountType: AccountCashier,
		AccountID:   cashierID,
		Amount:      amount,
		Kind:        kind,
	}
}

// NewProviderEntry builds the entry a payment applies to a provider account
func NewProviderEntry(p *Payment, providerID uuid.UUID, reverse bool) AccountEntry {
	amount, kind := signedFor(p, reverse)
	return AccountEntry{
		BaseEntity:  shared.NewBaseEntity(),
		PaymentID:   p.ID,
		AccountType: AccountProvider,
		AccountID:   providerID,
		Amount:      amount,
		Kind:        kind,
	}
}

// NewWorkerEntry builds the entry a payment applies to a worker account
func NewWorkerEntry(p *Payment, workerID uuid.UUID, reverse bool) AccountEntry {
	amount, kind := signedFor(p, reverse)
	return AccountEntry{
		BaseEntity:  shared.NewBaseEntity(),
		PaymentID:   p.ID,
		AccountType: AccountWorker,
		AccountID:   workerID,
		Amount:      amount,
		Kind:        kind,
	}
}

// NewReversalEntry negates an already-applied net amount on one account.
// Delete and update use it to cancel whatever a payment currently holds on
// each account, regardless of how many apply/reversal rounds preceded.
func NewReversalEntry(paymentID uuid.UUID, accountType AccountType, accountID uuid.UUID, netAmount decimal.Decimal) AccountEntry {
	return AccountEntry{
		BaseEntity:  shared.NewBaseEntity(),
		PaymentID:   paymentID,
		AccountType: accountType,
		AccountID:   accountID,
		Amount:      netAmount.Neg(),
		Kind:        EntryReversal,
	}
}

// AccountNet is the per-account net of a payment's entries
type AccountNet struct {
	AccountType AccountType
	AccountID   uuid.UUID
	Amount      decimal.Decimal
}

package ledger

import (
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// MethodCategory groups payment methods for reporting. Shift totals single
// out category CASH.
type MethodCategory string

const (
	// MethodCategoryCash covers physical cash in the register
	MethodCategoryCash MethodCategory = "CASH"
	// MethodCategoryCard covers card terminal payments
	MethodCategoryCard MethodCategory = "CARD"
	// MethodCategoryBank covers bank transfers
	MethodCategoryBank MethodCategory = "BANK"
)

// String returns the string representation of MethodCategory
func (c MethodCategory) String() string {
	return string(c)
}

// IsValid returns true if the category is valid
func (c MethodCategory) IsValid() bool {
	switch c {
	case MethodCategoryCash, MethodCategoryCard, MethodCategoryBank:
		return true
	}
	return false
}

// IsCash returns true for the physical cash category
func (c MethodCategory) IsCash() bool {
	return c == MethodCategoryCash
}

// PaymentMethod is a way money moves: cash, a specific card terminal, a bank
// account. Every payment references exactly one method.
type PaymentMethod struct {
	shared.BaseEntity
	Name     string
	Category MethodCategory
}

// NewPaymentMethod creates a new payment method
func NewPaymentMethod(name string, category MethodCategory) (*PaymentMethod, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Payment method name cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Payment method category is not valid")
	}
	return &PaymentMethod{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Category:   category,
	}, nil
}

// Cashier is the register account of one payment method. Rows are created
// lazily on the first payment for a method; the balance is derived from the
// account entries, never stored.
type Cashier struct {
	shared.BaseEntity
	MethodID uuid.UUID
	Name     string
}

// NewCashier creates a new cashier account for a payment method
func NewCashier(methodID uuid.UUID, name string) (*Cashier, error) {
	if methodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_METHOD", "Cashier requires a payment method")
	}
	return &Cashier{
		BaseEntity: shared.NewBaseEntity(),
		MethodID:   methodID,
		Name:       name,
	}, nil
}

package order

import (
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a client order. The ledger reads it: the debt field and the
// category-tagged line items feed the debt waterfall report. Debt
// recomputation from line items belongs to the order service, not here.
type Order struct {
	shared.BaseEntity
	Number   string
	ClientID *uuid.UUID
	Debt     decimal.Decimal
}

// OrderItem is one sellable line of an order. Each item carries the
// category tag of its product; returns are tracked per line.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	CategoryID  uuid.UUID
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	ReturnedQty decimal.Decimal
}

// NetTotal returns price times the non-returned quantity of the line
func (i *OrderItem) NetTotal() decimal.Decimal {
	return i.Price.Mul(i.Quantity.Sub(i.ReturnedQty))
}

// InCategory returns true if the line belongs to the given category
func (i *OrderItem) InCategory(categoryID uuid.UUID) bool {
	return i.CategoryID == categoryID
}

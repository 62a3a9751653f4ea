package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/order"
)

// OrderModel is the persistence model for orders. The finance core only
// reads it: debt and line items feed the waterfall report.
type OrderModel struct {
	BaseModel
	Number   string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientID *uuid.UUID      `gorm:"type:uuid;index"`
	Debt     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *order.Order {
	return &order.Order{
		BaseEntity: m.BaseModel.ToDomain(),
		Number:     m.Number,
		ClientID:   m.ClientID,
		Debt:       m.Debt,
	}
}

// OrderItemModel is the persistence model for order line items
type OrderItemModel struct {
	BaseModel
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReturnedQty decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *OrderItemModel) ToDomain() *order.OrderItem {
	return &order.OrderItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		CategoryID:  m.CategoryID,
		Price:       m.Price,
		Quantity:    m.Quantity,
		ReturnedQty: m.ReturnedQty,
	}
}

package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
)

// PaymentModel is the persistence model for the Payment journal line
type PaymentModel struct {
	BaseModel
	Amount       decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Direction    ledger.PaymentDirection `gorm:"type:varchar(10);not null;index"`
	Kind         ledger.PaymentKind      `gorm:"type:varchar(10);not null;index"`
	MethodID     uuid.UUID               `gorm:"type:uuid;not null;index"`
	OrderID      *uuid.UUID              `gorm:"type:uuid;index"`
	ProviderID   *uuid.UUID              `gorm:"type:uuid;index"`
	IncomeItemID *uuid.UUID              `gorm:"type:uuid;index"`
	OutlayItemID *uuid.UUID              `gorm:"type:uuid;index"`
	WorkerID     *uuid.UUID              `gorm:"type:uuid;index"`
	ClientID     *uuid.UUID              `gorm:"type:uuid;index"`
	CreatedBy    uuid.UUID               `gorm:"type:uuid;not null;index"`
	Comment      string                  `gorm:"type:text"`
	IsDebt       bool                    `gorm:"not null;default:false;index"`
	IsDeleted    bool                    `gorm:"not null;default:false;index"`
	DeletedBy    *uuid.UUID              `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *ledger.Payment {
	return &ledger.Payment{
		BaseEntity:   m.BaseModel.ToDomain(),
		Amount:       m.Amount,
		Direction:    m.Direction,
		Kind:         m.Kind,
		MethodID:     m.MethodID,
		OrderID:      m.OrderID,
		ProviderID:   m.ProviderID,
		IncomeItemID: m.IncomeItemID,
		OutlayItemID: m.OutlayItemID,
		WorkerID:     m.WorkerID,
		ClientID:     m.ClientID,
		CreatedBy:    m.CreatedBy,
		Comment:      m.Comment,
		IsDebt:       m.IsDebt,
		IsDeleted:    m.IsDeleted,
		DeletedBy:    m.DeletedBy,
	}
}

// PaymentModelFromDomain converts a domain Payment to the persistence model
func PaymentModelFromDomain(p *ledger.Payment) *PaymentModel {
	m := &PaymentModel{
		Amount:       p.Amount,
		Direction:    p.Direction,
		Kind:         p.Kind,
		MethodID:     p.MethodID,
		OrderID:      p.OrderID,
		ProviderID:   p.ProviderID,
		IncomeItemID: p.IncomeItemID,
		OutlayItemID: p.OutlayItemID,
		WorkerID:     p.WorkerID,
		ClientID:     p.ClientID,
		CreatedBy:    p.CreatedBy,
		Comment:      p.Comment,
		IsDebt:       p.IsDebt,
		IsDeleted:    p.IsDeleted,
		DeletedBy:    p.DeletedBy,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// AccountEntryModel is the persistence model for the append-only account
// entry ledger
type AccountEntryModel struct {
	BaseModel
	PaymentID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	AccountType ledger.AccountType `gorm:"type:varchar(10);not null;index:idx_entry_account,priority:1"`
	AccountID   uuid.UUID          `gorm:"type:uuid;not null;index:idx_entry_account,priority:2"`
	Amount      decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	Kind        ledger.EntryKind   `gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for GORM
func (AccountEntryModel) TableName() string {
	return "account_entries"
}

// ToDomain converts the persistence model to a domain AccountEntry
func (m *AccountEntryModel) ToDomain() ledger.AccountEntry {
	return ledger.AccountEntry{
		BaseEntity:  m.BaseModel.ToDomain(),
		PaymentID:   m.PaymentID,
		AccountType: m.AccountType,
		AccountID:   m.AccountID,
		Amount:      m.Amount,
		Kind:        m.Kind,
	}
}

// AccountEntryModelFromDomain converts a domain AccountEntry to the
// persistence model
func AccountEntryModelFromDomain(e ledger.AccountEntry) *AccountEntryModel {
	m := &AccountEntryModel{
		PaymentID:   e.PaymentID,
		AccountType: e.AccountType,
		AccountID:   e.AccountID,
		Amount:      e.Amount,
		Kind:        e.Kind,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}

// CashierModel is the persistence model for cash register accounts
type CashierModel struct {
	BaseModel
	MethodID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name     string    `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (CashierModel) TableName() string {
	return "cashiers"
}

// ToDomain converts the persistence model to a domain Cashier
func (m *CashierModel) ToDomain() *ledger.Cashier {
	return &ledger.Cashier{
		BaseEntity: m.BaseModel.ToDomain(),
		MethodID:   m.MethodID,
		Name:       m.Name,
	}
}

// CashierModelFromDomain converts a domain Cashier to the persistence model
func CashierModelFromDomain(c *ledger.Cashier) *CashierModel {
	m := &CashierModel{
		MethodID: c.MethodID,
		Name:     c.Name,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// PaymentMethodModel is the persistence model for payment methods
type PaymentMethodModel struct {
	BaseModel
	Name     string                `gorm:"type:varchar(200);not null"`
	Category ledger.MethodCategory `gorm:"type:varchar(10);not null;index"`
}

// TableName returns the table name for GORM
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToDomain converts the persistence model to a domain PaymentMethod
func (m *PaymentMethodModel) ToDomain() *ledger.PaymentMethod {
	return &ledger.PaymentMethod{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Category:   m.Category,
	}
}

// PaymentMethodModelFromDomain converts a domain PaymentMethod to the
// persistence model
func PaymentMethodModelFromDomain(pm *ledger.PaymentMethod) *PaymentMethodModel {
	m := &PaymentMethodModel{
		Name:     pm.Name,
		Category: pm.Category,
	}
	m.FromDomainBaseEntity(pm.BaseEntity)
	return m
}

// OutlayItemModel is the persistence model for outlay items
type OutlayItemModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null"`
	Category string `gorm:"type:varchar(50);index"`
}

// TableName returns the table name for GORM
func (OutlayItemModel) TableName() string {
	return "outlay_items"
}

// ToDomain converts the persistence model to a domain OutlayItem
func (m *OutlayItemModel) ToDomain() *ledger.OutlayItem {
	return &ledger.OutlayItem{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Category:   m.Category,
	}
}

// OutlayItemModelFromDomain converts a domain OutlayItem to the persistence
// model
func OutlayItemModelFromDomain(i *ledger.OutlayItem) *OutlayItemModel {
	m := &OutlayItemModel{
		Name:     i.Name,
		Category: i.Category,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	return m
}

// IncomeItemModel is the persistence model for income items
type IncomeItemModel struct {
	BaseModel
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (IncomeItemModel) TableName() string {
	return "income_items"
}

// ToDomain converts the persistence model to a domain IncomeItem
func (m *IncomeItemModel) ToDomain() *ledger.IncomeItem {
	return &ledger.IncomeItem{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// IncomeItemModelFromDomain converts a domain IncomeItem to the persistence
// model
func IncomeItemModelFromDomain(i *ledger.IncomeItem) *IncomeItemModel {
	m := &IncomeItemModel{
		Name: i.Name,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	return m
}

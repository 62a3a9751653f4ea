package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
)

// CashierShiftModel is the persistence model for cashier shifts
type CashierShiftModel struct {
	BaseModel
	OperatorID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartedAt      time.Time       `gorm:"not null"`
	EndedAt        *time.Time      `gorm:"index"`
	ClosedBy       *uuid.UUID      `gorm:"type:uuid"`
	OverallIncome  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OverallOutcome decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CashIncome     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CashOutcome    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (CashierShiftModel) TableName() string {
	return "cashier_shifts"
}

// ToDomain converts the persistence model to a domain CashierShift
func (m *CashierShiftModel) ToDomain() *shift.CashierShift {
	return &shift.CashierShift{
		BaseEntity:     m.BaseModel.ToDomain(),
		OperatorID:     m.OperatorID,
		StartedAt:      m.StartedAt,
		EndedAt:        m.EndedAt,
		ClosedBy:       m.ClosedBy,
		OverallIncome:  m.OverallIncome,
		OverallOutcome: m.OverallOutcome,
		CashIncome:     m.CashIncome,
		CashOutcome:    m.CashOutcome,
	}
}

// CashierShiftModelFromDomain converts a domain CashierShift to the
// persistence model
func CashierShiftModelFromDomain(s *shift.CashierShift) *CashierShiftModel {
	m := &CashierShiftModel{
		OperatorID:     s.OperatorID,
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
		ClosedBy:       s.ClosedBy,
		OverallIncome:  s.OverallIncome,
		OverallOutcome: s.OverallOutcome,
		CashIncome:     s.CashIncome,
		CashOutcome:    s.CashOutcome,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

package models

import (
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/partner"
)

// ProviderModel is the persistence model for providers
type ProviderModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	Phone   string `gorm:"type:varchar(50)"`
	Comment string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ProviderModel) TableName() string {
	return "providers"
}

// ToDomain converts the persistence model to a domain Provider
func (m *ProviderModel) ToDomain() *partner.Provider {
	return &partner.Provider{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Phone:      m.Phone,
		Comment:    m.Comment,
	}
}

// ProviderModelFromDomain converts a domain Provider to the persistence model
func ProviderModelFromDomain(p *partner.Provider) *ProviderModel {
	m := &ProviderModel{
		Name:    p.Name,
		Phone:   p.Phone,
		Comment: p.Comment,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// WorkerModel is the persistence model for workers
type WorkerModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null"`
	Phone    string `gorm:"type:varchar(50)"`
	Position string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (WorkerModel) TableName() string {
	return "workers"
}

// ToDomain converts the persistence model to a domain Worker
func (m *WorkerModel) ToDomain() *partner.Worker {
	return &partner.Worker{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Phone:      m.Phone,
		Position:   m.Position,
	}
}

// WorkerModelFromDomain converts a domain Worker to the persistence model
func WorkerModelFromDomain(w *partner.Worker) *WorkerModel {
	m := &WorkerModel{
		Name:     w.Name,
		Phone:    w.Phone,
		Position: w.Position,
	}
	m.FromDomainBaseEntity(w.BaseEntity)
	return m
}

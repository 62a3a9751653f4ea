package partner

import (
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
)

// Provider is a supplier of goods. Its settlement balance lives in the
// account entry ledger; the row itself only carries identity and contacts.
type Provider struct {
	shared.BaseEntity
	Name    string
	Phone   string
	Comment string
}

// NewProvider creates a new provider
func NewProvider(name, phone string) (*Provider, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Provider name cannot be empty")
	}
	return &Provider{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      phone,
	}, nil
}

// Rename changes the provider name
func (p *Provider) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Provider name cannot be empty")
	}
	p.Name = name
	return nil
}

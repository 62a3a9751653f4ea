package partner

import (
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
)

// Worker is a shop employee. Payroll outlay payments reference a worker and
// move its account in the entry ledger.
type Worker struct {
	shared.BaseEntity
	Name     string
	Phone    string
	Position string
}

// NewWorker creates a new worker
func NewWorker(name, phone, position string) (*Worker, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Worker name cannot be empty")
	}
	return &Worker{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      phone,
		Position:   position,
	}, nil
}

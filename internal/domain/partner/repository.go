package partner

import (
	"context"

	"github.com/google/uuid"
)

// ProviderRepository persists providers
type ProviderRepository interface {
	Create(ctx context.Context, provider *Provider) error
	FindByID(ctx context.Context, id uuid.UUID) (*Provider, error)
	// FindByIDForUpdate loads the provider holding a row lock for the
	// duration of the surrounding transaction. Ledger mutations lock the
	// counter-account rows they touch to serialize concurrent writes.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Provider, error)
	Save(ctx context.Context, provider *Provider) error
	List(ctx context.Context) ([]*Provider, error)
}

// WorkerRepository persists workers
type WorkerRepository interface {
	Create(ctx context.Context, worker *Worker) error
	FindByID(ctx context.Context, id uuid.UUID) (*Worker, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Worker, error)
	Save(ctx context.Context, worker *Worker) error
	List(ctx context.Context) ([]*Worker, error)
}

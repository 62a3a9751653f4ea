package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/partner"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/persistence/models"
)

// GormProviderRepository implements partner.ProviderRepository using GORM
type GormProviderRepository struct {
	db *gorm.DB
}

// NewGormProviderRepository creates a new GormProviderRepository
func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// Create inserts a new provider
func (r *GormProviderRepository) Create(ctx context.Context, provider *partner.Provider) error {
	return r.db.WithContext(ctx).Create(models.ProviderModelFromDomain(provider)).Error
}

// FindByID finds a provider by ID
func (r *GormProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Provider, error) {
	var model models.ProviderModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a provider by ID holding its row lock
func (r *GormProviderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*partner.Provider, error) {
	var model models.ProviderModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the current state of an existing provider
func (r *GormProviderRepository) Save(ctx context.Context, provider *partner.Provider) error {
	return r.db.WithContext(ctx).Save(models.ProviderModelFromDomain(provider)).Error
}

// List returns all providers
func (r *GormProviderRepository) List(ctx context.Context) ([]*partner.Provider, error) {
	var providerModels []models.ProviderModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&providerModels).Error; err != nil {
		return nil, err
	}
	providers := make([]*partner.Provider, len(providerModels))
	for i := range providerModels {
		providers[i] = providerModels[i].ToDomain()
	}
	return providers, nil
}

// GormWorkerRepository implements partner.WorkerRepository using GORM
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewGormWorkerRepository creates a new GormWorkerRepository
func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

// Create inserts a new worker
func (r *GormWorkerRepository) Create(ctx context.Context, worker *partner.Worker) error {
	return r.db.WithContext(ctx).Create(models.WorkerModelFromDomain(worker)).Error
}

// FindByID finds a worker by ID
func (r *GormWorkerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Worker, error) {
	var model models.WorkerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a worker by ID holding its row lock
func (r *GormWorkerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*partner.Worker, error) {
	var model models.WorkerModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the current state of an existing worker
func (r *GormWorkerRepository) Save(ctx context.Context, worker *partner.Worker) error {
	return r.db.WithContext(ctx).Save(models.WorkerModelFromDomain(worker)).Error
}

// List returns all workers
func (r *GormWorkerRepository) List(ctx context.Context) ([]*partner.Worker, error) {
	var workerModels []models.WorkerModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&workerModels).Error; err != nil {
		return nil, err
	}
	workers := make([]*partner.Worker, len(workerModels))
	for i := range workerModels {
		workers[i] = workerModels[i].ToDomain()
	}
	return workers, nil
}

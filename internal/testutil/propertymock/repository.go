package propertymock

import (
	"context"

	domain "rentease-backend/internal/domain/property"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies property.Repository.
// Only fill the function fields a test needs.
type Repo struct {
	CreateFn          func(ctx context.Context, p *domain.Property) error
	GetByPropertyIDFn func(ctx context.Context, propertyID string) (*domain.Property, error)
	FindAvailableFn   func(ctx context.Context, f domain.Filter) ([]domain.Property, error)
	UpdateStatusFn    func(ctx context.Context, propertyID string, to domain.Status) error
	UpdateStatusIfFn  func(ctx context.Context, propertyID string, from, to domain.Status) error
	SaveFn            func(ctx context.Context, p *domain.Property) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPropertyID(ctx context.Context, propertyID string) (*domain.Property, error) {
	if m.GetByPropertyIDFn != nil {
		return m.GetByPropertyIDFn(ctx, propertyID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) FindAvailable(ctx context.Context, f domain.Filter) ([]domain.Property, error) {
	if m.FindAvailableFn != nil {
		return m.FindAvailableFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) UpdateStatus(ctx context.Context, propertyID string, to domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, propertyID, to)
	}
	return nil
}

func (m *Repo) UpdateStatusIf(ctx context.Context, propertyID string, from, to domain.Status) error {
	if m.UpdateStatusIfFn != nil {
		return m.UpdateStatusIfFn(ctx, propertyID, from, to)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Property) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

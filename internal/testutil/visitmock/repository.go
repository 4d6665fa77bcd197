package visitmock

import (
	"context"

	domain "rentease-backend/internal/domain/visit"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn         func(ctx context.Context, v *domain.Visit) error
	GetByVisitIDFn   func(ctx context.Context, visitID string) (*domain.Visit, error)
	ListByTenantIDFn func(ctx context.Context, tenantID string) ([]domain.Visit, error)
	SaveFn           func(ctx context.Context, v *domain.Visit) error
	DeleteFn         func(ctx context.Context, visitID string) error
}

func (m *Repo) Create(ctx context.Context, v *domain.Visit) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *Repo) GetByVisitID(ctx context.Context, visitID string) (*domain.Visit, error) {
	if m.GetByVisitIDFn != nil {
		return m.GetByVisitIDFn(ctx, visitID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByTenantID(ctx context.Context, tenantID string) ([]domain.Visit, error) {
	if m.ListByTenantIDFn != nil {
		return m.ListByTenantIDFn(ctx, tenantID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, v *domain.Visit) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, v)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, visitID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, visitID)
	}
	return nil
}

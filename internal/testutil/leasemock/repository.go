package leasemock

import (
	"context"
	"time"

	domain "rentease-backend/internal/domain/lease"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.Lease) error
	GetByLeaseIDFn          func(ctx context.Context, leaseID string) (*domain.Lease, error)
	GetByLeaseIDForUpdateFn func(ctx context.Context, leaseID string) (*domain.Lease, error)
	SaveFn                  func(ctx context.Context, l *domain.Lease) error
	ListByTenantIDFn        func(ctx context.Context, tenantID string) ([]domain.Lease, error)
	ListByLandlordIDFn      func(ctx context.Context, landlordID string) ([]domain.Lease, error)
	ListActiveEndingByFn    func(ctx context.Context, cutoff time.Time) ([]domain.Lease, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Lease) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLeaseID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	if m.GetByLeaseIDFn != nil {
		return m.GetByLeaseIDFn(ctx, leaseID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByLeaseIDForUpdate(ctx context.Context, leaseID string) (*domain.Lease, error) {
	if m.GetByLeaseIDForUpdateFn != nil {
		return m.GetByLeaseIDForUpdateFn(ctx, leaseID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Lease) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListByTenantID(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	if m.ListByTenantIDFn != nil {
		return m.ListByTenantIDFn(ctx, tenantID)
	}
	return nil, nil
}

func (m *Repo) ListByLandlordID(ctx context.Context, landlordID string) ([]domain.Lease, error) {
	if m.ListByLandlordIDFn != nil {
		return m.ListByLandlordIDFn(ctx, landlordID)
	}
	return nil, nil
}

func (m *Repo) ListActiveEndingBy(ctx context.Context, cutoff time.Time) ([]domain.Lease, error) {
	if m.ListActiveEndingByFn != nil {
		return m.ListActiveEndingByFn(ctx, cutoff)
	}
	return nil, nil
}

package partymock

import (
	"context"

	domain "rentease-backend/internal/domain/party"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateTenantFn            func(ctx context.Context, t *domain.Tenant) error
	GetTenantByTenantIDFn     func(ctx context.Context, tenantID string) (*domain.Tenant, error)
	CreateLandlordFn          func(ctx context.Context, l *domain.Landlord) error
	GetLandlordByLandlordIDFn func(ctx context.Context, landlordID string) (*domain.Landlord, error)
}

func (m *Repo) CreateTenant(ctx context.Context, t *domain.Tenant) error {
	if m.CreateTenantFn != nil {
		return m.CreateTenantFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetTenantByTenantID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	if m.GetTenantByTenantIDFn != nil {
		return m.GetTenantByTenantIDFn(ctx, tenantID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) CreateLandlord(ctx context.Context, l *domain.Landlord) error {
	if m.CreateLandlordFn != nil {
		return m.CreateLandlordFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetLandlordByLandlordID(ctx context.Context, landlordID string) (*domain.Landlord, error) {
	if m.GetLandlordByLandlordIDFn != nil {
		return m.GetLandlordByLandlordIDFn(ctx, landlordID)
	}
	return nil, gorm.ErrRecordNotFound
}

// Seeded returns a Repo pre-filled with one tenant and one landlord,
// the fixture most usecase tests need.
func Seeded(tenant *domain.Tenant, landlord *domain.Landlord) *Repo {
	return &Repo{
		GetTenantByTenantIDFn: func(ctx context.Context, tenantID string) (*domain.Tenant, error) {
			if tenant != nil && tenant.TenantID == tenantID {
				return tenant, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetLandlordByLandlordIDFn: func(ctx context.Context, landlordID string) (*domain.Landlord, error) {
			if landlord != nil && landlord.LandlordID == landlordID {
				return landlord, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

package party

import "context"

type Repository interface {
	CreateTenant(ctx context.Context, t *Tenant) error
	GetTenantByTenantID(ctx context.Context, tenantID string) (*Tenant, error)

	CreateLandlord(ctx context.Context, l *Landlord) error
	GetLandlordByLandlordID(ctx context.Context, landlordID string) (*Landlord, error)
}

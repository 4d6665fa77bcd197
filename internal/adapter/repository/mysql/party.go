package mysql

import (
	"context"

	partyDomain "rentease-backend/internal/domain/party"

	"gorm.io/gorm"
)

type PartyRepository struct{ db *gorm.DB }

func NewPartyRepository(db *gorm.DB) *PartyRepository { return &PartyRepository{db: db} }

func (r *PartyRepository) CreateTenant(ctx context.Context, t *partyDomain.Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PartyRepository) GetTenantByTenantID(ctx context.Context, tenantID string) (*partyDomain.Tenant, error) {
	var out partyDomain.Tenant
	res := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&out)
	return &out, res.Error
}

func (r *PartyRepository) CreateLandlord(ctx context.Context, l *partyDomain.Landlord) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *PartyRepository) GetLandlordByLandlordID(ctx context.Context, landlordID string) (*partyDomain.Landlord, error) {
	var out partyDomain.Landlord
	res := r.db.WithContext(ctx).Where("landlord_id = ?", landlordID).First(&out)
	return &out, res.Error
}

package mysql

import (
	"context"
	"time"

	leaseDomain "rentease-backend/internal/domain/lease"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaseRepository struct{ db *gorm.DB }

func NewLeaseRepository(db *gorm.DB) *LeaseRepository { return &LeaseRepository{db: db} }

func (r *LeaseRepository) Create(ctx context.Context, l *leaseDomain.Lease) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeaseRepository) Save(ctx context.Context, l *leaseDomain.Lease) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LeaseRepository) GetByLeaseID(ctx context.Context, leaseID string) (*leaseDomain.Lease, error) {
	var out leaseDomain.Lease
	res := r.db.WithContext(ctx).Where("lease_id = ?", leaseID).First(&out)
	return &out, res.Error
}

func (r *LeaseRepository) GetByLeaseIDForUpdate(ctx context.Context, leaseID string) (*leaseDomain.Lease, error) {
	var out leaseDomain.Lease
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("lease_id = ?", leaseID).
		First(&out)
	return &out, res.Error
}

func (r *LeaseRepository) ListByTenantID(ctx context.Context, tenantID string) ([]leaseDomain.Lease, error) {
	var out []leaseDomain.Lease
	res := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LeaseRepository) ListByLandlordID(ctx context.Context, landlordID string) ([]leaseDomain.Lease, error) {
	var out []leaseDomain.Lease
	res := r.db.WithContext(ctx).
		Where("landlord_id = ?", landlordID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LeaseRepository) ListActiveEndingBy(ctx context.Context, cutoff time.Time) ([]leaseDomain.Lease, error) {
	var out []leaseDomain.Lease
	res := r.db.WithContext(ctx).
		Where("status = ? AND end_date <= ?", leaseDomain.StatusActive, cutoff).
		Order("end_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

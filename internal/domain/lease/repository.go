package lease

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Lease) error
	GetByLeaseID(ctx context.Context, leaseID string) (*Lease, error)
	// GetByLeaseIDForUpdate locks the row; used by signature collection
	// so two concurrent signs cannot both observe "one signature left".
	GetByLeaseIDForUpdate(ctx context.Context, leaseID string) (*Lease, error)
	Save(ctx context.Context, l *Lease) error
	ListByTenantID(ctx context.Context, tenantID string) ([]Lease, error)
	ListByLandlordID(ctx context.Context, landlordID string) ([]Lease, error)
	// ListActiveEndingBy returns active leases whose end date falls on
	// or before the cutoff, for renewal reminders.
	ListActiveEndingBy(ctx context.Context, cutoff time.Time) ([]Lease, error)
}

package paymentmock

import (
	"context"
	"time"

	domain "rentease-backend/internal/domain/payment"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn                        func(ctx context.Context, p *domain.Payment) error
	GetByPaymentIDFn                func(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetByOrderIDFn                  func(ctx context.Context, orderID string) (*domain.Payment, error)
	MarkCompletedByOrderIDFn        func(ctx context.Context, orderID, gatewayPaymentID, sig string, at time.Time) (*domain.Payment, error)
	ListOverduePendingFn            func(ctx context.Context, now time.Time) ([]domain.Payment, error)
	ListUpcomingPendingByTenantFn   func(ctx context.Context, tenantID string, now time.Time) ([]domain.Payment, error)
	ListUpcomingPendingByLandlordFn func(ctx context.Context, landlordID string, now time.Time) ([]domain.Payment, error)
	SaveFn                          func(ctx context.Context, p *domain.Payment) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	if m.GetByOrderIDFn != nil {
		return m.GetByOrderIDFn(ctx, orderID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) MarkCompletedByOrderID(ctx context.Context, orderID, gatewayPaymentID, sig string, at time.Time) (*domain.Payment, error) {
	if m.MarkCompletedByOrderIDFn != nil {
		return m.MarkCompletedByOrderIDFn(ctx, orderID, gatewayPaymentID, sig, at)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListOverduePending(ctx context.Context, now time.Time) ([]domain.Payment, error) {
	if m.ListOverduePendingFn != nil {
		return m.ListOverduePendingFn(ctx, now)
	}
	return nil, nil
}

func (m *Repo) ListUpcomingPendingByTenant(ctx context.Context, tenantID string, now time.Time) ([]domain.Payment, error) {
	if m.ListUpcomingPendingByTenantFn != nil {
		return m.ListUpcomingPendingByTenantFn(ctx, tenantID, now)
	}
	return nil, nil
}

func (m *Repo) ListUpcomingPendingByLandlord(ctx context.Context, landlordID string, now time.Time) ([]domain.Payment, error) {
	if m.ListUpcomingPendingByLandlordFn != nil {
		return m.ListUpcomingPendingByLandlordFn(ctx, landlordID, now)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

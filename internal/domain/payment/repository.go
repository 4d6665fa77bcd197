package payment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*Payment, error)
	// MarkCompletedByOrderID flips the pending payment for orderID to
	// completed, recording the gateway confirmation. The update is
	// conditional on status=pending so a replayed verification cannot
	// complete twice; ErrAlreadyCompleted when the row exists but is
	// no longer pending, gorm.ErrRecordNotFound when it never did.
	MarkCompletedByOrderID(ctx context.Context, orderID, gatewayPaymentID, sig string, at time.Time) (*Payment, error)
	// ListOverduePending: pending payments whose due date has passed.
	ListOverduePending(ctx context.Context, now time.Time) ([]Payment, error)
	// ListUpcomingPending: pending payments due on or after now for the
	// given party column ("tenant_id" queries by tenant and so on).
	ListUpcomingPendingByTenant(ctx context.Context, tenantID string, now time.Time) ([]Payment, error)
	ListUpcomingPendingByLandlord(ctx context.Context, landlordID string, now time.Time) ([]Payment, error)
	Save(ctx context.Context, p *Payment) error
}

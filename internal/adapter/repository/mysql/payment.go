package mysql

import (
	"context"
	"time"

	paymentDomain "rentease-backend/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&out)
	return &out, res.Error
}

// MarkCompletedByOrderID is conditional on status=pending, so a second
// verification of the same order updates zero rows and surfaces
// ErrAlreadyCompleted instead of completing twice.
func (r *PaymentRepository) MarkCompletedByOrderID(ctx context.Context, orderID, gatewayPaymentID, sig string, at time.Time) (*paymentDomain.Payment, error) {
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("order_id = ? AND status = ?", orderID, paymentDomain.StatusPending).
		Updates(map[string]any{
			"status":             paymentDomain.StatusCompleted,
			"gateway_payment_id": gatewayPaymentID,
			"gateway_signature":  sig,
			"payment_date":       at,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing paymentDomain.Payment
		if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&existing).Error; err != nil {
			return nil, err
		}
		return nil, paymentDomain.ErrAlreadyCompleted
	}
	return r.GetByOrderID(ctx, orderID)
}

func (r *PaymentRepository) ListOverduePending(ctx context.Context, now time.Time) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("status = ? AND due_date <= ?", paymentDomain.StatusPending, now).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListUpcomingPendingByTenant(ctx context.Context, tenantID string, now time.Time) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND due_date >= ?", tenantID, paymentDomain.StatusPending, now).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListUpcomingPendingByLandlord(ctx context.Context, landlordID string, now time.Time) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("landlord_id = ? AND status = ? AND due_date >= ?", landlordID, paymentDomain.StatusPending, now).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

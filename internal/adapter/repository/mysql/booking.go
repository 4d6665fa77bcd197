package mysql

import (
	"context"

	bookingDomain "rentease-backend/internal/domain/booking"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct{ db *gorm.DB }

func NewBookingRepository(db *gorm.DB) *BookingRepository { return &BookingRepository{db: db} }

func (r *BookingRepository) Create(ctx context.Context, b *bookingDomain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*bookingDomain.Booking, error) {
	var out bookingDomain.Booking
	res := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&out)
	return &out, res.Error
}

// GetByBookingIDForUpdate locks the row until the enclosing tx
// commits. SQLite (tests) ignores the locking clause, which is fine:
// its writes serialize anyway.
func (r *BookingRepository) GetByBookingIDForUpdate(ctx context.Context, bookingID string) (*bookingDomain.Booking, error) {
	var out bookingDomain.Booking
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("booking_id = ?", bookingID).
		First(&out)
	return &out, res.Error
}

func (r *BookingRepository) List(ctx context.Context) ([]bookingDomain.Booking, error) {
	var out []bookingDomain.Booking
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

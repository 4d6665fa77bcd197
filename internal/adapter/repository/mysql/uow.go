package mysql

import (
	"context"

	"rentease-backend/internal/domain/booking"
	"rentease-backend/internal/domain/lease"
	"rentease-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Properties: &PropertyRepository{db: tx},
		Parties:    &PartyRepository{db: tx},
		Visits:     &VisitRepository{db: tx},
		Bookings:   &BookingRepository{db: tx},
		Leases:     &LeaseRepository{db: tx},
		Payments:   &PaymentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinBookingTx(ctx context.Context, bookingID string, fn func(r uow.Repos, b *booking.Booking) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the booking row up-front to prevent races
		b, err := r.Bookings.GetByBookingIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		return fn(r, b)
	})
}

func (u *GormUoW) WithinLeaseTx(ctx context.Context, leaseID string, fn func(r uow.Repos, l *lease.Lease) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		l, err := r.Leases.GetByLeaseIDForUpdate(ctx, leaseID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}

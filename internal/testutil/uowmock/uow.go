// Package uowmock runs unit-of-work callbacks against a caller-supplied
// repository bundle without any real transaction.
package uowmock

import (
	"context"

	"rentease-backend/internal/domain/booking"
	"rentease-backend/internal/domain/lease"
	"rentease-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

type UoW struct {
	Repos uow.Repos

	// Overrides; when nil the callback runs against Repos directly.
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinBookingTxFn func(ctx context.Context, bookingID string, fn func(r uow.Repos, b *booking.Booking) error) error
	WithinLeaseTxFn   func(ctx context.Context, leaseID string, fn func(r uow.Repos, l *lease.Lease) error) error
}

func New(r uow.Repos) *UoW {
	return &UoW{Repos: r}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinBookingTx(ctx context.Context, bookingID string, fn func(r uow.Repos, b *booking.Booking) error) error {
	if m.WithinBookingTxFn != nil {
		return m.WithinBookingTxFn(ctx, bookingID, fn)
	}
	b, err := m.Repos.Bookings.GetByBookingIDForUpdate(ctx, bookingID)
	if err != nil {
		return err
	}
	return fn(m.Repos, b)
}

func (m *UoW) WithinLeaseTx(ctx context.Context, leaseID string, fn func(r uow.Repos, l *lease.Lease) error) error {
	if m.WithinLeaseTxFn != nil {
		return m.WithinLeaseTxFn(ctx, leaseID, fn)
	}
	l, err := m.Repos.Leases.GetByLeaseIDForUpdate(ctx, leaseID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}

package uow

import (
	"context"

	"rentease-backend/internal/domain/booking"
	"rentease-backend/internal/domain/lease"
	"rentease-backend/internal/domain/party"
	"rentease-backend/internal/domain/payment"
	"rentease-backend/internal/domain/property"
	"rentease-backend/internal/domain/visit"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	Properties property.Repository
	Parties    party.Repository
	Visits     visit.Repository
	Bookings   booking.Repository
	Leases     lease.Repository
	Payments   payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the booking row first, then pass it in
	WithinBookingTx(ctx context.Context, bookingID string, fn func(r Repos, b *booking.Booking) error) error
	// convenience: lock the lease row first (signature collection)
	WithinLeaseTx(ctx context.Context, leaseID string, fn func(r Repos, l *lease.Lease) error) error
}

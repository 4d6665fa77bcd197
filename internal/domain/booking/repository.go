package booking

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByBookingID(ctx context.Context, bookingID string) (*Booking, error)
	// GetByBookingIDForUpdate locks the row (SELECT ... FOR UPDATE).
	// Only meaningful inside a transaction.
	GetByBookingIDForUpdate(ctx context.Context, bookingID string) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)
	Save(ctx context.Context, b *Booking) error
}

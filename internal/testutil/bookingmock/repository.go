package bookingmock

import (
	"context"

	domain "rentease-backend/internal/domain/booking"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn                  func(ctx context.Context, b *domain.Booking) error
	GetByBookingIDFn          func(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetByBookingIDForUpdateFn func(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListFn                    func(ctx context.Context) ([]domain.Booking, error)
	SaveFn                    func(ctx context.Context, b *domain.Booking) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Booking) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if m.GetByBookingIDFn != nil {
		return m.GetByBookingIDFn(ctx, bookingID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByBookingIDForUpdate(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if m.GetByBookingIDForUpdateFn != nil {
		return m.GetByBookingIDForUpdateFn(ctx, bookingID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Booking, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Booking) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

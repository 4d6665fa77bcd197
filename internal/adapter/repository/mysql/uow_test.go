package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingDomain "rentease-backend/internal/domain/booking"
	propertyDomain "rentease-backend/internal/domain/property"
	"rentease-backend/internal/domain/uow"
	"rentease-backend/pkg/id"

	"gorm.io/gorm"
)

func seedBookingFixture(t *testing.T, db *gorm.DB, propStatus propertyDomain.Status) (propertyID, bookingID string) {
	t.Helper()
	ctx := context.Background()
	propertyID = id.NewID32()
	bookingID = id.NewID32()

	props := NewPropertyRepository(db)
	p := makeProperty(propertyID, id.NewID32())
	p.Status = propStatus
	if err := props.Create(ctx, p); err != nil {
		t.Fatalf("seed property: %v", err)
	}

	bookings := NewBookingRepository(db)
	b := &bookingDomain.Booking{
		BookingID:       bookingID,
		PropertyID:      propertyID,
		TenantID:        id.NewID32(),
		LandlordID:      p.LandlordID,
		StartDate:       time.Now().UTC(),
		EndDate:         time.Now().UTC().AddDate(1, 0, 0),
		MonthlyRent:     15000,
		SecurityDeposit: 15000,
		Status:          bookingDomain.StatusPending,
		PaymentStatus:   bookingDomain.PaymentPending,
		BookingDate:     time.Now().UTC(),
	}
	if err := bookings.Create(ctx, b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return propertyID, bookingID
}

func TestWithinBookingTx_CommitsTransition(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	propertyID, bookingID := seedBookingFixture(t, db, propertyDomain.StatusAvailable)

	err := u.WithinBookingTx(ctx, bookingID, func(r uow.Repos, b *bookingDomain.Booking) error {
		b.Status = bookingDomain.StatusBooked
		b.PaymentStatus = bookingDomain.PaymentCompleted
		if err := r.Bookings.Save(ctx, b); err != nil {
			return err
		}
		return r.Properties.UpdateStatusIf(ctx, propertyID,
			propertyDomain.StatusAvailable, propertyDomain.StatusBooked)
	})
	if err != nil {
		t.Fatalf("WithinBookingTx: %v", err)
	}

	got, err := NewPropertyRepository(db).GetByPropertyID(ctx, propertyID)
	if err != nil {
		t.Fatalf("GetByPropertyID: %v", err)
	}
	if got.Status != propertyDomain.StatusBooked {
		t.Fatalf("property status = %s, want booked", got.Status)
	}
}

func TestWithinBookingTx_RollsBackOnStatusConflict(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	// property already occupied: the CAS must fail and the booking
	// update must roll back with it
	propertyID, bookingID := seedBookingFixture(t, db, propertyDomain.StatusOccupied)

	err := u.WithinBookingTx(ctx, bookingID, func(r uow.Repos, b *bookingDomain.Booking) error {
		b.Status = bookingDomain.StatusBooked
		b.PaymentStatus = bookingDomain.PaymentCompleted
		if err := r.Bookings.Save(ctx, b); err != nil {
			return err
		}
		return r.Properties.UpdateStatusIf(ctx, propertyID,
			propertyDomain.StatusAvailable, propertyDomain.StatusBooked)
	})
	if !errors.Is(err, propertyDomain.ErrStatusConflict) {
		t.Fatalf("want ErrStatusConflict, got %v", err)
	}

	got, err := NewBookingRepository(db).GetByBookingID(ctx, bookingID)
	if err != nil {
		t.Fatalf("GetByBookingID: %v", err)
	}
	if got.Status != bookingDomain.StatusPending {
		t.Fatalf("booking status leaked out of rolled-back tx: %s", got.Status)
	}
	if got.PaymentStatus != bookingDomain.PaymentPending {
		t.Fatalf("payment status leaked out of rolled-back tx: %s", got.PaymentStatus)
	}
}

func TestWithinBookingTx_UnknownBooking(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)

	err := u.WithinBookingTx(context.Background(), id.NewID32(), func(r uow.Repos, b *bookingDomain.Booking) error {
		t.Fatal("fn must not run for a missing booking")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

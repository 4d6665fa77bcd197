// Package booking implements the tenancy state machine. A booking is
// created pending; payment verification is the only transition that
// marks it booked and flips the property off the market, and both
// happen in one transaction guarded by a compare-and-swap on the
// property row.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rentease-backend/internal/domain/actor"
	domain "rentease-backend/internal/domain/booking"
	"rentease-backend/internal/domain/fault"
	"rentease-backend/internal/domain/party"
	"rentease-backend/internal/domain/property"
	"rentease-backend/internal/domain/uow"
	"rentease-backend/internal/notify"
	"rentease-backend/internal/usecase/leasedraft"
	"rentease-backend/pkg/id"
	"rentease-backend/pkg/signature"

	"gorm.io/gorm"
)

type Service struct {
	uow        uow.UnitOfWork
	bookings   domain.Repository
	properties property.Repository
	parties    party.Repository
	drafts     *leasedraft.Engine
	verifier   *signature.Verifier
	notifier   notify.Sender
}

func NewService(
	u uow.UnitOfWork,
	bookings domain.Repository,
	properties property.Repository,
	parties party.Repository,
	drafts *leasedraft.Engine,
	verifier *signature.Verifier,
	notifier notify.Sender,
) *Service {
	return &Service{
		uow:        u,
		bookings:   bookings,
		properties: properties,
		parties:    parties,
		drafts:     drafts,
		verifier:   verifier,
		notifier:   notifier,
	}
}

type BookInput struct {
	PropertyID      string
	StartDate       time.Time
	EndDate         time.Time
	MonthlyRent     float64
	SecurityDeposit float64
	Message         string
}

// Book creates a pending booking with an attached lease draft. The
// property stays available until payment is verified.
func (s *Service) Book(ctx context.Context, who actor.Actor, in BookInput) (*domain.Booking, error) {
	if !who.IsTenant() {
		return nil, fault.Validation("actor", "must be a tenant")
	}
	if in.PropertyID == "" {
		return nil, fault.Validation("property_id", "is required")
	}
	if in.StartDate.IsZero() {
		return nil, fault.Validation("start_date", "is required")
	}
	if in.EndDate.IsZero() {
		return nil, fault.Validation("end_date", "is required")
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, fault.Validation("end_date", "must be after start date")
	}
	if in.MonthlyRent <= 0 {
		return nil, fault.Validation("monthly_rent", "must be greater than zero")
	}
	if in.SecurityDeposit <= 0 {
		return nil, fault.Validation("security_deposit", "must be greater than zero")
	}

	prop, err := s.properties.GetByPropertyID(ctx, in.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("property")
		}
		return nil, err
	}
	// Stored statuses are parsed loosely; rows written before the
	// vocabulary was canonicalized may carry mixed case.
	st, perr := property.ParseStatus(string(prop.Status))
	if perr != nil || st != property.StatusAvailable {
		return nil, fault.StateConflict("property is %s, not available", prop.Status)
	}

	draft, err := s.drafts.Generate(ctx, in.PropertyID, who.ID, in.StartDate, in.EndDate, leasedraft.Terms{
		RentAmount:      in.MonthlyRent,
		SecurityDeposit: in.SecurityDeposit,
	})
	if err != nil {
		return nil, err
	}
	terms, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		BookingID:       id.NewID32(),
		PropertyID:      prop.PropertyID,
		TenantID:        who.ID,
		LandlordID:      prop.LandlordID,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		MonthlyRent:     in.MonthlyRent,
		SecurityDeposit: in.SecurityDeposit,
		LeaseTerms:      string(terms),
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		BookingDate:     time.Now(),
		Message:         in.Message,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.notifyLandlord(ctx, prop.LandlordID, "New booking request",
		fmt.Sprintf("A booking for %q is pending payment (from %s to %s).",
			prop.Title, b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02")))
	return b, nil
}

// VerifyPaymentAndActivate is the commit point of the state machine.
// Inside a single transaction it verifies the gateway signature,
// records the confirmation on the booking, completes any payment row
// issued for the order, and flips the property available -> booked
// with a compare-and-swap. A verification replay returns the booking
// unchanged; a signature mismatch changes nothing.
func (s *Service) VerifyPaymentAndActivate(ctx context.Context, who actor.Actor, bookingID, orderID, paymentID, sig string) (*domain.Booking, error) {
	if orderID == "" {
		return nil, fault.Validation("order_id", "is required")
	}
	if paymentID == "" {
		return nil, fault.Validation("payment_id", "is required")
	}
	if sig == "" {
		return nil, fault.Validation("signature", "is required")
	}

	var out *domain.Booking
	err := s.uow.WithinBookingTx(ctx, bookingID, func(r uow.Repos, b *domain.Booking) error {
		if who.IsTenant() && b.TenantID != who.ID {
			return fault.NotFound("booking")
		}
		if b.Status == domain.StatusCancelled {
			return fault.StateConflict("booking is cancelled")
		}
		if b.PaymentStatus == domain.PaymentCompleted {
			// Replay: keep the first confirmation.
			out = b
			return nil
		}
		if !s.verifier.Verify(orderID, paymentID, sig) {
			return fault.ErrSignatureMismatch
		}

		now := time.Now()
		b.Status = domain.StatusBooked
		b.PaymentStatus = domain.PaymentCompleted
		b.OrderID = orderID
		b.PaymentID = paymentID
		b.Signature = sig
		b.PaidAt = &now
		if err := r.Bookings.Save(ctx, b); err != nil {
			return err
		}

		// A payment row exists when the order went through the payment
		// gateway flow; bookings paid out of band have none.
		if _, err := r.Payments.MarkCompletedByOrderID(ctx, orderID, paymentID, sig, now); err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := r.Properties.UpdateStatusIf(ctx, b.PropertyID, property.StatusAvailable, property.StatusBooked); err != nil {
			if errors.Is(err, property.ErrStatusConflict) {
				return fault.StateConflict("property was taken by another booking")
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("property")
			}
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("booking")
		}
		return nil, err
	}

	s.notifyLandlord(ctx, out.LandlordID, "Booking confirmed",
		fmt.Sprintf("Payment for booking starting %s is verified.", out.StartDate.Format("2006-01-02")))
	s.notifyTenant(ctx, out.TenantID, "Booking confirmed",
		"Your payment is verified and the property is reserved for you.")
	return out, nil
}

// Cancel withdraws a booking. The property is not reverted here; if it
// was flipped by a verified payment the landlord restores it manually.
func (s *Service) Cancel(ctx context.Context, who actor.Actor, bookingID, reason string) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.uow.WithinBookingTx(ctx, bookingID, func(r uow.Repos, b *domain.Booking) error {
		if who.IsTenant() && b.TenantID != who.ID {
			return fault.NotFound("booking")
		}
		switch b.Status {
		case domain.StatusCancelled:
			return fault.StateConflict("booking is already cancelled")
		case domain.StatusCompleted:
			return fault.StateConflict("completed bookings cannot be cancelled")
		}
		b.Status = domain.StatusCancelled
		b.CancellationReason = reason
		if err := r.Bookings.Save(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("booking")
		}
		return nil, err
	}

	s.notifyLandlord(ctx, out.LandlordID, "Booking cancelled",
		fmt.Sprintf("The booking starting %s was cancelled.", out.StartDate.Format("2006-01-02")))
	return out, nil
}

// UpdateStatus is the administrative override. Setting a booking to
// booked ("active" in the legacy vocabulary) also forces the property
// occupied, unconditionally.
func (s *Service) UpdateStatus(ctx context.Context, who actor.Actor, bookingID, status string) (*domain.Booking, error) {
	if !who.CanModerate() {
		return nil, fault.Validation("actor", "must be an admin")
	}
	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, fault.Validation("status", "is not a recognized booking status")
	}

	var out *domain.Booking
	txErr := s.uow.WithinBookingTx(ctx, bookingID, func(r uow.Repos, b *domain.Booking) error {
		b.Status = to
		if err := r.Bookings.Save(ctx, b); err != nil {
			return err
		}
		if to == domain.StatusBooked {
			if err := r.Properties.UpdateStatus(ctx, b.PropertyID, property.StatusOccupied); err != nil {
				return err
			}
		}
		out = b
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("booking")
		}
		return nil, txErr
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("booking")
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) notifyLandlord(ctx context.Context, landlordID, subject, body string) {
	l, err := s.parties.GetLandlordByLandlordID(ctx, landlordID)
	if err != nil {
		return
	}
	s.notifier.Notify(notify.Message{To: l.Email, Subject: subject, Body: body})
}

func (s *Service) notifyTenant(ctx context.Context, tenantID, subject, body string) {
	t, err := s.parties.GetTenantByTenantID(ctx, tenantID)
	if err != nil {
		return
	}
	s.notifier.Notify(notify.Message{To: t.Email, Subject: subject, Body: body})
}

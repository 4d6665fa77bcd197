// Package payment implements the rent payment flow against the
// external processor: order creation issues a pending lease and a
// pending payment row, verification completes the payment row exactly
// once. Booking activation lives in the booking usecase; this one
// never touches property or booking state.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentease-backend/internal/domain/actor"
	"rentease-backend/internal/domain/fault"
	"rentease-backend/internal/domain/lease"
	"rentease-backend/internal/domain/party"
	domain "rentease-backend/internal/domain/payment"
	"rentease-backend/internal/domain/property"
	"rentease-backend/internal/infrastructure/gateway"
	"rentease-backend/internal/notify"
	"rentease-backend/pkg/id"
	"rentease-backend/pkg/signature"

	"gorm.io/gorm"
)

// OrderCreator is the processor collaborator; satisfied by
// gateway.Client.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*gateway.Order, error)
}

// payment order due window: give the payer a day before the reminder
// sweep starts nagging.
const dueWindow = 24 * time.Hour

type Service struct {
	gateway    OrderCreator
	payments   domain.Repository
	leases     lease.Repository
	properties property.Repository
	parties    party.Repository
	verifier   *signature.Verifier
	notifier   notify.Sender
}

func NewService(
	g OrderCreator,
	payments domain.Repository,
	leases lease.Repository,
	properties property.Repository,
	parties party.Repository,
	verifier *signature.Verifier,
	notifier notify.Sender,
) *Service {
	return &Service{
		gateway:    g,
		payments:   payments,
		leases:     leases,
		properties: properties,
		parties:    parties,
		verifier:   verifier,
		notifier:   notifier,
	}
}

type CreateOrderInput struct {
	PropertyID string
	StartDate  time.Time
	EndDate    time.Time
	Terms      lease.Terms
}

// CreateOrderResult carries everything the client needs to open the
// checkout: the processor order plus the records it will settle.
type CreateOrderResult struct {
	Order   *gateway.Order  `json:"order"`
	Lease   *lease.Lease    `json:"lease"`
	Payment *domain.Payment `json:"payment"`
}

// CreateOrder registers an order with the processor and records a
// pending lease and a pending payment bound to it. The lease carries
// no signatures yet; it activates through the signing flow, never
// here.
func (s *Service) CreateOrder(ctx context.Context, who actor.Actor, in CreateOrderInput) (*CreateOrderResult, error) {
	if !who.IsTenant() {
		return nil, fault.Validation("actor", "must be a tenant")
	}
	if in.PropertyID == "" {
		return nil, fault.Validation("property_id", "is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, fault.Validation("start_date", "start and end dates are required")
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, fault.Validation("end_date", "must be after start date")
	}
	if in.Terms.RentAmount <= 0 {
		return nil, fault.Validation("rent_amount", "must be greater than zero")
	}

	prop, err := s.properties.GetByPropertyID(ctx, in.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("property")
		}
		return nil, err
	}
	tenant, err := s.parties.GetTenantByTenantID(ctx, who.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("tenant")
		}
		return nil, err
	}

	total := in.Terms.RentAmount + in.Terms.SecurityDeposit
	receipt := "rcpt_" + id.NewID32()[:16]
	order, err := s.gateway.CreateOrder(ctx, toSmallestUnit(total), "INR", receipt, map[string]string{
		"property_id": prop.PropertyID,
		"tenant_id":   tenant.TenantID,
	})
	if err != nil {
		return nil, err
	}

	terms := in.Terms
	terms.ApplyDefaults()

	l := &lease.Lease{
		LeaseID:         id.NewID32(),
		PropertyID:      prop.PropertyID,
		LandlordID:      prop.LandlordID,
		TenantID:        tenant.TenantID,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		RentAmount:      terms.RentAmount,
		SecurityDeposit: terms.SecurityDeposit,
		Terms:           terms,
		Status:          lease.StatusPending,
	}
	if err := s.leases.Create(ctx, l); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &domain.Payment{
		PaymentID:   id.NewID32(),
		TenantID:    tenant.TenantID,
		LandlordID:  prop.LandlordID,
		PropertyID:  prop.PropertyID,
		LeaseID:     l.LeaseID,
		Amount:      total,
		PaymentType: domain.TypeRent,
		Status:      domain.StatusPending,
		Description: fmt.Sprintf("First rent and deposit for %s", prop.Title),
		OrderID:     order.ID,
		PaymentDate: now,
		DueDate:     now.Add(dueWindow),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	s.notifier.Notify(notify.Message{
		To:      tenant.Email,
		Subject: "Payment initiated",
		Body: fmt.Sprintf("Your payment of %.2f for %q is initiated. Complete it before %s.",
			total, prop.Title, p.DueDate.Format("2006-01-02 15:04")),
	})
	return &CreateOrderResult{Order: order, Lease: l, Payment: p}, nil
}

// Verify checks the processor signature and completes the payment row
// for the order. Exactly once: a replay gets the already-completed
// record back without modification.
func (s *Service) Verify(ctx context.Context, orderID, paymentID, sig string) (*domain.Payment, error) {
	if orderID == "" {
		return nil, fault.Validation("order_id", "is required")
	}
	if paymentID == "" {
		return nil, fault.Validation("payment_id", "is required")
	}
	if !s.verifier.Verify(orderID, paymentID, sig) {
		return nil, fault.ErrSignatureMismatch
	}

	p, err := s.payments.MarkCompletedByOrderID(ctx, orderID, paymentID, sig, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyCompleted):
			return s.payments.GetByOrderID(ctx, orderID)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fault.NotFound("payment")
		}
		return nil, err
	}

	if t, terr := s.parties.GetTenantByTenantID(ctx, p.TenantID); terr == nil {
		s.notifier.Notify(notify.Message{
			To:      t.Email,
			Subject: "Payment received",
			Body:    fmt.Sprintf("Your payment of %.2f is confirmed.", p.Amount),
		})
	}
	return p, nil
}

func (s *Service) GetDetails(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p, err := s.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("payment")
		}
		return nil, err
	}
	return p, nil
}

// UpcomingForActor lists the caller's pending payments that are not
// yet overdue.
func (s *Service) UpcomingForActor(ctx context.Context, who actor.Actor) ([]domain.Payment, error) {
	now := time.Now()
	if who.IsLandlord() {
		return s.payments.ListUpcomingPendingByLandlord(ctx, who.ID, now)
	}
	return s.payments.ListUpcomingPendingByTenant(ctx, who.ID, now)
}

// CheckPendingPayments mails a reminder for every pending payment past
// its due date. Run by the background sweep; errors on individual
// lookups are skipped so one bad row cannot starve the rest.
func (s *Service) CheckPendingPayments(ctx context.Context) (int, error) {
	overdue, err := s.payments.ListOverduePending(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	sent := 0
	for i := range overdue {
		p := &overdue[i]
		t, err := s.parties.GetTenantByTenantID(ctx, p.TenantID)
		if err != nil {
			continue
		}
		s.notifier.Notify(notify.Message{
			To:      t.Email,
			Subject: "Payment overdue",
			Body: fmt.Sprintf("Your payment of %.2f was due on %s. Please complete it.",
				p.Amount, p.DueDate.Format("2006-01-02")),
		})
		sent++
	}
	return sent, nil
}

// toSmallestUnit converts rupees to paise for the processor.
func toSmallestUnit(amount float64) int64 {
	return int64(amount * 100)
}

// Package lease implements the lease lifecycle: bilateral signature
// collection, renewal, termination, and expiry reminders. A lease is
// active if and only if both parties have signed; nothing else flips
// it active.
package lease

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentease-backend/internal/domain/actor"
	"rentease-backend/internal/domain/fault"
	domain "rentease-backend/internal/domain/lease"
	"rentease-backend/internal/domain/party"
	"rentease-backend/internal/domain/uow"
	"rentease-backend/internal/notify"
	"rentease-backend/pkg/id"

	"gorm.io/gorm"
)

type Service struct {
	uow      uow.UnitOfWork
	leases   domain.Repository
	parties  party.Repository
	notifier notify.Sender
}

func NewService(u uow.UnitOfWork, leases domain.Repository, parties party.Repository, notifier notify.Sender) *Service {
	return &Service{uow: u, leases: leases, parties: parties, notifier: notifier}
}

// Sign records the caller's signature in their slot. The row is locked
// for the duration so two concurrent signs cannot both observe a
// half-signed lease. When the second signature lands the lease goes
// active and the signed date is stamped.
func (s *Service) Sign(ctx context.Context, who actor.Actor, leaseID, sig string) (*domain.Lease, error) {
	if strings.TrimSpace(sig) == "" {
		return nil, fault.Validation("signature", "is required")
	}
	if !who.IsTenant() && !who.IsLandlord() {
		return nil, fault.Validation("actor", "must be a lease party")
	}

	var out *domain.Lease
	err := s.uow.WithinLeaseTx(ctx, leaseID, func(r uow.Repos, l *domain.Lease) error {
		switch l.Status {
		case domain.StatusPending, domain.StatusActive:
		default:
			return fault.StateConflict("lease is %s and cannot be signed", l.Status)
		}

		switch {
		case who.IsTenant():
			if l.TenantID != who.ID {
				return fault.NotFound("lease")
			}
			if l.TenantSignature != nil {
				return fault.StateConflict("tenant has already signed")
			}
			l.TenantSignature = &sig
		case who.IsLandlord():
			if l.LandlordID != who.ID {
				return fault.NotFound("lease")
			}
			if l.LandlordSignature != nil {
				return fault.StateConflict("landlord has already signed")
			}
			l.LandlordSignature = &sig
		}

		if l.FullySigned() {
			now := time.Now()
			l.Status = domain.StatusActive
			l.SignedDate = &now
		}
		if err := r.Leases.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("lease")
		}
		return nil, err
	}

	// Tell the counterparty; on full signature tell both.
	if out.Status == domain.StatusActive {
		s.notifyParties(ctx, out, "Lease active",
			fmt.Sprintf("The lease from %s to %s is signed by both parties and now active.",
				out.StartDate.Format("2006-01-02"), out.EndDate.Format("2006-01-02")))
	} else if who.IsTenant() {
		s.notifyLandlord(ctx, out.LandlordID, "Lease signed by tenant",
			"The tenant has signed the lease. Your signature is pending.")
	} else {
		s.notifyTenant(ctx, out.TenantID, "Lease signed by landlord",
			"The landlord has signed the lease. Your signature is pending.")
	}
	return out, nil
}

type RenewInput struct {
	StartDate time.Time
	EndDate   time.Time
	// Optional new rent; zero keeps the original amount.
	RentAmount float64
}

// Renew issues a fresh pending lease cloned from the original. The
// new lease carries no signatures and must be signed like any other;
// the original row is not modified.
func (s *Service) Renew(ctx context.Context, who actor.Actor, leaseID string, in RenewInput) (*domain.Lease, error) {
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, fault.Validation("start_date", "start and end dates are required")
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, fault.Validation("end_date", "must be after start date")
	}

	orig, err := s.get(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if !who.IsAdmin() && orig.TenantID != who.ID && orig.LandlordID != who.ID {
		return nil, fault.NotFound("lease")
	}
	switch orig.Status {
	case domain.StatusTerminated:
		return nil, fault.StateConflict("terminated leases cannot be renewed")
	case domain.StatusPending:
		return nil, fault.StateConflict("lease was never activated")
	}

	terms := orig.Terms
	if in.RentAmount > 0 {
		terms.RentAmount = in.RentAmount
	}

	next := &domain.Lease{
		LeaseID:         id.NewID32(),
		PropertyID:      orig.PropertyID,
		LandlordID:      orig.LandlordID,
		TenantID:        orig.TenantID,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		RentAmount:      terms.RentAmount,
		SecurityDeposit: terms.SecurityDeposit,
		Terms:           terms,
		Status:          domain.StatusPending,
		RenewedFrom:     orig.LeaseID,
	}
	if err := s.leases.Create(ctx, next); err != nil {
		return nil, err
	}

	s.notifyParties(ctx, next, "Lease renewal drafted",
		fmt.Sprintf("A renewal from %s to %s is ready for signatures.",
			next.StartDate.Format("2006-01-02"), next.EndDate.Format("2006-01-02")))
	return next, nil
}

// Terminate is irreversible.
func (s *Service) Terminate(ctx context.Context, who actor.Actor, leaseID, reason string) (*domain.Lease, error) {
	var out *domain.Lease
	err := s.uow.WithinLeaseTx(ctx, leaseID, func(r uow.Repos, l *domain.Lease) error {
		if !who.IsAdmin() && l.TenantID != who.ID && l.LandlordID != who.ID {
			return fault.NotFound("lease")
		}
		if l.Status == domain.StatusTerminated {
			return fault.StateConflict("lease is already terminated")
		}
		l.Status = domain.StatusTerminated
		if err := r.Leases.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("lease")
		}
		return nil, err
	}

	body := "The lease has been terminated."
	if reason != "" {
		body = fmt.Sprintf("The lease has been terminated: %s", reason)
	}
	s.notifyParties(ctx, out, "Lease terminated", body)
	return out, nil
}

func (s *Service) Get(ctx context.Context, leaseID string) (*domain.Lease, error) {
	return s.get(ctx, leaseID)
}

func (s *Service) ListByActor(ctx context.Context, who actor.Actor) ([]domain.Lease, error) {
	if who.IsLandlord() {
		return s.leases.ListByLandlordID(ctx, who.ID)
	}
	return s.leases.ListByTenantID(ctx, who.ID)
}

// ExpiringWithin lists active leases ending inside the window.
func (s *Service) ExpiringWithin(ctx context.Context, days int) ([]domain.Lease, error) {
	if days <= 0 {
		return nil, fault.Validation("days", "must be greater than zero")
	}
	return s.leases.ListActiveEndingBy(ctx, time.Now().AddDate(0, 0, days))
}

// RemindExpiring mails both parties of every active lease ending
// inside the window. Run by the background sweep.
func (s *Service) RemindExpiring(ctx context.Context, days int) (int, error) {
	expiring, err := s.ExpiringWithin(ctx, days)
	if err != nil {
		return 0, err
	}
	for i := range expiring {
		l := &expiring[i]
		s.notifyParties(ctx, l, "Lease expiring soon",
			fmt.Sprintf("The lease ends on %s. Renew it or arrange handover.", l.EndDate.Format("2006-01-02")))
	}
	return len(expiring), nil
}

func (s *Service) get(ctx context.Context, leaseID string) (*domain.Lease, error) {
	l, err := s.leases.GetByLeaseID(ctx, leaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("lease")
		}
		return nil, err
	}
	return l, nil
}

func (s *Service) notifyParties(ctx context.Context, l *domain.Lease, subject, body string) {
	s.notifyTenant(ctx, l.TenantID, subject, body)
	s.notifyLandlord(ctx, l.LandlordID, subject, body)
}

func (s *Service) notifyTenant(ctx context.Context, tenantID, subject, body string) {
	t, err := s.parties.GetTenantByTenantID(ctx, tenantID)
	if err != nil {
		return
	}
	s.notifier.Notify(notify.Message{To: t.Email, Subject: subject, Body: body})
}

func (s *Service) notifyLandlord(ctx context.Context, landlordID, subject, body string) {
	l, err := s.parties.GetLandlordByLandlordID(ctx, landlordID)
	if err != nil {
		return
	}
	s.notifier.Notify(notify.Message{To: l.Email, Subject: subject, Body: body})
}

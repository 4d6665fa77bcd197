// Package visit implements property visit scheduling: tenants book and
// reshuffle slots, landlords confirm or reject them. A visit that has
// been confirmed or rejected is settled and leaves the mutable flow.
package visit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentease-backend/internal/domain/actor"
	"rentease-backend/internal/domain/fault"
	"rentease-backend/internal/domain/party"
	"rentease-backend/internal/domain/property"
	domain "rentease-backend/internal/domain/visit"
	"rentease-backend/internal/notify"
	"rentease-backend/pkg/id"

	"gorm.io/gorm"
)

type Service struct {
	visits     domain.Repository
	properties property.Repository
	parties    party.Repository
	notifier   notify.Sender
}

func NewService(visits domain.Repository, properties property.Repository, parties party.Repository, notifier notify.Sender) *Service {
	return &Service{visits: visits, properties: properties, parties: parties, notifier: notifier}
}

type ScheduleInput struct {
	PropertyID string
	VisitDate  time.Time
	VisitTime  string
	Message    string
}

func (s *Service) Schedule(ctx context.Context, who actor.Actor, in ScheduleInput) (*domain.Visit, error) {
	if !who.IsTenant() {
		return nil, fault.Validation("actor", "must be a tenant")
	}
	if in.PropertyID == "" {
		return nil, fault.Validation("property_id", "is required")
	}
	if strings.TrimSpace(in.VisitTime) == "" {
		return nil, fault.Validation("visit_time", "is required")
	}
	if beforeToday(in.VisitDate) {
		return nil, fault.Validation("visit_date", "must not be in the past")
	}

	prop, err := s.properties.GetByPropertyID(ctx, in.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("property")
		}
		return nil, err
	}

	v := &domain.Visit{
		VisitID:    id.NewID32(),
		PropertyID: prop.PropertyID,
		TenantID:   who.ID,
		LandlordID: prop.LandlordID,
		VisitDate:  in.VisitDate,
		VisitTime:  in.VisitTime,
		Status:     domain.StatusScheduled,
		Message:    in.Message,
	}
	if err := s.visits.Create(ctx, v); err != nil {
		return nil, err
	}

	s.notifyLandlord(ctx, prop.LandlordID, "New visit request",
		fmt.Sprintf("A visit for %q is requested on %s at %s.", prop.Title, v.VisitDate.Format("2006-01-02"), v.VisitTime))
	return v, nil
}

// Reschedule moves the slot and keeps the previous one as an audit
// trail. Only the requesting tenant may reschedule, and only while the
// visit is still mutable.
func (s *Service) Reschedule(ctx context.Context, who actor.Actor, visitID string, date time.Time, visitTime string) (*domain.Visit, error) {
	if beforeToday(date) {
		return nil, fault.Validation("visit_date", "must not be in the past")
	}
	if strings.TrimSpace(visitTime) == "" {
		return nil, fault.Validation("visit_time", "is required")
	}
	v, err := s.get(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if who.IsTenant() && v.TenantID != who.ID {
		return nil, fault.NotFound("visit")
	}
	if !v.Status.Mutable() {
		return nil, fault.StateConflict("visit is %s and can no longer be rescheduled", v.Status)
	}

	prev := v.VisitDate
	v.PreviousVisitDate = &prev
	v.PreviousVisitTime = v.VisitTime
	v.VisitDate = date
	v.VisitTime = visitTime
	v.Status = domain.StatusRescheduled
	if err := s.visits.Save(ctx, v); err != nil {
		return nil, err
	}

	s.notifyLandlord(ctx, v.LandlordID, "Visit rescheduled",
		fmt.Sprintf("The visit on %s at %s moved to %s at %s.",
			prev.Format("2006-01-02"), v.PreviousVisitTime, date.Format("2006-01-02"), visitTime))
	return v, nil
}

func (s *Service) Cancel(ctx context.Context, who actor.Actor, visitID, reason string) (*domain.Visit, error) {
	v, err := s.get(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if who.IsTenant() && v.TenantID != who.ID {
		return nil, fault.NotFound("visit")
	}
	if !v.Status.Mutable() {
		return nil, fault.StateConflict("visit is %s and can no longer be cancelled", v.Status)
	}
	v.Status = domain.StatusCancelled
	v.CancellationReason = reason
	if err := s.visits.Save(ctx, v); err != nil {
		return nil, err
	}
	s.notifyLandlord(ctx, v.LandlordID, "Visit cancelled",
		fmt.Sprintf("The visit on %s at %s was cancelled.", v.VisitDate.Format("2006-01-02"), v.VisitTime))
	return v, nil
}

// Confirm settles the visit in the landlord's favor.
func (s *Service) Confirm(ctx context.Context, who actor.Actor, visitID string) (*domain.Visit, error) {
	return s.settle(ctx, who, visitID, domain.StatusConfirmed, "")
}

func (s *Service) Reject(ctx context.Context, who actor.Actor, visitID, reason string) (*domain.Visit, error) {
	return s.settle(ctx, who, visitID, domain.StatusRejected, reason)
}

func (s *Service) settle(ctx context.Context, who actor.Actor, visitID string, to domain.Status, reason string) (*domain.Visit, error) {
	if !who.CanConfirmVisits() {
		return nil, fault.Validation("actor", "must be a landlord")
	}
	v, err := s.get(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if who.IsLandlord() && v.LandlordID != who.ID {
		return nil, fault.NotFound("visit")
	}
	if !v.Status.Mutable() {
		return nil, fault.StateConflict("visit is already %s", v.Status)
	}
	v.Status = to
	if reason != "" {
		v.CancellationReason = reason
	}
	if err := s.visits.Save(ctx, v); err != nil {
		return nil, err
	}

	subject := "Visit confirmed"
	body := fmt.Sprintf("Your visit on %s at %s is confirmed.", v.VisitDate.Format("2006-01-02"), v.VisitTime)
	if to == domain.StatusRejected {
		subject = "Visit rejected"
		body = fmt.Sprintf("Your visit on %s at %s was rejected.", v.VisitDate.Format("2006-01-02"), v.VisitTime)
	}
	s.notifyTenant(ctx, v.TenantID, subject, body)
	return v, nil
}

// DeletePermanently removes the row. Allowed only for visits already
// out of the flow (cancelled or rejected).
func (s *Service) DeletePermanently(ctx context.Context, who actor.Actor, visitID string) error {
	v, err := s.get(ctx, visitID)
	if err != nil {
		return err
	}
	if who.IsTenant() && v.TenantID != who.ID {
		return fault.NotFound("visit")
	}
	if !v.Status.Deletable() {
		return fault.StateConflict("only cancelled or rejected visits can be deleted, this one is %s", v.Status)
	}
	return s.visits.Delete(ctx, visitID)
}

func (s *Service) Get(ctx context.Context, visitID string) (*domain.Visit, error) {
	return s.get(ctx, visitID)
}

func (s *Service) ListByTenant(ctx context.Context, tenantID string) ([]domain.Visit, error) {
	return s.visits.ListByTenantID(ctx, tenantID)
}

func (s *Service) get(ctx context.Context, visitID string) (*domain.Visit, error) {
	v, err := s.visits.GetByVisitID(ctx, visitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("visit")
		}
		return nil, err
	}
	return v, nil
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

// beforeToday compares date-only, local time. Booking a visit for
// later today is allowed.
func beforeToday(d time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, d.Location())
	return d.Before(today)
}

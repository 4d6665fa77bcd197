// Package property implements the listing registry: creation, manual
// status restores, and availability search. Automatic status flips
// (available to booked) belong to payment verification, not here.
package property

import (
	"context"
	"errors"
	"strings"

	"rentease-backend/internal/domain/actor"
	"rentease-backend/internal/domain/fault"
	domain "rentease-backend/internal/domain/property"
	"rentease-backend/pkg/id"

	"gorm.io/gorm"
)

type Service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Title    string
	Location string
	Price    float64
	Status   string // optional, defaults to available
}

func (s *Service) Create(ctx context.Context, who actor.Actor, in CreateInput) (*domain.Property, error) {
	if !who.CanManageProperties() {
		return nil, fault.Validation("actor", "must be a landlord")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fault.Validation("title", "is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, fault.Validation("location", "is required")
	}
	if in.Price <= 0 {
		return nil, fault.Validation("price", "must be greater than zero")
	}

	status := domain.StatusAvailable
	if in.Status != "" {
		parsed, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, fault.Validation("status", "is not a recognized property status")
		}
		status = parsed
	}

	p := &domain.Property{
		PropertyID: id.NewID32(),
		LandlordID: who.ID,
		Title:      strings.TrimSpace(in.Title),
		Location:   strings.TrimSpace(in.Location),
		Price:      in.Price,
		Status:     status,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, propertyID string) (*domain.Property, error) {
	p, err := s.repo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("property")
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) FindAvailable(ctx context.Context, f domain.Filter) ([]domain.Property, error) {
	return s.repo.FindAvailable(ctx, f)
}

// SetStatus is the manual override used by landlords pulling a listing
// for maintenance or restoring it to the market. It parses the loose
// status vocabulary and writes unconditionally.
func (s *Service) SetStatus(ctx context.Context, who actor.Actor, propertyID, status string) (*domain.Property, error) {
	if !who.CanManageProperties() {
		return nil, fault.Validation("actor", "must be a landlord")
	}
	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, fault.Validation("status", "is not a recognized property status")
	}
	p, err := s.repo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("property")
		}
		return nil, err
	}
	if !who.IsAdmin() && p.LandlordID != who.ID {
		return nil, fault.StateConflict("property belongs to another landlord")
	}
	if err := s.repo.UpdateStatus(ctx, propertyID, to); err != nil {
		return nil, err
	}
	p.Status = to
	return p, nil
}

// Package leasedraft computes advisory lease term documents. A draft
// is not a persisted lease; it becomes one only when a booking (or a
// payment order) is committed from it.
package leasedraft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentease-backend/internal/domain/fault"
	"rentease-backend/internal/domain/party"
	"rentease-backend/internal/domain/property"

	"gorm.io/gorm"
)

type Terms struct {
	RentAmount      float64 `json:"rentAmount"`
	SecurityDeposit float64 `json:"securityDeposit"`
	MaintenanceFee  float64 `json:"maintenanceFee,omitempty"`
}

type PropertyDetails struct {
	Title           string  `json:"title"`
	Location        string  `json:"location"`
	RentAmount      float64 `json:"rentAmount"`
	SecurityDeposit float64 `json:"securityDeposit"`
	MaintenanceFee  float64 `json:"maintenanceFee,omitempty"`
}

type LeaseTerms struct {
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Duration        string    `json:"duration"`
	RentDueDate     int       `json:"rentDueDate"`
	SecurityDeposit float64   `json:"securityDeposit"`
	MaintenanceFee  float64   `json:"maintenanceFee,omitempty"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Parties struct {
	Tenant   Contact `json:"tenant"`
	Landlord Contact `json:"landlord"`
}

type Draft struct {
	PropertyDetails PropertyDetails `json:"propertyDetails"`
	LeaseTerms      LeaseTerms      `json:"leaseTerms"`
	AdditionalTerms []string        `json:"additionalTerms"`
	Parties         Parties         `json:"parties"`
}

// boilerplateClauses is the fixed clause list every draft carries.
var boilerplateClauses = []string{
	"Tenant shall maintain the property in good condition",
	"Tenant shall not sublet the property without landlord's written consent",
	"Tenant shall pay utility bills on time",
	"Landlord shall provide 24 hours notice before property inspection",
	"Tenant shall not make structural changes without landlord's consent",
}

type Engine struct {
	properties property.Repository
	parties    party.Repository
}

func NewEngine(properties property.Repository, parties party.Repository) *Engine {
	return &Engine{properties: properties, parties: parties}
}

// DurationMonths is the whole-month policy: day-of-month is ignored.
// Deliberately coarse; the product counts a lease from the 28th to the
// 2nd of the next month as one month.
func DurationMonths(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

func (e *Engine) Generate(ctx context.Context, propertyID, tenantID string, start, end time.Time, terms Terms) (*Draft, error) {
	prop, err := e.properties.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("property")
		}
		return nil, err
	}
	tenant, err := e.parties.GetTenantByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("tenant")
		}
		return nil, err
	}
	landlord, err := e.parties.GetLandlordByLandlordID(ctx, prop.LandlordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("landlord")
		}
		return nil, err
	}

	duration := DurationMonths(start, end)

	return &Draft{
		PropertyDetails: PropertyDetails{
			Title:           prop.Title,
			Location:        prop.Location,
			RentAmount:      terms.RentAmount,
			SecurityDeposit: terms.SecurityDeposit,
			MaintenanceFee:  terms.MaintenanceFee,
		},
		LeaseTerms: LeaseTerms{
			StartDate:       start,
			EndDate:         end,
			Duration:        fmt.Sprintf("%d months", duration),
			RentDueDate:     1, // 1st of every month
			SecurityDeposit: terms.SecurityDeposit,
			MaintenanceFee:  terms.MaintenanceFee,
		},
		AdditionalTerms: boilerplateClauses,
		Parties: Parties{
			Tenant:   Contact{Name: tenant.Username, Email: tenant.Email, Phone: tenant.Phone},
			Landlord: Contact{Name: landlord.Username, Email: landlord.Email, Phone: landlord.Phone},
		},
	}, nil
}

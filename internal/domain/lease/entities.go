package lease

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusExpired    Status = "expired"
	StatusTerminated Status = "terminated"
	StatusRenewed    Status = "renewed"
)

var (
	ErrNotFound      = fmt.Errorf("lease not found: %w", gorm.ErrRecordNotFound)
	ErrUnknownStatus = errors.New("unknown lease status")
)

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "active":
		return StatusActive, nil
	case "expired":
		return StatusExpired, nil
	case "terminated":
		return StatusTerminated, nil
	case "renewed":
		return StatusRenewed, nil
	}
	return "", ErrUnknownStatus
}

// Terms is the structured clause set embedded in every lease. Defaults
// mirror the standard boilerplate offered to new tenants.
type Terms struct {
	RentAmount        float64 `gorm:"type:decimal(18,2)" json:"rent_amount"`
	SecurityDeposit   float64 `gorm:"type:decimal(18,2)" json:"security_deposit"`
	Duration          string  `gorm:"size:32" json:"duration"`
	RentDueDate       int     `json:"rent_due_date"`
	Maintenance       string  `gorm:"size:255" json:"maintenance"`
	Utilities         string  `gorm:"size:255" json:"utilities"`
	NoticePeriod      string  `gorm:"size:64" json:"notice_period"`
	RenewalTerms      string  `gorm:"size:255" json:"renewal_terms"`
	TerminationClause string  `gorm:"size:255" json:"termination_clause"`
}

// ApplyDefaults fills the free-text clauses the way blank drafts are
// issued.
func (t *Terms) ApplyDefaults() {
	if t.RentDueDate == 0 {
		t.RentDueDate = 1
	}
	if t.Maintenance == "" {
		t.Maintenance = "Tenant responsible"
	}
	if t.Utilities == "" {
		t.Utilities = "Tenant responsible"
	}
	if t.NoticePeriod == "" {
		t.NoticePeriod = "1 month"
	}
	if t.RenewalTerms == "" {
		t.RenewalTerms = "Automatic renewal unless notice given"
	}
	if t.TerminationClause == "" {
		t.TerminationClause = "Standard termination terms apply"
	}
}

type Lease struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	LeaseID    string `gorm:"size:32;uniqueIndex:ux_leases_lease_id_active" json:"lease_id"`
	PropertyID string `gorm:"size:32;index:idx_leases_property" json:"property_id"`
	LandlordID string `gorm:"size:32;index:idx_leases_landlord" json:"landlord_id"`
	TenantID   string `gorm:"size:32;index:idx_leases_tenant" json:"tenant_id"`

	StartDate       time.Time `gorm:"type:date" json:"start_date"`
	EndDate         time.Time `gorm:"type:date" json:"end_date"`
	RentAmount      float64   `gorm:"type:decimal(18,2)" json:"rent_amount"`
	SecurityDeposit float64   `gorm:"type:decimal(18,2)" json:"security_deposit"`

	Terms Terms `gorm:"embedded;embeddedPrefix:terms_" json:"terms"`

	Status Status `gorm:"type:enum('pending','active','expired','terminated','renewed');default:'pending'" json:"status"`

	// Signatures are opaque strings supplied by the parties; a lease
	// activates only once both are present.
	LandlordSignature *string    `gorm:"size:255" json:"landlord_signature,omitempty"`
	TenantSignature   *string    `gorm:"size:255" json:"tenant_signature,omitempty"`
	SignedDate        *time.Time `json:"signed_date,omitempty"`

	// Public id of the lease this one renewed, when applicable.
	RenewedFrom string `gorm:"size:32" json:"renewed_from,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Lease) TableName() string { return "leases" }

// FullySigned reports whether both parties have signed.
func (l *Lease) FullySigned() bool {
	return l.LandlordSignature != nil && l.TenantSignature != nil
}

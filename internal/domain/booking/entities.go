package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

var (
	ErrNotFound      = fmt.Errorf("booking not found: %w", gorm.ErrRecordNotFound)
	ErrUnknownStatus = errors.New("unknown booking status")
)

// ParseStatus is case-insensitive; the admin flows historically sent
// "active" for a confirmed tenancy, which folds into booked.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "booked", "active":
		return StatusBooked, nil
	case "cancelled":
		return StatusCancelled, nil
	case "completed":
		return StatusCompleted, nil
	}
	return "", ErrUnknownStatus
}

type Booking struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	BookingID  string `gorm:"size:32;uniqueIndex:ux_bookings_booking_id_active" json:"booking_id"`
	PropertyID string `gorm:"size:32;index:idx_bookings_property" json:"property_id"`
	TenantID   string `gorm:"size:32;index:idx_bookings_tenant" json:"tenant_id"`
	LandlordID string `gorm:"size:32;index:idx_bookings_landlord" json:"landlord_id"`

	StartDate       time.Time `gorm:"type:date" json:"start_date"`
	EndDate         time.Time `gorm:"type:date" json:"end_date"`
	MonthlyRent     float64   `gorm:"type:decimal(18,2)" json:"monthly_rent"`
	SecurityDeposit float64   `gorm:"type:decimal(18,2)" json:"security_deposit"`
	// Serialized lease draft, kept verbatim for audit.
	LeaseTerms string `gorm:"type:text" json:"-"`

	Status        Status        `gorm:"type:enum('pending','booked','cancelled','completed');default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:enum('pending','completed');default:'pending'" json:"payment_status"`

	// Gateway confirmation, set once payment verification succeeds.
	OrderID   string     `gorm:"size:64" json:"order_id,omitempty"`
	PaymentID string     `gorm:"size:64" json:"payment_id,omitempty"`
	Signature string     `gorm:"size:128" json:"-"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`

	BookingDate        time.Time      `json:"booking_date"`
	Message            string         `gorm:"type:text" json:"message,omitempty"`
	CancellationReason string         `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Booking) TableName() string { return "bookings" }

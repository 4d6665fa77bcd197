package property

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Status is the canonical availability vocabulary. Ingress boundaries
// parse loose strings ("Available", "Rented", "Occupied") into it;
// components never exchange raw strings.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusBooked      Status = "booked"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

var (
	// ErrNotFound wraps gorm.ErrRecordNotFound so callers matching
	// either the repository error or the named sentinel take the
	// same not-found path.
	ErrNotFound = fmt.Errorf("property not found: %w", gorm.ErrRecordNotFound)
	// ErrStatusConflict: a conditional status update found the row in a
	// different state than expected. The single guard against two
	// bookings flipping the same property.
	ErrStatusConflict = errors.New("property status changed concurrently")

	ErrUnknownStatus = errors.New("unknown property status")
)

// ParseStatus is case-insensitive and folds the legacy vocabulary:
// "rented" means occupied.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available":
		return StatusAvailable, nil
	case "reserved":
		return StatusReserved, nil
	case "booked":
		return StatusBooked, nil
	case "occupied", "rented":
		return StatusOccupied, nil
	case "maintenance":
		return StatusMaintenance, nil
	}
	return "", ErrUnknownStatus
}

type Property struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	PropertyID string `gorm:"size:32;uniqueIndex:ux_properties_property_id_active" json:"property_id"`
	// Public id of the owning landlord. Ownership is by reference.
	LandlordID  string         `gorm:"size:32;index:idx_properties_landlord" json:"landlord_id"`
	Title       string         `gorm:"size:255" json:"title"`
	Location    string         `gorm:"size:255" json:"location"`
	Price       float64        `gorm:"type:decimal(18,2)" json:"price"`
	Status      Status         `gorm:"type:enum('available','reserved','booked','occupied','maintenance');default:'available'" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Property) TableName() string { return "properties" }

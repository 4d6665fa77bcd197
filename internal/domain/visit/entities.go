package visit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusRescheduled Status = "rescheduled"
	StatusConfirmed   Status = "confirmed"
	StatusRejected    Status = "rejected"
	StatusCancelled   Status = "cancelled"
	StatusCompleted   Status = "completed"
)

var (
	ErrNotFound      = fmt.Errorf("visit not found: %w", gorm.ErrRecordNotFound)
	ErrUnknownStatus = errors.New("unknown visit status")
)

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scheduled":
		return StatusScheduled, nil
	case "rescheduled":
		return StatusRescheduled, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "rejected":
		return StatusRejected, nil
	case "cancelled":
		return StatusCancelled, nil
	case "completed":
		return StatusCompleted, nil
	}
	return "", ErrUnknownStatus
}

// Mutable reports whether a visit can still move through the normal
// flow (reschedule, cancel, confirm, reject).
func (s Status) Mutable() bool {
	return s == StatusScheduled || s == StatusRescheduled
}

// Deletable: only cancelled and rejected visits may be removed
// permanently.
func (s Status) Deletable() bool {
	return s == StatusCancelled || s == StatusRejected
}

type Visit struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	VisitID    string `gorm:"size:32;uniqueIndex:ux_visits_visit_id_active" json:"visit_id"`
	PropertyID string `gorm:"size:32;index:idx_visits_property" json:"property_id"`
	TenantID   string `gorm:"size:32;index:idx_visits_tenant" json:"tenant_id"`
	LandlordID string `gorm:"size:32;index:idx_visits_landlord" json:"landlord_id"`
	VisitDate  time.Time `gorm:"type:date" json:"visit_date"`
	VisitTime  string    `gorm:"size:16" json:"visit_time"`
	// Previous slot, kept as an audit trail when rescheduling.
	PreviousVisitDate  *time.Time     `gorm:"type:date" json:"previous_visit_date,omitempty"`
	PreviousVisitTime  string         `gorm:"size:16" json:"previous_visit_time,omitempty"`
	Status             Status         `gorm:"type:enum('scheduled','rescheduled','confirmed','rejected','cancelled','completed');default:'scheduled'" json:"status"`
	Message            string         `gorm:"type:text" json:"message,omitempty"`
	CancellationReason string         `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Visit) TableName() string { return "visits" }

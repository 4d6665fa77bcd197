package payment

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

type Type string

const (
	TypeRent            Type = "rent"
	TypeSecurityDeposit Type = "security_deposit"
	TypeUtility         Type = "utility"
	TypeMaintenance     Type = "maintenance"
	TypeOther           Type = "other"
)

var (
	ErrNotFound = fmt.Errorf("payment not found: %w", gorm.ErrRecordNotFound)
	// ErrAlreadyCompleted: the order id was already verified once.
	// Exactly one completion per gateway order.
	ErrAlreadyCompleted = errors.New("payment already completed")
)

type Payment struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID  string `gorm:"size:32;uniqueIndex:ux_payments_payment_id_active" json:"payment_id"`
	TenantID   string `gorm:"size:32;index:idx_payments_tenant" json:"tenant_id"`
	LandlordID string `gorm:"size:32;index:idx_payments_landlord" json:"landlord_id"`
	PropertyID string `gorm:"size:32;index:idx_payments_property" json:"property_id"`
	LeaseID    string `gorm:"size:32;index:idx_payments_lease" json:"lease_id"`

	Amount        float64 `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentType   Type    `gorm:"type:enum('rent','security_deposit','utility','maintenance','other')" json:"payment_type"`
	PaymentMethod string  `gorm:"size:32" json:"payment_method"`
	Status        Status  `gorm:"type:enum('pending','completed','failed','refunded');default:'pending'" json:"status"`
	Description   string  `gorm:"type:text" json:"description,omitempty"`

	// Gateway identifiers. OrderID is unique: one payment per order.
	OrderID          string `gorm:"size:64;uniqueIndex:ux_payments_order_id" json:"order_id"`
	GatewayPaymentID string `gorm:"size:64" json:"gateway_payment_id,omitempty"`
	GatewaySignature string `gorm:"size:128" json:"-"`

	PaymentDate time.Time      `json:"payment_date"`
	DueDate     time.Time      `json:"due_date"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }

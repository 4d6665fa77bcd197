package mysql

import (
	"testing"
	"time"

	leaseDomain "rentease-backend/internal/domain/lease"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type propertySQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	PropertyID string         `gorm:"size:32;column:property_id"`
	LandlordID string         `gorm:"size:32;column:landlord_id"`
	Title      string         `gorm:"column:title"`
	Location   string         `gorm:"column:location"`
	Price      float64        `gorm:"column:price"`
	Status     string         `gorm:"type:text;column:status"` // ← no enum
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (propertySQLite) TableName() string { return "properties" }

type tenantSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	TenantID  string         `gorm:"size:32;column:tenant_id"`
	Username  string         `gorm:"column:username"`
	Email     string         `gorm:"column:email"`
	Phone     string         `gorm:"column:phone"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (tenantSQLite) TableName() string { return "tenants" }

type landlordSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	LandlordID string         `gorm:"size:32;column:landlord_id"`
	Username   string         `gorm:"column:username"`
	Email      string         `gorm:"column:email"`
	Phone      string         `gorm:"column:phone"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (landlordSQLite) TableName() string { return "landlords" }

type visitSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	VisitID            string         `gorm:"size:32;column:visit_id"`
	PropertyID         string         `gorm:"size:32;column:property_id"`
	TenantID           string         `gorm:"size:32;column:tenant_id"`
	LandlordID         string         `gorm:"size:32;column:landlord_id"`
	VisitDate          time.Time      `gorm:"column:visit_date"`
	VisitTime          string         `gorm:"column:visit_time"`
	PreviousVisitDate  *time.Time     `gorm:"column:previous_visit_date"`
	PreviousVisitTime  string         `gorm:"column:previous_visit_time"`
	Status             string         `gorm:"type:text;column:status"`
	Message            string         `gorm:"column:message"`
	CancellationReason string         `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (visitSQLite) TableName() string { return "visits" }

type bookingSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	BookingID          string         `gorm:"size:32;column:booking_id"`
	PropertyID         string         `gorm:"size:32;column:property_id"`
	TenantID           string         `gorm:"size:32;column:tenant_id"`
	LandlordID         string         `gorm:"size:32;column:landlord_id"`
	StartDate          time.Time      `gorm:"column:start_date"`
	EndDate            time.Time      `gorm:"column:end_date"`
	MonthlyRent        float64        `gorm:"column:monthly_rent"`
	SecurityDeposit    float64        `gorm:"column:security_deposit"`
	LeaseTerms         string         `gorm:"column:lease_terms"`
	Status             string         `gorm:"type:text;column:status"`
	PaymentStatus      string         `gorm:"type:text;column:payment_status"`
	OrderID            string         `gorm:"column:order_id"`
	PaymentID          string         `gorm:"column:payment_id"`
	Signature          string         `gorm:"column:signature"`
	PaidAt             *time.Time     `gorm:"column:paid_at"`
	BookingDate        time.Time      `gorm:"column:booking_date"`
	Message            string         `gorm:"column:message"`
	CancellationReason string         `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (bookingSQLite) TableName() string { return "bookings" }

type leaseSQLite struct {
	ID                uint64             `gorm:"primaryKey;column:id"`
	LeaseID           string             `gorm:"size:32;column:lease_id"`
	PropertyID        string             `gorm:"size:32;column:property_id"`
	LandlordID        string             `gorm:"size:32;column:landlord_id"`
	TenantID          string             `gorm:"size:32;column:tenant_id"`
	StartDate         time.Time          `gorm:"column:start_date"`
	EndDate           time.Time          `gorm:"column:end_date"`
	RentAmount        float64            `gorm:"column:rent_amount"`
	SecurityDeposit   float64            `gorm:"column:security_deposit"`
	Terms             leaseDomain.Terms  `gorm:"embedded;embeddedPrefix:terms_"`
	Status            string             `gorm:"type:text;column:status"`
	LandlordSignature *string            `gorm:"column:landlord_signature"`
	TenantSignature   *string            `gorm:"column:tenant_signature"`
	SignedDate        *time.Time         `gorm:"column:signed_date"`
	RenewedFrom       string             `gorm:"column:renewed_from"`
	CreatedAt         time.Time          `gorm:"column:created_at"`
	UpdatedAt         time.Time          `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"column:deleted_at"`
}

func (leaseSQLite) TableName() string { return "leases" }

type paymentSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	PaymentID        string         `gorm:"size:32;column:payment_id"`
	TenantID         string         `gorm:"size:32;column:tenant_id"`
	LandlordID       string         `gorm:"size:32;column:landlord_id"`
	PropertyID       string         `gorm:"size:32;column:property_id"`
	LeaseID          string         `gorm:"size:32;column:lease_id"`
	Amount           float64        `gorm:"column:amount"`
	PaymentType      string         `gorm:"type:text;column:payment_type"`
	PaymentMethod    string         `gorm:"column:payment_method"`
	Status           string         `gorm:"type:text;column:status"`
	Description      string         `gorm:"column:description"`
	OrderID          string         `gorm:"column:order_id;uniqueIndex"`
	GatewayPaymentID string         `gorm:"column:gateway_payment_id"`
	GatewaySignature string         `gorm:"column:gateway_signature"`
	PaymentDate      time.Time      `gorm:"column:payment_date"`
	DueDate          time.Time      `gorm:"column:due_date"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(
		&propertySQLite{}, &tenantSQLite{}, &landlordSQLite{},
		&visitSQLite{}, &bookingSQLite{}, &leaseSQLite{}, &paymentSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

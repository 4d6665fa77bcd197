// Package party holds the tenant and landlord records the core needs
// for existence checks and contact snapshots. Profile CRUD beyond that
// is peripheral plumbing and lives outside this service.
package party

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = fmt.Errorf("party not found: %w", gorm.ErrRecordNotFound)

type Tenant struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	TenantID  string         `gorm:"size:32;uniqueIndex:ux_tenants_tenant_id_active" json:"tenant_id"`
	Username  string         `gorm:"size:120" json:"username"`
	Email     string         `gorm:"size:255" json:"email"`
	Phone     string         `gorm:"size:32" json:"phone"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tenant) TableName() string { return "tenants" }

type Landlord struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	LandlordID string         `gorm:"size:32;uniqueIndex:ux_landlords_landlord_id_active" json:"landlord_id"`
	Username   string         `gorm:"size:120" json:"username"`
	Email      string         `gorm:"size:255" json:"email"`
	Phone      string         `gorm:"size:32" json:"phone"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Landlord) TableName() string { return "landlords" }

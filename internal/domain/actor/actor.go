// Package actor models the authenticated caller as a closed variant:
// Tenant, Landlord, or Admin. Role checks are capability predicates on
// the value; raw role strings never travel past the auth middleware.
package actor

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
	RoleAdmin    Role = "admin"
)

var ErrUnknownRole = errors.New("unknown actor role")

// ParseRole normalizes a decoded userType claim. Case-insensitive:
// the original clients send "Tenant", "tenant", "LANDLORD", etc.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tenant":
		return RoleTenant, nil
	case "landlord":
		return RoleLandlord, nil
	case "admin":
		return RoleAdmin, nil
	}
	return "", ErrUnknownRole
}

type Actor struct {
	ID   string
	role Role
}

func Tenant(id string) Actor   { return Actor{ID: id, role: RoleTenant} }
func Landlord(id string) Actor { return Actor{ID: id, role: RoleLandlord} }
func Admin(id string) Actor    { return Actor{ID: id, role: RoleAdmin} }

// New builds an actor from an already-parsed role.
func New(id string, r Role) Actor { return Actor{ID: id, role: r} }

func (a Actor) Role() Role       { return a.role }
func (a Actor) IsTenant() bool   { return a.role == RoleTenant }
func (a Actor) IsLandlord() bool { return a.role == RoleLandlord }
func (a Actor) IsAdmin() bool    { return a.role == RoleAdmin }

// CanConfirmVisits: confirming or rejecting a visit is a landlord action.
func (a Actor) CanConfirmVisits() bool { return a.role == RoleLandlord || a.role == RoleAdmin }

// CanModerate: administrative overrides (forced booking status updates).
func (a Actor) CanModerate() bool { return a.role == RoleAdmin }

// CanManageProperties: listing creation and manual status restores.
func (a Actor) CanManageProperties() bool { return a.role == RoleLandlord || a.role == RoleAdmin }

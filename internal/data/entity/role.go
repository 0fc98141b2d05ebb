package entity

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleVendor     Role = "vendor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// privilege order, higher wins
var rolePrecedence = map[Role]int{
	RoleUser:       0,
	RoleVendor:     1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

func (r Role) Valid() bool {
	_, ok := rolePrecedence[r]
	return ok
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r Role) IsVendor() bool {
	return r == RoleVendor
}

// ResolveRole picks the effective role from however many role rows a user
// has. No rows resolves to RoleUser; among several, the most privileged wins.
func ResolveRole(roles []*UserRole) Role {
	effective := RoleUser
	for _, row := range roles {
		if row == nil || !row.Role.Valid() {
			continue
		}
		if rolePrecedence[row.Role] > rolePrecedence[effective] {
			effective = row.Role
		}
	}
	return effective
}

// UserRole is one role assignment row
type UserRole struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Role   Role      `db:"role"`
}

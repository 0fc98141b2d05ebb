package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func roleRow(role Role) *UserRole {
	return &UserRole{
		BaseSimple: BaseSimple{ID: uuid.New()},
		UserID:     uuid.New(),
		Role:       role,
	}
}

func TestResolveRole_NoRows(t *testing.T) {
	assert.Equal(t, RoleUser, ResolveRole(nil))
	assert.Equal(t, RoleUser, ResolveRole([]*UserRole{}))
}

func TestResolveRole_SingleRole(t *testing.T) {
	assert.Equal(t, RoleVendor, ResolveRole([]*UserRole{roleRow(RoleVendor)}))
	assert.Equal(t, RoleAdmin, ResolveRole([]*UserRole{roleRow(RoleAdmin)}))
}

func TestResolveRole_MostPrivilegedWins(t *testing.T) {
	roles := []*UserRole{
		roleRow(RoleUser),
		roleRow(RoleAdmin),
		roleRow(RoleVendor),
	}
	assert.Equal(t, RoleAdmin, ResolveRole(roles))

	roles = append(roles, roleRow(RoleSuperAdmin))
	assert.Equal(t, RoleSuperAdmin, ResolveRole(roles))
}

func TestResolveRole_SkipsInvalidRows(t *testing.T) {
	roles := []*UserRole{
		nil,
		roleRow(Role("moderator")),
		roleRow(RoleVendor),
	}
	assert.Equal(t, RoleVendor, ResolveRole(roles))
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperAdmin.IsAdmin())
	assert.False(t, RoleVendor.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())

	assert.True(t, RoleVendor.IsVendor())
	assert.False(t, RoleAdmin.IsVendor())

	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("guest").Valid())
}

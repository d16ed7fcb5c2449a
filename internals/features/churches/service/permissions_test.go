package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFlipsMembership(t *testing.T) {
	m := RolePermissionMap{"leader": {"members_view"}}

	m.Toggle("leader", "members", "view")
	assert.Empty(t, m["leader"])

	m.Toggle("leader", "members", "view")
	assert.Equal(t, []string{"members_view"}, m["leader"])
}

func TestToggleOnUnknownRoleCreatesEntry(t *testing.T) {
	m := RolePermissionMap{}
	m.Toggle("secretaria", "finance", "view")
	assert.Equal(t, []string{"finance_view"}, m["secretaria"])
}

func TestHasAdminAlwaysAllowed(t *testing.T) {
	m := RolePermissionMap{}
	assert.True(t, m.Has("admin", "finance", "delete"))
	assert.False(t, m.Has("member", "finance", "delete"))
}

func TestNormalizeRoleName(t *testing.T) {
	assert.Equal(t, "pastor_auxiliar", NormalizeRoleName("  Pastor   Auxiliar "))
	assert.Equal(t, "leader", NormalizeRoleName("LEADER"))
	assert.Equal(t, "", NormalizeRoleName("   "))
}

func TestAddCustomRoleRejectsBuiltInCollision(t *testing.T) {
	s := &ChurchSettings{RolePermissions: RolePermissionMap{}, CustomSystemRoles: []string{}}

	for _, name := range []string{"Admin", "LEADER", " member ", "Supervisor"} {
		_, err := s.AddCustomRole(name)
		assert.Error(t, err, name)
		assert.Empty(t, s.CustomSystemRoles)
	}
}

func TestAddCustomRoleRejectsDuplicate(t *testing.T) {
	s := &ChurchSettings{RolePermissions: RolePermissionMap{}, CustomSystemRoles: []string{}}

	key, err := s.AddCustomRole("Pastor Auxiliar")
	require.NoError(t, err)
	assert.Equal(t, "pastor_auxiliar", key)

	_, err = s.AddCustomRole("pastor auxiliar")
	assert.Error(t, err)
	assert.Equal(t, []string{"pastor_auxiliar"}, s.CustomSystemRoles)
}

func TestRemoveCustomRoleKeepsOrphanPermissions(t *testing.T) {
	s := &ChurchSettings{
		RolePermissions:   RolePermissionMap{"diacono": {"members_view"}},
		CustomSystemRoles: []string{"diacono"},
	}

	require.NoError(t, s.RemoveCustomRole("diacono"))
	assert.Empty(t, s.CustomSystemRoles)
	// entradas órfãs permanecem no mapa, mas fora de KnownRoles
	assert.Equal(t, []string{"members_view"}, s.RolePermissions["diacono"])
	assert.NotContains(t, s.KnownRoles(), "diacono")
}

func TestRemoveCustomRoleRefusesBuiltIn(t *testing.T) {
	s := &ChurchSettings{RolePermissions: RolePermissionMap{}, CustomSystemRoles: []string{}}
	assert.Error(t, s.RemoveCustomRole("admin"))
}

func TestParseChurchSettingsSeedsDefaults(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("null"), []byte("{}")} {
		s, err := ParseChurchSettings(raw)
		require.NoError(t, err)
		assert.Equal(t, DefaultRolePermissions(), s.RolePermissions)
		assert.NotNil(t, s.CustomSystemRoles)
	}
}

func TestParseChurchSettingsKeepsPersistedMap(t *testing.T) {
	raw := []byte(`{"role_permissions":{"leader":["members_view"]},"custom_system_roles":["diacono"]}`)
	s, err := ParseChurchSettings(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"members_view"}, s.RolePermissions["leader"])
	assert.Contains(t, s.KnownRoles(), "diacono")
}

func TestParseChurchSettingsRejectsGarbage(t *testing.T) {
	_, err := ParseChurchSettings([]byte(`{"role_permissions":`))
	assert.Error(t, err)
}

func TestValidPermissionKey(t *testing.T) {
	assert.True(t, ValidPermissionKey("members_view"))
	assert.True(t, ValidPermissionKey("settings_delete"))
	assert.False(t, ValidPermissionKey("members_fly"))
	assert.False(t, ValidPermissionKey("payments_view"))
}

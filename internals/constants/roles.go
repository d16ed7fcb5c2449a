package constants

// Papéis nativos do sistema (não removíveis).
const (
	RoleAdmin      = "admin"
	RoleLeader     = "leader"
	RoleMember     = "member"
	RoleSupervisor = "supervisor"
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	BuiltInRoles = []string{
		RoleAdmin,
		RoleLeader,
		RoleMember,
		RoleSupervisor,
	}

	LeaderAndAbove = []string{
		RoleLeader,
		RoleSupervisor,
		RoleAdmin,
	}

	SupervisorAndAbove = []string{
		RoleSupervisor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsBuiltInRole informa se o nome colide com um papel nativo.
func IsBuiltInRole(name string) bool {
	for _, r := range BuiltInRoles {
		if r == name {
			return true
		}
	}
	return false
}

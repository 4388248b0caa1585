package constants

// Role names as stored in users.user_role and carried in JWT claims.
const (
	RoleSuper         = "super"
	RoleAdmin         = "admin"
	RoleGeneral       = "general"
	RoleWhistleblower = "whistleblower"
	RoleFactChecker   = "fact_checker"
)

// roleRank is the single place that defines the privilege order.
// Lower rank = more privileged (super outranks everything).
var roleRank = map[string]int{
	RoleSuper:         1,
	RoleAdmin:         2,
	RoleGeneral:       3,
	RoleWhistleblower: 4,
	RoleFactChecker:   5,
}

// RoleRank returns the ordinal for a role, or 0 for unknown roles.
func RoleRank(role string) int {
	return roleRank[role]
}

// IsValidRole reports whether the role is one of the closed enum values.
func IsValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// RoleAtLeast reports whether role is at least as privileged as min.
// Unknown roles are never privileged.
func RoleAtLeast(role, min string) bool {
	r, ok := roleRank[role]
	if !ok {
		return false
	}
	m, ok := roleRank[min]
	if !ok {
		return false
	}
	return r <= m
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuper,
		RoleAdmin,
		RoleGeneral,
		RoleWhistleblower,
		RoleFactChecker,
	}

	AdminAndAbove = []string{
		RoleSuper,
		RoleAdmin,
	}

	SuperOnly = []string{
		RoleSuper,
	}
)

// Package auth contains domain-level types for sessions and role-based
// route policy. It is pure and free of framework/adapter concerns.
package auth

// Role represents an application access level.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleManager    Role = "manager"
	RoleHR         Role = "hr"
	RoleFinance    Role = "finance"
	RoleSuperAdmin Role = "super_admin"
)

// Roles lists every valid role, in display order.
func Roles() []Role {
	return []Role{RoleEmployee, RoleManager, RoleHR, RoleFinance, RoleSuperAdmin}
}

// SwitchableRoles lists the roles a super admin can view the product as.
// The admin role itself is excluded: "view as" selects one of the four
// role-flavored UIs, not the admin console.
func SwitchableRoles() []Role {
	return []Role{RoleEmployee, RoleManager, RoleHR, RoleFinance}
}

// ParseRole converts a raw string to a Role, failing closed: anything
// outside the five known values reports ok=false.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleEmployee, RoleManager, RoleHR, RoleFinance, RoleSuperAdmin:
		return Role(raw), true
	default:
		return "", false
	}
}

// Session is the authenticated identity for one browser context.
// It is persisted client-side only; the JSON shape is the storage layout.
type Session struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Valid reports whether the session carries both fields and a known role.
func (s Session) Valid() bool {
	if s.Email == "" {
		return false
	}
	_, ok := ParseRole(string(s.Role))
	return ok
}

// IsSuperAdmin returns true if the session role is super_admin.
func (s Session) IsSuperAdmin() bool { return s.Role == RoleSuperAdmin }

package auth

import "strings"

// Route policy: one exhaustive table mapping each role to the dashboard
// it lands on and the path prefix it owns. Both the edge request gate
// and the client shell import this table, so the two enforcement points
// cannot drift apart. Adding a role without extending the table is a
// compile-time error at the table literal.

const (
	// LoginPath is the only public page.
	LoginPath = "/login"
	// RootPath redirects to the session role's dashboard.
	RootPath = "/"
)

type routeEntry struct {
	Prefix    string
	Dashboard string
}

var routeTable = map[Role]routeEntry{
	RoleEmployee:   {Prefix: "/employee", Dashboard: "/employee/dashboard"},
	RoleManager:    {Prefix: "/manager", Dashboard: "/manager/dashboard"},
	RoleHR:         {Prefix: "/hr", Dashboard: "/hr/dashboard"},
	RoleFinance:    {Prefix: "/finance", Dashboard: "/finance/dashboard"},
	RoleSuperAdmin: {Prefix: "/admin", Dashboard: "/admin/dashboard"},
}

// DashboardRoute returns the dashboard path a role lands on after login.
// The super admin has a dedicated admin dashboard; every other role uses
// its own "/{role}/dashboard".
func DashboardRoute(role Role) string {
	if e, ok := routeTable[role]; ok {
		return e.Dashboard
	}
	return LoginPath
}

// RolePrefix returns the path prefix owned by a role ("/hr", "/admin", ...).
func RolePrefix(role Role) string {
	if e, ok := routeTable[role]; ok {
		return e.Prefix
	}
	return ""
}

// MayAccess decides whether a role may visit a target path. The super
// admin is granted access everywhere; any other role owns only its own
// prefix plus the root path.
func MayAccess(role Role, targetPath string) bool {
	if role == RoleSuperAdmin {
		return true
	}
	prefix := RolePrefix(role)
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(targetPath, prefix) || targetPath == RootPath
}

// OwnerOf returns the role owning the prefix the path falls under, if any.
// "/hr/requests" belongs to hr, "/admin/users" to super_admin. Paths
// outside every role prefix (e.g. "/", "/login") report ok=false.
func OwnerOf(path string) (Role, bool) {
	for _, role := range Roles() {
		if strings.HasPrefix(path, routeTable[role].Prefix) {
			return role, true
		}
	}
	return "", false
}

// SplitRolePath splits a role-prefixed path into its owning role and the
// suffix after the prefix ("/hr/requests" -> hr, "/requests"). The view-as
// switch uses the suffix to re-attach the current page under a new prefix.
func SplitRolePath(path string) (Role, string, bool) {
	role, ok := OwnerOf(path)
	if !ok {
		return "", "", false
	}
	return role, strings.TrimPrefix(path, routeTable[role].Prefix), true
}

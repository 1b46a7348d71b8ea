package auth

import "testing"

func TestDashboardRoute(t *testing.T) {
	cases := map[Role]string{
		RoleEmployee:   "/employee/dashboard",
		RoleManager:    "/manager/dashboard",
		RoleHR:         "/hr/dashboard",
		RoleFinance:    "/finance/dashboard",
		RoleSuperAdmin: "/admin/dashboard",
	}
	for role, want := range cases {
		if got := DashboardRoute(role); got != want {
			t.Fatalf("DashboardRoute(%s) = %q, want %q", role, got, want)
		}
	}
}

func TestMayAccess_OwnPrefixAndRoot(t *testing.T) {
	for _, role := range SwitchableRoles() {
		prefix := RolePrefix(role)
		if !MayAccess(role, prefix+"/dashboard") {
			t.Fatalf("%s must access its own dashboard", role)
		}
		if !MayAccess(role, prefix) {
			t.Fatalf("%s must access its bare prefix", role)
		}
		if !MayAccess(role, RootPath) {
			t.Fatalf("%s must access the root path", role)
		}
	}
}

func TestMayAccess_CrossRoleDenied(t *testing.T) {
	for _, owner := range SwitchableRoles() {
		target := RolePrefix(owner) + "/dashboard"
		for _, other := range SwitchableRoles() {
			if other == owner {
				continue
			}
			if MayAccess(other, target) {
				t.Fatalf("%s must not access %s", other, target)
			}
		}
	}
}

func TestMayAccess_SuperAdminEverywhere(t *testing.T) {
	paths := []string{"/", "/employee/dashboard", "/manager/requests", "/hr/people", "/finance/payroll", "/admin/users", "/unknown"}
	for _, p := range paths {
		if !MayAccess(RoleSuperAdmin, p) {
			t.Fatalf("super_admin must access %q", p)
		}
	}
}

func TestMayAccess_AdminPrefixDeniedToOthers(t *testing.T) {
	for _, role := range SwitchableRoles() {
		if MayAccess(role, "/admin/dashboard") {
			t.Fatalf("%s must not access /admin/dashboard", role)
		}
	}
}

func TestOwnerOf(t *testing.T) {
	cases := []struct {
		path  string
		owner Role
		ok    bool
	}{
		{"/hr/requests", RoleHR, true},
		{"/employee", RoleEmployee, true},
		{"/admin/dashboard", RoleSuperAdmin, true},
		{"/", "", false},
		{"/login", "", false},
		{"/api/session", "", false},
	}
	for _, c := range cases {
		owner, ok := OwnerOf(c.path)
		if ok != c.ok || owner != c.owner {
			t.Fatalf("OwnerOf(%q) = %q, %v; want %q, %v", c.path, owner, ok, c.owner, c.ok)
		}
	}
}

func TestSplitRolePath(t *testing.T) {
	role, suffix, ok := SplitRolePath("/manager/requests/42")
	if !ok || role != RoleManager || suffix != "/requests/42" {
		t.Fatalf("SplitRolePath = %q, %q, %v", role, suffix, ok)
	}
	if _, suffix, _ := SplitRolePath("/finance"); suffix != "" {
		t.Fatalf("bare prefix should yield empty suffix, got %q", suffix)
	}
	if _, _, ok := SplitRolePath("/nowhere"); ok {
		t.Fatalf("unowned path must not split")
	}
}

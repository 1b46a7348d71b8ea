package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
	"github.com/humane-hq/humane/internal/http/ui/viewmodel"
	"github.com/humane-hq/humane/internal/roster"
	"github.com/humane-hq/humane/internal/session"
)

// navEntry mirrors the sidebar definition: a shared href suffix plus the
// roles allowed to see the entry. Hrefs are resolved under the viewer's
// role prefix at render time.
type navEntry struct {
	Title string
	Href  string
	Roles []domainauth.Role
}

var navEntries = []navEntry{
	{Title: "Dashboard", Href: "/dashboard", Roles: []domainauth.Role{domainauth.RoleEmployee, domainauth.RoleManager, domainauth.RoleHR, domainauth.RoleFinance}},
	{Title: "Requests", Href: "/requests", Roles: []domainauth.Role{domainauth.RoleEmployee, domainauth.RoleManager, domainauth.RoleHR}},
	{Title: "Attendance", Href: "/attendance", Roles: []domainauth.Role{domainauth.RoleEmployee, domainauth.RoleManager, domainauth.RoleHR}},
	{Title: "Payroll", Href: "/payroll", Roles: []domainauth.Role{domainauth.RoleEmployee, domainauth.RoleHR, domainauth.RoleFinance}},
	{Title: "Team", Href: "/team", Roles: []domainauth.Role{domainauth.RoleManager}},
	{Title: "People", Href: "/people", Roles: []domainauth.Role{domainauth.RoleHR}},
	{Title: "Settings", Href: "/settings", Roles: []domainauth.Role{domainauth.RoleEmployee, domainauth.RoleManager, domainauth.RoleHR, domainauth.RoleFinance}},
}

// UIHandlers renders the server-side pages behind the session guard.
type UIHandlers struct {
	T      *TemplateRenderer
	Roster *roster.Service
	Store  *session.Store
	Logger *slog.Logger
}

// navBaseRole picks the prefix the sidebar links are built under. Regular
// users always navigate within their own prefix. A super admin navigates
// within the previewed role's prefix, synced from the current path when it
// already sits under a regular role.
func (h *UIHandlers) navBaseRole(r *http.Request, sess *domainauth.Session) domainauth.Role {
	if !sess.IsSuperAdmin() {
		return sess.Role
	}
	if owner, _, ok := domainauth.SplitRolePath(r.URL.Path); ok && owner != domainauth.RoleSuperAdmin {
		return owner
	}
	return h.Store.ViewAsRole(r)
}

func (h *UIHandlers) buildLayout(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, title, currentPage string) viewmodel.Layout {
	base := h.navBaseRole(r, sess)
	prefix := domainauth.RolePrefix(base)

	// Navigating under a regular role prefix updates the stored view-as
	// preference, so direct links and back/forward keep the switcher in
	// sync with the page being displayed.
	if sess.IsSuperAdmin() && base != h.Store.ViewAsRole(r) {
		h.Store.WriteViewAsRole(w, r, base)
	}

	nav := make([]viewmodel.NavItem, 0, len(navEntries))
	for _, entry := range navEntries {
		if !sess.IsSuperAdmin() && !entry.allows(sess.Role) {
			continue
		}
		href := prefix + entry.Href
		nav = append(nav, viewmodel.NavItem{
			Title:  entry.Title,
			Href:   href,
			Active: r.URL.Path == href || strings.HasPrefix(r.URL.Path, href+"/"),
		})
	}

	layout := viewmodel.Layout{
		Title:           title + " | Humane",
		PageTitle:       title,
		CurrentPage:     currentPage,
		CurrentPath:     r.URL.Path,
		CSRFToken:       GetCSRFToken(r),
		IsAuthenticated: true,
		IsSuperAdmin:    sess.IsSuperAdmin(),
		Nav:             nav,
		User:            &viewmodel.User{Email: sess.Email, Role: string(sess.Role)},
	}
	if sess.IsSuperAdmin() {
		layout.ViewAsRole = string(base)
		for _, role := range domainauth.SwitchableRoles() {
			layout.SwitchableRoles = append(layout.SwitchableRoles, string(role))
		}
	}
	return layout
}

func (e navEntry) allows(role domainauth.Role) bool {
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		h.Logger.Error("failed to render page", "page", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

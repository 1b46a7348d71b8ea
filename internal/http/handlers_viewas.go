package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
	"github.com/humane-hq/humane/internal/session"
)

// ViewAsHandlers lets a super admin preview the product as one of the
// regular roles. The preference only changes the rendered navigation; the
// session itself keeps the super_admin role.
type ViewAsHandlers struct {
	Store  *session.Store
	Logger *slog.Logger
}

// viewAsRequest is the switch payload, accepted either as a form post or
// as a JSON body from script callers.
type viewAsRequest struct {
	Role string `json:"role"`
	Path string `json:"path"`
}

// Switch stores the requested preview role and redirects to the equivalent
// page under the new role prefix. When the current page has no equivalent the
// viewer lands on the role's dashboard.
func (h *ViewAsHandlers) Switch(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil || !sess.IsSuperAdmin() {
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "insufficient_permissions"})
		return
	}

	var in viewAsRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if !DecodeJSON(w, r, &in) {
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
			return
		}
		in = viewAsRequest{Role: r.PostFormValue("role"), Path: r.PostFormValue("path")}
	}

	role, ok := domainauth.ParseRole(in.Role)
	if !ok || role == domainauth.RoleSuperAdmin {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_role"})
		return
	}

	h.Store.WriteViewAsRole(w, r, role)
	h.Logger.Info("view-as switched", "email", sess.Email, "view_as", role)

	target := viewAsTarget(role, currentPagePath(r, in.Path))
	if isAJAXRequest(r) {
		SetHXRedirect(w, target)
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "ok",
			"view_as":     string(role),
			"redirect_to": target,
		})
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// currentPagePath prefers the explicit payload value over the Referer header
// so the switcher works without JavaScript.
func currentPagePath(r *http.Request, raw string) string {
	if p := safeRedirectPath(raw); p != domainauth.RootPath {
		return p
	}
	if ref := r.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil {
			return u.Path
		}
	}
	return domainauth.RootPath
}

// viewAsTarget re-attaches the page suffix under the new role prefix, so
// switching from /employee/requests lands on /manager/requests.
func viewAsTarget(role domainauth.Role, fromPath string) string {
	if _, suffix, ok := domainauth.SplitRolePath(fromPath); ok && suffix != "" {
		return domainauth.RolePrefix(role) + suffix
	}
	return domainauth.DashboardRoute(role)
}

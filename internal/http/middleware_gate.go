package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"path"
	"strings"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
	"github.com/humane-hq/humane/internal/session"
)

// The request gate is the outer enforcement point for role-based
// routing. It reads only the email/role mirror cookies, never the
// primary session record; handlers behind it re-read the primary record
// via RequireSession. The duplication is deliberate so a bug in one
// layer cannot silently open the other.

// assetExtensions lists file suffixes the gate lets through unchecked.
var assetExtensions = []string{".ico", ".png", ".jpg", ".jpeg", ".svg", ".css", ".js"}

// gateExempt reports whether the path bypasses the gate entirely:
// the login page, API routes, static assets, and health checks.
func gateExempt(p string) bool {
	if p == domainauth.LoginPath || p == "/healthz" {
		return true
	}
	if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/static/") {
		return true
	}
	ext := strings.ToLower(path.Ext(p))
	for _, e := range assetExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// RequestGate returns the middleware that enforces the route access
// policy on every page navigation:
//
//   - exempt paths pass through untouched
//   - unauthenticated requests redirect to /login?redirect=<path>
//   - "/" redirects to the session role's dashboard
//   - a role visiting another role's prefix is bounced to its own
//     dashboard; the super admin is never bounced
func RequestGate(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if gateExempt(p) {
				next.ServeHTTP(w, r)
				return
			}

			sess, ok := store.FromRequestCookies(r)
			if !ok {
				redirectToLogin(w, r)
				return
			}

			if p == domainauth.RootPath {
				http.Redirect(w, r, domainauth.DashboardRoute(sess.Role), http.StatusSeeOther)
				return
			}

			if !domainauth.MayAccess(sess.Role, p) {
				if _, owned := domainauth.OwnerOf(p); owned {
					http.Redirect(w, r, domainauth.DashboardRoute(sess.Role), http.StatusSeeOther)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// redirectToLogin sends the browser to the login page, carrying the
// originally requested path so login can return the user there.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := safeRedirectPath(r.URL.RequestURI())
	loginURL := domainauth.LoginPath + "?redirect=" + url.QueryEscape(target)
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// RequireSession returns a middleware that reconstructs the session
// from the primary session cookie and stores it in the request context.
// Browser requests without a session redirect to login; API requests
// get a 401 JSON body.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := store.Read(r)
			if !ok {
				if strings.HasPrefix(r.URL.Path, "/api/") {
					WriteError(w, ErrorParams{
						Code:    http.StatusUnauthorized,
						ErrCode: "authentication_required",
						Err:     errors.New("authentication required"),
					})
					return
				}
				redirectToLogin(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(SetSessionInContext(r.Context(), &sess)))
		})
	}
}

// RequireSuperAdmin returns a middleware allowing only super admin
// sessions through. Anyone else gets 403; the session must already be
// in context (wrap with RequireSession first).
func RequireSuperAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSessionFromContext(r.Context())
			if sess == nil || !sess.IsSuperAdmin() {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("super admin required"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}

package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
	"github.com/humane-hq/humane/internal/directory"
	"github.com/humane-hq/humane/internal/roster"
	"github.com/humane-hq/humane/internal/session"
)

// RouterServices bundles the dependencies the router hands to handlers.
type RouterServices struct {
	Directory    *directory.Directory
	Store        *session.Store
	Roster       *roster.Service
	Renderer     *TemplateRenderer
	StaticFS     fs.FS
	CookieDomain string
	IsDev        bool
	Logger       *slog.Logger
}

// NewRouter builds the full HTTP handler: routes, CSRF protection and the
// edge request gate. Ambient middleware (logging, recovery, compression)
// wraps the result in bootstrap.
func NewRouter(svc RouterServices) http.Handler {
	mux := http.NewServeMux()

	auth := &AuthHandlers{Directory: svc.Directory, Store: svc.Store, T: svc.Renderer, Logger: svc.Logger}
	viewAs := &ViewAsHandlers{Store: svc.Store, Logger: svc.Logger}
	employees := &EmployeeHandlers{Roster: svc.Roster, Logger: svc.Logger}
	ui := &UIHandlers{T: svc.Renderer, Roster: svc.Roster, Store: svc.Store, Logger: svc.Logger}

	requireSession := RequireSession(svc.Store)
	requireAdmin := func(h http.HandlerFunc) http.Handler {
		return requireSession(RequireSuperAdmin()(h))
	}

	mux.HandleFunc("GET /healthz", healthz)
	mux.HandleFunc("HEAD /healthz", healthz)

	mux.HandleFunc("GET /login", auth.LoginPage)
	mux.HandleFunc("POST /login", auth.Login)
	mux.HandleFunc("POST /logout", auth.Logout)
	mux.HandleFunc("GET /api/session", auth.SessionStatus)

	mux.Handle("POST /view-as", requireAdmin(viewAs.Switch))
	mux.Handle("GET /api/employees", requireSession(http.HandlerFunc(employees.List)))

	registerRolePages(mux, ui, requireSession)

	mux.Handle("GET /static/", http.StripPrefix("/static/", staticHandler(svc)))

	root := notFoundHandler(mux, ui.NotFound)

	csrf := CSRFProtection(CSRFConfig{CookieDomain: svc.CookieDomain})
	gate := RequestGate(svc.Store)
	return gate(csrf(root))
}

// registerRolePages wires the per-role page tree: a dashboard plus the
// sidebar sections each role is allowed to see, and the admin console.
func registerRolePages(mux *http.ServeMux, ui *UIHandlers, guard func(http.Handler) http.Handler) {
	page := func(pattern string, h http.HandlerFunc) {
		mux.Handle("GET "+pattern, guard(h))
	}

	for _, role := range domainauth.SwitchableRoles() {
		prefix := domainauth.RolePrefix(role)
		page(prefix+"/dashboard", ui.Dashboard(role))
		for _, entry := range navEntries {
			if entry.Href == "/dashboard" || !entry.allows(role) {
				continue
			}
			if entry.Href == "/people" {
				page(prefix+entry.Href, ui.EmployeesPage)
				continue
			}
			page(prefix+entry.Href, ui.SectionPage(entry.Title))
		}
	}

	adminPrefix := domainauth.RolePrefix(domainauth.RoleSuperAdmin)
	page(adminPrefix+"/dashboard", ui.AdminDashboard)
	page(adminPrefix+"/people", ui.EmployeesPage)
	page(adminPrefix+"/settings", ui.SectionPage("Settings"))
}

func staticHandler(svc RouterServices) http.Handler {
	if svc.IsDev {
		return http.FileServer(http.Dir("frontend/static"))
	}
	return http.FileServer(http.FS(svc.StaticFS))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// notFoundHandler replaces ServeMux's plain-text 404 with the themed
// not-found page. The capture writer withholds the mux response just long
// enough to decide whether to substitute it.
func notFoundHandler(next http.Handler, notFound http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cw := &captureWriter{ResponseWriter: w}
		next.ServeHTTP(cw, r)
		if cw.suppressed {
			notFound(w, r)
		}
	})
}

// captureWriter suppresses a 404 response emitted by ServeMux so a custom
// page can be rendered instead. Any other status passes through untouched.
type captureWriter struct {
	http.ResponseWriter
	wroteHeader bool
	suppressed  bool
}

func (cw *captureWriter) WriteHeader(code int) {
	if cw.wroteHeader {
		return
	}
	cw.wroteHeader = true
	if code == http.StatusNotFound {
		cw.suppressed = true
		cw.ResponseWriter.Header().Del("Content-Type")
		cw.ResponseWriter.Header().Del("X-Content-Type-Options")
		return
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.suppressed {
		return len(b), nil
	}
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	return cw.ResponseWriter.Write(b)
}

package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
	"github.com/humane-hq/humane/internal/directory"
	"github.com/humane-hq/humane/internal/roster"
	"github.com/humane-hq/humane/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     testLogger(),
	})
	require.NoError(t, err)
	return renderer
}

// newTestRouter builds the full handler stack (gate, CSRF, routes) against
// the demo directory and roster.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(RouterServices{
		Directory: directory.New(directory.DefaultDemoPassword),
		Store:     &session.Store{},
		Roster:    roster.New(),
		Renderer:  newTestRenderer(t),
		StaticFS:  os.DirFS("../../frontend/static"),
		Logger:    testLogger(),
	})
}

// sessionCookiesFor produces the full cookie set a logged-in browser holds.
func sessionCookiesFor(t *testing.T, email string, role domainauth.Role) []*http.Cookie {
	t.Helper()
	store := &session.Store{}
	w := httptest.NewRecorder()
	store.Write(w, httptest.NewRequest(http.MethodPost, "/login", nil), domainauth.Session{Email: email, Role: role})
	return w.Result().Cookies()
}

// fetchCSRFToken performs a GET against the router and returns the
// double-submit token cookie it set.
func fetchCSRFToken(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == DefaultCSRFCookieName {
			return c
		}
	}
	t.Fatal("router did not set a CSRF cookie")
	return nil
}

// postForm submits a form through the router with the CSRF token attached.
func postForm(t *testing.T, router http.Handler, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	csrf := fetchCSRFToken(t, router)
	form.Set(DefaultCSRFCookieName, csrf.Value)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(csrf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getWithCookies(t *testing.T, router http.Handler, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

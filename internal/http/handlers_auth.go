package httpx

import (
	"log/slog"
	"net/http"
	"net/url"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
	"github.com/humane-hq/humane/internal/directory"
	"github.com/humane-hq/humane/internal/http/ui/viewmodel"
	"github.com/humane-hq/humane/internal/session"
)

// AuthHandlers serves the login page, the credential check, logout and the
// session status endpoint.
type AuthHandlers struct {
	Directory *directory.Directory
	Store     *session.Store
	T         *TemplateRenderer
	Logger    *slog.Logger
}

type loginPageData struct {
	Title        string
	CSRFToken    string
	RedirectPath string
	Email        string
	ErrorMessage string
	DemoAccounts []viewmodel.DemoAccount
	DemoPassword string
}

// LoginPage renders the sign-in form. A visitor that already carries a valid
// session is sent straight to their dashboard instead.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.Store.Read(r); ok {
		http.Redirect(w, r, domainauth.DashboardRoute(sess.Role), http.StatusSeeOther)
		return
	}

	data := loginPageData{
		Title:        "Sign in | Humane",
		CSRFToken:    GetCSRFToken(r),
		RedirectPath: safeRedirectPath(r.URL.Query().Get("redirect")),
		Email:        directory.Normalize(r.URL.Query().Get("email")),
		DemoAccounts: h.demoAccounts(),
		DemoPassword: directory.DefaultDemoPassword,
	}
	if r.URL.Query().Get("error") == "invalid_credentials" {
		data.ErrorMessage = "Invalid email or password."
	}

	if err := h.T.RenderLogin(w, r, data); err != nil {
		h.Logger.Error("failed to render login page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Login validates the submitted credentials and establishes the session
// cookies on success.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
		return
	}

	email := directory.Normalize(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	redirect := safeRedirectPath(r.PostFormValue("redirect"))

	if !h.Directory.Authenticate(email, password) {
		h.Logger.Info("login rejected", "email", email)
		h.failLogin(w, r, email, redirect)
		return
	}

	role, ok := h.Directory.RoleForEmail(email)
	if !ok {
		h.failLogin(w, r, email, redirect)
		return
	}

	sess := domainauth.Session{Email: email, Role: role}
	h.Store.Write(w, r, sess)
	h.Logger.Info("login accepted", "email", email, "role", role)

	target := redirect
	if target == domainauth.RootPath {
		target = domainauth.DashboardRoute(role)
	}

	if isAJAXRequest(r) {
		SetHXRedirect(w, target)
		WriteJSON(w, http.StatusOK, map[string]any{
			"status":      "ok",
			"redirect_to": target,
			"user":        map[string]string{"email": sess.Email, "role": string(sess.Role)},
		})
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *AuthHandlers) failLogin(w http.ResponseWriter, r *http.Request, email, redirect string) {
	if isAJAXRequest(r) {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "invalid_credentials"})
		return
	}

	q := url.Values{}
	q.Set("error", "invalid_credentials")
	if redirect != domainauth.RootPath {
		q.Set("redirect", redirect)
	}
	if email != "" {
		q.Set("email", email)
	}
	http.Redirect(w, r, domainauth.LoginPath+"?"+q.Encode(), http.StatusSeeOther)
}

// Logout drops every session cookie. Clearing an absent session is a no-op,
// so repeated logouts are safe.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.Store.Read(r); ok {
		h.Logger.Info("logout", "email", sess.Email)
	}
	h.Store.Clear(w, r)

	if isAJAXRequest(r) {
		SetHXRedirect(w, domainauth.LoginPath)
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "ok",
			"redirect_to": domainauth.LoginPath,
		})
		return
	}
	http.Redirect(w, r, domainauth.LoginPath, http.StatusSeeOther)
}

// SessionStatus reports whether the caller holds a valid session.
func (h *AuthHandlers) SessionStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.Store.Read(r)
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]string{
			"email": sess.Email,
			"role":  string(sess.Role),
		},
	})
}

func (h *AuthHandlers) demoAccounts() []viewmodel.DemoAccount {
	emails := h.Directory.Emails()
	accounts := make([]viewmodel.DemoAccount, 0, len(emails))
	for _, email := range emails {
		role, ok := h.Directory.RoleForEmail(email)
		if !ok {
			continue
		}
		accounts = append(accounts, viewmodel.DemoAccount{Email: email, Role: string(role)})
	}
	return accounts
}

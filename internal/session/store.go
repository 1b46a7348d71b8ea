// Package session persists the authenticated session in the browser's
// cookie jar, in two redundant forms that are always written and cleared
// together:
//
//   - primary record: one cookie holding the JSON session object
//     (base64url-encoded so the JSON survives cookie value rules);
//   - mirror: two plain cookies (email, role) that the edge request gate
//     reads without decoding anything.
//
// There is no server-side state and no in-memory cache: every read
// re-derives the session from the incoming request's cookies. Reads never
// fail outward; malformed or missing data is reported as "no session".
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
)

// Cookie names. The session cookie carries the encoded JSON record; the
// email/role pair mirrors it for the request gate; the view-as cookie is
// a presentation preference and never an authorization input.
const (
	SessionCookie = "humane_session"
	EmailCookie   = "humane_email"
	RoleCookie    = "humane_role"
	ViewAsCookie  = "humane_view_as_role"
)

// DefaultTTL is the session cookie lifetime (24 hours).
const DefaultTTL = 24 * time.Hour

// Store reads and writes session cookies. The zero value works with an
// empty cookie domain and the default TTL.
type Store struct {
	CookieDomain string
	TTL          time.Duration
}

func (s Store) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultTTL
	}
	return s.TTL
}

// Write persists the session: the primary record plus both mirror
// cookies, all with the same max-age and site-root path. The three
// Set-Cookie headers go out on one response, so no other request can
// observe a partial write.
func (s Store) Write(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	encoded := encodeSession(sess)
	s.setCookie(w, r, SessionCookie, encoded, int(s.ttl().Seconds()))
	s.setCookie(w, r, EmailCookie, sess.Email, int(s.ttl().Seconds()))
	s.setCookie(w, r, RoleCookie, string(sess.Role), int(s.ttl().Seconds()))
}

// Clear removes the primary record and expires both mirror cookies by
// setting their max-age to zero. Clearing an already-cleared session is
// a no-op with the same observable result.
func (s Store) Clear(w http.ResponseWriter, r *http.Request) {
	s.clearCookie(w, r, SessionCookie)
	s.clearCookie(w, r, EmailCookie)
	s.clearCookie(w, r, RoleCookie)
}

// Read reconstructs the session from the primary record. Absent,
// undecodable, or incomplete records are all "no session".
func (s Store) Read(r *http.Request) (domainauth.Session, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return domainauth.Session{}, false
	}
	sess, ok := decodeSession(c.Value)
	if !ok || !sess.Valid() {
		return domainauth.Session{}, false
	}
	return sess, true
}

// FromRequestCookies reconstructs the session from the two mirror
// cookies. The role value must be one of the known roles; anything else
// fails closed as "no session". This is the only read path the edge
// request gate uses.
func (s Store) FromRequestCookies(r *http.Request) (domainauth.Session, bool) {
	emailCookie, err := r.Cookie(EmailCookie)
	if err != nil {
		return domainauth.Session{}, false
	}
	roleCookie, err := r.Cookie(RoleCookie)
	if err != nil {
		return domainauth.Session{}, false
	}
	role, ok := domainauth.ParseRole(roleCookie.Value)
	if !ok || emailCookie.Value == "" {
		return domainauth.Session{}, false
	}
	return domainauth.Session{Email: emailCookie.Value, Role: role}, true
}

// ViewAsRole returns the super admin's persisted view-as preference,
// defaulting to employee when unset or unrecognized. Only the four
// non-admin roles are valid preference values.
func (s Store) ViewAsRole(r *http.Request) domainauth.Role {
	c, err := r.Cookie(ViewAsCookie)
	if err != nil {
		return domainauth.RoleEmployee
	}
	role, ok := domainauth.ParseRole(c.Value)
	if !ok || role == domainauth.RoleSuperAdmin {
		return domainauth.RoleEmployee
	}
	return role
}

// WriteViewAsRole persists the view-as preference. Invalid or admin
// values are ignored rather than stored.
func (s Store) WriteViewAsRole(w http.ResponseWriter, r *http.Request, role domainauth.Role) {
	parsed, ok := domainauth.ParseRole(string(role))
	if !ok || parsed == domainauth.RoleSuperAdmin {
		return
	}
	s.setCookie(w, r, ViewAsCookie, string(parsed), int(s.ttl().Seconds()))
}

func (s Store) setCookie(w http.ResponseWriter, r *http.Request, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.CookieDomain,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// clearCookie expires a cookie immediately. MaxAge < 0 serializes as
// Max-Age=0 on the wire; Expires is mirrored for older browsers.
func (s Store) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   s.CookieDomain,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}

// IsSecureRequest reports whether the request arrived over HTTPS, either
// directly or via a proxy that set X-Forwarded-Proto. Chained proxies may
// send a comma-separated list; any "https" hop counts. Every cookie writer
// uses this one check so all cookies agree on the Secure attribute.
func IsSecureRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

// encodeSession serializes the session record for cookie transport.
// JSON contains characters cookies disallow, so the record is wrapped in
// base64url.
func encodeSession(sess domainauth.Session) string {
	data, err := json.Marshal(sess)
	if err != nil {
		// Session has only string fields; marshal cannot fail in practice.
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSession(raw string) (domainauth.Session, bool) {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return domainauth.Session{}, false
	}
	var sess domainauth.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domainauth.Session{}, false
	}
	return sess, true
}

// Package directory holds the static demo user table. Users are defined
// at build time; the table is read-only after initialization.
package directory

import (
	"sort"
	"strings"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
)

// DefaultDemoPassword is the single shared secret for every demo account.
const DefaultDemoPassword = "1234"

// users maps normalized (lowercase) email to role.
var users = map[string]domainauth.Role{
	"yomna.employee@mail.com": domainauth.RoleEmployee,
	"manager@mail.com":        domainauth.RoleManager,
	"ahmed.hr@mail.com":       domainauth.RoleHR,
	"ali.finance@mail.com":    domainauth.RoleFinance,
	"admin@mail.com":          domainauth.RoleSuperAdmin,
}

// Directory answers role lookups and credential checks against the
// static user table. The zero value is not usable; construct with New.
type Directory struct {
	password string
}

// New creates a Directory using the given shared password. An empty
// password falls back to DefaultDemoPassword.
func New(password string) *Directory {
	if password == "" {
		password = DefaultDemoPassword
	}
	return &Directory{password: password}
}

// Normalize lowercases and trims an email for table lookups and storage.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RoleForEmail returns the role assigned to an email. The match is
// case-insensitive and whitespace-trimmed; unknown emails report ok=false.
func (d *Directory) RoleForEmail(email string) (domainauth.Role, bool) {
	role, ok := users[Normalize(email)]
	return role, ok
}

// Authenticate reports whether the email/password pair is a valid demo
// credential: the email must exist and the password must equal the
// shared secret. It never returns an error; a bad pair is just false.
func (d *Directory) Authenticate(email, password string) bool {
	_, ok := users[Normalize(email)]
	return ok && password == d.password
}

// Emails returns the demo account emails in stable sorted order, for the
// login page's account picker.
func (d *Directory) Emails() []string {
	out := make([]string, 0, len(users))
	for email := range users {
		out = append(out, email)
	}
	sort.Strings(out)
	return out
}

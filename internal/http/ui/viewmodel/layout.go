package viewmodel

// User represents the authenticated user context exposed to templates.
type User struct {
	Email string
	Role  string
}

// NavItem is one sidebar entry, already resolved against the viewer's
// role prefix.
type NavItem struct {
	Title  string
	Href   string
	Active bool
}

// DemoAccount is one entry in the login page's demo user picker.
type DemoAccount struct {
	Email string
	Role  string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CurrentPath     string
	CSRFToken       string
	IsAuthenticated bool
	IsSuperAdmin    bool
	ViewAsRole      string
	SwitchableRoles []string
	Nav             []NavItem
	User            *User
}

// Package roster serves the demo employee directory shown on the HR
// people pages. The data set is generated deterministically at startup
// so that IDs and pagination stay stable across restarts without any
// backing store.
package roster

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Status is an employee's employment state.
type Status string

const (
	StatusActive   Status = "active"
	StatusOnLeave  Status = "onLeave"
	StatusInactive Status = "inactive"
)

// ParseStatus validates a status filter value. The empty string and
// "all" mean "no filter".
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusActive, StatusOnLeave, StatusInactive:
		return Status(raw), true
	}
	return "", false
}

// Employee is a single roster entry.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Title      string `json:"role"`
	Department string `json:"department,omitempty"`
	Status     Status `json:"status"`
}

// ListOptions control filtering, ordering and pagination for List.
// Query matches case-insensitively against name, email and department.
type ListOptions struct {
	Query  string
	Status Status
	Sort   string
	Dir    string
	Limit  int
	Offset int
}

const (
	SortName   = "name"
	SortTitle  = "role"
	SortStatus = "status"
)

// Service holds the generated roster. The zero value is not usable;
// construct with New.
type Service struct {
	employees []Employee
}

// rosterNamespace keeps generated IDs stable: the same email always
// yields the same UUID.
var rosterNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://humane-hq.github.io/roster"))

type seedEntry struct {
	first, last string
	title       string
	department  string
	status      Status
}

var seed = []seedEntry{
	{"Yomna", "Hassan", "Software Engineer", "Engineering", StatusActive},
	{"Omar", "Farouk", "Senior Software Engineer", "Engineering", StatusActive},
	{"Lina", "Mostafa", "Engineering Manager", "Engineering", StatusActive},
	{"Karim", "Adel", "QA Engineer", "Engineering", StatusOnLeave},
	{"Nour", "ElSayed", "Product Designer", "Design", StatusActive},
	{"Hana", "Tarek", "UX Researcher", "Design", StatusActive},
	{"Ahmed", "Samir", "HR Generalist", "Human Resources", StatusActive},
	{"Mona", "Khalil", "Recruiter", "Human Resources", StatusActive},
	{"Salma", "Ibrahim", "HR Coordinator", "Human Resources", StatusInactive},
	{"Ali", "Mahmoud", "Financial Analyst", "Finance", StatusActive},
	{"Dina", "Fathy", "Payroll Specialist", "Finance", StatusActive},
	{"Hassan", "Ragab", "Accountant", "Finance", StatusOnLeave},
	{"Laila", "Amin", "Marketing Manager", "Marketing", StatusActive},
	{"Tamer", "Hosny", "Content Strategist", "Marketing", StatusActive},
	{"Rania", "Saleh", "Sales Executive", "Sales", StatusActive},
	{"Youssef", "Gamal", "Account Manager", "Sales", StatusInactive},
	{"Farida", "Nabil", "Office Manager", "Operations", StatusActive},
	{"Mostafa", "Kamel", "IT Support Specialist", "Operations", StatusActive},
	{"Aya", "Sherif", "Data Analyst", "Engineering", StatusOnLeave},
	{"Ziad", "Helmy", "DevOps Engineer", "Engineering", StatusActive},
	{"Nadia", "Fouad", "Legal Counsel", "Legal", StatusActive},
	{"Sherine", "Abdel", "Executive Assistant", "Operations", StatusActive},
	{"Hadi", "Mansour", "Business Analyst", "Finance", StatusActive},
	{"Mariam", "Zaki", "Talent Partner", "Human Resources", StatusOnLeave},
}

// New builds the demo roster.
func New() *Service {
	employees := make([]Employee, 0, len(seed))
	for _, e := range seed {
		email := strings.ToLower(fmt.Sprintf("%s.%s@mail.com", e.first, e.last))
		employees = append(employees, Employee{
			ID:         uuid.NewSHA1(rosterNamespace, []byte(email)).String(),
			Name:       e.first + " " + e.last,
			Email:      email,
			Title:      e.title,
			Department: e.department,
			Status:     e.status,
		})
	}
	return &Service{employees: employees}
}

// Count returns the total roster size before filtering.
func (s *Service) Count() int { return len(s.employees) }

// CountByStatus returns how many employees carry the given status.
func (s *Service) CountByStatus(status Status) int {
	n := 0
	for _, e := range s.employees {
		if e.Status == status {
			n++
		}
	}
	return n
}

// GetByID retrieves a single employee, or false when the ID is unknown.
func (s *Service) GetByID(id string) (Employee, bool) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// List returns a filtered, sorted page of the roster. Callers that need
// a has-next signal request one row past their page size.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = normalizeListOptions(opts)

	filtered := make([]Employee, 0, len(s.employees))
	query := strings.ToLower(strings.TrimSpace(opts.Query))
	for _, e := range s.employees {
		if opts.Status != "" && e.Status != opts.Status {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		filtered = append(filtered, e)
	}

	sortEmployees(filtered, opts.Sort, opts.Dir)

	if opts.Offset >= len(filtered) {
		return []Employee{}, nil
	}
	end := opts.Offset + opts.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[opts.Offset:end], nil
}

func matchesQuery(e Employee, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Email), query) ||
		strings.Contains(strings.ToLower(e.Department), query)
}

func sortEmployees(employees []Employee, field, dir string) {
	key := func(e Employee) string {
		switch field {
		case SortTitle:
			return strings.ToLower(e.Title)
		case SortStatus:
			return string(e.Status)
		default:
			return strings.ToLower(e.Name)
		}
	}
	sort.SliceStable(employees, func(i, j int) bool {
		a, b := key(employees[i]), key(employees[j])
		if dir == "desc" {
			return a > b
		}
		return a < b
	})
}

func normalizeListOptions(opts ListOptions) ListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.Sort != SortName && opts.Sort != SortTitle && opts.Sort != SortStatus {
		opts.Sort = SortName
	}
	if opts.Dir != "asc" && opts.Dir != "desc" {
		opts.Dir = "asc"
	}
	return opts
}

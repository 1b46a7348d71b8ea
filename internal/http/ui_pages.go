package httpx

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
	"github.com/humane-hq/humane/internal/http/ui/viewmodel"
	"github.com/humane-hq/humane/internal/http/uiutil"
	"github.com/humane-hq/humane/internal/roster"
)

type dashboardPageData struct {
	viewmodel.Layout
	Greeting  string
	FirstName string
	RoleLabel string
}

// Dashboard renders the per-role landing page.
func (h *UIHandlers) Dashboard(role domainauth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := GetSessionFromContext(r.Context())
		data := dashboardPageData{
			Layout:    h.buildLayout(w, r, sess, "Dashboard", PageDashboard),
			Greeting:  uiutil.Greeting(time.Now()),
			FirstName: uiutil.DisplayName(sess.Email),
			RoleLabel: roleLabel(string(role)),
		}
		h.renderPage(w, r, data)
	}
}

type activityEntry struct {
	Kind    string
	Message string
	When    string
}

type adminDashboardPageData struct {
	viewmodel.Layout
	Greeting         string
	FirstName        string
	TotalEmployees   int
	ActiveEmployees  int
	OnLeave          int
	PendingRequests  int
	PendingApprovals int
	PendingPayroll   int
	SystemHealth     string
	RecentActivity   []activityEntry
	GeneratedAt      time.Time
}

// AdminDashboard renders the system overview. The roster figures are
// gathered concurrently; the workflow counters are static until the
// request and payroll modules grow real backends.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	data := adminDashboardPageData{
		Layout:           h.buildLayout(w, r, sess, "Admin Dashboard", PageAdminDashboard),
		Greeting:         uiutil.Greeting(time.Now()),
		FirstName:        uiutil.DisplayName(sess.Email),
		PendingRequests:  12,
		PendingApprovals: 8,
		PendingPayroll:   4,
		SystemHealth:     "healthy",
		RecentActivity: []activityEntry{
			{Kind: "request", Message: "New leave request submitted", When: "2 hours ago"},
			{Kind: "approval", Message: "Manager approved 3 requests", When: "3 hours ago"},
			{Kind: "system", Message: "Payroll cycle completed", When: "1 day ago"},
		},
		GeneratedAt: time.Now(),
	}

	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		data.TotalEmployees = h.Roster.Count()
		return nil
	})
	g.Go(func() error {
		data.ActiveEmployees = h.Roster.CountByStatus(roster.StatusActive)
		return nil
	})
	g.Go(func() error {
		data.OnLeave = h.Roster.CountByStatus(roster.StatusOnLeave)
		return nil
	})
	if err := g.Wait(); err != nil {
		h.Logger.Error("failed to gather admin dashboard stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, data)
}

type employeesPageData struct {
	viewmodel.Layout
	Employees  []roster.Employee
	Query      string
	Status     string
	Sort       string
	Dir        string
	Total      int
	Pagination viewmodel.Pagination
}

// EmployeesPage renders the searchable people table.
func (h *UIHandlers) EmployeesPage(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	q := r.URL.Query()

	opts := roster.ListOptions{Query: q.Get("query")}
	if status, ok := roster.ParseStatus(q.Get("status")); ok {
		opts.Status = status
	}
	opts.Sort, opts.Dir = ParseSortParam(q, "sort", "dir")

	page, pageSize := parsePageParams(q)
	opts.Limit = pageSize + 1
	opts.Offset = (page - 1) * pageSize

	employees, err := h.Roster.List(r.Context(), opts)
	if err != nil {
		h.Logger.Error("failed to list employees", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	hasNext := len(employees) > pageSize
	if hasNext {
		employees = employees[:pageSize]
	}

	pagination := viewmodel.Pagination{
		Page:       page,
		PageSize:   pageSize,
		HasPrev:    page > 1,
		HasNext:    hasNext,
		StartIndex: (page-1)*pageSize + 1,
		EndIndex:   (page-1)*pageSize + len(employees),
	}
	if len(employees) == 0 {
		pagination.StartIndex = 0
	}
	if pagination.HasPrev {
		pagination.PrevURL = buildPageURL(r, page-1)
	}
	if pagination.HasNext {
		pagination.NextURL = buildPageURL(r, page+1)
	}

	data := employeesPageData{
		Layout:     h.buildLayout(w, r, sess, "People", PageEmployees),
		Employees:  employees,
		Query:      opts.Query,
		Status:     string(opts.Status),
		Sort:       opts.Sort,
		Dir:        opts.Dir,
		Total:      h.Roster.Count(),
		Pagination: pagination,
	}
	h.renderPage(w, r, data)
}

// buildPageURL rewrites only the page parameter, keeping the active
// filter and sort query intact.
func buildPageURL(r *http.Request, page int) string {
	q := r.URL.Query()
	q.Set("page", fmt.Sprintf("%d", page))
	return r.URL.Path + "?" + q.Encode()
}

type sectionPageData struct {
	viewmodel.Layout
	SectionTitle string
}

// SectionPage renders a titled placeholder for the nav sections that have
// no dedicated view yet, mirroring the product's coming-soon pages.
func (h *UIHandlers) SectionPage(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := GetSessionFromContext(r.Context())
		data := sectionPageData{
			Layout:       h.buildLayout(w, r, sess, title, PageSection),
			SectionTitle: title,
		}
		h.renderPage(w, r, data)
	}
}

type errorPageData struct {
	Title      string
	StatusCode int
	Message    string
	HomeHref   string
}

// NotFound renders the 404 page. Authenticated visitors get a link back to
// their dashboard, anonymous ones back to the login page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	home := domainauth.LoginPath
	if sess, ok := h.Store.Read(r); ok {
		home = domainauth.DashboardRoute(sess.Role)
	}

	w.WriteHeader(http.StatusNotFound)
	data := errorPageData{
		Title:      "Page not found | Humane",
		StatusCode: http.StatusNotFound,
		Message:    "The page you are looking for does not exist.",
		HomeHref:   home,
	}
	if err := h.T.RenderError(w, r, data); err != nil {
		h.Logger.Error("failed to render not-found page", "error", err)
	}
}

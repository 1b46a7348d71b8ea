package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/humane-hq/humane/internal/roster"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// EmployeeHandlers exposes the directory roster as JSON for the people views.
type EmployeeHandlers struct {
	Roster *roster.Service
	Logger *slog.Logger
}

type employeeListResponse struct {
	Employees []roster.Employee `json:"employees"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
	HasNext   bool              `json:"has_next"`
}

// List returns a filtered, sorted page of employees.
func (h *EmployeeHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := roster.ListOptions{Query: q.Get("query")}
	if raw := q.Get("status"); raw != "" {
		status, ok := roster.ParseStatus(raw)
		if !ok {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_status"})
			return
		}
		opts.Status = status
	}
	opts.Sort, opts.Dir = ParseSortParam(q, "sort", "dir")

	page, pageSize := parsePageParams(q)
	// Fetch one extra row to detect a following page without a second query.
	opts.Limit = pageSize + 1
	opts.Offset = (page - 1) * pageSize

	employees, err := h.Roster.List(r.Context(), opts)
	if err != nil {
		h.Logger.Error("failed to list employees", "error", err)
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
		return
	}

	hasNext := len(employees) > pageSize
	if hasNext {
		employees = employees[:pageSize]
	}

	WriteJSON(w, http.StatusOK, employeeListResponse{
		Employees: employees,
		Page:      page,
		PageSize:  pageSize,
		HasNext:   hasNext,
	})
}

func parsePageParams(q url.Values) (page, pageSize int) {
	page = 1
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	pageSize = defaultPageSize
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 {
		pageSize = min(v, maxPageSize)
	}
	return page, pageSize
}

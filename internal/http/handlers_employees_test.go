package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/humane-hq/humane/internal/domain/auth"
	"github.com/humane-hq/humane/internal/roster"
)

func listEmployees(t *testing.T, router http.Handler, target string) employeeListResponse {
	t.Helper()
	cookies := sessionCookiesFor(t, "ahmed.hr@mail.com", domainauth.RoleHR)
	w := getWithCookies(t, router, target, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var body employeeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestEmployeesAPI_RequiresSession(t *testing.T) {
	router := newTestRouter(t)

	w := getWithCookies(t, router, "/api/employees", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestEmployeesAPI_DefaultPage(t *testing.T) {
	router := newTestRouter(t)

	body := listEmployees(t, router, "/api/employees")

	assert.Equal(t, 1, body.Page)
	assert.Equal(t, defaultPageSize, body.PageSize)
	assert.Len(t, body.Employees, defaultPageSize)
	assert.True(t, body.HasNext)
}

func TestEmployeesAPI_Pagination(t *testing.T) {
	router := newTestRouter(t)
	svc := roster.New()
	total := svc.Count()

	lastPage := (total + defaultPageSize - 1) / defaultPageSize
	body := listEmployees(t, router, "/api/employees?page="+strconv.Itoa(lastPage))

	assert.False(t, body.HasNext)
	assert.NotEmpty(t, body.Employees)

	// Pages never overlap.
	first := listEmployees(t, router, "/api/employees?page=1")
	second := listEmployees(t, router, "/api/employees?page=2")
	seen := map[string]bool{}
	for _, e := range first.Employees {
		seen[e.ID] = true
	}
	for _, e := range second.Employees {
		assert.False(t, seen[e.ID], "employee %s appeared on both pages", e.Email)
	}
}

func TestEmployeesAPI_QueryFilter(t *testing.T) {
	router := newTestRouter(t)

	body := listEmployees(t, router, "/api/employees?query=yomna")

	require.NotEmpty(t, body.Employees)
	for _, e := range body.Employees {
		assert.Contains(t, e.Email, "yomna")
	}
}

func TestEmployeesAPI_StatusFilter(t *testing.T) {
	router := newTestRouter(t)

	body := listEmployees(t, router, "/api/employees?status=onLeave&page_size=100")

	svc := roster.New()
	assert.Len(t, body.Employees, svc.CountByStatus(roster.StatusOnLeave))
	for _, e := range body.Employees {
		assert.Equal(t, roster.StatusOnLeave, e.Status)
	}
}

func TestEmployeesAPI_InvalidStatusIs400(t *testing.T) {
	router := newTestRouter(t)
	cookies := sessionCookiesFor(t, "ahmed.hr@mail.com", domainauth.RoleHR)

	w := getWithCookies(t, router, "/api/employees?status=fired", cookies)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_status")
}

func TestEmployeesAPI_SortDescending(t *testing.T) {
	router := newTestRouter(t)

	body := listEmployees(t, router, "/api/employees?sort=name&dir=desc&page_size=100")

	require.Greater(t, len(body.Employees), 1)
	for i := 1; i < len(body.Employees); i++ {
		prev := strings.ToLower(body.Employees[i-1].Name)
		cur := strings.ToLower(body.Employees[i].Name)
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestEmployeesAPI_CombinedSortParam(t *testing.T) {
	router := newTestRouter(t)

	body := listEmployees(t, router, "/api/employees?sort=role:desc&page_size=100")

	require.Greater(t, len(body.Employees), 1)
	for i := 1; i < len(body.Employees); i++ {
		prev := strings.ToLower(body.Employees[i-1].Title)
		cur := strings.ToLower(body.Employees[i].Title)
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestEmployeesAPI_PageSizeIsCapped(t *testing.T) {
	router := newTestRouter(t)

	body := listEmployees(t, router, "/api/employees?page_size=100000")

	assert.Equal(t, maxPageSize, body.PageSize)
}

package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageDashboard      = "dashboard"
	PageAdminDashboard = "admin-dashboard"
	PageEmployees      = "employees"
	PageSection        = "section"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// contentTemplates maps CurrentPage to the page template executed inside
// the layout's content block.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageDashboard:      "dashboard-content",
	PageAdminDashboard: "admin-dashboard-content",
	PageEmployees:      "employees-content",
	PageSection:        "section-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to section-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "section-content"
}

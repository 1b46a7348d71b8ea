package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/humane-hq/humane/internal/http/uiutil"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
// In dev mode, pass os.DirFS("frontend/templates") for hot reloading; in
// production, a sub-FS of the embedded template filesystem.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	r := &TemplateRenderer{logger: cfg.Logger}

	funcs := templateFuncs()
	// include dispatches to a template whose name is only known at render
	// time (the per-page content template picked by sectionTmpl).
	funcs["include"] = r.include

	t, err := template.New("root").Funcs(funcs).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}

	r.t = t
	return r, nil
}

func (r *TemplateRenderer) include(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // content is rendered by html/template above
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "layout", data)
}

// RenderLogin renders the standalone login page (no app chrome).
func (r *TemplateRenderer) RenderLogin(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "login-layout", data)
}

// RenderError renders an error page using the error template.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "error-layout", data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		if r.logger != nil {
			r.logger.Error("template execution failed",
				slog.String("template", templateName),
				slog.Any("error", err),
			)
		}
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		return err
	}
	return nil
}

// templateFuncs returns the helpers available to all templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"sectionTmpl":  ContentTemplateFor,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"contains":     strings.Contains,
		"friendlyTime": friendlyTimeFunc,
		"relativeTime": uiutil.FriendlyRelativeTime,
		"roleLabel":    roleLabel,
		"statusLabel":  statusLabel,
	}
}

func friendlyTimeFunc(ts any) string {
	var t0 time.Time
	switch v := ts.(type) {
	case time.Time:
		t0 = v
	case *time.Time:
		if v != nil {
			t0 = *v
		}
	default:
		return ""
	}
	return uiutil.FormatFriendlyDateTime(t0)
}

// roleLabel renders a role identifier for display: "super_admin"
// becomes "Super Admin", "hr" becomes "HR".
func roleLabel(role string) string {
	if role == "hr" {
		return "HR"
	}
	parts := strings.Split(role, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// statusLabel renders an employment status for display.
func statusLabel(status string) string {
	switch status {
	case "active":
		return "Active"
	case "onLeave":
		return "On Leave"
	case "inactive":
		return "Inactive"
	default:
		return status
	}
}

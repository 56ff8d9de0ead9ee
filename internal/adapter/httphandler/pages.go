package httphandler

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/niksmo/coffee-admin/internal/core/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// page is the data shared by every template.
type page struct {
	Title   string
	Path    string
	Loading bool
	LoadErr string
	Err     string
}

func newPage(title string, r *http.Request, s domain.Snapshot) page {
	return page{
		Title:   title,
		Path:    r.URL.Path,
		Loading: s.Loading(),
		LoadErr: s.Err(),
	}
}

type homePage struct {
	page
	Top []domain.Product
}

type editorPage struct {
	page
	Prefix    string
	Charts    bool
	Editing   bool
	Form      domain.Product
	Products  []domain.Product
	Forms     []domain.Form
	Varieties []domain.Variety
	Roasts    []domain.Roast
}

// render executes the template into a buffer first,
// so a failed execution doesn't leave a half written page.
func render(w http.ResponseWriter, status int, name string, data any) {
	const op = "httphandler.render"

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to execute template", "op", op, "template", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

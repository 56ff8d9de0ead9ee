package httphandler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/niksmo/coffee-admin/internal/core/port"
)

type HomeHandler struct {
	snapshots snapshotter
	top       port.TopSellers
	reloader  reloader
}

type reloader interface {
	Reload(context.Context) error
}

// RegisterHome registers the best sellers page and the reload action.
func RegisterHome(
	mux *http.ServeMux, s snapshotter, top port.TopSellers, rl reloader,
) {
	h := HomeHandler{snapshots: s, top: top, reloader: rl}
	mux.HandleFunc("GET /{$}", h.GetHome)
	mux.HandleFunc("POST /reload", h.PostReload)
}

func (h HomeHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "home", homePage{
		page: newPage("Inicio", r, h.snapshots.Snapshot()),
		Top:  h.top.Top(),
	})
}

// PostReload sends the user back to the "next" form value.
// A failed load is shown by the load error of the next page.
func (h HomeHandler) PostReload(w http.ResponseWriter, r *http.Request) {
	const op = "HomeHandler.PostReload"

	if err := h.reloader.Reload(r.Context()); err != nil {
		slog.Warn("failed to reload products", "op", op, "err", err)
	}

	http.Redirect(w, r, localPath(r.PostFormValue("next")), http.StatusSeeOther)
}

// localPath returns next when it is a path on this server and "/" otherwise.
// Browsers treat a backslash as a slash, so "/\host" is rejected too.
func localPath(next string) string {
	if !strings.HasPrefix(next, "/") || strings.ContainsRune(next, '\\') {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

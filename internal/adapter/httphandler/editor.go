package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
	"github.com/niksmo/coffee-admin/internal/core/service"
)

// GET  {prefix}             list with the editor form
// GET  {prefix}/{id}/edit   select a product (200 OK, 404 Not found)
// POST {prefix}/save        create or update (303 See other, 400 Bad request, 502 Bad gateway)
// POST {prefix}/new         back to create mode (303 See other)
// POST {prefix}/{id}/delete delete (303 See other, 400 Bad request, 502 Bad gateway)

type EditorConfig struct {
	Prefix string
	Title  string
	Charts bool
}

type EditorHandler struct {
	cfg    EditorConfig
	editor port.ProductEditor
}

func RegisterEditor(
	mux *http.ServeMux, cfg EditorConfig, editor port.ProductEditor,
) {
	cfg.Prefix = strings.TrimRight(cfg.Prefix, "/")
	h := EditorHandler{cfg: cfg, editor: editor}
	mux.HandleFunc("GET "+cfg.Prefix, h.GetList)
	mux.HandleFunc("GET "+cfg.Prefix+"/{id}/edit", h.GetEdit)
	mux.HandleFunc("POST "+cfg.Prefix+"/save", h.PostSave)
	mux.HandleFunc("POST "+cfg.Prefix+"/new", h.PostNew)
	mux.HandleFunc("POST "+cfg.Prefix+"/{id}/delete", h.PostDelete)
}

func (h EditorHandler) GetList(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "")
}

func (h EditorHandler) GetEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.editor.Select(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.render(w, r, http.StatusNotFound, "Producto no encontrado")
			return
		}
		h.render(w, r, http.StatusInternalServerError, "No se pudo editar el producto")
		return
	}
	h.render(w, r, http.StatusOK, "")
}

func (h EditorHandler) PostSave(w http.ResponseWriter, r *http.Request) {
	const op = "EditorHandler.PostSave"
	log := slog.With("op", op)

	p, err := parseProduct(r)
	if err != nil {
		log.Warn("failed to parse form", "err", err)
		h.render(w, r, http.StatusBadRequest, "Formulario inválido")
		return
	}

	saved, err := h.editor.Save(r.Context(), p)
	if err != nil {
		log.Error("failed to save product", "productID", p.ID, "err", err)
		h.render(w, r, http.StatusBadGateway, "No se pudo guardar el producto")
		return
	}

	log.Info("product saved", "productID", saved.ID)
	http.Redirect(w, r, h.cfg.Prefix, http.StatusSeeOther)
}

func (h EditorHandler) PostNew(w http.ResponseWriter, r *http.Request) {
	h.editor.Reset()
	http.Redirect(w, r, h.cfg.Prefix, http.StatusSeeOther)
}

func (h EditorHandler) PostDelete(w http.ResponseWriter, r *http.Request) {
	const op = "EditorHandler.PostDelete"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.editor.Delete(r.Context(), id); err != nil {
		log.Error("failed to delete product", "productID", id, "err", err)
		h.render(w, r, http.StatusBadGateway, "No se pudo borrar el producto")
		return
	}

	log.Info("product deleted", "productID", id)
	http.Redirect(w, r, h.cfg.Prefix, http.StatusSeeOther)
}

func (h EditorHandler) render(
	w http.ResponseWriter, r *http.Request, status int, errMsg string,
) {
	s := h.editor.State()

	data := editorPage{
		page:      newPage(h.cfg.Title, r, s.Snapshot),
		Prefix:    h.cfg.Prefix,
		Charts:    h.cfg.Charts,
		Editing:   s.Editing,
		Form:      s.Form,
		Products:  s.Snapshot.Products(),
		Forms:     domain.Forms,
		Varieties: domain.Varieties,
		Roasts:    domain.Roasts,
	}
	data.Err = errMsg
	render(w, status, "editor", data)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
)

// GET v1/products     current snapshot of the cache
// GET v1/products/top best sellers
// GET v1/charts       chart series of the current snapshot

type snapshotter interface {
	Snapshot() domain.Snapshot
}

type APIHandler struct {
	snapshots snapshotter
	top       port.TopSellers
}

func RegisterAPI(mux *http.ServeMux, s snapshotter, top port.TopSellers) {
	h := APIHandler{snapshots: s, top: top}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/top", h.GetTop)
	mux.HandleFunc("GET /v1/charts", h.GetCharts)
	mux.HandleFunc("GET /health", h.GetHealth)
}

func (h APIHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	s := h.snapshots.Snapshot()
	respondJSON(w, http.StatusOK, ProductsResponse{
		Products: toProducts(s.Products()),
		Loading:  s.Loading(),
		Error:    s.Err(),
		Version:  s.Version(),
	})
}

func (h APIHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, TopResponse{
		Products: toProducts(h.top.Top()),
	})
}

func (h APIHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	d := domain.NewChartData(h.snapshots.Snapshot().Products())
	respondJSON(w, http.StatusOK, ChartsResponse{
		Labels: d.Labels,
		Stock:  d.Stock,
		Sales:  d.Sales,
	})
}

func (h APIHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.respondJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "op", op, "err", err)
	}
}

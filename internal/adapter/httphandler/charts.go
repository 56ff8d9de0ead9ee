package httphandler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// GET charts/{name} last drawn chart page (200 OK, 404 Not found, 503 Service unavailable)

type ChartsHandler struct {
	charts map[string]io.WriterTo
}

func RegisterCharts(mux *http.ServeMux, charts map[string]io.WriterTo) {
	h := ChartsHandler{charts: charts}
	mux.HandleFunc("GET /charts/{name}", h.GetChart)
}

func (h ChartsHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	const op = "ChartsHandler.GetChart"

	c, ok := h.charts[r.PathValue("name")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	var buf strings.Builder
	if _, err := c.WriteTo(&buf); err != nil {
		slog.Warn("chart is unavailable", "op", op, "err", err)
		http.Error(w, "chart is not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, buf.String()); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

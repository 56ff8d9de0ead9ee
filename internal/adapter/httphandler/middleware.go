package httphandler

import (
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

const formMediaType = "application/x-www-form-urlencoded"

// AllowForm rejects non empty bodies which are not url encoded forms.
func AllowForm(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != formMediaType {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// LogRequests logs every request with the request id set by
// [middleware.RequestID].
func LogRequests(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Info("request",
			"requestID", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	}
	return http.HandlerFunc(hf)
}

// Chain wraps the handler with the middleware stack of the admin server.
func Chain(h http.Handler) http.Handler {
	h = AllowForm(h)
	h = LogRequests(h)
	h = middleware.Recoverer(h)
	h = middleware.RequestID(h)
	return h
}

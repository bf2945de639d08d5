package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"feedhub/log"
)

func (h *Handle) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		r = r.WithContext(log.IntoContext(r.Context(), h.l))

		next.ServeHTTP(ww, r)

		h.stats.RecordRequest(ww.Status())
		h.l.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

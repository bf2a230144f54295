package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Routes builds the router for the HTTP API
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	// Public routes
	r.Get("/healthz", Healthz)
	r.Get("/faces/{sides}/{face}", h.GetFace)
	r.Post("/rolls", h.CreateRoll)

	r.Route("/tables/{tableID}", func(r chi.Router) {
		r.Post("/", h.ConfigureTable)
		r.Get("/", h.GetTable)
		r.Delete("/", h.DeleteTable)
		r.Put("/sets/{position}", h.UpdateSet)
		r.Post("/sets/{position}/roll", h.RollSet)
		r.Get("/sets/{position}/image.{ext}", h.GetLatestImage)
	})

	return r
}

// logRequests writes one structured line per request
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// Healthz reports liveness
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Package server exposes the bank service over HTTP as a JSON facade for
// the demo. Every request funnels into the same mutex-guarded service the
// console session uses.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/awesomegic/gicbank/internal/bank"
)

// New builds the HTTP router over the given bank service.
func New(svc *bank.Service) http.Handler {
	h := &handlers{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/transactions", h.CreateTransaction)
		r.Post("/rules", h.DefineRule)
		r.Get("/accounts/{account}/statements/{yearMonth}", h.GetStatement)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

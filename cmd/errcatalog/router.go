package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Goden-Gun/apperr-lib/pkg/catalog"
	"github.com/Goden-Gun/apperr-lib/pkg/envelope"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
	"github.com/Goden-Gun/apperr-lib/pkg/tracing"
)

type routerOptions struct {
	Registry    *prometheus.Registry
	MetricsPath string
}

type listResponse struct {
	Success bool            `json:"success"`
	Data    []catalog.Entry `json:"data"`
}

type entryResponse struct {
	Success bool          `json:"success"`
	Data    catalog.Entry `json:"data"`
}

type handler struct {
	log *logger.Logger
}

func newRouter(l *logger.Logger, opts routerOptions) http.Handler {
	h := &handler{log: l.WithArea("catalog")}
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(tracing.Middleware("errcatalog"))
	r.Use(envelope.Recoverer(h.log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	if opts.Registry != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/v1/errors", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{code}", h.get)
	})
	return r
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := catalog.Entries(r.URL.Query().Get("domain"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: entries})
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	entry, err := catalog.Find(chi.URLParam(r, "code"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryResponse{Success: true, Data: entry})
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.LogError(r.Context(), err)
	tracing.RecordError(r.Context(), err)
	envelope.Write(w, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

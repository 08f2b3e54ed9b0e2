// Package server exposes a navigator.Navigator as a JSON API.
//
// Routes:
//
//	GET    /api/graph              current road network
//	POST   /api/graph/regenerate   generate a new road network
//	POST   /api/routes             find a route {start, end, algorithm}
//	GET    /api/routes/current     last route found
//	DELETE /api/routes/current     clear the last route
//	GET    /healthz                liveness
//	GET    /metrics                Prometheus exposition
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/routenav/navigator"
)

// Handler serves the API for one navigator.
type Handler struct {
	nav    *navigator.Navigator
	logger *slog.Logger
}

// NewHandler creates a Handler. A nil logger falls back to slog.Default().
func NewHandler(nav *navigator.Navigator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{nav: nav, logger: logger}
}

// RegisterRoutes mounts every endpoint on router. Requests that match no
// route are answered with JSON 404/405 and counted under the "unmatched" label.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.Use(h.instrument)
	router.NotFoundHandler = h.instrument(http.HandlerFunc(notFound))
	router.MethodNotAllowedHandler = h.instrument(http.HandlerFunc(methodNotAllowed))

	router.HandleFunc("/api/graph", h.GetGraph).Methods(http.MethodGet)
	router.HandleFunc("/api/graph/regenerate", h.Regenerate).Methods(http.MethodPost)
	router.HandleFunc("/api/routes", h.FindRoute).Methods(http.MethodPost)
	router.HandleFunc("/api/routes/current", h.CurrentRoute).Methods(http.MethodGet)
	router.HandleFunc("/api/routes/current", h.ClearRoute).Methods(http.MethodDelete)
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	router.Handle("/metrics", h.nav.Metrics().Handler()).Methods(http.MethodGet)
}

// Router returns a new router with every endpoint registered.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// GetGraph returns the current road network.
func (h *Handler) GetGraph(w http.ResponseWriter, r *http.Request) {
	snap, err := h.nav.Snapshot()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Regenerate replaces the road network.
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	snap, err := h.nav.Regenerate(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// FindRoute decodes a navigator.RouteRequest and returns the Route.
func (h *Handler) FindRoute(w http.ResponseWriter, r *http.Request) {
	var req navigator.RouteRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	route, err := h.nav.FindRoute(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// CurrentRoute returns the last route, 404 when there is none.
func (h *Handler) CurrentRoute(w http.ResponseWriter, r *http.Request) {
	route, ok := h.nav.Route()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no current route"})
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// ClearRoute drops the last route.
func (h *Handler) ClearRoute(w http.ResponseWriter, r *http.Request) {
	h.nav.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps navigator errors to HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, navigator.ErrInvalidSelection):
		status = http.StatusBadRequest
	case errors.Is(err, navigator.ErrUnknownNode):
		status = http.StatusNotFound
	case errors.Is(err, navigator.ErrNoGraph):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// routeUnmatched labels requests that reached no registered route.
const routeUnmatched = "unmatched"

// instrument records request metrics labelled by route template.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := routeUnmatched
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		elapsed := time.Since(began)
		h.nav.Metrics().RecordHTTPRequest(r.Method, route, strconv.Itoa(rec.status), elapsed)
		h.logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"elapsed", elapsed,
		)
	})
}

package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veldt-labs/detent/internal/logging"
	"github.com/veldt-labs/detent/internal/presentation/graph"
	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/machine"
	"github.com/veldt-labs/detent/pkg/session"
)

// Server exposes a session.Manager over HTTP. Each machine is addressed by
// ID; the transition endpoint maps rejections to 409 Conflict with the
// current snapshot in the body, so callers lose nothing on an illegal
// request.
type Server struct {
	mgr     *session.Manager
	logger  *slog.Logger
	metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler overrides the /metrics handler (e.g. for a private
// Prometheus registry).
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for the machine API.
func NewHandler(mgr *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		mgr:     mgr,
		logger:  logging.NewNop(),
		metrics: promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()

	r.Post("/machines", s.create)
	r.Get("/machines", s.list)
	r.Get("/machines/{id}", s.get)
	r.Delete("/machines/{id}", s.delete)
	r.Post("/machines/{id}/transition", s.transition)

	r.Get("/graph", s.graph)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metrics)

	return r
}

type machineResponse struct {
	ID         string `json:"id"`
	State      string `json:"state"`
	ReadyCount uint64 `json:"ready_count"`
}

type transitionRequest struct {
	Op string `json:"op"`
}

type errorResponse struct {
	Error      string `json:"error"`
	State      string `json:"state,omitempty"`
	ReadyCount uint64 `json:"ready_count,omitempty"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	id, snap, err := s.mgr.Create(r.Context())
	if err != nil {
		s.logger.Error("create machine failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(id, snap))
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	ids, err := s.mgr.List(r.Context())
	if err != nil {
		s.logger.Error("list machines failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"machines": ids})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap, err := s.mgr.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(id, snap))
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.mgr.Delete(r.Context(), id); err != nil {
		s.writeError(w, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) transition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	op, err := domain.ParseOp(body.Op)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	snap, err := s.mgr.Apply(r.Context(), id, op)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toResponse(id, snap))
	case errors.Is(err, domain.ErrRejected):
		// Expected outcome: report it with the untouched snapshot.
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:      err.Error(),
			State:      snap.State,
			ReadyCount: snap.ReadyCount,
		})
	default:
		s.writeError(w, id, err)
	}
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.Overlay
	if current := r.URL.Query().Get("current"); current != "" {
		overlay = &graph.Overlay{Current: current}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(machine.Table(), overlay)))
}

func (s *Server) writeError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, domain.ErrMachineNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "machine not found"})
		return
	}
	s.logger.Error("request failed", "machine_id", id, "err", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func toResponse(id string, snap machine.Snapshot) machineResponse {
	return machineResponse{ID: id, State: snap.State, ReadyCount: snap.ReadyCount}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Server exposes a desk/portfolio pair over HTTP. All journal operations go
// through one mutex: the journal itself offers no concurrency guarantees, so
// the adapter is the external serialization point the core requires.
type Server struct {
	desk      *blotter.Desk
	portfolio *domain.Portfolio
	logger    *slog.Logger
	mu        sync.Mutex
}

// NewHandler creates the HTTP handler. It validates the embedded OpenAPI
// document first so a drifted spec fails at startup, not in production.
func NewHandler(desk *blotter.Desk, portfolio *domain.Portfolio, logger *slog.Logger) (http.Handler, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}

	s := &Server{
		desk:      desk,
		portfolio: portfolio,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/trail", s.getTrail)
	r.Get("/portfolio", s.getPortfolio)
	r.Post("/execute", s.postExecute)
	r.Post("/undo", s.postUndo)
	r.Post("/redo", s.postRedo)
	r.Post("/snapshot", s.postSnapshot)
	return r, nil
}

type trailResponse struct {
	Len          int                  `json:"len"`
	Actions      []domain.TradeAction `json:"actions"`
	Descriptions []string             `json:"descriptions"`
}

func (s *Server) getTrail(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	trail := s.desk.Trail()
	s.mu.Unlock()

	descriptions := make([]string, len(trail))
	for i, a := range trail {
		descriptions[i] = a.String()
	}
	writeJSON(w, http.StatusOK, trailResponse{
		Len:          len(trail),
		Actions:      trail,
		Descriptions: descriptions,
	})
}

type portfolioResponse struct {
	Cash      float64          `json:"cash"`
	Positions map[string]int64 `json:"positions"`
}

func (s *Server) getPortfolio(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := portfolioResponse{
		Cash:      s.portfolio.Cash(),
		Positions: s.portfolio.Positions(),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) postExecute(w http.ResponseWriter, r *http.Request) {
	var action domain.TradeAction
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("execute: invalid request body", "err", err)
		return
	}

	s.mu.Lock()
	err := s.desk.Execute(r.Context(), action, s.portfolio)
	s.mu.Unlock()

	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, domain.ErrInvalidAction) || errors.Is(err, domain.ErrUnknownActionKind) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) postUndo(w http.ResponseWriter, r *http.Request) {
	s.reversal(w, r, s.desk.Undo)
}

func (s *Server) postRedo(w http.ResponseWriter, r *http.Request) {
	s.reversal(w, r, s.desk.Redo)
}

func (s *Server) reversal(w http.ResponseWriter, r *http.Request, op func(context.Context, *domain.Portfolio) (bool, error)) {
	s.mu.Lock()
	ok, err := op(r.Context(), s.portfolio)
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": ok})
}

func (s *Server) postSnapshot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.desk.Archive(r.Context(), body.Name)
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, blotter.ErrNoArchive) {
			http.Error(w, err.Error(), http.StatusNotImplemented)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Package server exposes layout sessions over HTTP for interactive
// renderers.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/DilaraLiyanage/forestplanner/pkg/forest"
	"github.com/DilaraLiyanage/forestplanner/pkg/scene"
	"github.com/DilaraLiyanage/forestplanner/pkg/spec"
)

// Server is the local development server for interactive design. Each
// client works against its own layout session, addressed by ID.
type Server struct {
	projectPath string
	port        int
	logger      *log.Logger

	mu       sync.Mutex
	sessions map[string]*forest.Session
}

// New creates a server for the given project directory.
func New(projectPath string, port int, logger *log.Logger) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		logger:      logger,
		sessions:    make(map[string]*forest.Session),
	}
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("forestplanner server starting", "addr", "http://localhost"+addr, "project", s.projectPath)
	return http.ListenAndServe(addr, s.routes())
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/scene", s.handleScene)
			r.Get("/validation", s.handleValidation)
			r.Post("/scale", s.handleScale)
			r.Post("/hub-radius", s.handleHubRadius)
			r.Post("/regenerate", s.handleRegenerate)
			r.Post("/reset", s.handleReset)
		})
		r.Get("/spec", s.handleSpec)
	})
	r.Get("/", s.handleIndex)
	return r
}

// loadSpec reads the project spec, falling back to defaults when the
// project has none.
func (s *Server) loadSpec() (*spec.ForestSpec, error) {
	cfg, err := spec.LoadProject(s.projectPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return spec.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func (s *Server) session(id string) (*forest.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.loadSpec()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("loading spec: %v", err))
		return
	}

	// Optional overrides in the request body.
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(cfg); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("decoding spec overrides: %v", err))
			return
		}
	}

	sess, report, err := forest.NewSession(cfg)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error":      err.Error(),
			"validation": report,
		})
		return
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Info("session created", "id", id, "trees", len(sess.Trees()), "paths", len(sess.Paths()))
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    id,
		"scene": scene.Assemble(sess),
	})
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	s.mu.Lock()
	sc := scene.Assemble(sess)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	s.mu.Lock()
	report := scene.ValidateSpatial(sess)
	report.Merge(sess.Report())
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}

	var body struct {
		Scale float64 `json:"scale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decoding scale request: %v", err))
		return
	}

	s.mu.Lock()
	res := sess.ApplyHubScale(body.Scale)
	sc := scene.Assemble(sess)
	s.mu.Unlock()

	if res.Clamped {
		s.logger.Warn("hub scale clamped", "requested", res.Requested, "applied", res.Applied)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"result": res,
		"scene":  sc,
	})
}

func (s *Server) handleHubRadius(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}

	var body struct {
		Delta float64 `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decoding radius request: %v", err))
		return
	}

	s.mu.Lock()
	res := sess.AdjustHubRadius(body.Delta)
	sc := scene.Assemble(sess)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"result": res,
		"scene":  sc,
	})
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	s.mu.Lock()
	sess.Generate()
	sc := scene.Assemble(sess)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	s.mu.Lock()
	sess.Reset()
	sc := scene.Assemble(sess)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	cfg, err := s.loadSpec()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("loading spec: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>ForestPlanner</title></head>
<body style="margin:0;background:#0b1a0b;color:#e8f5e9;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>ForestPlanner</h1>
<p>Create a session with <code>POST /api/sessions</code>, then fetch <code>/api/sessions/{id}/scene</code>.</p>
</div>
</body></html>`)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

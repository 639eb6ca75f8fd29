// Package server exposes the generator core over HTTP: expansion,
// scene building, SVG rendering, preset CRUD, and a WebSocket stream
// for progressive reveal animation.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/pflow-xyz/go-lindenmayer/preset"
	"github.com/pflow-xyz/go-lindenmayer/render"
	"github.com/pflow-xyz/go-lindenmayer/scene"
	"github.com/pflow-xyz/go-lindenmayer/turtle"
)

// PresetStore is the persistence interface the server needs. The
// SQLite store satisfies it; tests use an in-memory fake.
type PresetStore interface {
	Save(p preset.Preset) (preset.Preset, error)
	Load(id string) (preset.Preset, error)
	List() ([]preset.Preset, error)
	Delete(id string) error
}

// Server wires the core packages behind HTTP handlers.
type Server struct {
	log   *slog.Logger
	store PresetStore
	cache *lsystem.ExpansionCache
}

// New creates a server. store may be nil, in which case the preset
// endpoints serve built-ins only.
func New(log *slog.Logger, store PresetStore) *Server {
	return &Server{
		log:   log,
		store: store,
		cache: lsystem.NewExpansionCache(64),
	}
}

// Handler builds the HTTP route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/expand", s.handleExpand)
	r.Post("/scene", s.handleScene)
	r.Post("/render", s.handleRender)

	r.Get("/presets", s.handleListPresets)
	r.Post("/presets", s.handleSavePreset)
	r.Get("/presets/{id}", s.handleGetPreset)
	r.Delete("/presets/{id}", s.handleDeletePreset)

	r.Get("/ws", s.handleWebSocket)

	return r
}

// SceneRequest is the common input of the scene-producing endpoints.
type SceneRequest struct {
	Axiom      string                   `json:"axiom"`
	Rules      []string                 `json:"rules"`
	Mapping    map[string]turtle.Action `json:"mapping,omitempty"`
	Params     *turtle.Params           `json:"params,omitempty"`
	Iterations int                      `json:"iterations"`
}

// build expands and interprets the request into a scene.
func (s *Server) build(req SceneRequest) (*scene.Scene, []lsystem.Symbol, error) {
	p := preset.Preset{
		Name:       "request",
		Axiom:      req.Axiom,
		Rules:      req.Rules,
		Mapping:    req.Mapping,
		Params:     turtle.DefaultParams(),
		Iterations: req.Iterations,
	}
	if req.Params != nil {
		p.Params = *req.Params
	}

	rules, err := p.RuleSet()
	if err != nil {
		return nil, nil, err
	}
	mapping, err := p.SymbolMapping()
	if err != nil {
		return nil, nil, err
	}

	iterations := req.Iterations
	if iterations < 0 {
		iterations = 0
	}
	sequence := s.cache.Expand(lsystem.ParseSequence(req.Axiom), rules, iterations)
	return turtle.Interpret(sequence, mapping, p.Params), sequence, nil
}

func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	var req SceneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	rules := lsystem.NewRuleSet()
	for _, line := range req.Rules {
		rule, err := lsystem.ParseRule(line)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		rules.Add(rule.Trigger, rule.Replacement)
	}

	iterations := req.Iterations
	if iterations < 0 {
		iterations = 0
	}
	sequence := s.cache.Expand(lsystem.ParseSequence(req.Axiom), rules, iterations)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"sequence": lsystem.Sequence(sequence).String(),
		"length":   len(sequence),
	})
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	var req SceneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	sc, sequence, err := s.build(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"scene":          sc,
		"sequenceLength": len(sequence),
		"primitiveCount": sc.PrimitiveCount(),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req SceneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	sc, _, err := s.build(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	width := queryFloat(r, "width", 800)
	height := queryFloat(r, "height", 600)
	renderer := render.NewSVGRenderer(width, height)

	svg := renderer.Render(sc)
	if raw := r.URL.Query().Get("progress"); raw != "" {
		progress, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid progress %q", raw))
			return
		}
		svg = renderer.RenderFrame(sc, render.Reveal(sc, progress))
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(svg)); err != nil {
		s.log.Error("write svg response", "err", err)
	}
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	presets := make([]preset.Preset, 0, len(preset.Registry))
	for _, slug := range preset.List() {
		presets = append(presets, preset.Registry[slug])
	}
	if s.store != nil {
		stored, err := s.store.List()
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		presets = append(presets, stored...)
	}
	s.writeJSON(w, http.StatusOK, presets)
}

func (s *Server) handleSavePreset(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, errors.New("preset store not configured"))
		return
	}

	var p preset.Preset
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	saved, err := s.store.Save(p)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, p := range preset.Registry {
		if p.ID == id {
			s.writeJSON(w, http.StatusOK, p)
			return
		}
	}

	if s.store == nil {
		s.writeError(w, http.StatusNotFound, preset.ErrNotFound)
		return
	}
	p, err := s.store.Load(id)
	if errors.Is(err, preset.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, errors.New("preset store not configured"))
		return
	}

	id := chi.URLParam(r, "id")
	err := s.store.Delete(id)
	if errors.Is(err, preset.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Warn("request failed", "status", status, "err", err)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	scraper "github.com/jaanak9/dynamic-scraper-api"
)

// Server is the request-facing API. It owns JSON framing and status mapping
// only; all extraction semantics live behind the injected services.
type Server struct {
	router chi.Router

	structures scraper.StructureAnalyzer
	planner    scraper.SelectorPlanner
	registry   scraper.EndpointRegistry
	executor   scraper.ExtractionExecutor
	log        *slog.Logger
}

// NewServer creates and configures the API server. The analyzer passed in is
// expected to be the caching decorator so repeat analyses of a URL are
// served from the schema cache.
func NewServer(
	structures scraper.StructureAnalyzer,
	planner scraper.SelectorPlanner,
	registry scraper.EndpointRegistry,
	executor scraper.ExtractionExecutor,
	log *slog.Logger,
) *Server {
	s := &Server{
		structures: structures,
		planner:    planner,
		registry:   registry,
		executor:   executor,
		log:        log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/api/analyze", s.handleAnalyze)
	r.Get("/api/scrape/{endpointID}", s.handleScrape)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// analyzeRequest is the POST /api/analyze body.
type analyzeRequest struct {
	URL   string `json:"url"`
	Query string `json:"query"`
}

// analyzeResponse is the POST /api/analyze success payload.
type analyzeResponse struct {
	Endpoint string                     `json:"endpoint"`
	Config   *scraper.EndpointConfig    `json:"config"`
	Result   []scraper.ExtractionResult `json:"result"`
}

// handleAnalyze runs the full endpoint-generation pipeline: structure
// analysis (through the cache), selector planning, registration, and a
// first extraction pass.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	req.URL = strings.TrimSpace(req.URL)
	req.Query = strings.TrimSpace(req.Query)
	if req.URL == "" || req.Query == "" {
		jsonError(w, "Missing url or query", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	structure, err := s.structures.Analyze(ctx, req.URL)
	if err != nil {
		s.error(w, r, err)
		return
	}

	selectors, err := s.planner.Plan(ctx, structure, req.Query)
	if err != nil {
		s.error(w, r, err)
		return
	}

	id, config, err := s.registry.Register(req.URL, req.Query, selectors)
	if err != nil {
		s.error(w, r, err)
		return
	}

	results, err := s.executor.Execute(ctx, id)
	if err != nil {
		s.error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Endpoint: "/api/scrape/" + id,
		Config:   config,
		Result:   results,
	})
}

// handleScrape replays a registered endpoint.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "endpointID")

	results, err := s.executor.Execute(r.Context(), id)
	if err != nil {
		s.error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// error writes an error response. ENOTFOUND and EINVALID map to distinct
// statuses; every other code surfaces as a generic failure without leaking
// internals.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := scraper.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case scraper.ENOTFOUND:
		status = http.StatusNotFound
	case scraper.EINVALID:
		status = http.StatusBadRequest
	}

	message := scraper.ErrorMessage(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code,
			"err", err,
		)
		message = "Internal error."
	}

	jsonError(w, message, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/qninhdt/datadeck/server/internal/db"
	"github.com/qninhdt/datadeck/server/internal/factory"
	"github.com/qninhdt/datadeck/server/internal/game"
	mw "github.com/qninhdt/datadeck/server/internal/middleware"
	"github.com/qninhdt/datadeck/server/internal/tournament"
	"github.com/qninhdt/datadeck/server/internal/validation"
)

// Options tunes a Server
type Options struct {
	JWTSecret    []byte
	RateLimit    float64
	RateBurst    int
	MaxBodyBytes int64
	HandSize     int
	DeckSize     int
	// Seed makes session decks reproducible when non-zero
	Seed   uint64
	Logger *zap.Logger
}

// Server handles HTTP requests
type Server struct {
	router      chi.Router
	db          *db.DB
	factory     factory.CardFactory
	platform    *tournament.Platform
	sessions    map[string]*game.GameEngine
	sessionsMu  sync.RWMutex
	rateLimiter *mw.RateLimiter
	opts        Options
	logger      *zap.Logger
}

// NewServer creates a new API server
func NewServer(database *db.DB, f factory.CardFactory, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}

	s := &Server{
		router:      chi.NewRouter(),
		db:          database,
		factory:     f,
		platform:    tournament.NewPlatform(logger.Named("tournament")),
		sessions:    make(map[string]*game.GameEngine),
		rateLimiter: mw.NewRateLimiter(opts.RateLimit, opts.RateBurst),
		opts:        opts,
		logger:      logger,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(mw.RequestLogger(s.logger.Named("http")))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.SetHeader("Content-Type", "application/json"))
	s.router.Use(s.rateLimiter.Middleware)
	s.router.Use(mw.SecurityHeaders)
	s.router.Use(mw.MaxBodySize(s.opts.MaxBodyBytes))

	// Public read endpoints
	s.router.Get("/healthz", s.health)
	s.router.Get("/api/catalog", s.getCatalog)
	s.router.Get("/api/sessions/{id}", s.getSession)
	s.router.Get("/api/sessions/{id}/turns", s.listTurns)
	s.router.Get("/api/tournament/matches", s.listMatches)
	s.router.Get("/api/tournament/leaderboard", s.getLeaderboard)
	s.router.Get("/api/tournament/report", s.getReport)

	// Mutations require a bearer token
	s.router.Group(func(r chi.Router) {
		r.Use(mw.Auth(s.opts.JWTSecret))
		r.Post("/api/sessions", s.createSession)
		r.Post("/api/sessions/{id}/draw", s.drawCards)
		r.Post("/api/sessions/{id}/turn", s.simulateTurn)
		r.Post("/api/tournament/cards", s.registerCard)
		r.Post("/api/tournament/matches", s.createMatch)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response wraps API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (sanitized)
func writeError(w http.ResponseWriter, status int, message string) {
	if status >= 500 {
		message = "Internal server error"
	}
	writeJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}

// decodeBody decodes an optional JSON body; an empty body leaves dst untouched
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// health reports liveness
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

// getCatalog lists what the factory can build
func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"factory":         s.factory.GetInfo(),
			"supported_types": s.factory.GetSupportedTypes(),
		},
	})
}

// lookupSession validates the id and returns the live session
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*game.GameEngine, bool) {
	sessionID := chi.URLParam(r, "id")

	if err := validation.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session ID")
		return nil, false
	}

	s.sessionsMu.RLock()
	engine, ok := s.sessions[sessionID]
	s.sessionsMu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return engine, true
}

// checkSessionOwnership verifies the caller created the session
func (s *Server) checkSessionOwnership(w http.ResponseWriter, r *http.Request, sessionID string) bool {
	userID := mw.UserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Missing user ID")
		return false
	}

	isOwner, err := s.db.IsSessionOwner(r.Context(), sessionID, userID)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !isOwner) {
		writeError(w, http.StatusForbidden, "Access denied")
		return false
	}
	if err != nil {
		s.logger.Error("ownership lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to check ownership")
		return false
	}
	return true
}

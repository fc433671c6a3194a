package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/seebach/spieltracker/internal/logger"
	"github.com/seebach/spieltracker/internal/services/leaderboard"
	"github.com/seebach/spieltracker/internal/services/session"
	"github.com/seebach/spieltracker/internal/services/tracker"
)

const apiPrefix = "/api/v1"

// userIDHeader carries the caller identity. Authentication happens in
// front of this service, the header is trusted as-is.
const userIDHeader = "X-User-ID"

// ServerError is a custom error type for server configuration errors
type ServerError string

// Error implements the error interface
func (e ServerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig             ServerError = "config cannot be nil"
	ErrNilTrackerService     ServerError = "tracker service cannot be nil"
	ErrNilSessionService     ServerError = "session service cannot be nil"
	ErrNilLeaderboardService ServerError = "leaderboard service cannot be nil"

	errMissingUserID ServerError = "missing " + userIDHeader + " header"
	errBadRequest    ServerError = "malformed request body"
)

// Config holds configuration for the HTTP server
type Config struct {
	// Service dependencies
	TrackerService     tracker.Service
	SessionService     session.Service
	LeaderboardService leaderboard.Service
	Logger             logger.Logger

	// Port is the TCP port to listen on
	Port string
}

// Server serves the JSON API
type Server struct {
	trackers     tracker.Service
	sessions     session.Service
	leaderboards leaderboard.Service
	logger       logger.Logger

	router     *mux.Router
	httpServer *http.Server
}

// New creates the HTTP server and registers all routes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.TrackerService == nil {
		return nil, ErrNilTrackerService
	}
	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}
	if cfg.LeaderboardService == nil {
		return nil, ErrNilLeaderboardService
	}

	log := cfg.Logger
	if log == nil {
		log = logger.New("api-server")
	}

	s := &Server{
		trackers:     cfg.TrackerService,
		sessions:     cfg.SessionService,
		leaderboards: cfg.LeaderboardService,
		logger:       log,
		router:       mux.NewRouter(),
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	api := s.router.PathPrefix(apiPrefix).Subrouter()

	api.HandleFunc("/trackers", s.createTracker).Methods(http.MethodPost)
	api.HandleFunc("/trackers", s.listTrackers).Methods(http.MethodGet)
	api.HandleFunc("/trackers/{trackerId}", s.getTracker).Methods(http.MethodGet)
	api.HandleFunc("/trackers/{trackerId}/archive", s.setArchived).Methods(http.MethodPost)
	api.HandleFunc("/trackers/{trackerId}/players", s.addPlayer).Methods(http.MethodPost)
	api.HandleFunc("/trackers/{trackerId}/players/{playerId}", s.renamePlayer).Methods(http.MethodPut)
	api.HandleFunc("/trackers/{trackerId}/games", s.startGame).Methods(http.MethodPost)

	api.HandleFunc("/games/{gameId}", s.getGame).Methods(http.MethodGet)
	api.HandleFunc("/games/{gameId}/mode", s.setMode).Methods(http.MethodPost)
	api.HandleFunc("/games/{gameId}/subtract", s.subtractLife).Methods(http.MethodPost)
	api.HandleFunc("/games/{gameId}/nuke", s.detonateNuke).Methods(http.MethodPost)
	api.HandleFunc("/games/{gameId}/undo", s.undo).Methods(http.MethodPost)
	api.HandleFunc("/games/{gameId}/redo", s.redo).Methods(http.MethodPost)
	api.HandleFunc("/games/{gameId}/reset", s.reset).Methods(http.MethodPost)
	api.HandleFunc("/games/{gameId}/cancel", s.cancel).Methods(http.MethodPost)

	api.HandleFunc("/leaderboard", s.getLeaderboard).Methods(http.MethodGet)

	return s, nil
}

// Router exposes the handler for tests and embedding
func (s *Server) Router() http.Handler {
	return s.router
}

// Start blocks serving requests until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to write response body", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", err)
	}
	s.respond(w, status, errorResponse{Error: err.Error()})
}

// statusOf maps service errors onto HTTP statuses. Unknown errors are
// internal by default so persistence failures never leak as client
// faults.
func statusOf(err error) int {
	switch {
	case errors.Is(err, tracker.ErrTrackerNotFound),
		errors.Is(err, tracker.ErrPlayerNotFound),
		errors.Is(err, session.ErrGameNotFound):
		return http.StatusNotFound

	case errors.Is(err, tracker.ErrDuplicateDisplayName),
		errors.Is(err, tracker.ErrTrackerArchived),
		errors.Is(err, session.ErrGameNotActive),
		errors.Is(err, session.ErrActionInProgress),
		errors.Is(err, session.ErrActionPending),
		errors.Is(err, session.ErrWrongMode),
		errors.Is(err, session.ErrNothingToReset):
		return http.StatusConflict

	case errors.Is(err, tracker.ErrNameRequired),
		errors.Is(err, tracker.ErrNotEnoughPlayers),
		errors.Is(err, session.ErrInvalidMode),
		errors.Is(err, session.ErrInvalidSurvivor),
		errors.Is(err, leaderboard.ErrUnknownMetric),
		errors.Is(err, errMissingUserID),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) decode(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		s.logger.Debug("failed to decode request body", "error", err.Error())
		return errBadRequest
	}
	return nil
}

func callerID(r *http.Request) (string, error) {
	id := r.Header.Get(userIDHeader)
	if id == "" {
		return "", errMissingUserID
	}
	return id, nil
}

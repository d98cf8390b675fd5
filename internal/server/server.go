// Package server implements the scores service the game client posts runs
// to: a small JSON API over the SQLite store.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/dinorun/internal/storage"
)

// Leaderboard limits for GET /api/scores.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Store is the persistence the service needs. *storage.Store satisfies it.
type Store interface {
	SaveScore(ctx context.Context, e storage.ScoreEntry) error
	TopScores(ctx context.Context, limit int) ([]storage.ScoreEntry, error)
}

// Options configures a Server.
type Options struct {
	Addr   string
	Store  Store
	Logger *log.Logger

	Now   func() time.Time
	NewID func() string
}

// Server serves the scores API.
type Server struct {
	http   *http.Server
	store  Store
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

// New builds a server; call Start to listen.
func New(opts Options) *Server {
	s := &Server{
		store:  opts.Store,
		logger: opts.Logger,
		now:    opts.Now,
		newID:  opts.NewID,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests, cors)

	r.HandleFunc("/api/scores", s.handleCreateScore).Methods(http.MethodPost)
	r.HandleFunc("/api/scores", s.handleListScores).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.PathPrefix("/api/").Methods(http.MethodOptions).HandlerFunc(handlePreflight)

	r.NotFoundHandler = s.logRequests(cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})))
	r.MethodNotAllowedHandler = s.logRequests(cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})))
	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start listens and serves until Stop is called.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve serves on ln until Stop is called.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("scores API listening", "addr", ln.Addr().String())
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("scores API closed")
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

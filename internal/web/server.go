package web

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/ezBadminton/kiva/core"
	"github.com/ezBadminton/kiva/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

type Options struct {
	// Default minimum group size of new tournaments
	MinGroupSize int
	// Tournament creations per second and burst size
	CreateRate  float64
	CreateBurst int
	Logger      *slog.Logger
}

type Server struct {
	store     store.Store
	templates *Templates
	opts      Options
	logger    *slog.Logger
	limiter   *rate.Limiter
	locks     *tournamentLocks
}

func NewServer(store store.Store, templates *Templates, opts Options) *Server {
	if opts.MinGroupSize < 1 {
		opts.MinGroupSize = core.DefaultMinGroupSize
	}
	if opts.CreateRate <= 0 {
		opts.CreateRate = 1
	}
	if opts.CreateBurst < 1 {
		opts.CreateBurst = 5
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		store:     store,
		templates: templates,
		opts:      opts,
		logger:    logger,
		limiter:   rate.NewLimiter(rate.Limit(opts.CreateRate), opts.CreateBurst),
		locks:     newTournamentLocks(),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/tournaments/new", http.StatusSeeOther)
	})
	r.Get("/tournaments", s.handleList)
	r.Get("/tournaments/new", s.handleNew)
	r.With(rateLimit(s.limiter)).Post("/tournaments", s.handleCreate)
	r.Get("/tournaments/{tournamentID}", s.handleGroups)
	r.Get("/tournaments/{tournamentID}/schedule", s.handleSchedule)
	r.Post("/tournaments/{tournamentID}/draw", s.handleDraw)
	r.Get("/api/tournaments/{tournamentID}", s.handleJSON)

	return r
}

// One lock per tournament. Draws take the write lock,
// the views take the read lock.
type tournamentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func newTournamentLocks() *tournamentLocks {
	return &tournamentLocks{locks: make(map[string]*sync.RWMutex)}
}

func (l *tournamentLocks) get(id string) *sync.RWMutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.RWMutex{}
		l.locks[id] = lock
	}
	return lock
}

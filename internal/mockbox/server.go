package mockbox

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultPageSize = 20

// maxPageSize caps pageSize the way the real API does, so a runaway
// client cannot request the whole inventory in one page.
const maxPageSize = 100

// Options configures a mock server.
type Options struct {
	// CFClientID/CFClientSecret, when both set, make the server demand
	// the matching Cloudflare Access header pair on API routes.
	CFClientID     string
	CFClientSecret string
	// SeedData overrides the embedded fixture. Nil means the default
	// seed.
	SeedData []byte
}

// Server is the mock Homebox API. It implements http.Handler.
type Server struct {
	store    *Store
	logger   *zap.Logger
	metrics  *Metrics
	injector *Injector
	router   *chi.Mux
}

// NewServer builds a seeded, routed server.
func NewServer(logger *zap.Logger, opts Options) (*Server, error) {
	store := NewStore()

	seed := opts.SeedData
	if seed == nil {
		seed = DefaultSeed()
	}
	if err := store.LoadSeed(seed); err != nil {
		return nil, fmt.Errorf("seeding store: %w", err)
	}

	s := &Server{
		store:    store,
		logger:   logger,
		metrics:  NewMetrics(),
		injector: NewInjector(),
	}
	s.routes(opts)

	items, locations := store.Counts()
	logger.Info("mock inventory seeded",
		zap.Int("items", items),
		zap.Int("locations", locations),
		zap.Bool("cf_access_enforced", opts.CFClientID != "" && opts.CFClientSecret != ""),
	)

	return s, nil
}

func (s *Server) routes(opts Options) {
	r := chi.NewRouter()

	// Health, metrics, and admin sit outside the API middleware so
	// error injection and access enforcement never block them.
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.metrics.Handler().ServeHTTP)

	r.Post("/admin/inject-error", s.handleInjectError)
	r.Post("/admin/reset", s.handleInjectionReset)
	r.Get("/admin/status", s.handleAdminStatus)

	r.Group(func(r chi.Router) {
		r.Use(RequestID)
		r.Use(RequestLogger(s.logger))
		r.Use(s.metrics.Middleware())
		r.Use(s.injector.Middleware())
		if opts.CFClientID != "" && opts.CFClientSecret != "" {
			r.Use(CFAccess(opts.CFClientID, opts.CFClientSecret))
		}

		r.Get("/api/v1/items", s.handleListItems)
		r.Get("/api/v1/items/{id}", s.handleGetItem)
		r.Get("/api/v1/locations", s.handleListLocations)
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

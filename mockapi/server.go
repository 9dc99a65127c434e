// Package mockapi is a development stand-in for the hosted SoleCraft
// backend. It implements the REST surface the SDK consumes, issues real
// HS256-signed tokens and keeps everything in memory, so the full session
// lifecycle can be exercised locally and in integration tests.
package mockapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/solecraft/client-go/api"
	"github.com/solecraft/client-go/users"
)

const defaultTokenTTL = 24 * time.Hour

type account struct {
	ID           string
	Profile      users.Profile
	PasswordHash string
}

// Server holds the in-memory state and routing for the mock backend.
type Server struct {
	router     *mux.Router
	signingKey []byte
	tokenTTL   time.Duration
	nowTime    func() time.Time
	log        zerolog.Logger
	requests   *prometheus.CounterVec

	lock         sync.RWMutex
	accounts     map[string]*account // keyed by email
	products     []api.Product
	services     []api.Service
	cobblers     []api.Cobbler
	carts        map[string][]api.CartItem // keyed by user ID
	wishlists    map[string]map[string]bool
	orders       int
	appointments []api.Appointment
}

type Option func(*Server)

func WithSigningKey(key []byte) Option {
	return func(s *Server) {
		s.signingKey = key
	}
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.tokenTTL = ttl
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Server) {
		s.nowTime = nowFunc
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func New(options ...Option) *Server {
	s := &Server{
		signingKey: []byte("solecraft-dev-secret"),
		tokenTTL:   defaultTokenTTL,
		nowTime:    time.Now,
		log:        zerolog.Nop(),
		accounts:   make(map[string]*account),
		carts:      make(map[string][]api.CartItem),
		wishlists:  make(map[string]map[string]bool),
	}
	for _, opt := range options {
		opt(s)
	}
	s.seed()
	s.routes()
	return s
}

// Handler returns the fully-wired HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	registry := prometheus.NewRegistry()
	s.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solecraft",
		Subsystem: "mockapi",
		Name:      "requests_total",
		Help:      "Handled requests by method and path.",
	}, []string{"method", "path"})
	registry.MustRegister(s.requests)

	r := mux.NewRouter()
	r.Use(s.loggingMiddleware, s.recoverMiddleware)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Auth
	r.HandleFunc(api.RouteAuthLogin, s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc(api.RouteAuthRegister, s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc(api.RouteAuthVerify, s.requireAuth(s.handleVerify)).Methods(http.MethodPost)
	r.HandleFunc(api.RouteAuthForgotPassword, s.handleForgotPassword).Methods(http.MethodPost)
	r.HandleFunc(api.RouteAuthProfile, s.requireAuth(s.handleProfile)).Methods(http.MethodGet)

	// Catalog
	r.HandleFunc(api.RouteServices, s.handleServices).Methods(http.MethodGet)
	r.HandleFunc(api.RouteServices+"/{id}/book", s.requireAuth(s.handleBookService)).Methods(http.MethodPost)
	r.HandleFunc(api.RouteProducts, s.handleProducts).Methods(http.MethodGet)
	r.HandleFunc(api.RouteProductBrands, s.handleBrands).Methods(http.MethodGet)
	r.HandleFunc(api.RouteProductCategories, s.handleCategories).Methods(http.MethodGet)
	r.HandleFunc(api.RouteShopStats, s.handleStats).Methods(http.MethodGet)

	// Cobblers
	r.HandleFunc(api.RouteCobblers, s.handleCobblers).Methods(http.MethodGet)
	r.HandleFunc(api.RouteCobblers+"/{id}/book", s.handleBookCobbler).Methods(http.MethodPost)

	// Cart & wishlist
	r.HandleFunc(api.RouteCart, s.requireAuth(s.handleCart)).Methods(http.MethodGet)
	r.HandleFunc(api.RouteCartAdd, s.requireAuth(s.handleCartAdd)).Methods(http.MethodPost)
	r.HandleFunc(api.RouteCartUpdate+"/{id}", s.requireAuth(s.handleCartUpdate)).Methods(http.MethodPut)
	r.HandleFunc(api.RouteCartRemove+"/{id}", s.requireAuth(s.handleCartRemove)).Methods(http.MethodDelete)
	r.HandleFunc(api.RouteWishlist, s.requireAuth(s.handleWishlist)).Methods(http.MethodGet)
	r.HandleFunc(api.RouteWishlist+"/{id}", s.requireAuth(s.handleWishlistAdd)).Methods(http.MethodPost)
	r.HandleFunc(api.RouteWishlist+"/{id}", s.requireAuth(s.handleWishlistRemove)).Methods(http.MethodDelete)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.WithLabelValues(r.Method, r.URL.Path).Inc()
		s.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panicked")
				writeMessage(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

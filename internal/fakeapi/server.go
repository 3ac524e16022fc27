// Package fakeapi is an in-memory implementation of the backend HTTP contract
// exercised by timcheck: registration, login, TIM Planos creation and the
// user's transaction list. Fault options make it misbehave in the specific
// ways the checks are meant to catch.
package fakeapi

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bobmcallan/timcheck/internal/common"
)

// Faults selects deliberate contract violations.
type Faults struct {
	SkipValidation     map[string]bool        // accept payloads missing these fields
	DropResponseFields map[string]bool        // omit these fields from the create response
	StoredOverrides    map[string]interface{} // persist these values instead of the submitted ones
	OpenCreate         bool                   // accept creates without a bearer token
}

// Server serves the fake backend.
type Server struct {
	store      *store
	secret     []byte
	expiry     time.Duration
	bcryptCost int
	faults     Faults
	logger     *common.Logger
	now        func() time.Time
	handler    http.Handler
}

// Option configures the Server
type Option func(*Server)

// WithSecret sets the HMAC secret used to sign access tokens
func WithSecret(secret string) Option {
	return func(s *Server) {
		s.secret = []byte(secret)
	}
}

// WithTokenExpiry sets the access token lifetime
func WithTokenExpiry(d time.Duration) Option {
	return func(s *Server) {
		s.expiry = d
	}
}

// WithBCryptCost sets the password hashing cost
func WithBCryptCost(cost int) Option {
	return func(s *Server) {
		s.bcryptCost = cost
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock overrides the clock used for token and record timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithoutValidation makes the backend accept payloads missing the given fields
func WithoutValidation(fields ...string) Option {
	return func(s *Server) {
		for _, f := range fields {
			s.faults.SkipValidation[f] = true
		}
	}
}

// WithDroppedResponseFields omits the given fields from the create response
func WithDroppedResponseFields(fields ...string) Option {
	return func(s *Server) {
		for _, f := range fields {
			s.faults.DropResponseFields[f] = true
		}
	}
}

// WithStoredOverride persists value for field instead of the submitted one
func WithStoredOverride(field string, value interface{}) Option {
	return func(s *Server) {
		s.faults.StoredOverrides[field] = value
	}
}

// WithOpenCreate accepts TIM Planos creates without a bearer token
func WithOpenCreate() Option {
	return func(s *Server) {
		s.faults.OpenCreate = true
	}
}

// NewServer creates a fake backend
func NewServer(opts ...Option) *Server {
	s := &Server{
		store:      newStore(),
		secret:     []byte("fakeapi-dev-secret"),
		expiry:     24 * time.Hour,
		bcryptCost: bcrypt.DefaultCost,
		faults: Faults{
			SkipValidation:     make(map[string]bool),
			DropResponseFields: make(map[string]bool),
			StoredOverrides:    make(map[string]interface{}),
		},
		logger: common.NewSilentLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.handler = recoveryMiddleware(s.logger)(loggingMiddleware(s.logger)(mux))

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Users returns the number of registered accounts.
func (s *Server) Users() int {
	return s.store.userCount()
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/register", s.handleRegister)
	mux.HandleFunc("/api/auth/login", s.handleLogin)
	mux.HandleFunc("/api/transactions/tim-planos", s.handleCreateTimPlanos)
	mux.HandleFunc("/api/user/transactions", s.handleListTransactions)
	mux.HandleFunc("/api/health", s.handleHealth)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

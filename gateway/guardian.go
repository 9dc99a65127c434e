package gateway

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// LoginDestination is where the guardian sends the user when the backend
// invalidates the session.
const LoginDestination = "/login?error=session_expired"

// AuthPages are the locations on which a 401 must not trigger a redirect;
// the user is already on their way to (re)authenticate.
var AuthPages = []string{"/login", "/register", "/forgot-password"}

// SilentEndpoint marks an API path whose failures are best-effort reads and
// must never escalate to a global logout or redirect. An empty Methods list
// matches every method.
type SilentEndpoint struct {
	PathFragment string
	Methods      []string
}

func (e SilentEndpoint) Matches(method, path string) bool {
	if !strings.Contains(path, e.PathFragment) {
		return false
	}
	if len(e.Methods) == 0 {
		return true
	}
	for _, m := range e.Methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

// DefaultSilentEndpoints covers profile verification, aggregate statistics,
// filter metadata, the wishlist and cart reads. Cart mutations stay loud:
// a 401 there should force a re-login.
func DefaultSilentEndpoints() []SilentEndpoint {
	return []SilentEndpoint{
		{PathFragment: "/api/auth/verify"},
		{PathFragment: "/api/auth/profile"},
		{PathFragment: "/api/shop/stats"},
		{PathFragment: "/api/products/filters"},
		{PathFragment: "/api/product-wishlist"},
		{PathFragment: "/api/cart", Methods: []string{http.MethodGet}},
	}
}

// Credentials is the slice of the credential store the guardian needs.
type Credentials interface {
	TokenProvider
	Clear()
}

// Guardian is the response pipeline stage that reacts to session
// invalidation. On a 401 for a non-silent endpoint it clears the credential
// store and triggers a single redirect to the login destination; everything
// else passes through untouched. The redirecting flag is the only
// cross-request coordination: it is flipped with a compare-and-swap so a
// burst of concurrent 401s produces exactly one redirect.
type Guardian struct {
	creds       Credentials
	nav         Navigator
	silent      []SilentEndpoint
	authPages   []string
	destination string
	metrics     *Metrics
	log         zerolog.Logger

	redirecting atomic.Bool
}

type GuardianOption func(*Guardian)

func WithSilentEndpoints(endpoints []SilentEndpoint) GuardianOption {
	return func(g *Guardian) {
		g.silent = endpoints
	}
}

func WithAuthPages(pages []string) GuardianOption {
	return func(g *Guardian) {
		g.authPages = pages
	}
}

func WithLoginDestination(destination string) GuardianOption {
	return func(g *Guardian) {
		g.destination = destination
	}
}

func WithGuardianMetrics(metrics *Metrics) GuardianOption {
	return func(g *Guardian) {
		g.metrics = metrics
	}
}

func WithGuardianLogger(log zerolog.Logger) GuardianOption {
	return func(g *Guardian) {
		g.log = log
	}
}

func NewGuardian(creds Credentials, nav Navigator, options ...GuardianOption) (*Guardian, error) {
	if creds == nil {
		return nil, errors.New("[NewGuardian] credentials are required")
	}
	if nav == nil {
		return nil, errors.New("[NewGuardian] navigator is required")
	}

	guardian := &Guardian{
		creds:       creds,
		nav:         nav,
		silent:      DefaultSilentEndpoints(),
		authPages:   AuthPages,
		destination: LoginDestination,
		log:         zerolog.Nop(),
	}
	for _, opt := range options {
		opt(guardian)
	}
	return guardian, nil
}

// Hook returns the guardian as a response pipeline stage.
func (g *Guardian) Hook() ResponseHook {
	return func(req *http.Request, resp *http.Response, err error) (*http.Response, error) {
		if err == nil {
			return resp, nil
		}

		silent := g.isSilent(req)

		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			// Transport-level failure. Silent endpoints are best-effort
			// reads, so only loud endpoints get reported.
			if !silent {
				g.log.Warn().Err(err).Str("path", req.URL.Path).Msg("request failed")
			}
			return resp, err
		}

		if statusErr.Code != http.StatusUnauthorized || silent {
			return resp, err
		}

		// Exactly one in-flight 401 wins the flag; the rest propagate
		// their error without duplicating the cleanup.
		if !g.redirecting.CompareAndSwap(false, true) {
			return resp, err
		}

		g.creds.Clear()
		if !g.onAuthPage() {
			g.log.Info().Str("path", req.URL.Path).Msg("session invalidated, redirecting to login")
			if g.metrics != nil {
				g.metrics.SessionExpiries.Inc()
			}
			g.nav.Navigate(g.destination)
		}
		// Reset once the navigation is initiated, not completed.
		g.redirecting.Store(false)

		return resp, err
	}
}

func (g *Guardian) isSilent(req *http.Request) bool {
	for _, endpoint := range g.silent {
		if endpoint.Matches(req.Method, req.URL.Path) {
			return true
		}
	}
	return false
}

func (g *Guardian) onAuthPage() bool {
	current := g.nav.CurrentPath()
	if current == "" {
		return false
	}
	for _, page := range g.authPages {
		if strings.Contains(current, page) {
			return true
		}
	}
	return false
}

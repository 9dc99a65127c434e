// Package session exposes the small authentication surface the rest of the
// application calls: login, logout, authentication checks and backend token
// verification, composed over the credential store and token inspector.
package session

import (
	"context"
	"errors"
	"net/http"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/solecraft/client-go/credentials"
	"github.com/solecraft/client-go/gateway"
	errs "github.com/solecraft/client-go/internal/errors"
	"github.com/solecraft/client-go/token"
	"github.com/solecraft/client-go/users"
)

// Verifier asks the backend whether the current credential is still valid.
type Verifier interface {
	Verify(ctx context.Context) (bool, error)
}

// Manager is the session facade. It is constructed once at process start
// and passed to whoever needs authentication state; it holds no ambient
// globals beyond what the injected store persists.
type Manager struct {
	store     *credentials.Store
	inspector *token.Inspector
	nav       gateway.Navigator
	verifier  Verifier
	loginPath string
	log       zerolog.Logger
}

type ManagerOption func(*Manager)

// WithVerifier wires the backend verification call used by VerifyToken.
func WithVerifier(verifier Verifier) ManagerOption {
	return func(m *Manager) {
		m.verifier = verifier
	}
}

func WithLoginPath(path string) ManagerOption {
	return func(m *Manager) {
		m.loginPath = path
	}
}

func WithLogger(log zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

func NewManager(store *credentials.Store, inspector *token.Inspector, nav gateway.Navigator, options ...ManagerOption) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[NewManager] credential store is required")
	}
	if inspector == nil {
		return nil, errors.New("[NewManager] token inspector is required")
	}
	if nav == nil {
		return nil, errors.New("[NewManager] navigator is required")
	}

	manager := &Manager{
		store:     store,
		inspector: inspector,
		nav:       nav,
		loginPath: "/login",
		log:       zerolog.Nop(),
	}
	for _, opt := range options {
		opt(manager)
	}
	return manager, nil
}

// IsAuthenticated reports whether a usable credential is stored. A token the
// inspector can prove expired is cleared as a side effect. A token that does
// not decode still counts as authenticated: opaque tokens are valid in this
// model and only the backend can reject them.
func (m *Manager) IsAuthenticated() bool {
	tok := m.store.Token()
	if tok == "" {
		return false
	}
	claims := m.inspector.Decode(tok)
	if claims != nil && m.inspector.IsExpired(claims) {
		m.log.Info().Msg("stored token expired, clearing credentials")
		m.store.Clear()
		return false
	}
	return true
}

// CurrentUser returns the decoded token claims, not the cached profile.
// Nil when no token is stored or it does not decode.
func (m *Manager) CurrentUser() jwtlib.MapClaims {
	tok := m.store.Token()
	if tok == "" {
		return nil
	}
	return m.inspector.Decode(tok)
}

// Profile returns the cached user profile, nil when absent or corrupt.
func (m *Manager) Profile() *users.Profile {
	return m.store.User()
}

// Login stores the credential pair. Invalid tokens are rejected without
// mutating state.
func (m *Manager) Login(tok string, profile *users.Profile) bool {
	return m.store.Save(tok, profile)
}

// Logout clears the credential store and sends the user to the login
// destination. Unconditional: logging out with nothing stored is a no-op
// clear followed by the same navigation.
func (m *Manager) Logout() {
	m.store.Clear()
	m.nav.Navigate(m.loginPath)
}

// VerifyToken asks the backend to confirm the current credential. Without a
// locally valid credential it returns false with no network call. A 401 from
// the backend forces a logout; any other failure just reports false.
func (m *Manager) VerifyToken(ctx context.Context) bool {
	if !m.IsAuthenticated() {
		return false
	}
	if m.verifier == nil {
		m.log.Warn().Msg("no verifier configured")
		return false
	}
	ok, err := m.verifier.Verify(ctx)
	if err != nil {
		if gateway.IsStatus(err, http.StatusUnauthorized) {
			m.Logout()
		} else {
			m.log.Warn().Err(err).Msg("token verification failed")
		}
		return false
	}
	return ok
}

var _ oauth2.TokenSource = (*Manager)(nil)

// Token implements oauth2.TokenSource over the stored credential, for
// callers that integrate with oauth2-aware libraries.
func (m *Manager) Token() (*oauth2.Token, error) {
	tok := m.store.Token()
	if tok == "" {
		return nil, errs.ErrNoCredential
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

package session_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/solecraft/client-go/credentials"
	"github.com/solecraft/client-go/gateway"
	errs "github.com/solecraft/client-go/internal/errors"
	"github.com/solecraft/client-go/session"
	"github.com/solecraft/client-go/token"
	"github.com/solecraft/client-go/users"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeVerifier struct {
	ok    bool
	err   error
	calls int
}

func (v *fakeVerifier) Verify(context.Context) (bool, error) {
	v.calls++
	return v.ok, v.err
}

type managerFixture struct {
	store   *credentials.Store
	nav     *gateway.MemNavigator
	manager *session.Manager
}

func setupManager(t *testing.T, options ...session.ManagerOption) *managerFixture {
	t.Helper()

	store := credentials.NewStore(credentials.NewMemStorage())
	inspector := token.NewInspector(token.WithNowTime(func() time.Time { return testNow }))
	nav := gateway.NewMemNavigator("/shop")

	manager, err := session.NewManager(store, inspector, nav, options...)
	require.NoError(t, err)
	return &managerFixture{store: store, nav: nav, manager: manager}
}

func mintToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestNewManagerRequiresDependencies(t *testing.T) {
	_, err := session.NewManager(nil, token.NewInspector(), gateway.NewMemNavigator("/"))
	require.Error(t, err)

	_, err = session.NewManager(credentials.NewStore(credentials.NewMemStorage()), nil, gateway.NewMemNavigator("/"))
	require.Error(t, err)

	_, err = session.NewManager(credentials.NewStore(credentials.NewMemStorage()), token.NewInspector(), nil)
	require.Error(t, err)
}

func TestIsAuthenticatedWithoutCredential(t *testing.T) {
	f := setupManager(t)
	require.False(t, f.manager.IsAuthenticated())
}

func TestIsAuthenticatedWithLiveToken(t *testing.T) {
	f := setupManager(t)
	tok := mintToken(t, jwtlib.MapClaims{"sub": "user-1", "exp": testNow.Add(time.Hour).Unix()})
	require.True(t, f.manager.Login(tok, nil))

	require.True(t, f.manager.IsAuthenticated())
}

func TestIsAuthenticatedClearsExpiredToken(t *testing.T) {
	f := setupManager(t)
	tok := mintToken(t, jwtlib.MapClaims{"sub": "user-1", "exp": testNow.Add(-time.Minute).Unix()})
	require.True(t, f.manager.Login(tok, nil))

	require.False(t, f.manager.IsAuthenticated())
	require.Empty(t, f.store.Token())
}

func TestIsAuthenticatedWithOpaqueToken(t *testing.T) {
	// A token that does not decode is still a credential; only the backend
	// can reject it.
	f := setupManager(t)
	require.True(t, f.manager.Login("opaque-session-id", nil))

	require.True(t, f.manager.IsAuthenticated())
	require.Nil(t, f.manager.CurrentUser())
}

func TestCurrentUserReturnsClaims(t *testing.T) {
	f := setupManager(t)
	tok := mintToken(t, jwtlib.MapClaims{"sub": "user-1", "email": "ada@example.com"})
	require.True(t, f.manager.Login(tok, nil))

	claims := f.manager.CurrentUser()
	require.NotNil(t, claims)
	require.Equal(t, "user-1", claims["sub"])
	require.Equal(t, "ada@example.com", claims["email"])
}

func TestLoginStoresProfile(t *testing.T) {
	f := setupManager(t)
	profile := &users.Profile{Name: "Ada Lovelace", Email: "ada@example.com", Role: "customer"}

	require.True(t, f.manager.Login("header.payload.sig", profile))
	require.Equal(t, profile, f.manager.Profile())
}

func TestLoginRejectsSentinelToken(t *testing.T) {
	f := setupManager(t)

	require.False(t, f.manager.Login("undefined", nil))
	require.False(t, f.manager.IsAuthenticated())
}

func TestLogoutClearsAndNavigates(t *testing.T) {
	f := setupManager(t)
	require.True(t, f.manager.Login("header.payload.sig", nil))

	f.manager.Logout()

	require.Empty(t, f.store.Token())
	require.Equal(t, []string{"/login"}, f.nav.Visited())
}

func TestLogoutWithoutCredentialStillNavigates(t *testing.T) {
	f := setupManager(t, session.WithLoginPath("/signin"))

	f.manager.Logout()

	require.Equal(t, []string{"/signin"}, f.nav.Visited())
}

func TestVerifyTokenWithoutCredentialSkipsBackend(t *testing.T) {
	verifier := &fakeVerifier{ok: true}
	f := setupManager(t, session.WithVerifier(verifier))

	require.False(t, f.manager.VerifyToken(context.Background()))
	require.Zero(t, verifier.calls)
}

func TestVerifyTokenWithoutVerifier(t *testing.T) {
	f := setupManager(t)
	require.True(t, f.manager.Login("header.payload.sig", nil))

	require.False(t, f.manager.VerifyToken(context.Background()))
}

func TestVerifyTokenAccepted(t *testing.T) {
	verifier := &fakeVerifier{ok: true}
	f := setupManager(t, session.WithVerifier(verifier))
	require.True(t, f.manager.Login("header.payload.sig", nil))

	require.True(t, f.manager.VerifyToken(context.Background()))
	require.Equal(t, 1, verifier.calls)
}

func TestVerifyTokenUnauthorizedForcesLogout(t *testing.T) {
	verifier := &fakeVerifier{err: &gateway.StatusError{Code: http.StatusUnauthorized, Status: "401 Unauthorized"}}
	f := setupManager(t, session.WithVerifier(verifier))
	require.True(t, f.manager.Login("header.payload.sig", nil))

	require.False(t, f.manager.VerifyToken(context.Background()))
	require.Empty(t, f.store.Token())
	require.Equal(t, []string{"/login"}, f.nav.Visited())
}

func TestVerifyTokenTransientFailureKeepsSession(t *testing.T) {
	verifier := &fakeVerifier{err: &gateway.StatusError{Code: http.StatusInternalServerError, Status: "500 Internal Server Error"}}
	f := setupManager(t, session.WithVerifier(verifier))
	require.True(t, f.manager.Login("header.payload.sig", nil))

	require.False(t, f.manager.VerifyToken(context.Background()))
	require.NotEmpty(t, f.store.Token())
	require.Empty(t, f.nav.Visited())
}

func TestTokenSource(t *testing.T) {
	f := setupManager(t)

	_, err := f.manager.Token()
	require.ErrorIs(t, err, errs.ErrNoCredential)

	require.True(t, f.manager.Login("header.payload.sig", nil))
	tok, err := f.manager.Token()
	require.NoError(t, err)
	require.Equal(t, "header.payload.sig", tok.AccessToken)
	require.Equal(t, "Bearer", tok.TokenType)
}

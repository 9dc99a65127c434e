package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solecraft/client-go/api"
	"github.com/solecraft/client-go/credentials"
	"github.com/solecraft/client-go/gateway"
	"github.com/solecraft/client-go/mockapi"
	"github.com/solecraft/client-go/session"
	"github.com/solecraft/client-go/token"
	"github.com/solecraft/client-go/users"
)

const (
	testEmail    = "ada@example.com"
	testPassword = "cobblers-delight"
)

type apiFixture struct {
	client *api.Client
	store  *credentials.Store
	nav    *gateway.MemNavigator
}

// setupAPI wires the full client pipeline against an in-process mock
// backend: credential decoration, request IDs and the 401 guardian.
func setupAPI(t *testing.T, options ...mockapi.Option) *apiFixture {
	t.Helper()

	backend := mockapi.New(options...)
	require.NoError(t, backend.RegisterAccount(users.Profile{
		Name:  "Ada Lovelace",
		Email: testEmail,
		Phone: "0123456789",
		Role:  string(users.RoleCustomer),
	}, testPassword))

	server := httptest.NewServer(backend.Handler())
	t.Cleanup(server.Close)

	store := credentials.NewStore(credentials.NewMemStorage())
	nav := gateway.NewMemNavigator("/shop")
	guardian, err := gateway.NewGuardian(store, nav)
	require.NoError(t, err)

	gw := gateway.NewClient(server.URL,
		gateway.WithRequestHooks(gateway.BearerAuth(store), gateway.RequestID()),
		gateway.WithResponseHooks(guardian.Hook()),
	)
	return &apiFixture{client: api.New(gw), store: store, nav: nav}
}

// login authenticates the seeded account and stores the credential, the way
// the session manager would.
func (f *apiFixture) login(t *testing.T) {
	t.Helper()
	resp, err := f.client.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	require.True(t, f.store.Save(resp.Token, resp.User))
}

func TestLoginReturnsTokenAndProfile(t *testing.T) {
	f := setupAPI(t)

	resp, err := f.client.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	require.Equal(t, testEmail, resp.User.Email)

	claims := token.NewInspector().Decode(resp.Token)
	require.NotNil(t, claims)
	require.Equal(t, testEmail, claims["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	f := setupAPI(t)

	_, err := f.client.Login(context.Background(), testEmail, "not-the-password")
	require.True(t, gateway.IsStatus(err, http.StatusUnauthorized))
	require.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginRejectsBadInputLocally(t *testing.T) {
	f := setupAPI(t)

	_, err := f.client.Login(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	_, err = f.client.Login(context.Background(), testEmail, "")
	require.Error(t, err)
}

func TestRegisterLogsInNewUser(t *testing.T) {
	f := setupAPI(t)

	resp, err := f.client.Register(context.Background(), api.RegisterRequest{
		Name:     "Charles Babbage",
		Email:    "charles@example.com",
		Phone:    "07987654321",
		Password: "difference",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.True(t, f.store.Save(resp.Token, resp.User))

	ok, err := f.client.Verify(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := setupAPI(t)

	_, err := f.client.Register(context.Background(), api.RegisterRequest{
		Name:     "Ada Again",
		Email:    testEmail,
		Phone:    "0123456789",
		Password: "password",
	})
	require.True(t, gateway.IsStatus(err, http.StatusConflict))
}

func TestVerifyWithoutCredential(t *testing.T) {
	f := setupAPI(t)

	_, err := f.client.Verify(context.Background())
	require.True(t, gateway.IsStatus(err, http.StatusUnauthorized))
	// Verification is on the silent list, so the failure never escalates.
	require.Empty(t, f.nav.Visited())
}

func TestExpiredTokenClearsSessionAndRedirects(t *testing.T) {
	f := setupAPI(t, mockapi.WithTokenTTL(-time.Minute))
	f.login(t)

	// Cart reads are silent: the 401 surfaces but nothing escalates.
	_, err := f.client.Cart(context.Background())
	require.True(t, gateway.IsStatus(err, http.StatusUnauthorized))
	require.NotEmpty(t, f.store.Token())
	require.Empty(t, f.nav.Visited())

	// A loud endpoint clears the session and redirects.
	err = f.client.AddToCart(context.Background(), "prod-001", 1)
	require.True(t, gateway.IsStatus(err, http.StatusUnauthorized))
	require.Empty(t, f.store.Token())
	require.Equal(t, []string{gateway.LoginDestination}, f.nav.Visited())
}

func TestProfileFetch(t *testing.T) {
	f := setupAPI(t)
	f.login(t)

	profile, err := f.client.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", profile.Name)
	require.Equal(t, testEmail, profile.Email)
}

func TestForgotPassword(t *testing.T) {
	f := setupAPI(t)

	resp, err := f.client.ForgotPassword(context.Background(), testEmail)
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.ResetToken)

	resp, err = f.client.ForgotPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Empty(t, resp.ResetToken)
}

func TestCartLifecycle(t *testing.T) {
	f := setupAPI(t)
	f.login(t)
	ctx := context.Background()

	require.NoError(t, f.client.AddToCart(ctx, "prod-001", 2))
	items, err := f.client.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)

	// Adding the same product again merges into the existing line.
	require.NoError(t, f.client.AddToCart(ctx, "prod-001", 1))
	items, err = f.client.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)

	require.NoError(t, f.client.UpdateCartItem(ctx, items[0].ID, 5))
	items, err = f.client.Cart(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, items[0].Quantity)

	require.NoError(t, f.client.RemoveFromCart(ctx, items[0].ID))
	items, err = f.client.Cart(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestAddToCartOutOfStock(t *testing.T) {
	f := setupAPI(t)
	f.login(t)

	err := f.client.AddToCart(context.Background(), "prod-004", 1)
	require.True(t, gateway.IsStatus(err, http.StatusConflict))
}

func TestWishlistLifecycle(t *testing.T) {
	f := setupAPI(t)
	f.login(t)
	ctx := context.Background()

	require.NoError(t, f.client.AddToWishlist(ctx, "prod-002"))
	require.NoError(t, f.client.AddToWishlist(ctx, "prod-005"))

	ids, err := f.client.Wishlist(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"prod-002", "prod-005"}, ids)

	require.NoError(t, f.client.RemoveFromWishlist(ctx, "prod-002"))
	ids, err = f.client.Wishlist(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"prod-005"}, ids)
}

func TestProductsSearchAndPaging(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	resp, err := f.client.Products(ctx, api.ProductQuery{Search: "brush"})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	require.Equal(t, "Suede Brush", resp.Products[0].Name)

	resp, err = f.client.Products(ctx, api.ProductQuery{Brand: "ComfortStep"})
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)

	resp, err = f.client.Products(ctx, api.ProductQuery{SortBy: "price-low", Limit: 2, Page: 1})
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)
	require.Equal(t, "Waxed Laces 120cm", resp.Products[0].Name)
	require.Equal(t, 3, resp.Pagination.TotalPages)
	require.Equal(t, 6, resp.Pagination.TotalItems)
}

func TestFiltersAndStats(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	brands, err := f.client.Brands(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"ComfortStep", "DryFeet", "SoleCraft"}, brands)

	categories, err := f.client.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"accessories", "care"}, categories)

	stats, err := f.client.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 6, stats.TotalProducts)
	require.Equal(t, 5, stats.InStockProducts)
}

func TestServiceBooking(t *testing.T) {
	f := setupAPI(t)
	f.login(t)
	ctx := context.Background()

	services, err := f.client.Services(ctx)
	require.NoError(t, err)
	require.Len(t, services, 4)

	appointment, err := f.client.BookService(ctx, services[0].ID, api.AppointmentRequest{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   testEmail,
		CustomerPhone:   "0123456789",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:00",
		ServiceType:     services[0].Name,
	})
	require.NoError(t, err)
	require.NotEmpty(t, appointment.AppointmentID)
	require.Equal(t, services[0].ID, appointment.ServiceID)
}

func TestBookServiceRejectsBadPhoneLocally(t *testing.T) {
	f := setupAPI(t)

	_, err := f.client.BookService(context.Background(), "svc-001", api.AppointmentRequest{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   testEmail,
		CustomerPhone:   "12345",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:00",
	})
	require.ErrorContains(t, err, "exactly 10 digits")
}

func TestCobblerSearch(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	// Central London, covers all seeded shops at the default radius.
	all, err := f.client.Cobblers(ctx, api.CobblerQuery{Lat: 51.5072, Lng: -0.1276})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, c := range all {
		require.NotEmpty(t, c.Distance)
	}

	verified, err := f.client.Cobblers(ctx, api.CobblerQuery{Lat: 51.5072, Lng: -0.1276, VerifiedOnly: true})
	require.NoError(t, err)
	require.NotEmpty(t, verified)
	for _, c := range verified {
		require.True(t, c.Verified)
	}

	soles, err := f.client.Cobblers(ctx, api.CobblerQuery{
		Lat: 51.5072, Lng: -0.1276,
		Services: []string{"Sole Replacement"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, soles)
	for _, c := range soles {
		require.Contains(t, c.Services, "Sole Replacement")
	}
}

func TestSessionManagerLifecycle(t *testing.T) {
	f := setupAPI(t)

	manager, err := session.NewManager(f.store, token.NewInspector(), f.nav,
		session.WithVerifier(f.client))
	require.NoError(t, err)
	require.False(t, manager.IsAuthenticated())

	resp, err := f.client.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	require.True(t, manager.Login(resp.Token, resp.User))

	require.True(t, manager.IsAuthenticated())
	require.True(t, manager.VerifyToken(context.Background()))
	require.Equal(t, "Ada Lovelace", manager.Profile().Name)

	manager.Logout()
	require.False(t, manager.IsAuthenticated())
	require.Equal(t, []string{"/login"}, f.nav.Visited())
}

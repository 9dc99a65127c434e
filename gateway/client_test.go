package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solecraft/client-go/credentials"
	"github.com/solecraft/client-go/gateway"
)

const testBearer = "aaa.bbb.ccc"

func authedStore(t *testing.T) *credentials.Store {
	t.Helper()
	store := credentials.NewStore(credentials.NewMemStorage())
	require.True(t, store.Save(testBearer, nil))
	return store
}

func TestBearerAuthInjectsHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL,
		gateway.WithRequestHooks(gateway.BearerAuth(authedStore(t))),
	)
	require.NoError(t, client.Get(context.Background(), "/api/products", nil, nil))
	require.Equal(t, "Bearer "+testBearer, gotAuth)
}

func TestBearerAuthSkipsWithoutToken(t *testing.T) {
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer server.Close()

	store := credentials.NewStore(credentials.NewMemStorage())
	client := gateway.NewClient(server.URL,
		gateway.WithRequestHooks(gateway.BearerAuth(store)),
	)
	require.NoError(t, client.Get(context.Background(), "/api/products", nil, nil))
	require.False(t, sawHeader)
}

func TestRequestIDHeader(t *testing.T) {
	ids := make(map[string]bool)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get("X-Request-ID")] = true
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, gateway.WithRequestHooks(gateway.RequestID()))
	require.NoError(t, client.Get(context.Background(), "/a", nil, nil))
	require.NoError(t, client.Get(context.Background(), "/b", nil, nil))
	require.Len(t, ids, 2)
	require.False(t, ids[""])
}

func TestStatusErrorCarriesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"quantity must be at least 1"}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL)
	err := client.Post(context.Background(), "/api/cart/add", map[string]int{"quantity": 0}, nil)
	require.Error(t, err)

	var statusErr *gateway.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadRequest, statusErr.Code)
	require.Equal(t, "quantity must be at least 1", statusErr.Message)
	require.True(t, gateway.IsStatus(err, http.StatusBadRequest))
	require.False(t, gateway.IsStatus(err, http.StatusUnauthorized))
}

func TestQueryParametersAreEncoded(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL)
	query := map[string][]string{"search": {"boot polish"}, "page": {"2"}}
	require.NoError(t, client.Get(context.Background(), "/api/products", query, nil))
	require.Equal(t, "page=2&search=boot+polish", gotQuery)
}

func TestResponseBodyDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":true,"value":42}`)) //nolint:errcheck
	}))
	defer server.Close()

	var out struct {
		Success bool `json:"success"`
		Value   int  `json:"value"`
	}
	client := gateway.NewClient(server.URL)
	require.NoError(t, client.Get(context.Background(), "/x", nil, &out))
	require.True(t, out.Success)
	require.Equal(t, 42, out.Value)
}

package gateway_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/solecraft/client-go/gateway"
)

func TestMetricsCountOutcomes(t *testing.T) {
	server := unauthorizedServer()
	defer server.Close()

	metrics := gateway.NewMetrics(prometheus.NewRegistry())
	store := authedStore(t)
	nav := gateway.NewMemNavigator("/shop")
	guardian, err := gateway.NewGuardian(store, nav, gateway.WithGuardianMetrics(metrics))
	require.NoError(t, err)

	client := gateway.NewClient(server.URL,
		gateway.WithResponseHooks(metrics.Hook(), guardian.Hook()),
	)

	err = client.Get(context.Background(), "/api/orders", nil, nil)
	require.True(t, gateway.IsStatus(err, http.StatusUnauthorized))

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(http.MethodGet, "4xx")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Unauthorized))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.SessionExpiries))
}

func TestMetricsTransportError(t *testing.T) {
	metrics := gateway.NewMetrics(prometheus.NewRegistry())
	client := gateway.NewClient("http://127.0.0.1:0",
		gateway.WithResponseHooks(metrics.Hook()),
	)

	err := client.Get(context.Background(), "/api/orders", nil, nil)
	require.Error(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(http.MethodGet, "transport_error")))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.Unauthorized))
}

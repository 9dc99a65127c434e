package gateway

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts gateway traffic. Register it once per process.
type Metrics struct {
	Requests        *prometheus.CounterVec
	Unauthorized    prometheus.Counter
	SessionExpiries prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solecraft",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Outbound API requests by method and outcome.",
		}, []string{"method", "outcome"}),
		Unauthorized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "solecraft",
			Subsystem: "gateway",
			Name:      "unauthorized_total",
			Help:      "Responses with HTTP 401.",
		}),
		SessionExpiries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "solecraft",
			Subsystem: "gateway",
			Name:      "session_expiries_total",
			Help:      "Forced logouts triggered by the response guardian.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Unauthorized, m.SessionExpiries)
	}
	return m
}

// Hook returns a response pipeline stage that records every outcome. It
// never alters the response or error flowing through it.
func (m *Metrics) Hook() ResponseHook {
	return func(req *http.Request, resp *http.Response, err error) (*http.Response, error) {
		m.Requests.WithLabelValues(req.Method, outcome(resp, err)).Inc()
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			m.Unauthorized.Inc()
		}
		return resp, err
	}
}

func outcome(resp *http.Response, err error) string {
	if resp == nil {
		if err != nil {
			return "transport_error"
		}
		return "unknown"
	}
	return fmt.Sprintf("%dxx", resp.StatusCode/100)
}

package config

import (
	"os"
	"strings"
	"time"
)

const silentEndpointsVar = "SOLECRAFT_SILENT_ENDPOINTS"

type Gateway struct{}

var _ GatewayConfig = Gateway{}

func (Gateway) GetLoginPath() string {
	return "/login"
}

func (Gateway) GetAuthPages() []string {
	return []string{"/login", "/register", "/forgot-password"}
}

// GetSilentEndpoints returns extra silent path fragments configured via a
// comma-separated env var. An empty slice means the gateway defaults apply.
func (Gateway) GetSilentEndpoints() []string {
	raw := os.Getenv(silentEndpointsVar)
	if raw == "" {
		return nil
	}
	fragments := make([]string, 0)
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fragments = append(fragments, f)
		}
	}
	return fragments
}

func (Gateway) GetRequestTimeout() time.Duration {
	return 15 * time.Second
}

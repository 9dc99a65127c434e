package config

import "time"

type Config interface {
	EnvConfig
	GatewayConfig
}

type EnvConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
	GetCredentialsFile() string
}

type GatewayConfig interface {
	GetLoginPath() string
	GetAuthPages() []string
	GetSilentEndpoints() []string
	GetRequestTimeout() time.Duration
}

type mainConfig struct {
	EnvVars
	Gateway
}

func New() Config {
	return mainConfig{}
}

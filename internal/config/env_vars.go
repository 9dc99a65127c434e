package config

import (
	"os"
	"path/filepath"
)

const (
	appNameVar         = "APP_NAME"
	baseURLVar         = "SOLECRAFT_API_BASE_URL"
	credentialsFileVar = "SOLECRAFT_CREDENTIALS_FILE"

	// productionBaseURL is the hosted SoleCraft backend.
	productionBaseURL = "https://sole-craft-backend.vercel.app"
	// devBaseURL is where a local backend (cmd/mockapi) listens.
	devBaseURL = "http://localhost:5000"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "SoleCraft")
}

// GetBaseURL resolves the API base URL used to qualify all relative paths.
// Resolution order: explicit env override, then the production default,
// unless running with ENV=DEV in which case the local backend is assumed.
func (e EnvVars) GetBaseURL() string {
	if url := os.Getenv(baseURLVar); url != "" {
		return url
	}
	if e.GetEnv() == "DEV" {
		return devBaseURL
	}
	return productionBaseURL
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "PROD"
	}
	return env
}

func (EnvVars) GetCredentialsFile() string {
	if path := os.Getenv(credentialsFileVar); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".solecraft", "credentials.json")
	}
	return filepath.Join(home, ".solecraft", "credentials.json")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

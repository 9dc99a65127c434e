package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig holds CLI settings loaded from ~/.solecraft/config.yaml.
// Every field is optional; unset fields fall back to the env/default layer.
type FileConfig struct {
	BaseURL         string   `yaml:"base_url"`
	CredentialsFile string   `yaml:"credentials_file"`
	SilentEndpoints []string `yaml:"silent_endpoints"`
	RequestTimeout  string   `yaml:"request_timeout"`
}

// DefaultConfigFile returns the conventional config file location.
func DefaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".solecraft", "config.yaml")
	}
	return filepath.Join(home, ".solecraft", "config.yaml")
}

// LoadFile reads a FileConfig from path. A missing file is not an error and
// yields an empty config.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return &fc, nil
}

// fileBacked layers a FileConfig over the env/default configuration.
type fileBacked struct {
	Config
	file *FileConfig
}

// WithFile returns a Config where values set in fc take precedence over base.
func WithFile(base Config, fc *FileConfig) Config {
	if fc == nil {
		return base
	}
	return fileBacked{Config: base, file: fc}
}

func (c fileBacked) GetBaseURL() string {
	// An explicit env override still wins over the file.
	if url := os.Getenv(baseURLVar); url != "" {
		return url
	}
	if c.file.BaseURL != "" {
		return c.file.BaseURL
	}
	return c.Config.GetBaseURL()
}

func (c fileBacked) GetCredentialsFile() string {
	if c.file.CredentialsFile != "" {
		return c.file.CredentialsFile
	}
	return c.Config.GetCredentialsFile()
}

func (c fileBacked) GetSilentEndpoints() []string {
	if len(c.file.SilentEndpoints) > 0 {
		return c.file.SilentEndpoints
	}
	return c.Config.GetSilentEndpoints()
}

func (c fileBacked) GetRequestTimeout() time.Duration {
	if c.file.RequestTimeout != "" {
		if d, err := time.ParseDuration(c.file.RequestTimeout); err == nil && d > 0 {
			return d
		}
	}
	return c.Config.GetRequestTimeout()
}

package linear

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultEndpoint is Linear's public GraphQL endpoint.
	DefaultEndpoint = "https://api.linear.app/graphql"

	// DefaultTimeout bounds each HTTP round trip unless overridden.
	DefaultTimeout = 30 * time.Second
)

// Config carries the settings needed to talk to the Linear API.
type Config struct {
	// APIKey is a Linear personal API key. It is sent verbatim in the
	// Authorization header; Linear does not expect a Bearer prefix for
	// personal keys.
	APIKey string

	// APIURL is the GraphQL endpoint. Defaults to DefaultEndpoint.
	APIURL string

	// Timeout bounds each HTTP round trip. Minimum one second.
	Timeout time.Duration
}

// NewConfig returns a Config for the given API key with the default
// endpoint and timeout.
func NewConfig(apiKey string) *Config {
	return &Config{
		APIKey:  apiKey,
		APIURL:  DefaultEndpoint,
		Timeout: DefaultTimeout,
	}
}

// NewConfigFromEnv builds a Config from the LINEAR_API_KEY, LINEAR_API_URL
// and LINEAR_TIMEOUT (seconds) environment variables. A .env file in the
// working directory is loaded first when present.
func NewConfigFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	apiKey := os.Getenv("LINEAR_API_KEY")
	if apiKey == "" {
		return nil, &ValidationError{Field: "api key", Reason: "missing LINEAR_API_KEY environment variable"}
	}

	cfg := &Config{
		APIKey:  apiKey,
		APIURL:  getEnv("LINEAR_API_URL", DefaultEndpoint),
		Timeout: DefaultTimeout,
	}

	if raw := os.Getenv("LINEAR_TIMEOUT"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ValidationError{Field: "timeout", Reason: "LINEAR_TIMEOUT must be an integer number of seconds"}
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration problems as ValidationErrors.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ValidationError{Field: "api key", Reason: "must not be empty"}
	}
	if c.APIURL == "" {
		return &ValidationError{Field: "api url", Reason: "must not be empty"}
	}
	if c.Timeout < time.Second {
		return &ValidationError{Field: "timeout", Reason: "must be at least one second"}
	}
	return nil
}

// Endpoint returns the configured API URL without a trailing slash.
func (c *Config) Endpoint() string {
	return strings.TrimSuffix(c.APIURL, "/")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package common provides shared utilities for timcheck
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/timcheck/internal/models"
)

// Config holds all configuration for timcheck
type Config struct {
	Environment string                  `toml:"environment"`
	Target      TargetConfig            `toml:"target"`
	Client      ClientConfig            `toml:"client"`
	User        UserConfig              `toml:"user"`
	Payload     models.TimPlanosRequest `toml:"payload"`
	Logging     LoggingConfig           `toml:"logging"`
	FakeAPI     FakeAPIConfig           `toml:"fakeapi"`
}

// TargetConfig locates the backend under test.
// BaseURL, when set, bypasses the env file.
type TargetConfig struct {
	EnvFile string `toml:"env_file"`
	EnvKey  string `toml:"env_key"`
	BaseURL string `toml:"base_url"`
}

// ClientConfig holds backend HTTP client configuration
type ClientConfig struct {
	Timeout   string `toml:"timeout"`    // empty means no timeout
	RateLimit int    `toml:"rate_limit"` // requests per second
}

// GetTimeout parses the per-request timeout. Empty, invalid or negative
// values mean no timeout, which is the HTTP client default.
func (c *ClientConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// UserConfig holds the test account used to obtain a bearer token
type UserConfig struct {
	Name          string `toml:"name"`
	Email         string `toml:"email"`
	Password      string `toml:"password"`
	Phone         string `toml:"phone"`
	AccountNumber string `toml:"account_number"`
	UniqueEmail   bool   `toml:"unique_email"` // suffix the email local part per run
}

// TestUser builds the test account. When UniqueEmail is set the suffix is
// inserted before the @ so repeated runs register fresh accounts.
func (c *UserConfig) TestUser(suffix string) models.TestUser {
	email := c.Email
	if c.UniqueEmail && suffix != "" {
		if at := strings.LastIndex(email, "@"); at > 0 {
			email = email[:at] + "+" + suffix + email[at:]
		}
	}
	return models.TestUser{
		Name:          c.Name,
		Email:         email,
		Password:      c.Password,
		Phone:         c.Phone,
		AccountNumber: c.AccountNumber,
	}
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// FakeAPIConfig configures the in-memory backend served by timcheck-fakeapi
type FakeAPIConfig struct {
	Addr        string `toml:"addr"`
	JWTSecret   string `toml:"jwt_secret"`
	TokenExpiry string `toml:"token_expiry"`
}

// GetTokenExpiry parses and returns the token expiry duration.
func (c *FakeAPIConfig) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Target: TargetConfig{
			EnvFile: "/app/frontend/.env",
			EnvKey:  "REACT_APP_BACKEND_URL",
		},
		Client: ClientConfig{
			RateLimit: 10,
		},
		User: UserConfig{
			Name:          "Maria Silva Santos",
			Email:         "maria.silva.test@email.com",
			Password:      "TestPassword123!",
			Phone:         "11987654321",
			AccountNumber: "12345678",
		},
		Payload: DefaultPayload(),
		Logging: LoggingConfig{
			Level: "info",
		},
		FakeAPI: FakeAPIConfig{
			Addr:        "127.0.0.1:8001",
			JWTSecret:   "fakeapi-dev-secret",
			TokenExpiry: "24h",
		},
	}
}

// DefaultPayload returns the fully-populated TIM Planos payload used by the checks
func DefaultPayload() models.TimPlanosRequest {
	return models.TimPlanosRequest{
		PhoneNumber:    "11987654321",
		TimEmail:       "maria.tim@email.com",
		TimPassword:    "TimPassword123",
		AmountPaid:     50.0,
		AmountReceived: 45.0,
		CEP:            "01234-567",
		FullName:       "Maria Silva Santos",
		MotherName:     "Ana Silva Santos",
		BirthDate:      "1990-05-15",
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TIMCHECK_ENV"); env != "" {
		config.Environment = env
	}

	if v := os.Getenv("TIMCHECK_BASE_URL"); v != "" {
		config.Target.BaseURL = v
	}
	if v := os.Getenv("TIMCHECK_ENV_FILE"); v != "" {
		config.Target.EnvFile = v
	}
	if v := os.Getenv("TIMCHECK_ENV_KEY"); v != "" {
		config.Target.EnvKey = v
	}

	if v := os.Getenv("TIMCHECK_TIMEOUT"); v != "" {
		config.Client.Timeout = v
	}
	if v := os.Getenv("TIMCHECK_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Client.RateLimit = n
		}
	}

	if level := os.Getenv("TIMCHECK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	// User overrides
	if v := os.Getenv("TIMCHECK_USER_EMAIL"); v != "" {
		config.User.Email = v
	}
	if v := os.Getenv("TIMCHECK_USER_PASSWORD"); v != "" {
		config.User.Password = v
	}
	if v := os.Getenv("TIMCHECK_USER_UNIQUE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.User.UniqueEmail = b
		}
	}

	// Fake backend overrides
	if v := os.Getenv("TIMCHECK_FAKEAPI_ADDR"); v != "" {
		config.FakeAPI.Addr = v
	}
	if v := os.Getenv("TIMCHECK_FAKEAPI_JWT_SECRET"); v != "" {
		config.FakeAPI.JWTSecret = v
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

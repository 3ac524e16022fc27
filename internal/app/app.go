// Package app wires configuration, logging, the backend client and the check
// suite into a single runnable unit shared by the timcheck binaries.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/timcheck/internal/clients/backend"
	"github.com/bobmcallan/timcheck/internal/common"
	"github.com/bobmcallan/timcheck/internal/models"
	"github.com/bobmcallan/timcheck/internal/suite"
)

// App holds the resolved configuration and everything a run needs.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Client      *backend.Client
	Suite       *suite.Suite
	User        models.TestUser
	RunID       string
	BaseURL     string
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPath picks the config file: explicit path, TIMCHECK_CONFIG,
// timcheck.toml next to the binary, then config/timcheck.toml.
func ResolveConfigPath(configPath string) string {
	if configPath == "" {
		configPath = os.Getenv("TIMCHECK_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "timcheck.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/timcheck.toml"
		}
	}
	return configPath
}

// NewApp loads configuration and builds the client and suite.
// A missing backend base URL is fatal and returned before any HTTP call.
func NewApp(configPath string) (*App, error) {
	common.ResolveVersion()

	config, err := common.LoadConfig(ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewAppWithConfig(config, common.NewLogger(config.Logging.Level))
}

// NewAppWithConfig builds an App from an already loaded config.
func NewAppWithConfig(config *common.Config, logger *common.Logger) (*App, error) {
	baseURL, err := common.ResolveBaseURL(config.Target)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger = logger.WithRun(runID[:8])

	user := config.User.TestUser(runID[:8])

	client := backend.NewClient(common.APIBase(baseURL),
		backend.WithLogger(logger),
		backend.WithTimeout(config.Client.GetTimeout()),
		backend.WithRateLimit(config.Client.RateLimit),
	)

	return &App{
		Config:      config,
		Logger:      logger,
		Client:      client,
		Suite:       suite.New(client, user, config.Payload, suite.WithLogger(logger)),
		User:        user,
		RunID:       runID,
		BaseURL:     baseURL,
		StartupTime: time.Now(),
	}, nil
}

// Run prints the banner to errOut, executes every check and writes the
// summary to out.
func (a *App) Run(ctx context.Context, out, errOut io.Writer) *models.Summary {
	common.PrintBanner(errOut, a.Config, common.RunInfo{
		RunID:   a.RunID,
		APIBase: a.Client.APIBase(),
		User:    a.User.Email,
	}, a.Logger)

	summary := a.Suite.Run(ctx, a.RunID)
	suite.WriteReport(out, summary)

	a.Logger.Info().
		Int("passed", summary.Passed()).
		Int("total", summary.Total()).
		Dur("elapsed", time.Since(a.StartupTime)).
		Msg("Run complete")

	return summary
}

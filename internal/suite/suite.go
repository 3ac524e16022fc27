// Package suite runs the TIM Planos endpoint checks against a live backend.
//
// Checks run strictly in order and share only the bearer token and the id of
// the transaction created by the positive-path check. Only an authentication
// failure stops the run; every other failure is recorded and the run continues.
package suite

import (
	"context"
	"time"

	"github.com/bobmcallan/timcheck/internal/common"
	"github.com/bobmcallan/timcheck/internal/interfaces"
	"github.com/bobmcallan/timcheck/internal/models"
)

// Suite holds the fixtures and client shared by every check.
type Suite struct {
	client  interfaces.BackendClient
	user    models.TestUser
	payload models.TimPlanosRequest
	logger  *common.Logger
	now     func() time.Time
}

// Option configures a Suite
type Option func(*Suite)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(s *Suite) {
		s.logger = logger
	}
}

// WithClock overrides the clock used for run timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Suite) {
		s.now = now
	}
}

// New creates a Suite for the given user and payload
func New(client interfaces.BackendClient, user models.TestUser, payload models.TimPlanosRequest, opts ...Option) *Suite {
	s := &Suite{
		client:  client,
		user:    user,
		payload: payload,
		logger:  common.NewSilentLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes every check in order and returns the summary.
func (s *Suite) Run(ctx context.Context, runID string) *models.Summary {
	summary := models.NewSummary(runID, s.now())
	defer func() { summary.FinishedAt = s.now() }()

	token, err := s.Authenticate(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Cannot proceed without authentication token")
		return summary
	}
	summary.Results[models.CheckAuth] = true
	s.logger.Info().Str("token", token.Preview()).Msg("Auth token obtained")

	created := s.CheckValidRequest(ctx, token)
	summary.Results[models.CheckValidRequest] = created.Passed

	summary.Results[models.CheckValidation] = s.CheckValidation(ctx, token).Passed()

	summary.Results[models.CheckUnauthorized] = s.CheckUnauthorized(ctx).Passed

	if created.TransactionID != "" {
		result, err := s.CheckPersistence(ctx, token, created.TransactionID)
		if err != nil {
			s.logger.Error().Err(err).Str("check", models.CheckPersistence).Msg("Error testing data persistence")
		}
		summary.Results[models.CheckPersistence] = result.Passed()
	} else {
		s.logger.Warn().Str("check", models.CheckPersistence).Msg("Skipped: no transaction id to verify")
	}

	return summary
}

package suite

import (
	"context"
	"net/http"

	"github.com/bobmcallan/timcheck/internal/models"
)

// CheckUnauthorized submits the valid payload without an Authorization header.
// The backend must answer 401 or 403.
func (s *Suite) CheckUnauthorized(ctx context.Context) models.CheckResult {
	log := s.logger.With().Str("check", models.CheckUnauthorized).Logger()

	resp, err := s.client.CreateTimPlanos(ctx, "", s.payload.Fields())
	if err != nil {
		log.Error().Err(err).Msg("Error testing unauthorized access")
		return models.CheckResult{Err: err}
	}

	result := models.CheckResult{StatusCode: resp.StatusCode}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		log.Info().Int("status", resp.StatusCode).Msg("Unauthorized access properly blocked")
		result.Passed = true
		return result
	}

	log.Warn().Int("status", resp.StatusCode).Msg("Unauthorized access not properly blocked")
	return result
}

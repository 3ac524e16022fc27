package suite

import (
	"context"
	"net/http"

	"github.com/bobmcallan/timcheck/internal/models"
)

// CheckValidation submits the payload once per required field with exactly
// that field removed. Each submission must be rejected with 422.
func (s *Suite) CheckValidation(ctx context.Context, token models.AuthToken) models.ValidationResult {
	var result models.ValidationResult

	for _, field := range models.RequiredFields {
		fv := models.FieldValidation{Field: field}
		log := s.logger.With().Str("check", models.CheckValidation).Str("field", field).Logger()

		resp, err := s.client.CreateTimPlanos(ctx, token, s.payload.Without(field))
		switch {
		case err != nil:
			fv.Err = err
			log.Error().Err(err).Msg("Error testing validation for field")
		case resp.StatusCode == http.StatusUnprocessableEntity:
			fv.StatusCode = resp.StatusCode
			fv.Passed = true
			log.Info().Msg("Validation working for missing field")
		default:
			fv.StatusCode = resp.StatusCode
			log.Warn().Int("status", resp.StatusCode).Msg("Missing field did not trigger validation error")
		}

		result.Fields = append(result.Fields, fv)
	}

	return result
}

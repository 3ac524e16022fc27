package suite

import (
	"context"
	"net/http"

	"github.com/bobmcallan/timcheck/internal/clients/backend"
	"github.com/bobmcallan/timcheck/internal/models"
)

// CheckValidRequest submits the fully-populated payload and verifies the
// response carries every required and personal-information field.
// The created id is returned whenever the backend answered 200, even if
// fields are missing, so persistence can still be verified.
func (s *Suite) CheckValidRequest(ctx context.Context, token models.AuthToken) models.CreateResult {
	log := s.logger.With().Str("check", models.CheckValidRequest).Logger()

	resp, err := s.client.CreateTimPlanos(ctx, token, s.payload.Fields())
	if err != nil {
		log.Error().Err(err).Msg("Error testing TIM Planos endpoint")
		return models.CreateResult{}
	}

	result := models.CreateResult{StatusCode: resp.StatusCode}
	log.Info().Int("status", resp.StatusCode).Msg("TIM Planos response")
	log.Debug().Interface("headers", resp.Header).Msg("TIM Planos response headers")

	if resp.StatusCode != http.StatusOK {
		log.Error().Str("body", string(resp.Body)).Msg("TIM Planos transaction failed")
		return result
	}

	tx, err := backend.DecodeTransaction(resp)
	if err != nil {
		log.Error().Err(err).Msg("Error testing TIM Planos endpoint")
		return result
	}

	result.Response = tx
	result.TransactionID = tx.ID()
	log.Info().Str("transaction_id", result.TransactionID).Msg("TIM Planos transaction created")
	log.Debug().Msg("Transaction data:\n" + backend.PrettyJSON(resp.Body))

	result.MissingFields = tx.MissingFields(models.ResponseFields)
	if len(result.MissingFields) > 0 {
		log.Warn().Strs("missing", result.MissingFields).Msg("Missing fields in response")
		return result
	}

	log.Info().Msg("All required fields present in response")
	result.Passed = true
	return result
}

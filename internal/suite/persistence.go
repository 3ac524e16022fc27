package suite

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bobmcallan/timcheck/internal/clients/backend"
	"github.com/bobmcallan/timcheck/internal/models"
)

// ErrNoTransactionID is returned when there is no created transaction to verify.
var ErrNoTransactionID = errors.New("no transaction id to test persistence")

// CheckPersistence fetches the user's transactions, locates the one created by
// CheckValidRequest and compares every persisted field with the submitted value.
func (s *Suite) CheckPersistence(ctx context.Context, token models.AuthToken, transactionID string) (models.PersistenceResult, error) {
	var result models.PersistenceResult
	log := s.logger.With().Str("check", models.CheckPersistence).Str("transaction_id", transactionID).Logger()

	if transactionID == "" {
		return result, ErrNoTransactionID
	}

	resp, err := s.client.ListTransactions(ctx, token)
	if err != nil {
		return result, fmt.Errorf("list transactions: %w", err)
	}
	if err := backend.Expect(resp, backend.PathTransactions, http.StatusOK); err != nil {
		return result, fmt.Errorf("failed to retrieve user transactions: %w", err)
	}

	txs, err := backend.DecodeTransactions(resp)
	if err != nil {
		return result, err
	}

	var stored models.TimPlanosResponse
	for _, tx := range txs {
		if tx.ID() == transactionID {
			stored = tx
			break
		}
	}
	if stored == nil {
		log.Error().Int("transactions", len(txs)).Msg("Transaction not found in user transactions")
		return result, nil
	}
	result.Found = true
	log.Info().Msg("Transaction found in user transactions")

	expected := s.payload.Fields()
	for _, field := range models.PersistedFields {
		actual := stored[field]
		if models.FieldEqual(field, expected[field], actual) {
			continue
		}
		mismatch := models.FieldMismatch{
			Field:    field,
			Expected: expected[field],
			Actual:   actual,
		}
		result.Mismatches = append(result.Mismatches, mismatch)
		log.Warn().Str("field", field).Msg("Data mismatch: " + mismatch.String())
	}

	if len(result.Mismatches) > 0 {
		log.Error().Int("mismatches", len(result.Mismatches)).Msg("Data integrity issues found")
		return result, nil
	}

	log.Info().Msg("All data fields properly stored and retrieved")
	return result, nil
}

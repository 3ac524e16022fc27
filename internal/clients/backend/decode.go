package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bobmcallan/timcheck/internal/interfaces"
	"github.com/bobmcallan/timcheck/internal/models"
)

// APIError represents an unexpected status from the backend
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Expect returns an APIError unless the response status is one of codes
func Expect(resp *interfaces.BackendResponse, endpoint string, codes ...int) error {
	for _, code := range codes {
		if resp.StatusCode == code {
			return nil
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    string(resp.Body),
		Endpoint:   endpoint,
	}
}

// DecodeToken extracts access_token from a register or login response.
// A missing or empty token is an error.
func DecodeToken(resp *interfaces.BackendResponse) (models.AuthToken, error) {
	var tr models.TokenResponse
	if err := json.Unmarshal(resp.Body, &tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("response has no access_token")
	}
	return models.AuthToken(tr.AccessToken), nil
}

// DecodeTransaction decodes a single transaction object, keeping numbers as json.Number
func DecodeTransaction(resp *interfaces.BackendResponse) (models.TimPlanosResponse, error) {
	var tx models.TimPlanosResponse
	if err := decodeNumbers(resp.Body, &tx); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	if tx == nil {
		return nil, fmt.Errorf("failed to decode transaction: null body")
	}
	return tx, nil
}

// DecodeTransactions decodes the ordered transaction list
func DecodeTransactions(resp *interfaces.BackendResponse) ([]models.TimPlanosResponse, error) {
	var txs []models.TimPlanosResponse
	if err := decodeNumbers(resp.Body, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode transaction list: %w", err)
	}
	return txs, nil
}

func decodeNumbers(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}

// PrettyJSON indents a JSON body for log output, falling back to the raw text
func PrettyJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}

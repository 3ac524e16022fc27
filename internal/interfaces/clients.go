// Package interfaces defines service contracts for timcheck
package interfaces

import (
	"context"
	"net/http"

	"github.com/bobmcallan/timcheck/internal/models"
)

// BackendResponse is a raw HTTP outcome. Checks assert on status codes, so
// non-2xx statuses are returned here rather than as errors.
type BackendResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// BackendClient provides access to the backend under test. Errors are only
// returned for transport failures; every HTTP status is a valid response.
type BackendClient interface {
	// Register posts the test user to /auth/register
	Register(ctx context.Context, user models.TestUser) (*BackendResponse, error)

	// Login posts credentials to /auth/login
	Login(ctx context.Context, creds models.LoginRequest) (*BackendResponse, error)

	// CreateTimPlanos posts a payload to /transactions/tim-planos.
	// An empty token sends no Authorization header.
	CreateTimPlanos(ctx context.Context, token models.AuthToken, payload map[string]interface{}) (*BackendResponse, error)

	// ListTransactions fetches /user/transactions
	ListTransactions(ctx context.Context, token models.AuthToken) (*BackendResponse, error)
}

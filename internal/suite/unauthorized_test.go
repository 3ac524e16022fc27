package suite

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckUnauthorized(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusOK, false},
		{http.StatusUnprocessableEntity, false},
		{http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/api/transactions/tim-planos", func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Authorization"), "no Authorization header expected")
				writeJSON(w, tt.status, map[string]string{"detail": "Not authenticated"})
			})

			s := newTestSuite(t, mux)
			result := s.CheckUnauthorized(context.Background())
			assert.Equal(t, tt.want, result.Passed)
			assert.Equal(t, tt.status, result.StatusCode)
		})
	}
}

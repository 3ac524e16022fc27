package suite

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/timcheck/internal/clients/backend"
	"github.com/bobmcallan/timcheck/internal/common"
	"github.com/bobmcallan/timcheck/internal/models"
)

// newTestSuite starts a mock backend serving mux under /api and returns a
// Suite pointed at it with the default fixtures.
func newTestSuite(t *testing.T, mux *http.ServeMux) *Suite {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL+"/api", backend.WithRateLimit(1000))
	cfg := common.NewDefaultConfig()
	return New(client, cfg.User.TestUser(""), cfg.Payload)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeBody(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

// createdRecord is a full create response for the default payload.
func createdRecord(id interface{}) map[string]interface{} {
	rec := common.DefaultPayload().Fields()
	delete(rec, models.FieldTimPassword)
	rec[models.FieldID] = id
	rec[models.FieldUserID] = "user-1"
	return rec
}

package suite

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/timcheck/internal/models"
)

func listMux(t *testing.T, records ...map[string]interface{}) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/transactions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, records)
	})
	return mux
}

func TestCheckPersistence_AllFieldsMatch(t *testing.T) {
	other := createdRecord("tx-other")
	other[models.FieldFullName] = "Someone Else"

	s := newTestSuite(t, listMux(t, other, createdRecord("tx-1")))
	result, err := s.CheckPersistence(context.Background(), "tok", "tx-1")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Empty(t, result.Mismatches)
	assert.True(t, result.Passed())
}

func TestCheckPersistence_IntegerAmountMatchesFloat(t *testing.T) {
	rec := createdRecord("tx-1")
	rec[models.FieldAmountPaid] = 50
	rec[models.FieldAmountReceived] = 45

	s := newTestSuite(t, listMux(t, rec))
	result, err := s.CheckPersistence(context.Background(), "tok", "tx-1")
	require.NoError(t, err)
	assert.True(t, result.Passed())
}

func TestCheckPersistence_AlteredFieldReported(t *testing.T) {
	rec := createdRecord("tx-1")
	rec[models.FieldAmountPaid] = 55.5

	s := newTestSuite(t, listMux(t, rec))
	result, err := s.CheckPersistence(context.Background(), "tok", "tx-1")
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.False(t, result.Passed())
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, models.FieldAmountPaid, result.Mismatches[0].Field)
	assert.Equal(t, 50.0, result.Mismatches[0].Expected)
}

func TestCheckPersistence_MissingFieldIsMismatch(t *testing.T) {
	rec := createdRecord("tx-1")
	delete(rec, models.FieldMotherName)

	s := newTestSuite(t, listMux(t, rec))
	result, err := s.CheckPersistence(context.Background(), "tok", "tx-1")
	require.NoError(t, err)
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, models.FieldMotherName, result.Mismatches[0].Field)
	assert.Nil(t, result.Mismatches[0].Actual)
}

func TestCheckPersistence_NotFound(t *testing.T) {
	s := newTestSuite(t, listMux(t, createdRecord("tx-other")))
	result, err := s.CheckPersistence(context.Background(), "tok", "tx-1")
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.False(t, result.Passed())
}

func TestCheckPersistence_NoTransactionID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/transactions", func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a transaction id")
	})

	s := newTestSuite(t, mux)
	result, err := s.CheckPersistence(context.Background(), "tok", "")
	assert.ErrorIs(t, err, ErrNoTransactionID)
	assert.False(t, result.Passed())
}

func TestCheckPersistence_ListFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "db down"})
	})

	s := newTestSuite(t, mux)
	result, err := s.CheckPersistence(context.Background(), "tok", "tx-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 500")
	assert.False(t, result.Passed())
}

func TestCheckPersistence_IDMatchesAcrossJSONTypes(t *testing.T) {
	// create returned 17; the list may carry it as a string or a float
	s := newTestSuite(t, listMux(t, createdRecord("17")))
	result, err := s.CheckPersistence(context.Background(), "tok", "17")
	require.NoError(t, err)
	assert.True(t, result.Found)

	s = newTestSuite(t, listMux(t, createdRecord(17.0)))
	result, err = s.CheckPersistence(context.Background(), "tok", "17")
	require.NoError(t, err)
	assert.True(t, result.Found)
}

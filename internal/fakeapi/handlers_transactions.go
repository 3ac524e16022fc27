package fakeapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/timcheck/internal/models"
)

const anonymousUserID = "anonymous"

// handleCreateTimPlanos handles POST /api/transactions/tim-planos.
func (s *Server) handleCreateTimPlanos(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	userID, status, detail := s.authenticate(r)
	if status != http.StatusOK {
		if !s.faults.OpenCreate || r.Header.Get("Authorization") != "" {
			WriteDetail(w, status, detail)
			return
		}
		userID = anonymousUserID
	}

	var body map[string]interface{}
	if !DecodeJSON(w, r, &body) {
		return
	}

	issues := requireFields(body, models.RequiredFields, s.faults.SkipValidation)
	issues = append(issues, checkTypes(body)...)
	if len(issues) > 0 {
		writeIssues(w, issues)
		return
	}

	record := map[string]interface{}{
		models.FieldID:     uuid.New().String(),
		models.FieldUserID: userID,
		"type":             "tim_planos",
		"status":           "pending",
		"created_at":       s.now().UTC().Format(time.RFC3339),
	}
	for _, f := range models.RequiredFields {
		if f == models.FieldTimPassword {
			continue
		}
		if v, ok := body[f]; ok {
			record[f] = v
		}
	}

	stored := copyRecord(record)
	for f, v := range s.faults.StoredOverrides {
		stored[f] = v
	}
	s.store.addTransaction(userID, stored)

	for f := range s.faults.DropResponseFields {
		delete(record, f)
	}

	s.logger.Info().
		Str("transaction_id", record[models.FieldID].(string)).
		Str("user_id", userID).
		Msg("TIM Planos transaction created")

	WriteJSON(w, http.StatusOK, record)
}

// handleListTransactions handles GET /api/user/transactions.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	userID, status, detail := s.authenticate(r)
	if status != http.StatusOK {
		WriteDetail(w, status, detail)
		return
	}

	WriteJSON(w, http.StatusOK, s.store.listTransactions(userID))
}

// checkTypes rejects amounts that are not numbers and text fields that are not strings.
func checkTypes(body map[string]interface{}) []validationIssue {
	var issues []validationIssue
	for _, f := range models.RequiredFields {
		v, ok := body[f]
		if !ok || v == nil {
			continue
		}
		if models.NumericFields[f] {
			if _, isNum := v.(json.Number); !isNum {
				issues = append(issues, validationIssue{Type: "float_parsing", Loc: []string{"body", f}, Msg: "Input should be a valid number"})
			}
			continue
		}
		if _, isStr := v.(string); !isStr {
			issues = append(issues, validationIssue{Type: "string_type", Loc: []string{"body", f}, Msg: "Input should be a valid string"})
		}
	}
	return issues
}

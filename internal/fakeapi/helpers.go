package fakeapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// detailResponse is the error body shape the backend uses.
type detailResponse struct {
	Detail interface{} `json:"detail"`
}

// validationIssue is one entry of a 422 detail list.
type validationIssue struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDetail writes an error response with a string detail.
func WriteDetail(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, detailResponse{Detail: message})
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	return false
}

// DecodeJSON reads and decodes JSON from the request body into v.
// Returns false and writes a 422 if decoding fails.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil {
		writeIssues(w, []validationIssue{{Type: "missing", Loc: []string{"body"}, Msg: "Field required"}})
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		writeIssues(w, []validationIssue{{Type: "json_invalid", Loc: []string{"body"}, Msg: "JSON decode error: " + err.Error()}})
		return false
	}
	return true
}

func writeIssues(w http.ResponseWriter, issues []validationIssue) {
	WriteJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: issues})
}

// requireFields returns a 422 issue for every field absent from body.
func requireFields(body map[string]interface{}, fields []string, skip map[string]bool) []validationIssue {
	var issues []validationIssue
	for _, f := range fields {
		if skip[f] {
			continue
		}
		if v, ok := body[f]; !ok || v == nil {
			issues = append(issues, validationIssue{Type: "missing", Loc: []string{"body", f}, Msg: "Field required"})
		}
	}
	return issues
}

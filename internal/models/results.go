package models

import (
	"fmt"
	"time"
)

// Check names, in report order.
const (
	CheckAuth         = "auth"
	CheckValidRequest = "valid_request"
	CheckValidation   = "validation"
	CheckUnauthorized = "unauthorized"
	CheckPersistence  = "persistence"
)

// CheckOrder is the fixed order checks run and are reported in.
var CheckOrder = []string{
	CheckAuth,
	CheckValidRequest,
	CheckValidation,
	CheckUnauthorized,
	CheckPersistence,
}

// CreateResult is the outcome of the positive-path submission.
type CreateResult struct {
	Passed        bool
	StatusCode    int
	TransactionID string
	MissingFields []string
	Response      TimPlanosResponse
}

// FieldValidation is the outcome of submitting the payload without one field.
type FieldValidation struct {
	Field      string
	Passed     bool
	StatusCode int
	Err        error
}

// ValidationResult aggregates the per-field validation sweep.
type ValidationResult struct {
	Fields []FieldValidation
}

// Passed is true only when every field was rejected with 422.
func (v ValidationResult) Passed() bool {
	if len(v.Fields) == 0 {
		return false
	}
	for _, f := range v.Fields {
		if !f.Passed {
			return false
		}
	}
	return true
}

// Field returns the outcome for a single field.
func (v ValidationResult) Field(name string) (FieldValidation, bool) {
	for _, f := range v.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldValidation{}, false
}

// Gaps returns the fields the backend failed to validate.
func (v ValidationResult) Gaps() []string {
	var gaps []string
	for _, f := range v.Fields {
		if !f.Passed {
			gaps = append(gaps, f.Field)
		}
	}
	return gaps
}

// FieldMismatch describes a stored value that differs from the submitted one.
type FieldMismatch struct {
	Field    string
	Expected interface{}
	Actual   interface{}
}

func (m FieldMismatch) String() string {
	return fmt.Sprintf("%s: expected %v, got %v", m.Field, m.Expected, m.Actual)
}

// PersistenceResult is the outcome of the create → list round trip.
type PersistenceResult struct {
	Found      bool
	Mismatches []FieldMismatch
}

// Passed is true when the record was found and every field matched.
func (p PersistenceResult) Passed() bool {
	return p.Found && len(p.Mismatches) == 0
}

// Summary aggregates the boolean outcome of each named check.
type Summary struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    map[string]bool
}

// NewSummary returns a summary with every check failed.
func NewSummary(runID string, startedAt time.Time) *Summary {
	results := make(map[string]bool, len(CheckOrder))
	for _, name := range CheckOrder {
		results[name] = false
	}
	return &Summary{RunID: runID, StartedAt: startedAt, Results: results}
}

// Passed returns the number of passed checks.
func (s *Summary) Passed() int {
	n := 0
	for _, name := range CheckOrder {
		if s.Results[name] {
			n++
		}
	}
	return n
}

// Total returns the number of checks.
func (s *Summary) Total() int {
	return len(CheckOrder)
}

// AllPassed reports whether every check passed.
func (s *Summary) AllPassed() bool {
	return s.Passed() == s.Total()
}

// CheckResult is the outcome of a single-request check.
type CheckResult struct {
	Passed     bool
	StatusCode int
	Err        error
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	s := NewSummary("r", time.Now())
	assert.Equal(t, 5, s.Total())
	assert.Equal(t, 0, s.Passed())
	assert.False(t, s.AllPassed())

	for _, name := range CheckOrder {
		s.Results[name] = true
	}
	assert.True(t, s.AllPassed())
}

func TestValidationResult(t *testing.T) {
	assert.False(t, ValidationResult{}.Passed(), "an empty sweep never passes")

	v := ValidationResult{Fields: []FieldValidation{
		{Field: FieldCEP, Passed: true, StatusCode: 422},
		{Field: FieldBirthDate, Passed: false, StatusCode: 200},
	}}
	assert.False(t, v.Passed())
	assert.Equal(t, []string{FieldBirthDate}, v.Gaps())

	fv, ok := v.Field(FieldCEP)
	assert.True(t, ok)
	assert.Equal(t, 422, fv.StatusCode)

	_, ok = v.Field(FieldFullName)
	assert.False(t, ok)
}

func TestPersistenceResult(t *testing.T) {
	assert.False(t, PersistenceResult{}.Passed())
	assert.True(t, PersistenceResult{Found: true}.Passed())
	assert.False(t, PersistenceResult{Found: true, Mismatches: []FieldMismatch{{Field: FieldCEP}}}.Passed())
}

func TestFieldMismatch_String(t *testing.T) {
	m := FieldMismatch{Field: FieldAmountPaid, Expected: 50.0, Actual: "49.99"}
	assert.Equal(t, "amount_paid: expected 50, got 49.99", m.String())

	m = FieldMismatch{Field: FieldCEP, Expected: "01234-567"}
	assert.Equal(t, "cep: expected 01234-567, got <nil>", m.String())
}

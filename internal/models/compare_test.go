package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalID(t *testing.T) {
	assert.Equal(t, "", CanonicalID(nil))
	assert.Equal(t, "abc-123", CanonicalID("abc-123"))
	assert.Equal(t, "7", CanonicalID(json.Number("7")))
	assert.Equal(t, "7", CanonicalID(json.Number("7.0")))
	assert.Equal(t, "7", CanonicalID(7.0))
	assert.Equal(t, "7", CanonicalID(7))
}

func TestFieldEqual_Numeric(t *testing.T) {
	assert.True(t, FieldEqual(FieldAmountPaid, 50.0, json.Number("50")))
	assert.True(t, FieldEqual(FieldAmountPaid, 50.0, json.Number("50.00")))
	assert.True(t, FieldEqual(FieldAmountReceived, 45.0, 45))
	assert.False(t, FieldEqual(FieldAmountPaid, 50.0, json.Number("50.01")))
	assert.False(t, FieldEqual(FieldAmountPaid, 50.0, "50.0"), "a JSON string is not a number")
	assert.False(t, FieldEqual(FieldAmountPaid, 50.0, nil))
}

func TestFieldEqual_Text(t *testing.T) {
	assert.True(t, FieldEqual(FieldCEP, "01234-567", "01234-567"))
	assert.False(t, FieldEqual(FieldCEP, "01234-567", "01234567"))
	assert.False(t, FieldEqual(FieldPhoneNumber, "11987654321", json.Number("11987654321")))
	assert.False(t, FieldEqual(FieldFullName, "Maria", nil))
}

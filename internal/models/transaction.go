package models

// Field names of the TIM Planos payload.
const (
	FieldPhoneNumber    = "phone_number"
	FieldTimEmail       = "tim_email"
	FieldTimPassword    = "tim_password"
	FieldAmountPaid     = "amount_paid"
	FieldAmountReceived = "amount_received"
	FieldCEP            = "cep"
	FieldFullName       = "full_name"
	FieldMotherName     = "mother_name"
	FieldBirthDate      = "birth_date"

	FieldID     = "id"
	FieldUserID = "user_id"
)

// RequiredFields mirrors the backend's current required-field set for
// POST /api/transactions/tim-planos. It must be updated in lockstep with it.
var RequiredFields = []string{
	FieldPhoneNumber,
	FieldTimEmail,
	FieldTimPassword,
	FieldAmountPaid,
	FieldAmountReceived,
	FieldCEP,
	FieldFullName,
	FieldMotherName,
	FieldBirthDate,
}

// PersonalFields are the personal-information fields added to the endpoint.
var PersonalFields = []string{
	FieldCEP,
	FieldFullName,
	FieldMotherName,
	FieldBirthDate,
}

// ResponseFields are the fields a successful create response must carry.
// tim_password is deliberately absent: the backend does not echo it.
var ResponseFields = append([]string{
	FieldID,
	FieldUserID,
	FieldPhoneNumber,
	FieldTimEmail,
	FieldAmountPaid,
	FieldAmountReceived,
}, PersonalFields...)

// PersistedFields are compared between the submitted payload and the stored record.
var PersistedFields = []string{
	FieldPhoneNumber,
	FieldTimEmail,
	FieldAmountPaid,
	FieldAmountReceived,
	FieldCEP,
	FieldFullName,
	FieldMotherName,
	FieldBirthDate,
}

// NumericFields are compared by decimal value rather than text.
var NumericFields = map[string]bool{
	FieldAmountPaid:     true,
	FieldAmountReceived: true,
}

// TimPlanosRequest is the body of POST /api/transactions/tim-planos.
type TimPlanosRequest struct {
	PhoneNumber    string  `json:"phone_number" toml:"phone_number"`
	TimEmail       string  `json:"tim_email" toml:"tim_email"`
	TimPassword    string  `json:"tim_password" toml:"tim_password"`
	AmountPaid     float64 `json:"amount_paid" toml:"amount_paid"`
	AmountReceived float64 `json:"amount_received" toml:"amount_received"`
	CEP            string  `json:"cep" toml:"cep"`
	FullName       string  `json:"full_name" toml:"full_name"`
	MotherName     string  `json:"mother_name" toml:"mother_name"`
	BirthDate      string  `json:"birth_date" toml:"birth_date"`
}

// Fields returns the payload as a field map so individual fields can be omitted.
func (r TimPlanosRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		FieldPhoneNumber:    r.PhoneNumber,
		FieldTimEmail:       r.TimEmail,
		FieldTimPassword:    r.TimPassword,
		FieldAmountPaid:     r.AmountPaid,
		FieldAmountReceived: r.AmountReceived,
		FieldCEP:            r.CEP,
		FieldFullName:       r.FullName,
		FieldMotherName:     r.MotherName,
		FieldBirthDate:      r.BirthDate,
	}
}

// Without returns the payload field map with the named field removed.
func (r TimPlanosRequest) Without(field string) map[string]interface{} {
	fields := r.Fields()
	delete(fields, field)
	return fields
}

// TimPlanosResponse is a decoded transaction object as returned by the backend.
// Values are kept generic: checks assert presence and equality, not a schema.
// Numbers decode as json.Number.
type TimPlanosResponse map[string]interface{}

// Has reports whether the field is present in the response.
func (r TimPlanosResponse) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// ID returns the server-assigned id in canonical text form, or "" if it is
// absent or empty (null, "", 0 or false).
func (r TimPlanosResponse) ID() string {
	if !usableID(r[FieldID]) {
		return ""
	}
	return CanonicalID(r[FieldID])
}

// MissingFields returns the names from fields not present in the response, in order.
func (r TimPlanosResponse) MissingFields(fields []string) []string {
	var missing []string
	for _, f := range fields {
		if !r.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

package validator

import "github.com/dmitrymomot/therapist-admin/pkg/swissfield"

// fieldRule adapts a swissfield verdict to a Rule. The reason reported by the
// field validator becomes the error message.
func fieldRule(field, value string, kind swissfield.Kind, key string) Rule {
	res := swissfield.Validate(kind, value)
	return Rule{
		Check: func() bool { return res.Valid },
		Error: ValidationError{
			Field:          field,
			Message:        res.Error,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// SwissPostalCode validates a mandatory 4-digit Swiss postal code.
func SwissPostalCode(field, value string) Rule {
	return fieldRule(field, value, swissfield.KindPostalCode, "validation.postal_code")
}

// SwissCanton validates a mandatory two-letter canton code, case-insensitively.
func SwissCanton(field, value string) Rule {
	return fieldRule(field, value, swissfield.KindCanton, "validation.canton")
}

// ContactEmail validates an optional email address. Empty values pass.
func ContactEmail(field, value string) Rule {
	return fieldRule(field, value, swissfield.KindEmail, "validation.contact_email")
}

// ContactPhone validates an optional phone number. Empty values pass.
func ContactPhone(field, value string) Rule {
	return fieldRule(field, value, swissfield.KindPhone, "validation.contact_phone")
}

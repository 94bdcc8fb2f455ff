package remediation

import (
	"github.com/dmitrymomot/therapist-admin/pkg/validator"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
)

// CheckFunc inspects a value before it is written. A non-nil error rejects the edit.
type CheckFunc func(field directory.Field, value string) error

// MaxFreeTextLen bounds street and city edits.
const MaxFreeTextLen = 255

// FieldValidation returns a CheckFunc that runs the swissfield validators on
// zip, canton, email and phone. Street and city only have a length limit.
// Rejections are validator.ValidationErrors.
func FieldValidation() CheckFunc {
	return func(field directory.Field, value string) error {
		name := field.String()
		switch field {
		case directory.FieldZip:
			return validator.Apply(validator.SwissPostalCode(name, value))
		case directory.FieldCanton:
			return validator.Apply(validator.SwissCanton(name, value))
		case directory.FieldEmail:
			return validator.Apply(validator.ContactEmail(name, value))
		case directory.FieldPhone:
			return validator.Apply(validator.ContactPhone(name, value))
		default:
			return validator.Apply(validator.MaxLenString(name, value, MaxFreeTextLen))
		}
	}
}

package quality

import (
	"github.com/dmitrymomot/therapist-admin/pkg/swissfield"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
)

// Check names.
const (
	CheckZip    = "zip"
	CheckCanton = "canton"
	CheckEmail  = "email"
	CheckPhone  = "phone"
)

// NoDescription is returned by Describe for unknown checks.
const NoDescription = "no description"

// Check is a registered data-quality rule over one field.
type Check struct {
	Name        string
	Label       string
	Description string
	Field       directory.Field
	Kind        swissfield.Kind
	Predicate   directory.Predicate
}

// Failing reports the validator verdict for t when it rejects the field value.
func (c Check) Failing(t directory.Therapist) (swissfield.Result, bool) {
	res := swissfield.ValidatePtr(c.Kind, t.Value(c.Field))
	return res, !res.Valid
}

var registry = []Check{
	newCheck(CheckZip, "Invalid ZIPs", "Therapists with ZIP codes that are not exactly 4 digits.",
		directory.FieldZip, swissfield.KindPostalCode, zipWhere()),
	newCheck(CheckCanton, "Invalid Cantons", "Therapists with Canton codes that are not one of the 26 Swiss cantons.",
		directory.FieldCanton, swissfield.KindCanton, cantonWhere()),
	newCheck(CheckEmail, "Invalid Emails", "Therapists with an email address that is not shaped like name@domain.tld.",
		directory.FieldEmail, swissfield.KindEmail, emailWhere()),
	newCheck(CheckPhone, "Invalid Phones", "Therapists with a phone number shorter than 9 digits once separators are removed.",
		directory.FieldPhone, swissfield.KindPhone, phoneWhere()),
}

func newCheck(name, label, desc string, field directory.Field, kind swissfield.Kind, where string) Check {
	c := Check{
		Name:        name,
		Label:       label,
		Description: desc,
		Field:       field,
		Kind:        kind,
	}
	c.Predicate = directory.Predicate{
		Where: where,
		Match: func(t directory.Therapist) bool {
			_, failing := c.Failing(t)
			return failing
		},
	}
	return c
}

// Checks returns the registered checks in display order.
func Checks() []Check {
	out := make([]Check, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the check registered under name.
func Lookup(name string) (Check, bool) {
	for _, c := range registry {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Describe returns the human readable description of a check.
func Describe(name string) string {
	if c, ok := Lookup(name); ok {
		return c.Description
	}
	return NoDescription
}

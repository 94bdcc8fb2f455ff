package directory

import (
	"strings"
	"time"
)

// Therapist is a directory record as stored in the "Therapist" table.
// Nullable columns are pointers; nil means SQL NULL.
type Therapist struct {
	ID              string
	FirstName       string
	LastName        string
	Title           *string
	Street          *string
	Zip             *string
	City            *string
	Canton          *string
	Email           *string
	Phone           *string
	ContactVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName joins first and last name.
func (t Therapist) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

// Value returns the current value of an editable field.
func (t Therapist) Value(f Field) *string {
	def, ok := fields[f]
	if !ok {
		return nil
	}
	return *def.ref(&t)
}

// Str dereferences a nullable column, returning "" for NULL.
func Str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// Ptr returns a pointer to v.
func Ptr(v string) *string {
	return &v
}

package directory

import (
	"fmt"
	"slices"
)

// Field is an editable column of a Therapist record.
// The set is closed: only the constants below can be written through a Store.
type Field string

const (
	FieldStreet Field = "street"
	FieldZip    Field = "zip"
	FieldCity   Field = "city"
	FieldCanton Field = "canton"
	FieldEmail  Field = "email"
	FieldPhone  Field = "phone"
)

type fieldSpec struct {
	column string
	ref    func(*Therapist) **string
}

var fields = map[Field]fieldSpec{
	FieldStreet: {column: `"street"`, ref: func(t *Therapist) **string { return &t.Street }},
	FieldZip:    {column: `"zip"`, ref: func(t *Therapist) **string { return &t.Zip }},
	FieldCity:   {column: `"city"`, ref: func(t *Therapist) **string { return &t.City }},
	FieldCanton: {column: `"canton"`, ref: func(t *Therapist) **string { return &t.Canton }},
	FieldEmail:  {column: `"email"`, ref: func(t *Therapist) **string { return &t.Email }},
	FieldPhone:  {column: `"phone"`, ref: func(t *Therapist) **string { return &t.Phone }},
}

// Fields lists the editable fields in a stable order.
func Fields() []Field {
	list := make([]Field, 0, len(fields))
	for f := range fields {
		list = append(list, f)
	}
	slices.Sort(list)
	return list
}

// ParseField converts a field name into a Field.
// Returns ErrFieldNotEditable for names outside the closed set.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := fields[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrFieldNotEditable, name)
	}
	return f, nil
}

// Valid reports whether f belongs to the editable set.
func (f Field) Valid() bool {
	_, ok := fields[f]
	return ok
}

// Column returns the quoted SQL column name for f.
func (f Field) Column() string {
	return fields[f].column
}

// Set writes value into the field of t.
func (f Field) Set(t *Therapist, value string) {
	def, ok := fields[f]
	if !ok {
		return
	}
	*def.ref(t) = &value
}

func (f Field) String() string {
	return string(f)
}

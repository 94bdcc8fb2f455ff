package quality

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/therapist-admin/pkg/swissfield"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
)

// The SQL conditions below select rows the corresponding swissfield validator
// rejects. Patterns are rendered in the Postgres dialect so whitespace means the
// same code points in SQL and in Go.

func zipWhere() string {
	col := directory.FieldZip.Column()
	return fmt.Sprintf(`%s IS NULL OR %s = '' OR %s !~ %s`,
		col, col, trimmed(col), literal(swissfield.PostalCodePattern))
}

func cantonWhere() string {
	col := directory.FieldCanton.Column()
	codes := swissfield.Cantons()
	quoted := make([]string, len(codes))
	for i, c := range codes {
		quoted[i] = literal(c)
	}
	return fmt.Sprintf(`%s IS NULL OR %s = '' OR %s <> ALL (ARRAY[%s])`,
		col, col, trimmed("upper("+col+")"), strings.Join(quoted, ", "))
}

func emailWhere() string {
	col := directory.FieldEmail.Column()
	return fmt.Sprintf(`%s IS NOT NULL AND %s <> '' AND %s !~ %s`,
		col, col, trimmed(col), literal(swissfield.EmailPattern(swissfield.DialectPostgres)))
}

func phoneWhere() string {
	col := directory.FieldPhone.Column()
	return fmt.Sprintf(`%s IS NOT NULL AND %s <> '' AND char_length(regexp_replace(%s, %s, '', 'g')) < %d`,
		col, col, col, literal(swissfield.PhoneStripPattern(swissfield.DialectPostgres)), swissfield.MinPhoneLength)
}

// trimmed strips leading and trailing whitespace the way swissfield.TrimSpace does.
func trimmed(expr string) string {
	space := "[" + swissfield.SpaceClass(swissfield.DialectPostgres) + "]+"
	return fmt.Sprintf(`regexp_replace(%s, %s, '', 'g')`, expr, literal("^"+space+"|"+space+"$"))
}

// literal renders s as a standard-conforming SQL string literal.
func literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Package swissfield validates and normalizes the contact and address fields of a
// Swiss directory record: 4-digit postal codes, two-letter canton codes, email
// addresses and phone numbers.
//
// Every validator is a pure function that accepts the raw field value and returns a
// Result. An invalid value is a normal outcome, never an error or a panic.
//
//	res := swissfield.ValidatePostalCode(" 8001 ")
//	if res.Valid {
//		zip, _ := res.Value() // "8001"
//	}
//
// Absence handling follows the business rules of the directory: postal and canton
// codes are mandatory (empty is invalid), email and phone are optional (empty is
// valid and carries no normalized value).
//
// The regular expressions (rendered per Dialect, Go or Postgres) and the minimum
// phone length are exported so that bulk filters, such as the SQL predicates that
// count failing records, are derived from the same definitions as the single-value
// validators. Whitespace includes the Unicode space separators, so NBSP from
// scraped pages is stripped and trimmed like an ASCII space.
package swissfield

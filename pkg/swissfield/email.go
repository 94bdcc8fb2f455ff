package swissfield

import "regexp"

// EmailPattern accepts local@domain.tld shaped addresses without whitespace.
// It is intentionally far looser than RFC 5322.
func EmailPattern(d Dialect) string {
	part := `[^` + SpaceClass(d) + `@]+`
	return `^` + part + `@` + part + `\.` + part + `$`
}

var emailRegex = regexp.MustCompile(EmailPattern(DialectGo))

// ValidateEmail checks the shape of an optional email address.
// An empty value is valid and has no normalized form.
func ValidateEmail(value string) Result {
	if value == "" {
		return Result{Valid: true}
	}
	cleaned := TrimSpace(value)
	if emailRegex.MatchString(cleaned) {
		return valid(cleaned)
	}
	return invalid(ReasonInvalidEmailFormat)
}

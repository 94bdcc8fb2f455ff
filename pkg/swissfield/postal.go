package swissfield

import "regexp"

// PostalCodePattern matches a trimmed Swiss postal code.
// ASCII digits only; the real 1000-9999 range is not enforced.
const PostalCodePattern = `^[0-9]{4}$`

var postalCodeRegex = regexp.MustCompile(PostalCodePattern)

// ValidatePostalCode checks that value is exactly four decimal digits once
// surrounding whitespace is removed.
func ValidatePostalCode(value string) Result {
	if value == "" {
		return invalid(ReasonEmptyZip)
	}
	cleaned := TrimSpace(value)
	if postalCodeRegex.MatchString(cleaned) {
		return valid(cleaned)
	}
	return invalid(ReasonInvalidZipFormat)
}

package swissfield

import (
	"regexp"
	"unicode/utf8"
)

// MinPhoneLength is the minimum number of characters left after stripping.
const MinPhoneLength = 9

// PhoneStripPattern matches the separators removed before counting:
// whitespace, hyphens, parentheses and periods.
func PhoneStripPattern(d Dialect) string {
	return `[` + SpaceClass(d) + `\-().]`
}

var phoneStripRegex = regexp.MustCompile(PhoneStripPattern(DialectGo))

// NormalizePhone removes whitespace, hyphens, parentheses and periods.
func NormalizePhone(value string) string {
	return phoneStripRegex.ReplaceAllString(value, "")
}

// ValidatePhone checks an optional phone number for a minimum length.
// No country-specific format (E.164 or otherwise) is enforced.
func ValidatePhone(value string) Result {
	if value == "" {
		return Result{Valid: true}
	}
	cleaned := NormalizePhone(value)
	if utf8.RuneCountInString(cleaned) < MinPhoneLength {
		return invalid(ReasonPhoneTooShort)
	}
	return valid(cleaned)
}

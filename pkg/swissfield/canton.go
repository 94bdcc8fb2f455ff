package swissfield

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cantons is ordered by the numeric ids used by the upstream directory (1 = AG).
var cantons = [...]string{
	"AG", "AI", "AR", "BE", "BL", "BS", "FR", "GE", "GL", "GR", "JU", "LU", "NE",
	"NW", "OW", "SG", "SH", "SO", "SZ", "TG", "TI", "UR", "VD", "VS", "ZG", "ZH",
}

var cantonSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(cantons))
	for _, c := range cantons {
		m[c] = struct{}{}
	}
	return m
}()

// Cantons returns a copy of the 26 canton codes in alphabetical order.
func Cantons() []string {
	return slices.Clone(cantons[:])
}

// IsCanton reports whether code is a canonical (upper-case) canton code.
func IsCanton(code string) bool {
	_, ok := cantonSet[code]
	return ok
}

// CantonByID maps the directory's numeric canton id (1..26) to its code.
func CantonByID(id int) (string, bool) {
	if id < 1 || id > len(cantons) {
		return "", false
	}
	return cantons[id-1], true
}

// ValidateCantonCode upper-cases and trims value, then checks membership in the
// canton set. The comparison is case-insensitive on input; the normalized value
// is always upper-case.
func ValidateCantonCode(value string) Result {
	if value == "" {
		return invalid(ReasonEmptyCanton)
	}
	// cases.Caser is stateful, so a fresh one per call.
	upper := TrimSpace(cases.Upper(language.Und).String(value))
	if IsCanton(upper) {
		return valid(upper)
	}
	return invalid(ReasonInvalidCanton)
}

package swissfield

import (
	"fmt"
	"strings"
)

// Dialect selects the regular expression syntax a pattern is rendered in.
type Dialect int

const (
	// DialectGo renders patterns for the regexp package.
	DialectGo Dialect = iota
	// DialectPostgres renders patterns for Postgres advanced regular expressions.
	DialectPostgres
)

// spaces is the ECMAScript \s set, NBSP and the BOM included.
var spaces = [][2]rune{
	{0x0009, 0x000d},
	{0x0020, 0x0020},
	{0x00a0, 0x00a0},
	{0x1680, 0x1680},
	{0x2000, 0x200a},
	{0x2028, 0x2029},
	{0x202f, 0x202f},
	{0x205f, 0x205f},
	{0x3000, 0x3000},
	{0xfeff, 0xfeff},
}

// IsSpace reports whether r is whitespace for field validation.
func IsSpace(r rune) bool {
	for _, rng := range spaces {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// TrimSpace removes leading and trailing whitespace as defined by IsSpace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// SpaceClass returns the whitespace set as the body of a bracket expression,
// without the surrounding brackets.
func SpaceClass(d Dialect) string {
	var b strings.Builder
	for _, rng := range spaces {
		b.WriteString(escapeRune(d, rng[0]))
		if rng[1] != rng[0] {
			b.WriteByte('-')
			b.WriteString(escapeRune(d, rng[1]))
		}
	}
	return b.String()
}

func escapeRune(d Dialect, r rune) string {
	if d == DialectPostgres {
		return fmt.Sprintf(`\u%04X`, r)
	}
	return fmt.Sprintf(`\x{%04X}`, r)
}

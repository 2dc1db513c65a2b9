package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TopLevel converts an identifier to type-name casing: every token starts with
// an upper-case letter and the rest of the token is lower-cased. Separators are
// dropped. Tokens that start with a non-letter are kept verbatim.
func TopLevel(s string) string {
	tokens := tokenizeCamelCase(s)

	var sb strings.Builder

	sb.Grow(len(s))

	for _, t := range tokens {
		sb.WriteString(Capitalize(lowerTail(t)))
	}

	return sb.String()
}

// MemberLevel converts an identifier to member casing: the first token is
// lower-cased and every following token is capitalized.
func MemberLevel(s string) string {
	tokens := tokenizeCamelCase(s)

	var sb strings.Builder

	sb.Grow(len(s))

	for i, t := range tokens {
		if i == 0 {
			sb.WriteString(strings.ToLower(t))
			continue
		}

		sb.WriteString(Capitalize(lowerTail(t)))
	}

	return sb.String()
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// JoinNames concatenates the capitalized names for which keep returns true.
// A nil keep keeps every name.
func JoinNames(names []string, keep func(string) bool) string {
	var sb strings.Builder

	for _, n := range names {
		if n == "" || (keep != nil && !keep(n)) {
			continue
		}

		sb.WriteString(Capitalize(n))
	}

	return sb.String()
}

// EndsInDigit reports whether the last rune of s is a decimal digit.
func EndsInDigit(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)

	return size > 0 && unicode.IsDigit(r)
}

// lowerTail lower-cases everything after the first rune.
func lowerTail(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return s[:size] + strings.ToLower(s[size:])
}

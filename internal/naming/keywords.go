package naming

import "unicode"

var keywords = map[string]struct{}{
	"as": {}, "break": {}, "class": {}, "continue": {}, "do": {}, "else": {},
	"false": {}, "for": {}, "fun": {}, "if": {}, "in": {}, "interface": {},
	"is": {}, "null": {}, "object": {}, "package": {}, "return": {},
	"super": {}, "this": {}, "throw": {}, "true": {}, "try": {},
	"typealias": {}, "typeof": {}, "val": {}, "var": {}, "when": {}, "while": {},
}

// IsKeyword reports whether s is a hard keyword of the target language.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsIdentifier reports whether s can be written without escaping: a letter or
// underscore followed by letters, digits or underscores, and not a keyword.
func IsIdentifier(s string) bool {
	if s == "" || IsKeyword(s) {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

// Escape wraps s in backticks unless it is a plain identifier.
func Escape(s string) string {
	if IsIdentifier(s) {
		return s
	}

	return "`" + s + "`"
}

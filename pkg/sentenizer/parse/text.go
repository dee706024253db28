package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsSpace reports whether r is whitespace, including the byte order mark.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// hasCase reports whether r has distinct upper and lower forms.
func hasCase(r rune) bool {
	return unicode.ToLower(r) != unicode.ToUpper(r)
}

// HasAlpha reports whether s contains at least one cased letter.
func HasAlpha(s string) bool {
	return strings.ToLower(s) != strings.ToUpper(s)
}

// IsUpper reports whether s has a cased letter and is unchanged by upper-casing.
// Digits and punctuation alone are neither upper nor lower.
func IsUpper(s string) bool {
	return HasAlpha(s) && strings.ToUpper(s) == s
}

// StartsWithLower reports whether the first rune of s is a lower-case letter.
func StartsWithLower(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !hasCase(r) {
		return false
	}
	return unicode.ToLower(r) == r
}

// StartsWithUpper reports whether the first rune of s is an upper-case letter.
func StartsWithUpper(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !hasCase(r) {
		return false
	}
	return unicode.ToUpper(r) == r
}

// StartsWithNewline reports whether s begins with a line feed.
func StartsWithNewline(s string) bool {
	return strings.HasPrefix(s, "\n")
}

// StartsWithHardbreak reports whether s begins with two line feeds.
func StartsWithHardbreak(s string) bool {
	return strings.HasPrefix(s, "\n\n")
}

// EndsWithHardbreak reports whether s ends with two line feeds.
func EndsWithHardbreak(s string) bool {
	return strings.HasSuffix(s, "\n\n")
}

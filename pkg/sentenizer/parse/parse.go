// Package parse provides the string extractors, windows and chunker the
// sentence rules are built from. Every extractor is total: when nothing
// matches it returns the empty string.
package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parser evaluates extractors against a fixed set of marker classes.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	markers Markers
}

// New creates a parser for the given marker classes.
// Call Markers.Validate first when the classes come from user input.
func New(m Markers) *Parser {
	return &Parser{markers: m}
}

// Markers returns the classes the parser was built with.
func (p *Parser) Markers() Markers {
	return p.markers
}

func (p *Parser) isMarker(r rune) bool {
	return strings.ContainsRune(p.markers.SentenceEnd, r)
}

// Words returns s without its trailing sentence-end marker run.
func (p *Parser) Words(s string) string {
	return strings.TrimRightFunc(s, p.isMarker)
}

// Delimiters returns the trailing sentence-end marker run of s.
func (p *Parser) Delimiters(s string) string {
	return s[len(p.Words(s)):]
}

// FstWord returns the first token of s once trailing markers are dropped.
func (p *Parser) FstWord(s string) string {
	return FstToken(p.Words(s))
}

// LstWord returns the last token of s once trailing markers are dropped.
func (p *Parser) LstWord(s string) string {
	return LstToken(p.Words(s))
}

// DelimiterPrefix returns the leading sentence-end marker run of s.
func (p *Parser) DelimiterPrefix(s string) string {
	return prefixRun(s, p.markers.SentenceEnd)
}

// QuotationGenericPrefix returns the leading run of generic quotation marks.
func (p *Parser) QuotationGenericPrefix(s string) string {
	return prefixRun(s, p.markers.QuotationGeneric)
}

// QuotationClosePrefix returns the leading run of closing quotation marks.
func (p *Parser) QuotationClosePrefix(s string) string {
	return prefixRun(s, p.markers.QuotationClose)
}

// BracketsClosePrefix returns the leading run of closing brackets.
func (p *Parser) BracketsClosePrefix(s string) string {
	return prefixRun(s, p.markers.BracketsClose)
}

// DotSuffix returns "." when s ends with a single dot that follows a
// non-dot rune. An ellipsis written as "..." does not count.
func DotSuffix(s string) string {
	if !strings.HasSuffix(s, ".") {
		return ""
	}
	prev, size := utf8.DecodeLastRuneInString(s[:len(s)-1])
	if size == 0 || prev == '.' {
		return ""
	}
	return "."
}

// FstToken returns the first whitespace-delimited token of s.
func FstToken(s string) string {
	s = strings.TrimLeftFunc(s, IsSpace)
	if i := strings.IndexFunc(s, IsSpace); i >= 0 {
		return s[:i]
	}
	return s
}

// LstToken returns the last whitespace-delimited token of s.
func LstToken(s string) string {
	s = strings.TrimRightFunc(s, IsSpace)
	if i := strings.LastIndexFunc(s, IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		return s[i+size:]
	}
	return s
}

// OmitNonAlphaStart strips leading runes that are not letters, digits or
// underscores, so "(см" classifies as "см".
func OmitNonAlphaStart(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// SpacePrefix returns the first rune of s if it is whitespace.
func SpacePrefix(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !IsSpace(r) {
		return ""
	}
	return s[:size]
}

// SpaceSuffix returns the last rune of s if it is whitespace.
func SpaceSuffix(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || !IsSpace(r) {
		return ""
	}
	return s[len(s)-size:]
}

// Spaces returns s when it is non-empty and consists only of whitespace.
func Spaces(s string) string {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return !IsSpace(r) }) >= 0 {
		return ""
	}
	return s
}

func prefixRun(s, class string) string {
	if class == "" {
		return ""
	}
	rest := strings.TrimLeftFunc(s, func(r rune) bool {
		return strings.ContainsRune(class, r)
	})
	return s[:len(s)-len(rest)]
}

package parse

import (
	"fmt"
	"strings"

	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
)

// DefaultWindow is the number of code points each side of a boundary exposes to the rules.
const DefaultWindow = 20

// Markers holds the character classes the extractors match against.
// Each field is a set of runes written as a plain string.
type Markers struct {
	SentenceEnd      string `yaml:"sentence_end"`
	QuotationGeneric string `yaml:"quotation_generic"`
	QuotationClose   string `yaml:"quotation_close"`
	BracketsClose    string `yaml:"brackets_close"`
}

// DefaultMarkers returns the marker classes for Russian and English text.
func DefaultMarkers() Markers {
	return Markers{
		SentenceEnd:      ".?!…",
		QuotationGeneric: "\"'",
		QuotationClose:   "»”’",
		BracketsClose:    ")]}",
	}
}

// WithDefaults fills empty classes from DefaultMarkers.
func (m Markers) WithDefaults() Markers {
	d := DefaultMarkers()
	if m.SentenceEnd == "" {
		m.SentenceEnd = d.SentenceEnd
	}
	if m.QuotationGeneric == "" {
		m.QuotationGeneric = d.QuotationGeneric
	}
	if m.QuotationClose == "" {
		m.QuotationClose = d.QuotationClose
	}
	if m.BracketsClose == "" {
		m.BracketsClose = d.BracketsClose
	}
	return m
}

// Validate reports misconfigured classes. The dot is required because the
// abbreviation rules key on it.
func (m Markers) Validate() error {
	if m.SentenceEnd == "" {
		return fmt.Errorf("%w: sentence_end markers are empty", internalerr.ErrInvalidConfig)
	}
	if !strings.ContainsRune(m.SentenceEnd, '.') {
		return fmt.Errorf("%w: sentence_end markers must contain '.'", internalerr.ErrInvalidConfig)
	}

	classes := []struct {
		name  string
		value string
	}{
		{"sentence_end", m.SentenceEnd},
		{"quotation_generic", m.QuotationGeneric},
		{"quotation_close", m.QuotationClose},
		{"brackets_close", m.BracketsClose},
	}
	for _, c := range classes {
		if strings.IndexFunc(c.value, IsSpace) >= 0 {
			return fmt.Errorf("%w: %s markers contain whitespace", internalerr.ErrInvalidConfig, c.name)
		}
	}
	return nil
}

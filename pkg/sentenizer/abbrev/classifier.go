package abbrev

import (
	"strings"
	"unicode/utf8"

	"github.com/cognicore/sentenizer/pkg/sentenizer/parse"
)

// Classifier combines the parser extractors with a set of tables into
// boundary predicates. Each predicate takes the left and right windows.
type Classifier struct {
	parser *parse.Parser
	tables *Tables
}

// NewClassifier creates a classifier. A nil tables value selects Default().
func NewClassifier(p *parse.Parser, tables *Tables) *Classifier {
	if tables == nil {
		tables = Default()
	}
	return &Classifier{parser: p, tables: tables}
}

// Tables returns the tables the classifier consults.
func (c *Classifier) Tables() *Tables {
	return c.tables
}

// LeftInitials reports whether left ends with a single capital letter and a
// dot, as in "А." of "А. С. Пушкин". No table is consulted.
func (c *Classifier) LeftInitials(left, _ string) bool {
	if parse.DotSuffix(left) == "" {
		return false
	}
	word := c.parser.LstWord(left)
	return utf8.RuneCountInString(word) == 1 && parse.IsUpper(word)
}

// LeftAbbreviation reports whether the last word of left, stripped of
// leading punctuation, is a known single-word abbreviation followed by a dot.
func (c *Classifier) LeftAbbreviation(left, _ string) bool {
	token := parse.LstToken(left)
	if parse.DotSuffix(token) == "" {
		return false
	}
	word := parse.OmitNonAlphaStart(strings.ToLower(c.parser.LstWord(token)))
	return c.tables.IsWord(word)
}

// PairAbbreviation reports whether a dot separates the two halves of a
// known pair, as in "т." | " е.".
func (c *Classifier) PairAbbreviation(left, right string) bool {
	if parse.DotSuffix(parse.LstToken(left)) == "" {
		return false
	}
	return c.isPair(left, right)
}

// LeftPairsTailAbbreviation reports whether left ends with the tail of a
// known pair ("т. п." or "т.п.") and right continues the sentence, meaning
// it starts lower-case or is an all-caps word.
func (c *Classifier) LeftPairsTailAbbreviation(left, right string) bool {
	if parse.DotSuffix(parse.LstToken(left)) == "" {
		return false
	}
	if !c.leftPairsTail(left) {
		return false
	}
	word := c.parser.FstWord(right)
	return parse.StartsWithLower(word) || (parse.IsUpper(word) && utf8.RuneCountInString(word) > 1)
}

// isPair joins the last word of a with the first word of b and looks the
// result up in the pair tables.
func (c *Classifier) isPair(a, b string) bool {
	head := parse.OmitNonAlphaStart(c.parser.LstWord(parse.LstToken(a)))
	tail := c.parser.FstWord(parse.FstToken(b))
	if head == "" || tail == "" {
		return false
	}
	return c.tables.IsPair(head, tail)
}

func (c *Classifier) leftPairsTail(left string) bool {
	last := c.parser.LstWord(left)
	if last == "" {
		return false
	}

	// The word before the last one, as in "т." of "т. п.".
	lastOfToken := c.parser.LstWord(parse.LstToken(left))
	rest := ""
	if i := strings.LastIndex(left, lastOfToken); i > 0 {
		rest = left[:i]
	}
	head := c.parser.Words(c.parser.LstWord(rest))
	if c.isPair(head, last) {
		return true
	}

	// Both halves glued into one token, as in "т.п.".
	parts := strings.Split(last, ".")
	return len(parts) >= 2 && c.isPair(parts[0], parts[1])
}

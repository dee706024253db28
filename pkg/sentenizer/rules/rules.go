// Package rules contains the named boundary predicates and the engine that
// combines them. Break rules are checked first and force a split; otherwise
// any join rule merges the two sides.
package rules

import (
	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/parse"
)

// Predicate inspects the left and right windows around a boundary.
type Predicate func(left, right string) bool

// Rule is a predicate with a name used in traces and decisions.
type Rule struct {
	Name string
	Eval Predicate
}

// Rule names.
const (
	SpaceBothSides              = "spaceBothSides"
	RightLacksSpacePrefix       = "rightLacksSpacePrefix"
	RightStartsWithLowercase    = "rightStartsWithLowercase"
	RightDelimiterPrefix        = "rightDelimiterPrefix"
	RightQuotationGenericPrefix = "rightQuotationGenericPrefix"
	RightQuotationClosePrefix   = "rightQuotationClosePrefix"
	RightBracketsClosePrefix    = "rightBracketsClosePrefix"
	RightOnlySpaces             = "rightOnlySpaces"
	LeftInitials                = "leftInitials"
	LeftAbbreviation            = "leftAbbreviation"
	PairAbbreviation            = "pairAbbreviation"
	LeftPairsTailAbbreviation   = "leftPairsTailAbbreviation"

	LeftEndsWithHardbreak        = "leftEndsWithHardbreak"
	RightStartsWithHardbreak     = "rightStartsWithHardbreak"
	RightStartsNewlineUppercased = "rightStartsNewlineUppercased"
)

// Joins returns the join rules in evaluation order.
func Joins(p *parse.Parser, c *abbrev.Classifier) []Rule {
	return []Rule{
		{SpaceBothSides, func(left, right string) bool {
			return parse.SpaceSuffix(p.Words(left)) != "" && parse.SpacePrefix(p.Words(right)) != ""
		}},
		{RightLacksSpacePrefix, func(_, right string) bool {
			return parse.SpacePrefix(p.Words(right)) == ""
		}},
		{RightStartsWithLowercase, func(_, right string) bool {
			return parse.StartsWithLower(parse.FstToken(right))
		}},
		{RightDelimiterPrefix, func(_, right string) bool {
			return p.DelimiterPrefix(parse.FstToken(right)) != ""
		}},
		{RightQuotationGenericPrefix, func(_, right string) bool {
			return p.QuotationGenericPrefix(right) != ""
		}},
		{RightQuotationClosePrefix, func(_, right string) bool {
			return p.QuotationClosePrefix(parse.FstToken(right)) != ""
		}},
		{RightBracketsClosePrefix, func(_, right string) bool {
			return p.BracketsClosePrefix(parse.FstToken(right)) != ""
		}},
		{RightOnlySpaces, func(_, right string) bool {
			return parse.Spaces(right) != ""
		}},
		{LeftInitials, c.LeftInitials},
		{LeftAbbreviation, c.LeftAbbreviation},
		{PairAbbreviation, c.PairAbbreviation},
		{LeftPairsTailAbbreviation, c.LeftPairsTailAbbreviation},
	}
}

// Breaks returns the break rules in evaluation order.
func Breaks() []Rule {
	return []Rule{
		{LeftEndsWithHardbreak, func(left, _ string) bool {
			return parse.EndsWithHardbreak(left)
		}},
		{RightStartsWithHardbreak, func(_, right string) bool {
			return parse.StartsWithHardbreak(right)
		}},
		{RightStartsNewlineUppercased, func(_, right string) bool {
			return parse.StartsWithNewline(right) && parse.StartsWithUpper(right[1:])
		}},
	}
}

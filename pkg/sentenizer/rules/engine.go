package rules

import (
	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/parse"
)

// Kind tells which rule group produced a decision.
type Kind int

const (
	KindDefault Kind = iota // no join rule fired
	KindBreak
	KindJoin
	KindParagraph // a paragraph separator sits on one side
)

func (k Kind) String() string {
	switch k {
	case KindBreak:
		return "break"
	case KindJoin:
		return "join"
	case KindParagraph:
		return "paragraph"
	default:
		return "default"
	}
}

// Decision is the outcome for a single boundary.
type Decision struct {
	Split bool
	Kind  Kind
	Rule  string // name of the deciding rule, empty for KindDefault
}

// Tracer observes every rule evaluation.
// Implementations shared between goroutines must be safe for concurrent use.
type Tracer interface {
	Trace(rule, left, right string, result bool)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(rule, left, right string, result bool)

// Trace calls f(rule, left, right, result).
func (f TracerFunc) Trace(rule, left, right string, result bool) {
	f(rule, left, right, result)
}

// Engine evaluates break and join rules over a pair of windows.
type Engine struct {
	breaks []Rule
	joins  []Rule
	tracer Tracer
}

// NewEngine creates an engine with the standard rule set.
// The tracer may be nil.
func NewEngine(p *parse.Parser, c *abbrev.Classifier, tracer Tracer) *Engine {
	return NewEngineWithRules(Breaks(), Joins(p, c), tracer)
}

// NewEngineWithRules creates an engine over custom rule lists.
func NewEngineWithRules(breaks, joins []Rule, tracer Tracer) *Engine {
	return &Engine{breaks: breaks, joins: joins, tracer: tracer}
}

// Decide resolves one boundary. It stops at the first rule that fires.
func (e *Engine) Decide(left, right string) Decision {
	if name, ok := e.first(e.breaks, left, right); ok {
		return Decision{Split: true, Kind: KindBreak, Rule: name}
	}
	if name, ok := e.first(e.joins, left, right); ok {
		return Decision{Split: false, Kind: KindJoin, Rule: name}
	}
	return Decision{Split: true, Kind: KindDefault}
}

// Breaks reports whether any break rule holds.
func (e *Engine) Breaks(left, right string) bool {
	_, ok := e.first(e.breaks, left, right)
	return ok
}

// Joins reports whether any join rule holds.
func (e *Engine) Joins(left, right string) bool {
	_, ok := e.first(e.joins, left, right)
	return ok
}

// Rules returns the names of the break and join rules in evaluation order.
func (e *Engine) Rules() (breaks, joins []string) {
	for _, r := range e.breaks {
		breaks = append(breaks, r.Name)
	}
	for _, r := range e.joins {
		joins = append(joins, r.Name)
	}
	return breaks, joins
}

func (e *Engine) first(rules []Rule, left, right string) (string, bool) {
	for _, r := range rules {
		ok := r.Eval(left, right)
		if e.tracer != nil {
			e.tracer.Trace(r.Name, left, right, ok)
		}
		if ok {
			return r.Name, true
		}
	}
	return "", false
}

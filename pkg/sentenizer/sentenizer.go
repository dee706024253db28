// Package sentenizer splits text into sentences with a rule-based engine.
//
// The text is cut after every run of sentence-end markers. Each cut is then
// judged by looking at a small window on both sides: break rules force a
// split, join rules (abbreviations, initials, lower-case continuation,
// closing quotes and brackets) glue the pieces back together. The output
// always concatenates back to the input.
package sentenizer

import (
	"fmt"
	"sync"

	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
	"github.com/cognicore/sentenizer/pkg/sentenizer/parse"
	"github.com/cognicore/sentenizer/pkg/sentenizer/rules"
)

// ParagraphRule names decisions forced by a paragraph separator.
const ParagraphRule = "paragraph"

// Options configures a Sentenizer. Zero values select the defaults.
type Options struct {
	Window  int            // code points per side, parse.DefaultWindow when 0
	Markers parse.Markers  // empty classes fall back to parse.DefaultMarkers
	Tables  *abbrev.Tables // abbrev.Default() when nil
	Tracer  rules.Tracer   // optional
}

// Sentenizer is immutable and safe for concurrent use as long as the
// tracer is.
type Sentenizer struct {
	window int
	parser *parse.Parser
	engine *rules.Engine
	tables *abbrev.Tables
}

// Sentence is a segment of the input with its byte offsets.
type Sentence struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Boundary is a decision taken at byte Offset of the input.
type Boundary struct {
	Offset int
	Left   string // left window
	Right  string // right window
	rules.Decision
}

// New validates opts and builds a Sentenizer.
func New(opts Options) (*Sentenizer, error) {
	if opts.Window < 0 {
		return nil, fmt.Errorf("%w: window must not be negative, got %d", internalerr.ErrInvalidConfig, opts.Window)
	}
	if opts.Window == 0 {
		opts.Window = parse.DefaultWindow
	}

	markers := opts.Markers.WithDefaults()
	if err := markers.Validate(); err != nil {
		return nil, err
	}

	tables := opts.Tables
	if tables == nil {
		tables = abbrev.Default()
	}

	parser := parse.New(markers)
	classifier := abbrev.NewClassifier(parser, tables)

	return &Sentenizer{
		window: opts.Window,
		parser: parser,
		engine: rules.NewEngine(parser, classifier, opts.Tracer),
		tables: tables,
	}, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts Options) *Sentenizer {
	s, err := New(opts)
	if err != nil {
		panic(err)
	}
	return s
}

var defaultSentenizer = sync.OnceValue(func() *Sentenizer {
	return MustNew(Options{})
})

// Default returns the shared Sentenizer with built-in configuration.
func Default() *Sentenizer {
	return defaultSentenizer()
}

// Sentenize splits text using the default configuration.
func Sentenize(text string) []string {
	return Default().Sentenize(text)
}

// Window returns the configured window width.
func (s *Sentenizer) Window() int { return s.window }

// Markers returns the active marker classes.
func (s *Sentenizer) Markers() parse.Markers { return s.parser.Markers() }

// Tables returns the active abbreviation tables.
func (s *Sentenizer) Tables() *abbrev.Tables { return s.tables }

// Sentenize splits text into sentences. The empty string yields no sentences.
func (s *Sentenizer) Sentenize(text string) []string {
	segments := s.Segment(text)
	out := make([]string, len(segments))
	for i, seg := range segments {
		out[i] = seg.Text
	}
	return out
}

// Segment splits text into sentences and keeps their offsets.
func (s *Sentenizer) Segment(text string) []Sentence {
	var out []Sentence
	s.walk(text, func(sent Sentence) { out = append(out, sent) }, nil)
	return out
}

// Explain returns the decision taken at every boundary between chunks.
func (s *Sentenizer) Explain(text string) []Boundary {
	var out []Boundary
	s.walk(text, nil, func(b Boundary) { out = append(out, b) })
	return out
}

// walk runs the assembler: it accumulates chunks into the current sentence
// until a boundary resolves to a split.
func (s *Sentenizer) walk(text string, emit func(Sentence), decided func(Boundary)) {
	var (
		left    parse.Chunk
		started bool
	)
	flush := func() {
		if emit != nil {
			emit(Sentence{Text: text[left.Start:left.End], Start: left.Start, End: left.End})
		}
	}

	for _, right := range s.parser.Chunks(text) {
		if !started {
			left, started = right, true
			continue
		}

		b := Boundary{Offset: right.Start}
		if left.Separator || right.Separator {
			b.Decision = rules.Decision{Split: true, Kind: rules.KindParagraph, Rule: ParagraphRule}
		} else {
			b.Left = parse.LeftWindow(text[left.Start:left.End], s.window)
			b.Right = parse.RightWindow(right.Text, s.window)
			b.Decision = s.engine.Decide(b.Left, b.Right)
		}
		if decided != nil {
			decided(b)
		}

		if b.Split {
			flush()
			left = right
			continue
		}
		left.End = right.End
		left.Text = text[left.Start:left.End]
	}

	if started {
		flush()
	}
}

// Verdict returns "split" or "join" and the deciding rule name,
// with "-" standing in when no rule fired.
func (b Boundary) Verdict() (verdict, rule string) {
	verdict = "join"
	if b.Split {
		verdict = "split"
	}
	rule = b.Rule
	if rule == "" {
		rule = "-"
	}
	return verdict, rule
}

// String renders the boundary for diagnostics.
func (b Boundary) String() string {
	verdict, rule := b.Verdict()
	return fmt.Sprintf("%d\t%s\t%s/%s\t%q | %q", b.Offset, verdict, b.Kind, rule, b.Left, b.Right)
}

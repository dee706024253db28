// Package trace provides rules.Tracer implementations for diagnosing
// segmentation decisions.
package trace

import (
	"crypto/rand"
	"io"
	"log"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Event is a single rule evaluation.
type Event struct {
	RunID  string `json:"run_id"`
	Seq    int    `json:"seq"`
	Rule   string `json:"rule"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	Result bool   `json:"result"`
}

// Recorder collects rule evaluations grouped into runs. Each run is
// identified by a ULID so events from several inputs can be told apart.
type Recorder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	runID   string
	events  []Event
}

// NewRecorder creates a recorder and starts its first run.
func NewRecorder() *Recorder {
	r := &Recorder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	r.Begin()
	return r
}

// Begin starts a new run and returns its id.
func (r *Recorder) Begin() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runID = ulid.MustNew(ulid.Now(), r.entropy).String()
	return r.runID
}

// RunID returns the id of the current run.
func (r *Recorder) RunID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runID
}

// Trace implements rules.Tracer.
func (r *Recorder) Trace(rule, left, right string, result bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		RunID:  r.runID,
		Seq:    len(r.events),
		Rule:   rule,
		Left:   left,
		Right:  right,
		Result: result,
	})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Fired returns the names of rules that evaluated to true, in order.
func (r *Recorder) Fired() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for _, e := range r.events {
		if e.Result {
			names = append(names, e.Rule)
		}
	}
	return names
}

// Reset drops recorded events but keeps the current run.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// LogTracer writes every evaluation to a logger.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer logs to w with a "trace: " prefix.
func NewLogTracer(w io.Writer) *LogTracer {
	return &LogTracer{logger: log.New(w, "trace: ", 0)}
}

// Trace implements rules.Tracer.
func (t *LogTracer) Trace(rule, left, right string, result bool) {
	t.logger.Printf("%s [%q %q] %t", rule, left, right, result)
}

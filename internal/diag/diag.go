// Package diag defines the diagnostic records produced by the verifier and
// a thread-safe reporter that collects them for later rendering.
package diag

import (
	"fmt"
	"io"
	"sync"
)

// KeyIndentationError is the message key of line-wrap indentation findings.
const KeyIndentationError = "indentation.error"

// Diagnostic is a single finding. Positions are 0-based, matching the
// syntax tree they were computed from.
type Diagnostic struct {
	Line           int
	Token          string
	ActualColumn   int
	RequiredColumn int
	Key            string
}

// Sink receives diagnostics in the order the verifier produces them.
type Sink interface {
	Report(d Diagnostic)
}

// Reporter is a Sink collecting diagnostics. Safe for concurrent use.
type Reporter struct {
	mu    sync.Mutex
	found []Diagnostic
}

var _ Sink = (*Reporter)(nil)

// Report adds a new record to the reporter.
func (r *Reporter) Report(d Diagnostic) {
	r.mu.Lock()
	r.found = append(r.found, d)
	r.mu.Unlock()
}

// Diagnostics returns a snapshot of all collected records.
func (r *Reporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.found))
	copy(out, r.found)
	return out
}

// Len returns the number of collected records.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.found)
}

// WriteSummary renders all collected records in a compact, human-readable
// form, one per line. Line and column numbers are printed 1-based.
func (r *Reporter) WriteSummary(w io.Writer, path string) {
	for _, d := range r.Diagnostics() {
		fmt.Fprintf(w, "%s:%d:%d: %q has incorrect indentation level %d, expected level should be %d (%s)\n",
			path,
			d.Line+1,
			d.ActualColumn+1,
			d.Token,
			d.ActualColumn,
			d.RequiredColumn,
			d.Key)
	}
}

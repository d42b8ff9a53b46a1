package errors

import (
	"encoding/json"
	"fmt"

	"github.com/sunholo/magc/internal/ast"
)

// Severity is the level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// Report is one diagnostic: a code, a phase, a message, a span, and an
// optional hint. It is the unit the reporter accumulates and the unit a
// language-server front end re-encodes over its own transport.
type Report struct {
	Schema   string    `json:"schema"`
	Code     string    `json:"code"`
	Phase    string    `json:"phase"`
	Severity Severity  `json:"-"`
	Message  string    `json:"message"`
	Span     *ast.Span `json:"span,omitempty"`
	Hint     string    `json:"hint,omitempty"`
}

const schemaVersion = "magc.diagnostic/v1"

// MarshalJSON encodes the severity as its string form; everything else
// follows the struct tags.
func (r Report) MarshalJSON() ([]byte, error) {
	type alias Report
	return json.Marshal(struct {
		alias
		SeverityName string `json:"severity"`
	}{alias(r), r.Severity.String()})
}

// Render formats a Report the way the CLI prints it to stderr:
//
//	severity: message
//	  --> file:line:col
//	  = help: hint
func (r Report) Render() string {
	out := fmt.Sprintf("%s: %s", r.Severity, r.Message)
	if r.Span != nil {
		out += fmt.Sprintf("\n  --> %s", r.Span.String())
	}
	if r.Hint != "" {
		out += fmt.Sprintf("\n  = help: %s", r.Hint)
	}
	return out
}

// Reporter accumulates diagnostics across a phase and never aborts on its
// own; callers check HasError() at phase boundaries.
type Reporter struct {
	phase string
	items []Report
}

// NewReporter creates a Reporter tagging every diagnostic it collects with
// phase (e.g. "lexer", "parser", "typecheck").
func NewReporter(phase string) *Reporter {
	return &Reporter{phase: phase}
}

func (r *Reporter) add(sev Severity, code, msg string, span *ast.Span, hint string) {
	r.items = append(r.items, Report{
		Schema: schemaVersion, Code: code, Phase: r.phase, Severity: sev,
		Message: msg, Span: span, Hint: hint,
	})
}

// Error records an error-severity diagnostic.
func (r *Reporter) Error(code, msg string, span *ast.Span, hint string) {
	r.add(SeverityError, code, msg, span, hint)
}

// Warning records a warning-severity diagnostic.
func (r *Reporter) Warning(code, msg string, span *ast.Span, hint string) {
	r.add(SeverityWarning, code, msg, span, hint)
}

// Note records an informational diagnostic.
func (r *Reporter) Note(code, msg string, span *ast.Span, hint string) {
	r.add(SeverityNote, code, msg, span, hint)
}

// HasError reports whether any error-severity diagnostic has been
// collected so far.
func (r *Reporter) HasError() bool {
	for _, it := range r.items {
		if it.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Drain returns the accumulated diagnostics in the order they were
// reported (source order, since every phase visits its input in a single
// deterministic pass).
func (r *Reporter) Drain() []Report {
	return append([]Report(nil), r.items...)
}

// Merge appends another reporter's diagnostics into this one, preserving
// order.
func (r *Reporter) Merge(other *Reporter) {
	r.items = append(r.items, other.items...)
}

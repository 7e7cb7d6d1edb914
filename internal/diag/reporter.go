package diag

import (
	"fmt"
	"go/token"
	"io"
	"sort"
	"sync"

	"github.com/sirkon/smarterr/internal/rules"
)

// Reporter collects diagnostics of a single package run.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    Phase
	Severity Severity
	Rule     rules.Rule
	Pos      token.Pos
	End      token.Pos
	Message  string
}

// Phase marks the pipeline stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseCollect       // directive discovery
	PhaseParse         // directive grammar
	PhaseResolve       // set resolution
	PhaseVerify        // registry checks
	PhaseEmit          // code emission
	PhaseAttach        // template rewriting
)

func (p Phase) String() string {
	switch p {
	case PhaseCollect:
		return "collect"
	case PhaseParse:
		return "parse"
	case PhaseResolve:
		return "resolve"
	case PhaseVerify:
		return "verify"
	case PhaseEmit:
		return "emit"
	case PhaseAttach:
		return "attach"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// Severity of a report.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}

	return "error"
}

// ReporterPhase binds a Reporter to a fixed phase.
type ReporterPhase struct {
	parent *Reporter
	phase  Phase
}

// Phase returns a reporter that sets the given phase for all reports made through it.
func (r *Reporter) Phase(p Phase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Errorf records an error under the bound phase.
func (rp *ReporterPhase) Errorf(rule rules.Rule, pos, end token.Pos, format string, a ...any) {
	rp.Report(SeverityError, rule, pos, end, fmt.Sprintf(format, a...))
}

// Warnf records a warning under the bound phase.
func (rp *ReporterPhase) Warnf(rule rules.Rule, pos, end token.Pos, format string, a ...any) {
	rp.Report(SeverityWarning, rule, pos, end, fmt.Sprintf(format, a...))
}

// Report records a rule violation under the bound phase.
func (rp *ReporterPhase) Report(severity Severity, rule rules.Rule, pos, end token.Pos, message string) {
	rp.parent.Report(Report{
		Phase:    rp.phase,
		Severity: severity,
		Rule:     rule,
		Pos:      pos,
		End:      end,
		Message:  message,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of collected records. It is used as a mark to check
// whether some step produced errors later on.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// ErrorsSince checks if any error was reported after the given mark.
func (r *Reporter) ErrorsSince(mark int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rep := range r.reports[mark:] {
		if rep.Severity == SeverityError {
			return true
		}
	}

	return false
}

// HasErrors checks if any error was reported at all.
func (r *Reporter) HasErrors() bool {
	return r.ErrorsSince(0)
}

// Sorted returns reports ordered by position.
func (r *Reporter) Sorted() []Report {
	reps := r.Reports()
	sort.SliceStable(reps, func(i, j int) bool {
		return reps[i].Pos < reps[j].Pos
	})
	return reps
}

// PrintSummary prints all collected reports in the file:line:col form.
func (r *Reporter) PrintSummary(w io.Writer, fset *token.FileSet) {
	for _, rep := range r.Sorted() {
		fmt.Fprintln(w, rep.Format(fset))
	}
}

// Format renders the report as "file:line:col: severity SER000: message".
func (rep Report) Format(fset *token.FileSet) string {
	return fmt.Sprintf("%s: %s %s: %s", fset.Position(rep.Pos), rep.Severity, rep.Rule.Code(), rep.Message)
}

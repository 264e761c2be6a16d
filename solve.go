package dpllsat

import (
	"os"
	"time"

	"github.com/kr/pretty"
)

// Result is a solver verdict.
type Result int

const (
	UNSAT Result = iota
	SAT
)

func (r Result) String() string {
	if r == SAT {
		return "SAT"
	}
	return "UNSAT"
}

// Stats holds the three observability counters named in the solver design:
// the number of recursive DPLL invocations, the number of unit propagations
// performed (including one that ends in a conflict), and the number of
// backtracks (failed branches). They are
// local to one Solve call; the package keeps no process-wide state, so two
// concurrent Solve calls do not interfere with each other's counters.
type Stats struct {
	DPLLCalls        int64
	UnitPropagations int64
	Backtracks       int64
}

// Options controls solver tracing. The zero value runs silently.
type Options struct {
	// Debug enables periodic progress tracing to stderr, printing the
	// counters, the current clause count, and a pretty-printed assignment
	// at most once every two seconds,
	// mirroring the reference source's print_status_update.
	Debug bool
}

// SolveResult is the outcome of a Solve call.
type SolveResult struct {
	Status     Result
	Assignment Assignment // nil unless Status == SAT
	Stats      Stats
}

// Solve decides whether f is satisfiable and, if so, produces a model. The
// input formula is not modified; Solve works on a clone.
func Solve(f *Formula, opts Options) *SolveResult {
	a := NewAssignment(f.NumVars)
	st := &Stats{}
	tr := newTracer(opts.Debug)
	status := dpll(f.Clone(), a, st, tr)
	res := &SolveResult{Status: status, Stats: *st}
	if status == SAT {
		res.Assignment = a
	}
	return res
}

// dpll is the recursive DPLL search. f is owned by this call: it is read,
// possibly cloned for each branch, and then discarded. a is shared with the
// whole call tree and mutated in place; callers that branch must snapshot
// it first and restore it on failure.
//
// The branch literal's variable comes from the Jeroslow-Wang heuristic, but
// branch order does not follow the heuristic's chosen sign: true is always
// tried before false, matching the reference implementation's behavior.
func dpll(f *Formula, a Assignment, st *Stats, tr *tracer) Result {
	st.DPLLCalls++

	var ok bool
	f, ok = unitPropagate(f, a, &st.UnitPropagations)
	if !ok {
		return UNSAT
	}
	if len(f.Clauses) == 0 {
		return SAT
	}
	for _, c := range f.Clauses {
		if c.Empty() {
			return UNSAT
		}
	}

	l := heuristic(f)
	if l == 0 {
		// No literal survives in a nonempty clause set: nothing to branch
		// on, so this branch cannot be satisfied.
		return UNSAT
	}
	v := l.Var()

	tr.trace(f, a, st)

	a0 := a.Clone()

	if fPos, ok := Propagate(f.Clone(), Lit(v), a); ok {
		if dpll(fPos, a, st, tr) == SAT {
			return SAT
		}
	}
	copy(a, a0)
	st.Backtracks++

	if fNeg, ok := Propagate(f.Clone(), Lit(-v), a); ok {
		if dpll(fNeg, a, st, tr) == SAT {
			return SAT
		}
	}
	copy(a, a0)
	st.Backtracks++

	return UNSAT
}

// Complete fills in an arbitrary value, true, for every variable Solve left
// Unassigned (variables that dropped out of the formula before the search
// terminated still need a value to produce a total model). This matches
// the result writer's documented behavior of outputting true for
// unassigned variables.
func (a Assignment) Complete() {
	for v := 1; v < len(a); v++ {
		if a[v] == Unassigned {
			a[v] = True
		}
	}
}

// tracer prints periodic solver progress when enabled, at most once every
// two seconds, the same cadence as the reference source's status updates.
type tracer struct {
	enabled bool
	last    time.Time
}

func newTracer(enabled bool) *tracer {
	return &tracer{enabled: enabled}
}

func (t *tracer) trace(f *Formula, a Assignment, st *Stats) {
	if !t.enabled {
		return
	}
	now := time.Now()
	if !t.last.IsZero() && now.Sub(t.last) < 2*time.Second {
		return
	}
	t.last = now
	pretty.Fprintf(os.Stderr, "dpll calls=%d propagations=%d backtracks=%d clauses=%d assignment=%# v\n",
		st.DPLLCalls, st.UnitPropagations, st.Backtracks, len(f.Clauses), a)
}

// Package dpllsat implements a DPLL SAT solver: iterated unit propagation
// interleaved with a branching decision, using a Jeroslow-Wang heuristic to
// pick the branch variable. Given a CNF formula it decides satisfiability
// and, when satisfiable, produces a satisfying assignment; variables the
// search left Unassigned are filled in by Assignment.Complete.
//
// The solver does not implement clause learning, watched-literal
// propagation, restarts, or preprocessing; it is the textbook recursive
// DPLL procedure with full formula copies on each branch.
package dpllsat

package dpllsat

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// genFormula draws a small random CNF formula (at most 6 variables, at
// most 8 clauses of length at most 3) small enough for exhaustive
// enumeration to check against.
func genFormula(t *rapid.T) *Formula {
	numVars := rapid.IntRange(1, 6).Draw(t, "numVars")
	numClauses := rapid.IntRange(0, 8).Draw(t, "numClauses")
	clauses := make([][]int, numClauses)
	for i := range clauses {
		clauseLen := rapid.IntRange(1, 3).Draw(t, fmt.Sprintf("clauseLen%d", i))
		clause := make([]int, clauseLen)
		for j := range clause {
			v := rapid.IntRange(1, numVars).Draw(t, fmt.Sprintf("var%d_%d", i, j))
			if rapid.Bool().Draw(t, fmt.Sprintf("sign%d_%d", i, j)) {
				v = -v
			}
			clause[j] = v
		}
		clauses[i] = clause
	}
	f, err := NewFormula(numVars, clauses)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// bruteForceSAT decides f's satisfiability by enumerating every total
// assignment; only viable for the small variable counts genFormula draws.
func bruteForceSAT(f *Formula) bool {
	n := f.NumVars
	a := NewAssignment(n)
	for bits := 0; bits < 1<<uint(n); bits++ {
		for v := 1; v <= n; v++ {
			if bits&(1<<uint(v-1)) != 0 {
				a[v] = True
			} else {
				a[v] = False
			}
		}
		if f.Satisfies(a) {
			return true
		}
	}
	return n == 0
}

// bruteForceSATWithLit decides whether f conjoined with the unit literal
// lit is satisfiable, by enumeration over assignments consistent with lit.
func bruteForceSATWithLit(f *Formula, lit int) bool {
	n := f.NumVars
	v := lit
	want := True
	if v < 0 {
		v = -v
		want = False
	}
	for bits := 0; bits < 1<<uint(n); bits++ {
		a := NewAssignment(n)
		for i := 1; i <= n; i++ {
			if bits&(1<<uint(i-1)) != 0 {
				a[i] = True
			} else {
				a[i] = False
			}
		}
		if a.Get(Var(v)) != want {
			continue
		}
		if f.Satisfies(a) {
			return true
		}
	}
	return false
}

func TestPropertySoundnessOfSAT(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genFormula(t)
		res := Solve(f, Options{})
		if res.Status != SAT {
			return
		}
		a := res.Assignment.Clone()
		a.Complete()
		if !f.Satisfies(a) {
			t.Fatalf("Solve reported SAT with an assignment that does not satisfy the formula")
		}
	})
}

func TestPropertySoundnessOfUNSATExhaustive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genFormula(t)
		res := Solve(f, Options{})
		sat := bruteForceSAT(f)
		switch res.Status {
		case UNSAT:
			if sat {
				t.Fatalf("Solve reported UNSAT but exhaustive enumeration found a model")
			}
		case SAT:
			if !sat {
				t.Fatalf("Solve reported SAT but exhaustive enumeration found none")
			}
		}
	})
}

func TestPropertyPropagationEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genFormula(t)
		if f.NumVars == 0 {
			return
		}
		v := rapid.IntRange(1, f.NumVars).Draw(t, "v")
		lit := v
		if rapid.Bool().Draw(t, "negate") {
			lit = -lit
		}

		a := NewAssignment(f.NumVars)
		out, ok := Propagate(f.Clone(), Lit(lit), a)
		wantSat := bruteForceSATWithLit(f, lit)

		if !ok {
			if wantSat {
				t.Fatalf("Propagate(F, %d) conflicted, but F and %d is satisfiable", lit, lit)
			}
			return
		}
		gotSat := bruteForceSAT(out)
		if gotSat != wantSat {
			t.Fatalf("Propagate(F, %d) satisfiable=%v, but F and %d satisfiable=%v", lit, gotSat, lit, wantSat)
		}
	})
}

func TestPropertyUnitPropagationIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genFormula(t)
		a := NewAssignment(f.NumVars)
		var count1 int64
		out, ok := unitPropagate(f, a, &count1)
		if !ok {
			return
		}
		var count2 int64
		out2, ok2 := unitPropagate(out, a.Clone(), &count2)
		if !ok2 {
			t.Fatal("re-running unit propagation on a fixpoint found a conflict")
		}
		if count2 != 0 {
			t.Fatalf("re-running unit propagation on a fixpoint performed %d propagations, want 0", count2)
		}
		if len(out.Clauses) != len(out2.Clauses) {
			t.Fatalf("unit propagation is not idempotent: %d clauses then %d", len(out.Clauses), len(out2.Clauses))
		}
	})
}

func TestPropertyDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genFormula(t)
		first := Solve(f, Options{})
		second := Solve(f, Options{})
		if first.Status != second.Status {
			t.Fatalf("same formula produced %s then %s", first.Status, second.Status)
		}
		if first.Status != SAT {
			return
		}
		first.Assignment.Complete()
		second.Assignment.Complete()
		for v := 1; v <= f.NumVars; v++ {
			if first.Assignment.Get(Var(v)) != second.Assignment.Get(Var(v)) {
				t.Fatalf("var %d assigned differently across repeated runs", v)
			}
		}
	})
}

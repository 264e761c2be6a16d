package dpllsat

// Propagate makes l true in a (its variable takes the value implied by l's
// sign) and rewrites f accordingly: a clause containing l is satisfied and
// dropped; a clause containing -l has -l removed; any other clause is
// carried over unchanged, sharing its storage with f. It reports ok=false if
// any resulting clause is empty (a conflict), in which case a's mutation is
// retained — the caller is expected to hold a snapshot taken before the
// call if it needs to undo the assignment.
//
// Propagate does not itself look for unit clauses; the caller's
// unit-propagation loop discovers them by scanning the returned formula.
func Propagate(f *Formula, l Lit, a Assignment) (out *Formula, ok bool) {
	a.Set(l)
	neg := l.Negate()

	out = &Formula{NumVars: f.NumVars, Clauses: make([]Clause, 0, len(f.Clauses))}
	for _, c := range f.Clauses {
		if containsLit(c, l) {
			continue
		}
		if containsLit(c, neg) {
			reduced := make(Clause, 0, len(c)-1)
			for _, lit := range c {
				if lit != neg {
					reduced = append(reduced, lit)
				}
			}
			if len(reduced) == 0 {
				return out, false
			}
			out.Clauses = append(out.Clauses, reduced)
			continue
		}
		if len(c) == 0 {
			return out, false
		}
		out.Clauses = append(out.Clauses, c)
	}
	return out, true
}

func containsLit(c Clause, l Lit) bool {
	for _, lit := range c {
		if lit == l {
			return true
		}
	}
	return false
}

// unitPropagate repeatedly finds the first unit clause in f (left to right)
// and propagates it, restarting the scan after each propagation, until no
// unit clause remains or a conflict is found. It reports ok=false on
// conflict. count is incremented once per propagation performed, including
// one that ends in a conflict, matching the unit-propagation counter of the
// DPLL engine's statistics.
func unitPropagate(f *Formula, a Assignment, count *int64) (out *Formula, ok bool) {
	out = f
	for {
		idx := -1
		for i, c := range out.Clauses {
			if c.Unit() {
				idx = i
				break
			}
		}
		if idx == -1 {
			return out, true
		}
		u := out.Clauses[idx][0]
		var propagated bool
		out, propagated = Propagate(out, u, a)
		*count++
		if !propagated {
			return out, false
		}
	}
}

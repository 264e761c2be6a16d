package dpllsat

import "sort"

// heuristic selects the next branch literal using the Jeroslow-Wang
// weighting: for every literal in every surviving clause of length k, a
// weight of 2^-k accumulates onto that literal's variable, split by sign.
// The literal (positive or negative) with the largest weight is chosen; ties
// are broken by increasing variable number for reproducibility, and a
// variable's positive literal is preferred over its negative one whenever
// their weights are equal.
//
// It returns 0 only when f has no literals at all (every remaining clause
// is, impossibly, empty — callers test for the empty-clause-list and
// empty-clause terminal conditions before reaching the heuristic, so this
// case does not arise in ordinary use of the DPLL engine).
func heuristic(f *Formula) Lit {
	pos := make(map[Var]float64)
	neg := make(map[Var]float64)
	var order []Var
	seen := make(map[Var]bool)

	for _, c := range f.Clauses {
		weight := jwWeight(len(c))
		for _, l := range c {
			v := l.Var()
			if !seen[v] {
				seen[v] = true
				order = append(order, v)
			}
			if l.Positive() {
				pos[v] += weight
			} else {
				neg[v] += weight
			}
		}
	}

	if len(order) == 0 {
		return 0
	}

	sortVars(order)

	best := order[0]
	bestWeight := maxWeight(pos[best], neg[best])
	for _, v := range order[1:] {
		w := maxWeight(pos[v], neg[v])
		if w > bestWeight {
			best = v
			bestWeight = w
		}
	}

	if pos[best] >= neg[best] {
		return Lit(best)
	}
	return Lit(-best)
}

func jwWeight(clauseLen int) float64 {
	if clauseLen <= 0 {
		return 0
	}
	w := 1.0
	for i := 0; i < clauseLen; i++ {
		w /= 2
	}
	return w
}

func maxWeight(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func sortVars(vs []Var) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}

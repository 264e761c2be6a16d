package dpllsat

import "math/rand"

// GenerateFull produces a complete, valid 9x9 Sudoku solution by randomized
// backtracking, seeding the diagonal boxes first to broaden the search
// before falling back to a bare backtracking fill. This is a classical
// constructive search unrelated to the CNF-based DPLL core; it exists so
// the CLI's "generate and solve" mode has a puzzle to hand the encoder.
func GenerateFull(rng *rand.Rand) Grid {
	var g Grid
	for box := 0; box < 3; box++ {
		start := box * 3
		nums := rng.Perm(9)
		i := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				g[start+dr][start+dc] = nums[i] + 1
				i++
			}
		}
	}
	backtrackFill(&g, rng)
	return g
}

func backtrackFill(g *Grid, rng *rand.Rand) bool {
	row, col, found := -1, -1, false
	for r := 0; r < 9 && !found; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				row, col, found = r, c, true
				break
			}
		}
	}
	if !found {
		return true
	}
	for _, d := range rng.Perm(9) {
		d++
		if isValidPlacement(g, row, col, d) {
			g[row][col] = d
			if backtrackFill(g, rng) {
				return true
			}
			g[row][col] = 0
		}
	}
	return false
}

func isValidPlacement(g *Grid, row, col, d int) bool {
	for i := 0; i < 9; i++ {
		if g[row][i] == d || g[i][col] == d {
			return false
		}
	}
	boxRow, boxCol := (row/3)*3, (col/3)*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if g[r][c] == d {
				return false
			}
		}
	}
	return true
}

// DigHoles removes holes cells from a complete grid by clearing random
// cells, keeping a clear only when the grid still has a solution (checked
// by re-running the backtracking solver, not the SAT encoder — digging a
// puzzle is driver-level glue, independent of the DPLL core's uniqueness
// guarantees). At least 17 clues are kept, the minimum known to determine a
// unique Sudoku solution.
func DigHoles(g Grid, holes int, rng *rand.Rand) Grid {
	const minClues = 17
	if holes > 81-minClues {
		holes = 81 - minClues
	}
	dug := 0
	for dug < holes {
		r, c := rng.Intn(9), rng.Intn(9)
		if g[r][c] == 0 {
			continue
		}
		saved := g[r][c]
		g[r][c] = 0
		trial := g
		if backtrackFill(&trial, rng) {
			dug++
		} else {
			g[r][c] = saved
		}
	}
	return g
}

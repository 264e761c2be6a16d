package dpllsat

import "fmt"

// Grid is a 9x9 Sudoku board. Zero denotes an empty cell; 1-9 denote
// filled digits.
type Grid [9][9]int

// sudokuVar maps cell (r, c) holding digit d (1-9) to the Sudoku-to-CNF
// encoding's variable number, as specified: var(r,c,d) = 81r + 9c + d.
func sudokuVar(r, c, d int) Var {
	return Var(81*r + 9*c + d)
}

// NumSudokuVars is the variable count of a 9x9 Sudoku encoding: one
// proposition per (cell, digit) pair.
const NumSudokuVars = 9 * 9 * 9

// EncodeSudoku reduces a 9x9 grid to a CNF formula over 729 variables using
// the standard exactly-one encodings: for every cell, row, column, and box,
// an at-least-one clause plus all pairwise at-most-one clauses, plus one
// unit clause per filled (hint) cell.
func EncodeSudoku(g Grid) *Formula {
	f := &Formula{NumVars: NumSudokuVars}

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			f.Clauses = append(f.Clauses, exactlyOne(func(i int) Var { return sudokuVar(r, c, i+1) })...)
		}
	}
	for r := 0; r < 9; r++ {
		for d := 1; d <= 9; d++ {
			f.Clauses = append(f.Clauses, exactlyOne(func(c int) Var { return sudokuVar(r, c, d) })...)
		}
	}
	for c := 0; c < 9; c++ {
		for d := 1; d <= 9; d++ {
			f.Clauses = append(f.Clauses, exactlyOne(func(r int) Var { return sudokuVar(r, c, d) })...)
		}
	}
	for box := 0; box < 9; box++ {
		boxRow, boxCol := (box/3)*3, (box%3)*3
		for d := 1; d <= 9; d++ {
			f.Clauses = append(f.Clauses, exactlyOne(func(i int) Var {
				r, c := boxRow+i/3, boxCol+i%3
				return sudokuVar(r, c, d)
			})...)
		}
	}

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if d := g[r][c]; d != 0 {
				f.Clauses = append(f.Clauses, Clause{Lit(sudokuVar(r, c, d))})
			}
		}
	}

	return f
}

// exactlyOne builds the 1 "at-least-one" clause and 36 pairwise
// "at-most-one" clauses for nine propositions var(0)..var(8), the shape
// shared by every cell/row/column/box constraint in the encoding.
func exactlyOne(varAt func(i int) Var) []Clause {
	clauses := make([]Clause, 0, 1+36)
	atLeast := make(Clause, 9)
	for i := 0; i < 9; i++ {
		atLeast[i] = Lit(varAt(i))
	}
	clauses = append(clauses, atLeast)
	for i := 0; i < 9; i++ {
		for j := i + 1; j < 9; j++ {
			clauses = append(clauses, Clause{-Lit(varAt(i)), -Lit(varAt(j))})
		}
	}
	return clauses
}

// DecodeSudoku reads a satisfying assignment produced by solving
// EncodeSudoku's formula back into a grid. For every cell, exactly one
// digit's variable is guaranteed true by the encoding; DecodeSudoku takes
// the first one it finds.
func DecodeSudoku(a Assignment) Grid {
	var g Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for d := 1; d <= 9; d++ {
				if a.Get(sudokuVar(r, c, d)) == True {
					g[r][c] = d
					break
				}
			}
		}
	}
	return g
}

// Valid reports whether g satisfies the Sudoku row/column/box rules:
// filled cells only, no digit repeated in any row, column, or 3x3 box.
func (g Grid) Valid() bool {
	for r := 0; r < 9; r++ {
		if !noRepeats(func(i int) int { return g[r][i] }) {
			return false
		}
	}
	for c := 0; c < 9; c++ {
		if !noRepeats(func(i int) int { return g[i][c] }) {
			return false
		}
	}
	for box := 0; box < 9; box++ {
		boxRow, boxCol := (box/3)*3, (box%3)*3
		if !noRepeats(func(i int) int { return g[boxRow+i/3][boxCol+i%3] }) {
			return false
		}
	}
	return true
}

func noRepeats(at func(i int) int) bool {
	var seen [10]bool
	for i := 0; i < 9; i++ {
		d := at(i)
		if d < 1 || d > 9 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// AgreesWithHints reports whether g matches every filled cell of hints.
func (g Grid) AgreesWithHints(hints Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if hints[r][c] != 0 && g[r][c] != hints[r][c] {
				return false
			}
		}
	}
	return true
}

func (g Grid) String() string {
	var out string
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				out += "%"
			} else {
				out += fmt.Sprintf("%d", g[r][c])
			}
		}
		out += "\n"
	}
	return out
}

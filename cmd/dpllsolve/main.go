// Command dpllsolve is the interactive driver for the DPLL SAT solver: it
// offers a two-mode menu (generate-and-solve a Sudoku puzzle, or load a
// DIMACS CNF file and solve it), sequences the core's parse/encode/solve
// steps, measures wall time, and writes a result file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hartej/dpllsat"
)

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "verbose mode (periodic solver tracing)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `dpllsolve: a DPLL SAT solver.

Usage:

  dpllsolve [-v] [input.cnf]

With no arguments, dpllsolve prompts for a mode: generate and solve a
Sudoku puzzle, or load a DIMACS CNF file and solve it. Passing a filename
skips the menu and solves that CNF file directly.

The -v flag enables periodic solver progress tracing to stderr.
`)
	}
	flag.Parse()

	opts := dpllsat.Options{Debug: *verbose}

	if flag.NArg() >= 1 {
		if err := solveCNFFile(flag.Arg(0), opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	stdin := bufio.NewReader(os.Stdin)
	fmt.Println("=== DPLL SAT SOLVER ===")
	fmt.Println("Please select mode:")
	fmt.Println("1. Generate and solve a Sudoku puzzle")
	fmt.Println("2. Load a CNF file and solve")
	fmt.Print("Enter your choice (1/2): ")

	choice, err := readLine(stdin)
	if err != nil {
		log.Fatal(err)
	}
	switch strings.TrimSpace(choice) {
	case "1":
		if err := generateAndSolveSudoku(stdin, opts); err != nil {
			log.Fatal(err)
		}
	case "2":
		fmt.Print("CNF file path: ")
		path, err := readLine(stdin)
		if err != nil {
			log.Fatal(err)
		}
		if err := solveCNFFile(strings.TrimSpace(path), opts); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("invalid choice")
	}
	fmt.Println("Program ended")
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func solveCNFFile(path string, opts dpllsat.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	formula, err := dpllsat.ParseDIMACS(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Println("Start solving...")
	start := time.Now()
	res := dpllsat.Solve(formula, opts)
	elapsed := time.Since(start)

	fmt.Printf("Solving completed: %s (%d ms)\n", res.Status, elapsed.Milliseconds())
	fmt.Printf("Statistics: DPLL calls=%d, unit propagations=%d, backtracks=%d\n",
		res.Stats.DPLLCalls, res.Stats.UnitPropagations, res.Stats.Backtracks)

	resultPath := path + ".result"
	out, err := os.Create(resultPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", resultPath, err)
	}
	defer out.Close()
	if err := dpllsat.WriteResult(out, res, elapsed); err != nil {
		return fmt.Errorf("writing %s: %w", resultPath, err)
	}
	fmt.Printf("Result written to %s\n", resultPath)
	return nil
}

func generateAndSolveSudoku(stdin *bufio.Reader, opts dpllsat.Options) error {
	fmt.Print("Number of holes (20-60): ")
	line, err := readLine(stdin)
	if err != nil {
		return err
	}
	holes, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || holes < 20 || holes > 60 {
		return fmt.Errorf("invalid hole count %q, want an integer in [20, 60]", line)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	full := dpllsat.GenerateFull(rng)
	puzzle := dpllsat.DigHoles(full, holes, rng)

	fmt.Println("Puzzle:")
	fmt.Print(puzzle)

	if err := os.WriteFile("sudoku_puzzle.ss", []byte(puzzle.String()), 0o644); err != nil {
		return fmt.Errorf("writing sudoku_puzzle.ss: %w", err)
	}

	formula := dpllsat.EncodeSudoku(puzzle)

	start := time.Now()
	res := dpllsat.Solve(formula, opts)
	elapsed := time.Since(start)

	fmt.Printf("Solving completed: %s (%d ms)\n", res.Status, elapsed.Milliseconds())
	if res.Status != dpllsat.SAT {
		return fmt.Errorf("generated puzzle was unsatisfiable (this should not happen)")
	}

	a := res.Assignment.Clone()
	a.Complete()
	solution := dpllsat.DecodeSudoku(a)
	fmt.Println("Solution:")
	fmt.Print(solution)

	return os.WriteFile("sudoku_solution.ss", []byte(solution.String()), 0o644)
}

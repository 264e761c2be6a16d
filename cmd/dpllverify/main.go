// Command dpllverify is a standalone checker, independent of the solver
// process, that re-parses a DIMACS CNF file and a result file written by
// dpllsolve and confirms the reported assignment actually satisfies the
// formula. It is invoked by path; it is not part of the solver core.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hartej/dpllsat"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <input.cnf> <result file>\n", os.Args[0])
		os.Exit(2)
	}
	cnfPath, resultPath := os.Args[1], os.Args[2]

	cnfFile, err := os.Open(cnfPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cnfFile.Close()
	formula, err := dpllsat.ParseDIMACS(cnfFile)
	if err != nil {
		log.Fatalf("parsing %s: %s", cnfPath, err)
	}

	resFile, err := os.Open(resultPath)
	if err != nil {
		log.Fatal(err)
	}
	defer resFile.Close()
	status, assignment, elapsedMS, err := dpllsat.ReadResult(resFile)
	if err != nil {
		log.Fatalf("parsing %s: %s", resultPath, err)
	}

	if status == 0 {
		fmt.Println("result claims UNSAT; nothing to verify")
		return
	}

	a := dpllsat.NewAssignment(formula.NumVars)
	for _, lit := range assignment {
		v := lit
		if v < 0 {
			v = -v
		}
		if v > formula.NumVars {
			log.Fatalf("result assigns out-of-range variable %d (formula has %d variables)", v, formula.NumVars)
		}
		a.Set(dpllsat.Lit(lit))
	}

	if !formula.Satisfies(a) {
		fmt.Println("VERIFICATION FAILED: assignment does not satisfy the formula")
		os.Exit(1)
	}
	fmt.Printf("VERIFIED: assignment satisfies the formula (solver reported %d ms)\n", elapsedMS)
}

package dpllsat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFormula(t *testing.T) {
	for _, tt := range []struct {
		name    string
		numVars int
		clauses [][]int
		want    []Clause
		wantErr bool
	}{
		{
			name:    "empty",
			numVars: 0,
			clauses: [][]int{},
			want:    []Clause{},
		},
		{
			name:    "simple",
			numVars: 3,
			clauses: [][]int{{1, -2}, {2, 3}, {-1}},
			want:    []Clause{{1, -2}, {2, 3}, {-1}},
		},
		{
			name:    "zero literal rejected",
			numVars: 2,
			clauses: [][]int{{1, 0}},
			wantErr: true,
		},
		{
			name:    "out of range literal rejected",
			numVars: 2,
			clauses: [][]int{{3}},
			wantErr: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormula(tt.numVars, tt.clauses)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, f.Clauses); diff != "" {
				t.Errorf("NewFormula clauses (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormulaClone(t *testing.T) {
	f, err := NewFormula(2, [][]int{{1, 2}, {-1}})
	if err != nil {
		t.Fatal(err)
	}
	clone := f.Clone()
	clone.Clauses[0][0] = 99
	if f.Clauses[0][0] == 99 {
		t.Fatal("Clone aliased the original clause storage")
	}
	clone.Clauses = append(clone.Clauses, Clause{5})
	if len(f.Clauses) != 2 {
		t.Fatal("Clone aliased the original Clauses slice")
	}
}

func TestAssignmentClone(t *testing.T) {
	a := NewAssignment(3)
	a.Set(1)
	b := a.Clone()
	b.Set(-2)
	if a.Get(2) != Unassigned {
		t.Fatal("Clone aliased the original assignment storage")
	}
	if b.Get(1) != True || b.Get(2) != False {
		t.Fatal("clone did not preserve the source assignment's values")
	}
}

func TestFormulaSatisfies(t *testing.T) {
	f, err := NewFormula(3, [][]int{{1, 2}, {-1, 2}, {-2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	a := NewAssignment(3)
	a.Set(1)
	a.Set(2)
	a.Set(3)
	if !f.Satisfies(a) {
		t.Fatal("want satisfied")
	}
	a2 := NewAssignment(3)
	a2.Set(-1)
	a2.Set(-2)
	a2.Set(3)
	if f.Satisfies(a2) {
		t.Fatal("want unsatisfied (clause {1,2} is false)")
	}
}

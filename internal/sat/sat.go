// Package sat defines the SatSolver collaborator the entailment Driver
// calls into, plus a from-scratch reference DPLL implementation. Unlike
// every other stage of this pipeline, no repository in this project's
// lineage ships a CDCL/SAT engine to adapt, so DPLLSolver is written
// directly against the textbook algorithm: unit propagation, pure-literal
// elimination, and chronological backtracking over DIMACS-style signed
// integer clauses.
package sat

import "fmt"

// Verdict is the outcome of one Solve call: either a satisfying model, or
// unsatisfiable.
type Verdict struct {
	Satisfiable bool
	// Model maps every variable id mentioned in the input clauses to its
	// assignment, when Satisfiable is true. Variables pure-literal or
	// unit-propagation left unconstrained are filled in arbitrarily (true)
	// so every id the caller asked about is present.
	Model map[int]bool
}

// SatSolver decides satisfiability of a CNF given as DIMACS-style signed
// integer clauses (package numeric produces this shape from a tseitin.CNF).
// Implementations may be swapped in by a caller with its own engine; the
// Driver only depends on this interface.
type SatSolver interface {
	Solve(clauses [][]int) (Verdict, error)
}

// SolveError reports malformed input, such as a literal of 0.
type SolveError struct {
	Kind    string
	Message string
}

func (e SolveError) Error() string {
	return fmt.Sprintf("sat solve error (%v): %v", e.Kind, e.Message)
}

// DPLLSolver is the reference SatSolver.
type DPLLSolver struct{}

// Solve implements SatSolver.
func (DPLLSolver) Solve(clauses [][]int) (Verdict, error) {
	vars := map[int]bool{}
	for _, c := range clauses {
		for _, lit := range c {
			if lit == 0 {
				return Verdict{}, SolveError{Kind: "ZeroLiteral", Message: "clause contains a 0 literal"}
			}
			vars[abs(lit)] = true
		}
	}

	assign, ok := search(clauses, map[int]int{})
	if !ok {
		return Verdict{Satisfiable: false}, nil
	}

	model := make(map[int]bool, len(vars))
	for v := range vars {
		val, known := assign[v]
		model[v] = !known || val == 1
	}
	return Verdict{Satisfiable: true, Model: model}, nil
}

// search is the DPLL recursion: propagate units, eliminate pure literals,
// then branch on the first remaining variable.
func search(clauses [][]int, assign map[int]int) (map[int]int, bool) {
	clauses, assign, ok := propagateUnits(clauses, assign)
	if !ok {
		return nil, false
	}
	clauses, assign = eliminatePureLiterals(clauses, assign)
	if hasEmptyClause(clauses) {
		return nil, false
	}
	if len(clauses) == 0 {
		return assign, true
	}

	v := abs(clauses[0][0])
	for _, val := range [2]int{1, -1} {
		next := cloneAssign(assign)
		next[v] = val
		simplified, conflict := applyAssignment(clauses, v, val)
		if conflict {
			continue
		}
		if result, ok := search(simplified, next); ok {
			return result, true
		}
	}
	return nil, false
}

// propagateUnits repeatedly resolves unit clauses until none remain or a
// conflict (an empty clause) is derived.
func propagateUnits(clauses [][]int, assign map[int]int) ([][]int, map[int]int, bool) {
	assign = cloneAssign(assign)
	for {
		unit, found := findUnit(clauses)
		if !found {
			return clauses, assign, true
		}
		v, val := abs(unit), sign(unit)
		assign[v] = val
		var conflict bool
		clauses, conflict = applyAssignment(clauses, v, val)
		if conflict {
			return nil, nil, false
		}
	}
}

func findUnit(clauses [][]int) (int, bool) {
	for _, c := range clauses {
		if len(c) == 1 {
			return c[0], true
		}
	}
	return 0, false
}

// eliminatePureLiterals assigns, and removes the clauses of, every variable
// that occurs with only one polarity across the remaining formula.
func eliminatePureLiterals(clauses [][]int, assign map[int]int) ([][]int, map[int]int) {
	assign = cloneAssign(assign)
	polarity := map[int]int{}
	mixed := map[int]bool{}
	for _, c := range clauses {
		for _, lit := range c {
			v, s := abs(lit), sign(lit)
			if existing, ok := polarity[v]; ok {
				if existing != s {
					mixed[v] = true
				}
				continue
			}
			polarity[v] = s
		}
	}
	for v, s := range polarity {
		if mixed[v] {
			continue
		}
		assign[v] = s
		clauses = removeSatisfiedBy(clauses, v, s)
	}
	return clauses, assign
}

func removeSatisfiedBy(clauses [][]int, v, s int) [][]int {
	out := clauses[:0:0]
	for _, c := range clauses {
		if !clauseContains(c, v, s) {
			out = append(out, c)
		}
	}
	return out
}

func clauseContains(c []int, v, s int) bool {
	for _, lit := range c {
		if abs(lit) == v && sign(lit) == s {
			return true
		}
	}
	return false
}

// applyAssignment drops every clause satisfied by v=val and strips the
// falsified literal from the rest. The bool return reports whether this
// produced an empty (unsatisfiable) clause.
func applyAssignment(clauses [][]int, v, val int) ([][]int, bool) {
	out := make([][]int, 0, len(clauses))
	for _, c := range clauses {
		satisfied := false
		next := make([]int, 0, len(c))
		for _, lit := range c {
			if abs(lit) != v {
				next = append(next, lit)
				continue
			}
			if sign(lit) == val {
				satisfied = true
				break
			}
			// falsified literal: drop it from the clause
		}
		if satisfied {
			continue
		}
		if len(next) == 0 {
			return nil, true
		}
		out = append(out, next)
	}
	return out, false
}

func hasEmptyClause(clauses [][]int) bool {
	for _, c := range clauses {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

func cloneAssign(a map[int]int) map[int]int {
	next := make(map[int]int, len(a))
	for k, v := range a {
		next[k] = v
	}
	return next
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

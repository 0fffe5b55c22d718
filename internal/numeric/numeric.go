// Package numeric assigns every rune-keyed variable a CNF mentions a dense
// DIMACS-style signed integer id, the form SatSolver implementations and
// on-disk CNF files expect. Id 0 is reserved (the itos table's "<PAD>"
// slot, mirroring the source's vocabulary convention) since 0 doubles as
// the DIMACS clause terminator and can never be a literal.
package numeric

import "github.com/entailer/entailer/internal/tseitin"

// Vocabulary is the bijection between the rune-keyed variables a CNF uses
// and dense integer ids starting at 1. itos[0] is always 0 (the pad
// sentinel); itos[id] for id >= 1 is the rune that id denotes.
type Vocabulary struct {
	itos []rune
	stoi map[rune]int
}

// BuildVocabulary scans cnf once and assigns each distinct variable an id,
// in first-occurrence order.
func BuildVocabulary(cnf tseitin.CNF) *Vocabulary {
	v := &Vocabulary{itos: []rune{0}, stoi: map[rune]int{}}
	for _, clause := range cnf.Clauses {
		for _, l := range clause {
			if _, ok := v.stoi[l.Var]; ok {
				continue
			}
			v.stoi[l.Var] = len(v.itos)
			v.itos = append(v.itos, l.Var)
		}
	}
	return v
}

// Len is the number of distinct variables (excluding the pad slot).
func (v *Vocabulary) Len() int { return len(v.itos) - 1 }

// ToInt converts a Literal to its signed DIMACS form: the variable's id,
// negated when the literal is.
func (v *Vocabulary) ToInt(l tseitin.Literal) int {
	id := v.stoi[l.Var]
	if l.Neg {
		return -id
	}
	return id
}

// ToLiteral is the inverse of ToInt.
func (v *Vocabulary) ToLiteral(n int) (tseitin.Literal, error) {
	if n == 0 {
		return tseitin.Literal{}, zeroLiteral()
	}
	id := n
	neg := false
	if id < 0 {
		id, neg = -id, true
	}
	if id >= len(v.itos) {
		return tseitin.Literal{}, unknownVariable(id)
	}
	return tseitin.Literal{Var: v.itos[id], Neg: neg}, nil
}

// Encode renders cnf as a DIMACS-style clause list: one []int per clause,
// each entry a signed variable id.
func (v *Vocabulary) Encode(cnf tseitin.CNF) [][]int {
	out := make([][]int, len(cnf.Clauses))
	for i, clause := range cnf.Clauses {
		row := make([]int, len(clause))
		for j, l := range clause {
			row[j] = v.ToInt(l)
		}
		out[i] = row
	}
	return out
}

// DecodeModel converts a solver's id-keyed satisfying assignment back into
// a rune-keyed one, skipping ids the solver left unassigned.
func (v *Vocabulary) DecodeModel(assignment map[int]bool) (map[rune]bool, error) {
	out := make(map[rune]bool, len(assignment))
	for id, val := range assignment {
		if id <= 0 || id >= len(v.itos) {
			return nil, unknownVariable(id)
		}
		out[v.itos[id]] = val
	}
	return out, nil
}

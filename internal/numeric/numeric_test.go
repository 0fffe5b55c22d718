package numeric

import (
	"testing"

	"github.com/entailer/entailer/internal/tseitin"
)

func TestBuildVocabularyPadSlotIsZero(t *testing.T) {
	cnf := tseitin.CNF{Clauses: []tseitin.Clause{{{Var: 300, Neg: false}}}}
	v := BuildVocabulary(cnf)
	if v.itos[0] != 0 {
		t.Errorf("itos[0] (the pad slot) should be 0, got %v", v.itos[0])
	}
}

func TestToIntToLiteralRoundTrip(t *testing.T) {
	cnf := tseitin.CNF{Clauses: []tseitin.Clause{
		{{Var: 300, Neg: false}, {Var: 301, Neg: true}},
	}}
	v := BuildVocabulary(cnf)
	for _, clause := range cnf.Clauses {
		for _, lit := range clause {
			n := v.ToInt(lit)
			got, err := v.ToLiteral(n)
			if err != nil {
				t.Fatalf("ToLiteral(%d): %v", n, err)
			}
			if got != lit {
				t.Errorf("ToLiteral(ToInt(%v)) = %v, want %v", lit, got, lit)
			}
		}
	}
}

func TestToIntSignEncodesNegation(t *testing.T) {
	cnf := tseitin.CNF{Clauses: []tseitin.Clause{{{Var: 300, Neg: false}}}}
	v := BuildVocabulary(cnf)
	pos := v.ToInt(tseitin.Literal{Var: 300, Neg: false})
	neg := v.ToInt(tseitin.Literal{Var: 300, Neg: true})
	if pos != -neg || pos <= 0 {
		t.Errorf("expected pos/neg to be a positive id and its negation, got %d and %d", pos, neg)
	}
}

func TestToLiteralRejectsZero(t *testing.T) {
	v := BuildVocabulary(tseitin.CNF{})
	if _, err := v.ToLiteral(0); err == nil {
		t.Error("0 should be rejected as a DIMACS clause terminator, not a literal")
	}
}

func TestEncodeProducesOneRowPerClause(t *testing.T) {
	cnf := tseitin.CNF{Clauses: []tseitin.Clause{
		{{Var: 300, Neg: false}},
		{{Var: 300, Neg: true}, {Var: 301, Neg: false}},
	}}
	v := BuildVocabulary(cnf)
	rows := v.Encode(cnf)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[1]) != 2 {
		t.Errorf("expected the second clause to have 2 literals, got %d", len(rows[1]))
	}
}

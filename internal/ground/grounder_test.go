package ground

import (
	"reflect"
	"testing"

	"github.com/entailer/entailer/internal/ast"
	"github.com/entailer/entailer/internal/discourse"
)

func buildModel(t *testing.T, f ast.Formula) *discourse.Model {
	t.Helper()
	m := discourse.NewModel()
	if err := m.Populate(f); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	return m
}

func TestGroundAtomIsASingleRune(t *testing.T) {
	f := ast.Atom{Pred: "P", Args: []string{"a"}}
	m := buildModel(t, f)
	s, err := Ground(f, m)
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	if len([]rune(s)) != 1 {
		t.Errorf("a ground atom should be a single rune, got %q", s)
	}
}

func TestGroundExistsExpandsOverDomain(t *testing.T) {
	// P(a) & P(b), then "exists x. P(x)" should ground to a disjunction of
	// the two ground instances.
	base := ast.And{
		Left:  ast.Atom{Pred: "P", Args: []string{"a"}},
		Right: ast.Atom{Pred: "P", Args: []string{"b"}},
	}
	quant := ast.Exists{Var: "x", Body: ast.Atom{Pred: "P", Args: []string{"x"}}}
	combined := ast.And{Left: base, Right: quant}
	m := buildModel(t, combined)

	s, err := Ground(quant, m)
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	if len([]rune(s)) != 5 { // "(atom|atom)"
		t.Errorf("expected a 5-rune disjunction string, got %d runes: %q", len([]rune(s)), s)
	}
}

func TestGroundEmptyDomainClassical(t *testing.T) {
	quant := ast.Exists{Var: "x", Body: ast.Atom{Pred: "P", Args: []string{"x"}}}
	m := discourse.NewModel()
	if err := m.Populate(ast.Atom{Pred: "P", Args: []string{}}); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	s, err := Ground(quant, m)
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	if []rune(s)[0] != FalseSymbol {
		t.Errorf("an empty-domain Exists should ground to FalseSymbol under the classical policy, got %q", s)
	}
}

func TestGroundEmptyDomainErrorPolicy(t *testing.T) {
	m := discourse.NewModel()
	if err := m.Populate(ast.Atom{Pred: "P", Args: []string{}}); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	quant := ast.Exists{Var: "x", Body: ast.Atom{Pred: "P", Args: []string{"x"}}}
	if _, err := Ground(quant, m, WithEmptyDomainPolicy(PolicyError)); err == nil {
		t.Fatal("expected an error grounding an empty-domain quantifier under PolicyError")
	}
}

func TestApplyExistentialClosureAddsWitness(t *testing.T) {
	f := ast.Exists{Var: "x", Body: ast.Atom{Pred: "Happy", Args: []string{"x"}}}
	augmented := ApplyExistentialClosure(f)
	and, ok := augmented.(ast.And)
	if !ok {
		t.Fatalf("expected ApplyExistentialClosure to return an And, got %#v", augmented)
	}
	atom, ok := and.Right.(ast.Atom)
	if !ok || atom.Pred != "Happy" || len(atom.Args) != 1 || atom.Args[0] != "happy" {
		t.Errorf("expected a witness Happy(happy), got %#v", and.Right)
	}
}

func TestApplyExistentialClosureNoUnaryPredicatesIsNoop(t *testing.T) {
	f := ast.Atom{Pred: "Loves", Args: []string{"a", "b"}}
	if got := ApplyExistentialClosure(f); !reflect.DeepEqual(got, ast.Formula(f)) {
		t.Errorf("closure over a formula with no unary predicates should be a no-op, got %#v", got)
	}
}

package entailment

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/entailer/entailer/internal/ast"
	"github.com/entailer/entailer/internal/folparser"
	"github.com/entailer/entailer/internal/sat"
)

func newTestDriver(opts ...Option) *Driver {
	return NewDriver(folparser.New(), sat.DPLLSolver{}, opts...)
}

func TestEntailsSingleAtomHoldsForItself(t *testing.T) {
	d := newTestDriver()
	res, err := d.Entails(context.Background(), []string{"P(a)"}, "P(a)")
	if err != nil {
		t.Fatalf("Entails: %v", err)
	}
	if !res.Entails {
		t.Error("P(a) should entail P(a)")
	}
}

func TestEntailsUniversalInstantiation(t *testing.T) {
	d := newTestDriver()
	res, err := d.Entails(context.Background(),
		[]string{"all x. (P(x) -> Q(x))", "P(a)"}, "Q(a)")
	if err != nil {
		t.Fatalf("Entails: %v", err)
	}
	if !res.Entails {
		t.Error("all x.(P(x)->Q(x)), P(a) should entail Q(a)")
	}
}

func TestEntailsFailsWithoutInstanceReturnsCountermodel(t *testing.T) {
	d := newTestDriver()
	res, err := d.Entails(context.Background(),
		[]string{"all x. (P(x) -> Q(x))"}, "Q(a)")
	if err != nil {
		t.Fatalf("Entails: %v", err)
	}
	if res.Entails {
		t.Error("all x.(P(x)->Q(x)) alone should not entail Q(a)")
	}
	// The only model satisfying (P(a)->Q(a)) & -Q(a) has P(a)=false and
	// Q(a)=false, so the true-atoms-only countermodel is empty; the
	// meaningful check is that neither atom is reported as true.
	for _, atom := range res.Countermodel {
		if atom == "P(a)" || atom == "Q(a)" {
			t.Errorf("P(a) and Q(a) must both be false in this countermodel, got %v", res.Countermodel)
		}
	}
}

func TestEntailsExistentialClosureAddsDistinctWitness(t *testing.T) {
	d := newTestDriver(WithExistentialClosure())
	res, err := d.Entails(context.Background(), []string{"exists x. P(x)"}, "P(a)")
	if err != nil {
		t.Fatalf("Entails: %v", err)
	}
	if res.Entails {
		t.Error("closure synthesizes a witness named p, not a, so P(a) should not be forced")
	}
}

func TestEntailsChainedUniversalsOverMultiplePremises(t *testing.T) {
	d := newTestDriver()
	res, err := d.Entails(context.Background(),
		[]string{"all x. (P(x) -> Q(x))", "all x. (Q(x) -> R(x))"},
		"all x. (P(x) -> R(x))")
	if err != nil {
		t.Fatalf("Entails: %v", err)
	}
	if !res.Entails {
		t.Error("transitivity of two universal implications should hold")
	}
}

func TestEntailsExFalsoQuodlibet(t *testing.T) {
	d := newTestDriver()
	res, err := d.Entails(context.Background(), []string{"(P(a) & -P(a))"}, "Q(b)")
	if err != nil {
		t.Fatalf("Entails: %v", err)
	}
	if !res.Entails {
		t.Error("a contradictory premise set should entail anything")
	}
}

func TestAreEquivalentDoubleNegation(t *testing.T) {
	d := newTestDriver()
	ok, err := d.AreEquivalent(context.Background(), "P(a)", "--P(a)")
	if err != nil {
		t.Fatalf("AreEquivalent: %v", err)
	}
	if !ok {
		t.Error("P(a) and --P(a) should be equivalent")
	}
}

func TestContradicts(t *testing.T) {
	d := newTestDriver()
	ok, err := d.Contradicts(context.Background(), "P(a)", "-P(a)")
	if err != nil {
		t.Fatalf("Contradicts: %v", err)
	}
	if !ok {
		t.Error("P(a) and -P(a) should contradict")
	}

	ok2, err := d.Contradicts(context.Background(), "P(a)", "Q(a)")
	if err != nil {
		t.Fatalf("Contradicts: %v", err)
	}
	if ok2 {
		t.Error("P(a) and Q(a) should not contradict")
	}
}

func TestIsNegationOf(t *testing.T) {
	d := newTestDriver()

	ok, err := d.IsNegationOf(context.Background(), "P(a)", "-P(a)")
	if err != nil {
		t.Fatalf("IsNegationOf: %v", err)
	}
	if !ok {
		t.Error("P(a) and -P(a) should be each other's negation")
	}

	// Merely contradictory (can't both hold) is not enough: P(a) and Q(a)
	// can both fail, so this must not count as negation.
	ok2, err := d.IsNegationOf(context.Background(), "P(a)", "Q(a)")
	if err != nil {
		t.Fatalf("IsNegationOf: %v", err)
	}
	if ok2 {
		t.Error("P(a) and Q(a) can both be false, so neither negates the other")
	}

	// P(a) and (P(a) -> Q(a)) can never both fail (the implication fails
	// only when P(a) is true) — so unsat(-a & -b) holds, yet they can both
	// hold (P(a) and Q(a) true make both true), so this is the mirror case:
	// passes the "can't both fail" half but not "can't both hold", and must
	// still not count as negation.
	ok3, err := d.IsNegationOf(context.Background(), "P(a)", "(P(a) -> Q(a))")
	if err != nil {
		t.Fatalf("IsNegationOf: %v", err)
	}
	if ok3 {
		t.Error("P(a) and (P(a)->Q(a)) can both hold, so neither negates the other")
	}
}

func TestEntailsRejectsFreeVariable(t *testing.T) {
	d := newTestDriver()
	_, err := d.Entails(context.Background(), []string{"P(x)"}, "P(a)")
	if err == nil {
		t.Fatal("expected a free-variable error for an unbound x")
	}
}

func TestEntailsAggregatesParseErrorsAcrossPremises(t *testing.T) {
	d := newTestDriver()
	_, err := d.Entails(context.Background(), []string{"not a formula (((", "also broken >>>"}, "P(a)")
	if err == nil {
		t.Fatal("expected a multierror aggregating both parse failures")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 2 {
		t.Errorf("expected a multierror holding both parse failures, got %v", err)
	}
}

func TestEntailsRespectsCanceledContext(t *testing.T) {
	d := newTestDriver()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Entails(ctx, []string{"P(a)"}, "P(a)")
	if err == nil {
		t.Fatal("expected context.Canceled to short-circuit Entails")
	}
}

func TestNegateCollapsesDoubleNegation(t *testing.T) {
	atom := ast.Atom{Pred: "P", Args: []string{"a"}}
	once := Negate(atom)
	if _, ok := once.(ast.Not); !ok {
		t.Fatalf("Negate(atom) should wrap in Not, got %#v", once)
	}
	twice := Negate(once)
	if _, ok := twice.(ast.Atom); !ok {
		t.Errorf("Negate(Not{atom}) should collapse back to the atom, got %#v", twice)
	}
}

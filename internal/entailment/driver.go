// Package entailment orchestrates the full reduction: parsing, grounding,
// Tseitin transformation, numeric mapping and solving, to answer whether a
// set of premises entails a conclusion.
package entailment

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/entailer/entailer/internal/ast"
	"github.com/entailer/entailer/internal/discourse"
	"github.com/entailer/entailer/internal/ground"
	"github.com/entailer/entailer/internal/numeric"
	"github.com/entailer/entailer/internal/sat"
	"github.com/entailer/entailer/internal/tseitin"
)

// FolParser turns a surface sentence into a Formula. Implemented by
// package folparser; callers may supply their own.
type FolParser interface {
	Parse(input string) (ast.Formula, error)
}

// Result is the outcome of one Entails call.
type Result struct {
	// Entails is true when the premises logically entail the conclusion:
	// premises ∧ ¬conclusion is unsatisfiable.
	Entails bool
	// Countermodel lists the ground atoms true in a model of premises ∧
	// ¬conclusion, populated only when Entails is false.
	Countermodel []string
}

// Driver is the entailment checker: a FolParser and SatSolver, plus the
// grounding policy to apply between them.
type Driver struct {
	parser FolParser
	solver sat.SatSolver
	logger hclog.Logger

	existentialClosure bool
	emptyDomainPolicy  ground.EmptyDomainPolicy
}

// NewDriver builds a Driver around the given parser and solver.
func NewDriver(parser FolParser, solver sat.SatSolver, opts ...Option) *Driver {
	d := &Driver{
		parser:            parser,
		solver:            solver,
		logger:            hclog.NewNullLogger(),
		emptyDomainPolicy: ground.PolicyClassical,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Entails reports whether premises entail conclusion, by testing
// premises ∧ ¬conclusion for unsatisfiability. ctx is checked before
// parsing and again around the solver call, the only stage that blocks.
func (d *Driver) Entails(ctx context.Context, premises []string, conclusion string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	premiseForms, err := d.parseAll(premises)
	if err != nil {
		return Result{}, err
	}
	concForm, err := d.parser.Parse(conclusion)
	if err != nil {
		return Result{}, fmt.Errorf("parsing conclusion %q: %w", conclusion, err)
	}
	if err := checkClosed(append(append([]ast.Formula{}, premiseForms...), concForm)...); err != nil {
		return Result{}, err
	}

	if d.existentialClosure {
		for i, f := range premiseForms {
			premiseForms[i] = ground.ApplyExistentialClosure(f)
		}
	}

	unsat, atoms, err := d.testUnsatisfiable(ctx, append(premiseForms, Negate(concForm)))
	if err != nil {
		return Result{}, err
	}
	return Result{Entails: unsat, Countermodel: atoms}, nil
}

// AreEquivalent reports whether a and b entail each other.
func (d *Driver) AreEquivalent(ctx context.Context, a, b string) (bool, error) {
	forward, err := d.Entails(ctx, []string{a}, b)
	if err != nil {
		return false, err
	}
	backward, err := d.Entails(ctx, []string{b}, a)
	if err != nil {
		return false, err
	}
	return forward.Entails && backward.Entails, nil
}

// Contradicts reports whether a and b cannot both hold, i.e. a ∧ b is
// unsatisfiable.
func (d *Driver) Contradicts(ctx context.Context, a, b string) (bool, error) {
	forms, err := d.parseAll([]string{a, b})
	if err != nil {
		return false, err
	}
	if err := checkClosed(forms...); err != nil {
		return false, err
	}
	unsat, _, err := d.testUnsatisfiable(ctx, forms)
	return unsat, err
}

// IsNegationOf reports whether a and b are each other's negation: they
// cannot both hold (a ∧ b is unsatisfiable) and cannot both fail (¬a ∧ ¬b is
// unsatisfiable). Contradicts alone only rules out both holding; this is the
// stricter, two-sided check.
func (d *Driver) IsNegationOf(ctx context.Context, a, b string) (bool, error) {
	forms, err := d.parseAll([]string{a, b})
	if err != nil {
		return false, err
	}
	if err := checkClosed(forms...); err != nil {
		return false, err
	}
	af, bf := forms[0], forms[1]

	bothHold, _, err := d.testUnsatisfiable(ctx, []ast.Formula{af, bf})
	if err != nil {
		return false, err
	}
	if !bothHold {
		return false, nil
	}
	neitherHolds, _, err := d.testUnsatisfiable(ctx, []ast.Formula{Negate(af), Negate(bf)})
	if err != nil {
		return false, err
	}
	return neitherHolds, nil
}

// testUnsatisfiable grounds and solves the conjunction of forms, returning
// whether it is unsatisfiable and, if not, the true ground atoms of a
// satisfying model.
func (d *Driver) testUnsatisfiable(ctx context.Context, forms []ast.Formula) (bool, []string, error) {
	if len(forms) == 0 {
		return false, nil, nil
	}
	combined := forms[len(forms)-1]
	for i := len(forms) - 2; i >= 0; i-- {
		combined = ast.And{Left: forms[i], Right: combined}
	}
	d.logger.Debug("built test formula", "conjuncts", len(forms))

	model := discourse.NewModel()
	if err := model.Populate(combined); err != nil {
		return false, nil, err
	}

	propString, err := ground.Ground(combined, model, ground.WithEmptyDomainPolicy(d.emptyDomainPolicy))
	if err != nil {
		return false, nil, err
	}

	cnf, err := tseitin.Transform(propString)
	if err != nil {
		return false, nil, err
	}

	vocab := numeric.BuildVocabulary(cnf)
	clauses := vocab.Encode(cnf)
	d.logger.Debug("solving", "variables", vocab.Len(), "clauses", len(clauses))

	verdict, err := d.solve(ctx, clauses)
	if err != nil {
		return false, nil, err
	}
	if !verdict.Satisfiable {
		return true, nil, nil
	}

	runeModel, err := vocab.DecodeModel(verdict.Model)
	if err != nil {
		return false, nil, err
	}
	atoms, err := decodeCountermodel(model, runeModel)
	if err != nil {
		return false, nil, err
	}
	return false, atoms, nil
}

// Negate returns the logical negation of f, collapsing a double negation
// back to its body rather than stacking a second Not.
func Negate(f ast.Formula) ast.Formula {
	if n, ok := f.(ast.Not); ok {
		return n.Body
	}
	return ast.Not{Body: f}
}

func (d *Driver) parseAll(premises []string) ([]ast.Formula, error) {
	forms := make([]ast.Formula, 0, len(premises))
	var errs *multierror.Error
	for _, p := range premises {
		f, err := d.parser.Parse(p)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%q: %w", p, err))
			continue
		}
		forms = append(forms, f)
	}
	return forms, errs.ErrorOrNil()
}

func checkClosed(forms ...ast.Formula) error {
	for _, f := range forms {
		if free := ast.FreeVariables(f); len(free) > 0 {
			return freeVariableError(free)
		}
	}
	return nil
}

// solve runs the solver on its own goroutine so a canceled ctx returns
// promptly instead of waiting out a long Solve call.
func (d *Driver) solve(ctx context.Context, clauses [][]int) (sat.Verdict, error) {
	type outcome struct {
		verdict sat.Verdict
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := d.solver.Solve(clauses)
		done <- outcome{v, err}
	}()
	select {
	case <-ctx.Done():
		return sat.Verdict{}, ctx.Err()
	case o := <-done:
		return o.verdict, o.err
	}
}

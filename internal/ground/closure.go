package ground

import (
	"strings"

	"github.com/entailer/entailer/internal/ast"
)

// ApplyExistentialClosure conjoins, onto f, a witness assertion for every
// unary predicate f mentions: for P appearing as P(x), it adds P(p) where p
// is a fresh constant named after P (lower-cased), prefixed "Ev_" when the
// predicate's argument is event-sorted. This is the closed-world heuristic
// the entailment Driver applies when a caller opts in (see
// entailment.WithExistentialClosure): without it, a premise like "exists x.
// Happy(x)" over a class nothing else mentions grounds to false under
// PolicyClassical, which defeats the point of asserting it. The witness is
// synthesized directly as a ground atom rather than left as a fresh
// existential, so ordinary empty-domain grounding never has to special-case
// it.
func ApplyExistentialClosure(f ast.Formula) ast.Formula {
	witnesses := unaryWitnesses(f)
	if len(witnesses) == 0 {
		return f
	}
	axioms := ast.Formula(ast.Atom{Pred: witnesses[0].pred, Args: []string{witnesses[0].constant}})
	for _, w := range witnesses[1:] {
		axioms = ast.And{Left: axioms, Right: ast.Atom{Pred: w.pred, Args: []string{w.constant}}}
	}
	return ast.And{Left: f, Right: axioms}
}

type witness struct {
	pred     string
	constant string
}

// unaryWitnesses collects, in first-occurrence order, one witness per
// distinct unary predicate name mentioned anywhere in f.
func unaryWitnesses(f ast.Formula) []witness {
	seen := map[string]bool{}
	var out []witness
	var walk func(ast.Formula)
	walk = func(f ast.Formula) {
		switch n := f.(type) {
		case ast.Exists:
			walk(n.Body)
		case ast.All:
			walk(n.Body)
		case ast.Not:
			walk(n.Body)
		case ast.And:
			walk(n.Left)
			walk(n.Right)
		case ast.Or:
			walk(n.Left)
			walk(n.Right)
		case ast.Imp:
			walk(n.Left)
			walk(n.Right)
		case ast.Iff:
			walk(n.Left)
			walk(n.Right)
		case ast.Atom:
			if len(n.Args) != 1 || seen[n.Pred] {
				return
			}
			seen[n.Pred] = true
			out = append(out, witness{pred: n.Pred, constant: skolemName(n.Pred, n.Args[0])})
		case ast.Equality:
			return
		}
	}
	walk(f)
	return out
}

// skolemName derives a witness constant from a unary predicate's name,
// typed by the sort of the occurrence's own argument: event if that
// argument is an event-sorted bound variable, individual otherwise.
func skolemName(pred, arg string) string {
	name := strings.ToLower(pred)
	if ast.IsVariable(arg) && ast.IsEventVariable(arg) {
		return "Ev_" + name
	}
	return name
}

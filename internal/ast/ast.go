// Package ast defines the closed algebraic grammar of first-order logic
// formulas consumed by the rest of the reduction pipeline.
package ast

import "regexp"

// Formula is the tagged union of FOL formula kinds. Concrete variants are
// Exists, All, And, Or, Imp, Iff, Not, Atom and Equality. Dispatch is by type
// switch at every recursion site, the same pattern the teacher uses for its
// StatementAST/QueryAST pointer-field alternation.
type Formula interface {
	isFormula()
}

// Exists is `exists v. Body`.
type Exists struct {
	Var  string
	Body Formula
}

// All is `all v. Body`.
type All struct {
	Var  string
	Body Formula
}

// And is `(Left & Right)`.
type And struct{ Left, Right Formula }

// Or is `(Left | Right)`.
type Or struct{ Left, Right Formula }

// Imp is `(Left -> Right)`.
type Imp struct{ Left, Right Formula }

// Iff is `(Left <-> Right)`.
type Iff struct{ Left, Right Formula }

// Not is `-Body`.
type Not struct{ Body Formula }

// Atom is a predicate application `Pred(Args...)`. Args are raw term
// spellings; see IsVariable for the spelling rule. Package discourse treats
// an argument as a variable only when an enclosing Exists/All binds it.
type Atom struct {
	Pred string
	Args []string
}

// Equality is `Left == Right`, encoded downstream as the synthetic binary
// predicate EQUALITY.
type Equality struct{ Left, Right string }

func (Exists) isFormula()   {}
func (All) isFormula()      {}
func (And) isFormula()      {}
func (Or) isFormula()       {}
func (Imp) isFormula()      {}
func (Iff) isFormula()      {}
func (Not) isFormula()      {}
func (Atom) isFormula()     {}
func (Equality) isFormula() {}

// EqualityPredicateName is the synthetic binary predicate equality atoms are
// encoded under.
const EqualityPredicateName = "EQUALITY"

// variablePattern is the Montague-style split between bound variables and
// individual/event constants: a term spelled as a single lowercase letter
// from p through z, or the event letter e, optionally followed by digits,
// is in the variable-spelling range; anything else is a constant. Whether an
// occurrence in that range is bound is decided by its enclosing quantifiers
// (see FreeVariables and discourse.Model.Populate). This is the convention the
// original NLTK-based source relied on implicitly (see the "Event/individual
// heuristic" design note) and is what lets `P(a)` treat `a` as a constant
// while `all x. P(x)` binds `x` and `all e. Run(e)` binds the event `e`.
var variablePattern = regexp.MustCompile(`^[ep-z][0-9]*$`)

// IsVariable reports whether a term's spelling classifies it as a bound
// variable rather than an individual/event constant.
func IsVariable(term string) bool {
	return variablePattern.MatchString(term)
}

// IsEventVariable reports whether a variable name denotes an event-sorted
// binder, by the source's surface convention: names starting with "e".
func IsEventVariable(name string) bool {
	return len(name) > 0 && name[0] == 'e'
}

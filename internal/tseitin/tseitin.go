// Package tseitin converts a fully-parenthesized propositional string (as
// produced by package ground) into an equisatisfiable CNF clause list in
// linear time, introducing one fresh auxiliary variable per subformula
// rather than expanding distributively. This mirrors the original source's
// stack-driven transform, reimplemented here as a parse into a small
// expression tree followed by a single bottom-up pass.
package tseitin

import (
	"github.com/entailer/entailer/internal/ground"
)

// Literal is a variable occurrence, possibly negated. Var ranges over both
// ground atoms (runes from a codec.Descriptor, or ground.TrueSymbol /
// ground.FalseSymbol) and the fresh auxiliary variables this package mints.
type Literal struct {
	Var rune
	Neg bool
}

// Clause is a disjunction of literals.
type Clause []Literal

// CNF is a conjunction of clauses: the output of the transform, and the
// input to package numeric.
type CNF struct {
	Clauses []Clause
}

// Transform parses s and returns its equisatisfiable CNF: first a unit
// clause asserting the formula's root, then the clauses defining each
// subformula variable, then any unit clauses pinConstants adds. An atom rune
// at or above AuxBase (other than ground.TrueSymbol/FalseSymbol), or a
// formula needing auxiliary variables up to FalseSymbol, is rejected with an
// AlphabetExhausted error.
func Transform(s string) (CNF, error) {
	runes := []rune(s)
	for _, r := range runes {
		if r >= AuxBase && r != ground.TrueSymbol && r != ground.FalseSymbol {
			return CNF{}, MalformedFormulaError{Kind: "AlphabetExhausted", Message: "atom rune lies in the auxiliary variable range"}
		}
	}
	node, next, err := parseFormula(runes, 0)
	if err != nil {
		return CNF{}, err
	}
	if next != len(runes) {
		return CNF{}, trailingInput(next)
	}
	cnf := &CNF{}
	aux := &auxAllocator{next: AuxBase}
	root, err := transformNode(node, cnf, aux)
	if err != nil {
		return CNF{}, err
	}
	if aux.next > ground.FalseSymbol {
		return CNF{}, MalformedFormulaError{Kind: "AlphabetExhausted", Message: "auxiliary variables reach the truth-constant runes"}
	}
	cnf.Clauses = append([]Clause{{root}}, cnf.Clauses...)
	pinConstants(cnf)
	return *cnf, nil
}

// pinConstants forces ground.TrueSymbol and ground.FalseSymbol to their
// fixed truth values whenever classical empty-domain grounding actually
// introduced them into the formula. Pinning only on occurrence, rather than
// unconditionally, keeps the clause count within the size bound a CNF with
// no empty-domain constants is expected to meet.
func pinConstants(cnf *CNF) {
	var sawTrue, sawFalse bool
	for _, c := range cnf.Clauses {
		for _, l := range c {
			switch l.Var {
			case ground.TrueSymbol:
				sawTrue = true
			case ground.FalseSymbol:
				sawFalse = true
			}
		}
	}
	if sawTrue {
		cnf.Clauses = append(cnf.Clauses, Clause{lit(ground.TrueSymbol, false)})
	}
	if sawFalse {
		cnf.Clauses = append(cnf.Clauses, Clause{lit(ground.FalseSymbol, true)})
	}
}

// AuxBase is the first rune of the auxiliary variable range. It lies below
// ground.TrueSymbol/FalseSymbol, and codec.Descriptor.Encode does not stop
// below it, so Transform rejects any other atom rune at or above it rather
// than let a fresh auxiliary variable collide with a real atom.
const AuxBase rune = 0x20000

// IsAuxVariable reports whether r is one of this package's synthetic
// subformula variables (or, since it sits above AuxBase too, one of
// ground's TrueSymbol/FalseSymbol constants) rather than a ground atom
// decodable through a discourse Model's Codec.
func IsAuxVariable(r rune) bool { return r >= AuxBase }

type auxAllocator struct{ next rune }

func (a *auxAllocator) fresh() rune {
	v := a.next
	a.next++
	return v
}

func lit(v rune, neg bool) Literal { return Literal{Var: v, Neg: neg} }

func transformNode(n propNode, cnf *CNF, aux *auxAllocator) (Literal, error) {
	switch t := n.(type) {
	case atomNode:
		return lit(t.v, false), nil
	case notNode:
		a, err := transformNode(t.body, cnf, aux)
		if err != nil {
			return Literal{}, err
		}
		z := aux.fresh()
		cnf.Clauses = append(cnf.Clauses,
			Clause{lit(z, true), withNeg(a, true)},
			Clause{lit(z, false), withNeg(a, false)},
		)
		return lit(z, false), nil
	case binNode:
		a, err := transformNode(t.left, cnf, aux)
		if err != nil {
			return Literal{}, err
		}
		b, err := transformNode(t.right, cnf, aux)
		if err != nil {
			return Literal{}, err
		}
		z := aux.fresh()
		switch t.op {
		case ground.AndChar:
			cnf.Clauses = append(cnf.Clauses,
				Clause{lit(z, true), withNeg(a, false)},
				Clause{lit(z, true), withNeg(b, false)},
				Clause{withNeg(a, true), withNeg(b, true), lit(z, false)},
			)
		case ground.OrChar:
			cnf.Clauses = append(cnf.Clauses,
				Clause{withNeg(a, true), lit(z, false)},
				Clause{withNeg(b, true), lit(z, false)},
				Clause{lit(z, true), withNeg(a, false), withNeg(b, false)},
			)
		case ground.ImpChar:
			cnf.Clauses = append(cnf.Clauses,
				Clause{withNeg(a, false), lit(z, false)},
				Clause{withNeg(b, true), lit(z, false)},
				Clause{lit(z, true), withNeg(a, true), withNeg(b, false)},
			)
		case ground.IffChar:
			cnf.Clauses = append(cnf.Clauses,
				Clause{lit(z, false), withNeg(a, false), withNeg(b, false)},
				Clause{lit(z, false), withNeg(a, true), withNeg(b, true)},
				Clause{lit(z, true), withNeg(a, true), withNeg(b, false)},
				Clause{lit(z, true), withNeg(a, false), withNeg(b, true)},
			)
		default:
			return Literal{}, unknownConnective(rune(t.op), t.pos)
		}
		return lit(z, false), nil
	default:
		return Literal{}, unexpectedEnd()
	}
}

// withNeg returns l with an additional negation composed in: since every
// literal this package ever returns from transformNode is itself positive
// (Neg: false), this is equivalent to lit(l.Var, neg), but spelled this way
// to make explicit that it is the caller's requested polarity, not a
// double-negation of l.
func withNeg(l Literal, neg bool) Literal {
	return Literal{Var: l.Var, Neg: neg != l.Neg}
}

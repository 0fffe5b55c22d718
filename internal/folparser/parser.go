// Package folparser is the concrete FolParser: a participle grammar for the
// surface syntax (all/exists binders, &, |, ->, <-> connectives fully
// parenthesized, - prefix negation, Pred(arg, ...) application, a==b
// equality) plus a conversion pass into package ast's Formula tree. Modeled
// directly on the teacher's internal/dsl package (grammar.go + parser.go +
// convert.go), generalized from its graph-mutation DSL to first-order
// logic.
package folparser

import "github.com/entailer/entailer/internal/ast"

// Parser implements entailment.FolParser.
type Parser struct{}

// New returns a ready-to-use Parser. It holds no state; every field is
// stateless package-level grammar, so a zero Parser works too.
func New() *Parser { return &Parser{} }

// Parse parses one sentence into a Formula.
func (Parser) Parse(input string) (ast.Formula, error) {
	g, err := formulaParser.ParseString("", input)
	if err != nil {
		return nil, SyntaxError{Kind: "ParseError", Message: err.Error()}
	}
	return convertFormula(g)
}

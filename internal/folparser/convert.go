package folparser

import "github.com/entailer/entailer/internal/ast"

// convertFormula turns one parsed FormulaAST into a Formula, recursing
// through whichever alternative the grammar populated.
func convertFormula(g *FormulaAST) (ast.Formula, error) {
	switch {
	case g.All != nil:
		body, err := convertFormula(g.All.Body)
		if err != nil {
			return nil, err
		}
		return ast.All{Var: g.All.Var, Body: body}, nil
	case g.Exists != nil:
		body, err := convertFormula(g.Exists.Body)
		if err != nil {
			return nil, err
		}
		return ast.Exists{Var: g.Exists.Var, Body: body}, nil
	case g.Negated != nil:
		body, err := convertFormula(g.Negated)
		if err != nil {
			return nil, err
		}
		return ast.Not{Body: body}, nil
	case g.Binary != nil:
		return convertBinary(g.Binary)
	case g.Equality != nil:
		return ast.Equality{Left: g.Equality.Left, Right: g.Equality.Right}, nil
	case g.Atom != nil:
		return ast.Atom{Pred: g.Atom.Pred, Args: g.Atom.Args}, nil
	default:
		return nil, emptyNode()
	}
}

func convertBinary(b *BinaryAST) (ast.Formula, error) {
	left, err := convertFormula(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := convertFormula(b.Right)
	if err != nil {
		return nil, err
	}
	switch b.Op {
	case "&":
		return ast.And{Left: left, Right: right}, nil
	case "|":
		return ast.Or{Left: left, Right: right}, nil
	case "->":
		return ast.Imp{Left: left, Right: right}, nil
	case "<->":
		return ast.Iff{Left: left, Right: right}, nil
	default:
		return nil, SyntaxError{Kind: "UnknownConnective", Message: "unrecognized operator " + b.Op}
	}
}

package ast

import "strings"

// Render prints f back in the surface syntax package folparser accepts:
// all/exists binders, &, |, ->, <-> fully parenthesized, - prefix negation,
// Pred(arg, ...) application, a==b equality. Used by the CLI to show a
// negated or otherwise derived formula.
func Render(f Formula) string {
	switch n := f.(type) {
	case Exists:
		return "exists " + n.Var + ". " + Render(n.Body)
	case All:
		return "all " + n.Var + ". " + Render(n.Body)
	case Not:
		return "-" + Render(n.Body)
	case And:
		return "(" + Render(n.Left) + " & " + Render(n.Right) + ")"
	case Or:
		return "(" + Render(n.Left) + " | " + Render(n.Right) + ")"
	case Imp:
		return "(" + Render(n.Left) + " -> " + Render(n.Right) + ")"
	case Iff:
		return "(" + Render(n.Left) + " <-> " + Render(n.Right) + ")"
	case Atom:
		return n.Pred + "(" + strings.Join(n.Args, ", ") + ")"
	case Equality:
		return n.Left + " == " + n.Right
	default:
		return "?"
	}
}

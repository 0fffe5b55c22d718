package ast

// Substitute returns a copy of f with every free occurrence of the variable
// v replaced by the constant name c. Because the language has no function
// symbols of positive arity, substitution is a pure rename of matching term
// spellings; recursion stops descending into a nested Exists/All that
// rebinds the same variable name (shadowing), matching capture-avoiding
// substitution for a language with no variable capture to avoid.
func Substitute(f Formula, v, c string) Formula {
	switch n := f.(type) {
	case Exists:
		if n.Var == v {
			return n
		}
		return Exists{Var: n.Var, Body: Substitute(n.Body, v, c)}
	case All:
		if n.Var == v {
			return n
		}
		return All{Var: n.Var, Body: Substitute(n.Body, v, c)}
	case And:
		return And{Left: Substitute(n.Left, v, c), Right: Substitute(n.Right, v, c)}
	case Or:
		return Or{Left: Substitute(n.Left, v, c), Right: Substitute(n.Right, v, c)}
	case Imp:
		return Imp{Left: Substitute(n.Left, v, c), Right: Substitute(n.Right, v, c)}
	case Iff:
		return Iff{Left: Substitute(n.Left, v, c), Right: Substitute(n.Right, v, c)}
	case Not:
		return Not{Body: Substitute(n.Body, v, c)}
	case Atom:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			if a == v {
				args[i] = c
			} else {
				args[i] = a
			}
		}
		return Atom{Pred: n.Pred, Args: args}
	case Equality:
		left, right := n.Left, n.Right
		if left == v {
			left = c
		}
		if right == v {
			right = c
		}
		return Equality{Left: left, Right: right}
	default:
		return f
	}
}

// FreeVariables returns the set of variable-spelled terms (per IsVariable)
// that occur in f without being bound by an enclosing Exists/All of the same
// name. A non-empty result on what is supposed to be a closed sentence is
// the condition entailment.Driver reports (CheckError kind FreeVariable)
// before grounding starts.
func FreeVariables(f Formula) map[string]bool {
	free := make(map[string]bool)
	collectFree(f, map[string]bool{}, free)
	return free
}

func collectFree(f Formula, bound map[string]bool, free map[string]bool) {
	switch n := f.(type) {
	case Exists:
		collectFree(n.Body, withBound(bound, n.Var), free)
	case All:
		collectFree(n.Body, withBound(bound, n.Var), free)
	case And:
		collectFree(n.Left, bound, free)
		collectFree(n.Right, bound, free)
	case Or:
		collectFree(n.Left, bound, free)
		collectFree(n.Right, bound, free)
	case Imp:
		collectFree(n.Left, bound, free)
		collectFree(n.Right, bound, free)
	case Iff:
		collectFree(n.Left, bound, free)
		collectFree(n.Right, bound, free)
	case Not:
		collectFree(n.Body, bound, free)
	case Atom:
		for _, a := range n.Args {
			markIfFree(a, bound, free)
		}
	case Equality:
		markIfFree(n.Left, bound, free)
		markIfFree(n.Right, bound, free)
	}
}

func markIfFree(term string, bound map[string]bool, free map[string]bool) {
	if IsVariable(term) && !bound[term] {
		free[term] = true
	}
}

func withBound(bound map[string]bool, v string) map[string]bool {
	next := make(map[string]bool, len(bound)+1)
	for k := range bound {
		next[k] = true
	}
	next[v] = true
	return next
}

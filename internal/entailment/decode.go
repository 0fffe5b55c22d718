package entailment

import (
	"fmt"
	"sort"

	"github.com/entailer/entailer/internal/discourse"
	"github.com/entailer/entailer/internal/tseitin"
)

// decodeCountermodel renders the true ground atoms of a satisfying
// assignment back into "Predicate(arg1, arg2)" strings, filtering out
// Tseitin's auxiliary subformula variables and the ground.TrueSymbol /
// ground.FalseSymbol constants, neither of which are atoms a discourse
// Model's Codec can decode.
func decodeCountermodel(model *discourse.Model, assignment map[rune]bool) ([]string, error) {
	var atoms []string
	for sym, val := range assignment {
		if !val || tseitin.IsAuxVariable(sym) {
			continue
		}
		ids, err := model.Codec().Decode(sym)
		if err != nil {
			return nil, err
		}
		atom, err := renderAtom(model, ids)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, atom)
	}
	sort.Strings(atoms)
	return atoms, nil
}

func renderAtom(model *discourse.Model, ids []int) (string, error) {
	vocab := model.Vocabulary()
	if ids[0] < 0 || ids[0] >= len(vocab) {
		return "", unresolvedID(ids[0])
	}
	name := vocab[ids[0]]
	pred, ok := lookupPredicate(model, name)
	if !ok {
		return "", unresolvedID(ids[0])
	}
	args := make([]string, pred.Arity)
	for i := 0; i < pred.Arity; i++ {
		idx := ids[i+1]
		if idx < 0 || idx >= len(vocab) {
			return "", unresolvedID(idx)
		}
		args[i] = vocab[idx]
	}
	if pred.Arity == 0 {
		return name, nil
	}
	return fmt.Sprintf("%s(%s)", name, joinArgs(args)), nil
}

func lookupPredicate(model *discourse.Model, name string) (discourse.Predicate, bool) {
	for _, p := range model.Predicates() {
		if p.Name == name {
			return p, true
		}
	}
	return discourse.Predicate{}, false
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += ", " + a
	}
	return out
}

func unresolvedID(id int) error {
	return CheckError{
		Kind:    "UnresolvedVocabularyID",
		Message: fmt.Sprintf("vocabulary index %d out of range while decoding a countermodel atom", id),
	}
}

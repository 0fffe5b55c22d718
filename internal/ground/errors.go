package ground

import (
	"fmt"

	"github.com/entailer/entailer/internal/discourse"
)

// GroundError reports a problem turning a closed formula into its
// propositional string form.
type GroundError struct {
	Kind    string
	Message string
}

func (e GroundError) Error() string {
	return fmt.Sprintf("ground error (%v): %v", e.Kind, e.Message)
}

func emptyDomainError(v string, t discourse.EntityType) error {
	return GroundError{
		Kind:    "EmptyDomain",
		Message: fmt.Sprintf("quantifier over %q has an empty %v domain", v, t),
	}
}

func unresolvedTermError(name string) error {
	return GroundError{
		Kind:    "UnresolvedTerm",
		Message: fmt.Sprintf("term %q is not in the discourse model's vocabulary", name),
	}
}

func unknownFormulaError(node any) error {
	return GroundError{
		Kind:    "UnknownFormula",
		Message: fmt.Sprintf("grounder does not know how to ground %T", node),
	}
}

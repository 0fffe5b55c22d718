package entailment

import "fmt"

// CheckError reports a problem the Driver itself detects: a sentence that is
// not closed (before solving), or a countermodel atom whose vocabulary id
// cannot be resolved (after solving). Parse, grounding and transform errors
// are returned in their own packages' error types, not as a CheckError.
type CheckError struct {
	Kind    string
	Message string
}

func (e CheckError) Error() string {
	return fmt.Sprintf("entailment check error (%v): %v", e.Kind, e.Message)
}

func freeVariableError(vars map[string]bool) error {
	return CheckError{
		Kind:    "FreeVariable",
		Message: fmt.Sprintf("sentence is not closed: %d free variable(s)", len(vars)),
	}
}

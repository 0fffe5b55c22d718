package numeric

import "fmt"

// MappingError reports a problem converting between rune-keyed literals and
// their DIMACS-style signed integer form.
type MappingError struct {
	Kind    string
	Message string
}

func (e MappingError) Error() string {
	return fmt.Sprintf("numeric mapping error (%v): %v", e.Kind, e.Message)
}

func unknownVariable(id int) error {
	return MappingError{
		Kind:    "UnknownVariable",
		Message: fmt.Sprintf("variable id %d is not in this mapping's vocabulary", id),
	}
}

func zeroLiteral() error {
	return MappingError{
		Kind:    "ZeroLiteral",
		Message: "0 is the DIMACS clause terminator, not a valid literal",
	}
}

package discourse

import "fmt"

// DiscourseError reports a problem building the discourse model from an AST.
type DiscourseError struct {
	Kind    string
	Message string
}

func (e DiscourseError) Error() string {
	return fmt.Sprintf("discourse error (%v): %v", e.Kind, e.Message)
}

// UnknownAstNodeError is raised when populate walks a formula node of a kind
// it does not recognize.
func UnknownAstNodeError(node any) error {
	return DiscourseError{
		Kind:    "UnknownAstNode",
		Message: fmt.Sprintf("unknown AST node kind: %T", node),
	}
}

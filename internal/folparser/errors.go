package folparser

import "fmt"

// SyntaxError reports a sentence the grammar could not parse, or that
// parsed into a shape Convert does not recognize.
type SyntaxError struct {
	Kind    string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error (%v): %v", e.Kind, e.Message)
}

func emptyNode() error {
	return SyntaxError{Kind: "EmptyNode", Message: "grammar node has no populated alternative"}
}

package codec

import "fmt"

// CodecError reports a problem encoding or decoding a ground atom.
type CodecError struct {
	Kind    string
	Message string
}

func (e CodecError) Error() string {
	return fmt.Sprintf("codec error (%v): %v", e.Kind, e.Message)
}

func indexOutOfRange(index, bound int) error {
	return CodecError{
		Kind:    "IndexOutOfRange",
		Message: fmt.Sprintf("index %d is out of range [0, %d)", index, bound),
	}
}

func alphabetExhausted(want, have int) error {
	return CodecError{
		Kind:    "AlphabetExhausted",
		Message: fmt.Sprintf("encoding needs %d code points, only %d remain in the rune alphabet", want, have),
	}
}

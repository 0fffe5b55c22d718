// Package codec implements the bijection between ground atoms — a predicate
// id followed by its argument ids, all indices into a discourse model's
// vocabulary — and single Unicode code points, via mixed-radix product
// coding. This mirrors the original source's Descriptor class exactly,
// generalized from Python's chr()/ord() to Go runes.
package codec

import "unicode/utf8"

// DefaultChrInit is the base code point atoms are allocated from, chosen (as
// in the source) to sit comfortably past ASCII control/connective
// characters.
const DefaultChrInit = 256

// Descriptor encodes a fixed-length list of vocabulary indices into a single
// rune and decodes it back. ArgCounts has one entry per argument position
// (predicate id first, then each argument); every entry equals the
// vocabulary size V in this system, but the type does not require that.
type Descriptor struct {
	ArgCounts []int
	ChrInit   rune
}

// NewDescriptor builds a Descriptor for a vocabulary of size v with
// maxArity+1 radix slots (the predicate id slot plus one per argument
// position), all of width v, based at chrInit.
func NewDescriptor(v, maxArity int, chrInit rune) *Descriptor {
	counts := make([]int, maxArity+1)
	for i := range counts {
		counts[i] = v
	}
	return &Descriptor{ArgCounts: counts, ChrInit: chrInit}
}

// Arity is the number of radix slots this descriptor encodes (predicate id
// plus arguments).
func (d *Descriptor) Arity() int {
	return len(d.ArgCounts)
}

// Encode maps a list of indices — predicate id first, then argument ids —
// to a single symbol. Lists shorter than Arity() are right-padded with 0;
// every index must be non-negative and less than its slot's bound.
func (d *Descriptor) Encode(ids []int) (rune, error) {
	if len(ids) > len(d.ArgCounts) {
		return 0, CodecError{
			Kind:    "TooManyArguments",
			Message: "index list longer than the descriptor's arity",
		}
	}
	padded := make([]int, len(d.ArgCounts))
	copy(padded, ids)

	code := 0
	mult := 1
	for i, id := range padded {
		bound := d.ArgCounts[i]
		if id < 0 || id >= bound {
			return 0, indexOutOfRange(id, bound)
		}
		code += id * mult
		mult *= bound
	}

	sym := d.ChrInit + rune(code)
	if sym < 0 || sym > utf8.MaxRune {
		return 0, alphabetExhausted(code, int(utf8.MaxRune-d.ChrInit))
	}
	return sym, nil
}

// Decode is the exact inverse of Encode: given a symbol, it recovers the
// padded index list.
func (d *Descriptor) Decode(sym rune) ([]int, error) {
	code := int(sym - d.ChrInit)
	if code < 0 {
		return nil, CodecError{
			Kind:    "IndexOutOfRange",
			Message: "symbol precedes the descriptor's code point range",
		}
	}
	ids := make([]int, len(d.ArgCounts))
	for i, bound := range d.ArgCounts {
		ids[i] = code % bound
		code /= bound
	}
	if code != 0 {
		return nil, CodecError{
			Kind:    "IndexOutOfRange",
			Message: "symbol exceeds the descriptor's code point range",
		}
	}
	return ids, nil
}

// Package ground eliminates quantifiers by expanding Exists and All over the
// finite population recorded in a discourse.Model, producing the
// propositional string form the Tseitin transform consumes: single-rune
// ground atoms joined by a single-character connective alphabet, every
// compound fully parenthesized so the transform can scan it stack-wise
// without a lexer.
package ground

import (
	"github.com/entailer/entailer/internal/ast"
	"github.com/entailer/entailer/internal/discourse"
)

// Connective characters used in the propositional string form. Chosen from
// the ASCII range so they never collide with a codec-encoded atom, whose
// runes start at codec.DefaultChrInit (256).
const (
	NotChar = '-'
	AndChar = '&'
	OrChar  = '|'
	ImpChar = '>'
	IffChar = '%'
)

// TrueSymbol and FalseSymbol stand for the two constant truth values
// produced by classical empty-domain grounding (see EmptyDomainPolicy).
// They sit at the top of the valid rune range, above tseitin.AuxBase.
// codec.Descriptor.Encode does not reserve them: a codec atom is distinct
// from them only while the descriptor's code space ends below them, and
// tseitin.Transform rejects any other atom rune at or above AuxBase.
const (
	TrueSymbol  rune = 0x10FFFE
	FalseSymbol rune = 0x10FFFD
)

// EmptyDomainPolicy governs what an Exists or All grounds to when its
// domain (the individuals or events extracted from the formula) is empty.
type EmptyDomainPolicy int

const (
	// PolicyClassical grounds an empty Exists to false and an empty All to
	// true, the usual reading of vacuous quantification. This is the
	// default.
	PolicyClassical EmptyDomainPolicy = iota
	// PolicyError rejects an empty domain instead of grounding it, for
	// callers that want to be told rather than silently get a vacuous
	// truth value.
	PolicyError
)

// Options configures a single Ground call.
type Options struct {
	EmptyDomainPolicy EmptyDomainPolicy
}

// Option mutates Options; see WithEmptyDomainPolicy.
type Option func(*Options)

// WithEmptyDomainPolicy overrides the default classical empty-domain
// grounding.
func WithEmptyDomainPolicy(p EmptyDomainPolicy) Option {
	return func(o *Options) { o.EmptyDomainPolicy = p }
}

// Ground eliminates every quantifier in f by expanding it over model's
// population and returns the resulting propositional string. model must
// already be populated (model.Codec() non-nil) from the same formula (or a
// superset of its vocabulary, as the Driver arranges when checking several
// premises together).
func Ground(f ast.Formula, model *discourse.Model, opts ...Option) (string, error) {
	cfg := Options{EmptyDomainPolicy: PolicyClassical}
	for _, o := range opts {
		o(&cfg)
	}
	return ground(f, model, cfg)
}

func ground(f ast.Formula, model *discourse.Model, cfg Options) (string, error) {
	switch n := f.(type) {
	case ast.Exists:
		return groundQuantifier(n.Var, n.Body, model, cfg, OrChar, FalseSymbol)
	case ast.All:
		return groundQuantifier(n.Var, n.Body, model, cfg, AndChar, TrueSymbol)
	case ast.Not:
		s, err := ground(n.Body, model, cfg)
		if err != nil {
			return "", err
		}
		return "(" + string(NotChar) + s + ")", nil
	case ast.And:
		return groundBinary(n.Left, n.Right, model, cfg, AndChar)
	case ast.Or:
		return groundBinary(n.Left, n.Right, model, cfg, OrChar)
	case ast.Imp:
		return groundBinary(n.Left, n.Right, model, cfg, ImpChar)
	case ast.Iff:
		return groundBinary(n.Left, n.Right, model, cfg, IffChar)
	case ast.Atom:
		return groundAtom(n.Pred, n.Args, model)
	case ast.Equality:
		return groundAtom(ast.EqualityPredicateName, []string{n.Left, n.Right}, model)
	default:
		return "", unknownFormulaError(f)
	}
}

func groundQuantifier(v string, body ast.Formula, model *discourse.Model, cfg Options, joinOp byte, vacuous rune) (string, error) {
	t := discourse.Individual
	if ast.IsEventVariable(v) {
		t = discourse.Event
	}
	entities := model.Entities(t)
	if len(entities) == 0 {
		if cfg.EmptyDomainPolicy == PolicyError {
			return "", emptyDomainError(v, t)
		}
		return string(vacuous), nil
	}
	parts := make([]string, 0, len(entities))
	for _, c := range entities {
		s, err := ground(ast.Substitute(body, v, c.Name), model, cfg)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return foldConnective(parts, joinOp), nil
}

func groundBinary(left, right ast.Formula, model *discourse.Model, cfg Options, op byte) (string, error) {
	l, err := ground(left, model, cfg)
	if err != nil {
		return "", err
	}
	r, err := ground(right, model, cfg)
	if err != nil {
		return "", err
	}
	return "(" + l + string(op) + r + ")", nil
}

func foldConnective(parts []string, op byte) string {
	acc := parts[0]
	for _, p := range parts[1:] {
		acc = "(" + acc + string(op) + p + ")"
	}
	return acc
}

func groundAtom(pred string, args []string, model *discourse.Model) (string, error) {
	predIdx, ok := model.IndexOf(pred)
	if !ok {
		return "", unresolvedTermError(pred)
	}
	ids := make([]int, 0, len(args)+1)
	ids = append(ids, predIdx)
	for _, a := range args {
		idx, ok := model.IndexOf(a)
		if !ok {
			return "", unresolvedTermError(a)
		}
		ids = append(ids, idx)
	}
	sym, err := model.Codec().Encode(ids)
	if err != nil {
		return "", err
	}
	return string(sym), nil
}

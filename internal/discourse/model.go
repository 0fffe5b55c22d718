package discourse

import (
	"github.com/entailer/entailer/internal/ast"
	"github.com/entailer/entailer/internal/codec"
)

// Model is the finite population of named individuals and events extracted
// from one or more formulas, together with their predicate signature. It
// owns the derived vocabulary and Codec used by the rest of the pipeline.
// The Driver populates exactly one Model per check_implication call and
// never mutates it once grounding begins.
type Model struct {
	typeOrder    []EntityType
	entities     map[EntityType][]Constant
	entitySeen   map[string]bool
	predicates   []Predicate
	predicateIdx map[string]int

	vocabulary []string
	codec      *codec.Descriptor
}

// NewModel returns an empty discourse model.
func NewModel() *Model {
	return &Model{
		entities:     make(map[EntityType][]Constant),
		entitySeen:   make(map[string]bool),
		predicateIdx: make(map[string]int),
	}
}

// Vocabulary returns the canonical, deduplicated, insertion-ordered list of
// entity and predicate names. Its index positions are the canonical ids the
// Codec encodes.
func (m *Model) Vocabulary() []string { return m.vocabulary }

// Predicates returns the insertion-ordered predicate signature.
func (m *Model) Predicates() []Predicate { return m.predicates }

// Entities returns the constants of a given type, in insertion order.
func (m *Model) Entities(t EntityType) []Constant { return m.entities[t] }

// Codec returns the descriptor built from the current vocabulary. Valid only
// after Populate has run at least once.
func (m *Model) Codec() *codec.Descriptor { return m.codec }

// IndexOf returns the canonical vocabulary index of a name, and whether it
// was found.
func (m *Model) IndexOf(name string) (int, bool) {
	for i, v := range m.vocabulary {
		if v == name {
			return i, true
		}
	}
	return 0, false
}

// Populate walks f once, registering every constant and predicate it finds,
// then rebuilds the vocabulary and Codec. It is idempotent: calling it twice
// on the same formula (or on formulas sharing vocabulary) never duplicates
// an entry.
func (m *Model) Populate(f ast.Formula) error {
	if err := m.walk(f, map[string]bool{}); err != nil {
		return err
	}
	m.update()
	return nil
}

// walk threads the set of names currently bound by an enclosing Exists/All
// in f's own tree. Classification of an Atom/Equality argument is by this
// true lexical scope, never by spelling: a name shadowed by an ancestor
// quantifier is a variable and is skipped, anything else is a constant —
// including a name that merely looks like a variable (e.g. an existential
// closure witness named "p") when it is not actually bound here.
func (m *Model) walk(f ast.Formula, bound map[string]bool) error {
	switch n := f.(type) {
	case ast.Exists:
		return m.walk(n.Body, withBound(bound, n.Var))
	case ast.All:
		return m.walk(n.Body, withBound(bound, n.Var))
	case ast.Not:
		return m.walk(n.Body, bound)
	case ast.And:
		if err := m.walk(n.Left, bound); err != nil {
			return err
		}
		return m.walk(n.Right, bound)
	case ast.Or:
		if err := m.walk(n.Left, bound); err != nil {
			return err
		}
		return m.walk(n.Right, bound)
	case ast.Imp:
		if err := m.walk(n.Left, bound); err != nil {
			return err
		}
		return m.walk(n.Right, bound)
	case ast.Iff:
		if err := m.walk(n.Left, bound); err != nil {
			return err
		}
		return m.walk(n.Right, bound)
	case ast.Atom:
		argTypes := make([]string, len(n.Args))
		for i, a := range n.Args {
			if bound[a] {
				argTypes[i] = "variable"
				continue
			}
			t := constantType(a)
			argTypes[i] = string(t)
			m.addConstant(t, a)
		}
		m.addPredicate(n.Pred, len(n.Args), argTypes)
		return nil
	case ast.Equality:
		for _, a := range []string{n.Left, n.Right} {
			if bound[a] {
				continue
			}
			m.addConstant(constantType(a), a)
		}
		m.addPredicate(ast.EqualityPredicateName, 2, []string{"any", "any"})
		return nil
	default:
		return UnknownAstNodeError(f)
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

func (m *Model) addConstant(t EntityType, name string) {
	key := string(t) + ":" + name
	if m.entitySeen[key] {
		return
	}
	m.entitySeen[key] = true
	if _, ok := m.entities[t]; !ok {
		m.typeOrder = append(m.typeOrder, t)
	}
	m.entities[t] = append(m.entities[t], Constant{Type: t, Name: name})
}

func (m *Model) addPredicate(name string, arity int, argTypes []string) {
	if _, ok := m.predicateIdx[name]; ok {
		return
	}
	m.predicateIdx[name] = len(m.predicates)
	m.predicates = append(m.predicates, Predicate{Name: name, Arity: arity, ArgTypes: argTypes})
}

// MaxArity returns the largest predicate arity registered so far.
func (m *Model) MaxArity() int {
	max := 0
	for _, p := range m.predicates {
		if p.Arity > max {
			max = p.Arity
		}
	}
	return max
}

// update recomputes the vocabulary (entities grouped by type-insertion
// order, then predicates) and rebuilds the Codec with MaxArity()+1 as its
// maxArity, giving MaxArity()+2 radix slots of width len(vocabulary): the
// predicate id, one per argument, and one more that is always padded with 0.
func (m *Model) update() {
	vocab := make([]string, 0, len(m.predicates)+8)
	for _, t := range m.typeOrder {
		for _, c := range m.entities[t] {
			vocab = append(vocab, c.Name)
		}
	}
	for _, p := range m.predicates {
		vocab = append(vocab, p.Name)
	}
	m.vocabulary = vocab
	m.codec = codec.NewDescriptor(len(vocab), m.MaxArity()+1, codec.DefaultChrInit)
}

package discourse

// EntityType distinguishes the two sorts of constants the grounder quantifies
// over.
type EntityType string

const (
	Individual EntityType = "individual"
	Event      EntityType = "event"
)

// Constant is a named individual or event drawn from a formula's
// application arguments or equality operands. Equality is by Name.
// Immutable once created.
type Constant struct {
	Type EntityType
	Name string
}

// Predicate is a predicate constant of the language: a name, its arity (from
// first occurrence) and the AST-derived kind of each argument position.
// Equality is by Name. Immutable post-extraction.
type Predicate struct {
	Name     string
	Arity    int
	ArgTypes []string
}

// constantType classifies a term's surface name into the entity type it
// denotes when used as a constant: names beginning with "Ev_" are events,
// everything else is an individual.
func constantType(name string) EntityType {
	if len(name) >= 3 && name[:3] == "Ev_" {
		return Event
	}
	return Individual
}

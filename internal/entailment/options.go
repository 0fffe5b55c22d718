package entailment

import (
	"github.com/hashicorp/go-hclog"

	"github.com/entailer/entailer/internal/ground"
)

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithExistentialClosure turns on the closed-world heuristic (see
// ground.ApplyExistentialClosure) for every premise a Driver checks. Off by
// default: it changes the logical content of a premise, so a caller has to
// opt in.
func WithExistentialClosure() Option {
	return func(d *Driver) { d.existentialClosure = true }
}

// WithEmptyDomainPolicy overrides the default classical reading of a
// quantifier over an empty domain (see ground.EmptyDomainPolicy).
func WithEmptyDomainPolicy(p ground.EmptyDomainPolicy) Option {
	return func(d *Driver) { d.emptyDomainPolicy = p }
}

// WithLogger attaches a logger; the zero value is hclog.NewNullLogger().
func WithLogger(l hclog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

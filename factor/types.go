package factor

import (
	"errors"

	"github.com/asgrim/sumproduct/domain"
)

// Sentinel errors for factor construction and evaluation.
var (
	// ErrNoArgs indicates a Factor was constructed with an empty argument list.
	ErrNoArgs = errors.New("factor: factor must declare at least one argument")

	// ErrMissingDomain indicates an argument name has no entry in the
	// domains map passed to NewFactor.
	ErrMissingDomain = errors.New("factor: argument has no declared domain")

	// ErrNilFunc indicates a nil evaluation function was passed to NewFactor.
	ErrNilFunc = errors.New("factor: evaluation function is nil")
)

// Func is the pure evaluation function carried by a Factor. It is called
// only with an Assignment restricted to the Factor's declared Args, drawn
// from their declared Domains.
type Func func(domain.Assignment) float64

// Term is a multiplicand in a message or a marginalization sum: either a
// Factor or a numeric constant (Const), treated as a 0-ary factor.
type Term interface {
	// Args returns the ordered list of variable names this term depends on.
	// A Const returns nil.
	Args() []string

	// Domains returns the declared domain for each of Args, keyed by name.
	// A Const returns an empty map.
	Domains() map[string]domain.Domain

	// Evaluate returns this term's value at the restriction of a to Args.
	// a must contain every name in Args; Evaluate does not validate that
	// membership, mirroring the spec's guarantee that the engine only ever
	// calls a factor with exactly its declared arguments.
	Evaluate(a domain.Assignment) float64
}

// Const is a numeric constant multiplicand, used as the identity (1) by
// leaf variable nodes and wherever a plain scalar participates in a
// product alongside real factors.
type Const float64

// Args always returns nil for a Const: it has no free variables.
func (Const) Args() []string { return nil }

// Domains always returns an empty map for a Const.
func (Const) Domains() map[string]domain.Domain { return nil }

// Evaluate returns the constant's value, ignoring a entirely.
func (c Const) Evaluate(domain.Assignment) float64 { return float64(c) }

// Factor is a named, total, referentially transparent function over a
// declared tuple of argument variables, each with its own discrete domain.
type Factor struct {
	name    string
	args    []string
	domains map[string]domain.Domain
	fn      Func
}

// NewFactor constructs a Factor over args, each of which must have an entry
// in domains. fn is invoked only with assignments restricted to args.
func NewFactor(name string, args []string, domains map[string]domain.Domain, fn Func) (*Factor, error) {
	if len(args) == 0 {
		return nil, ErrNoArgs
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	seen := make(map[string]struct{}, len(args))
	for _, a := range args {
		if _, dup := seen[a]; dup {
			return nil, domain.ErrDuplicateArg
		}
		seen[a] = struct{}{}
		d, ok := domains[a]
		if !ok || len(d) == 0 {
			return nil, ErrMissingDomain
		}
	}

	argsCopy := make([]string, len(args))
	copy(argsCopy, args)
	domsCopy := make(map[string]domain.Domain, len(domains))
	for _, a := range args {
		domsCopy[a] = domains[a]
	}

	return &Factor{name: name, args: argsCopy, domains: domsCopy, fn: fn}, nil
}

// Name returns the factor's declared name.
func (f *Factor) Name() string { return f.name }

// Args returns the ordered argument-name list this factor was declared over.
func (f *Factor) Args() []string { return f.args }

// Domains returns the declared domain for each of f's Args, keyed by name.
func (f *Factor) Domains() map[string]domain.Domain { return f.domains }

// Evaluate calls fn with a restricted to f's declared Args.
func (f *Factor) Evaluate(a domain.Assignment) float64 {
	return f.fn(a.Restrict(f.args))
}

package marginalize

import (
	"errors"
	"fmt"

	"github.com/asgrim/sumproduct/domain"
	"github.com/asgrim/sumproduct/factor"
)

// ErrDomainConflict indicates two terms declared different domains for the
// same free (summed-over) variable name.
var ErrDomainConflict = errors.New("marginalize: conflicting domains for same free variable")

// Eval sums the product of terms over every variable free in terms but not
// present in argspec, evaluated at the fixed outer assignment outer (which
// must cover argspec). See the package doc for the formula.
//
// Complexity: O(prod(|domain(s)| for s in the free set) * len(terms)).
func Eval(argspec []string, terms []factor.Term, outer domain.Assignment) (float64, error) {
	freeArgs, err := freeArgsOf(argspec, terms)
	if err != nil {
		return 0, err
	}

	if len(freeArgs) == 0 {
		return product(terms, outer), nil
	}

	total := 0.0
	err = domain.Product(freeArgs, func(b domain.Assignment) error {
		total += product(terms, outer.Merge(b))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("marginalize: %w", err)
	}
	return total, nil
}

// product returns the plain product of every term evaluated at a, with no
// summation. This is Eval's degenerate case (free set empty) and the inner
// loop body of the general case.
func product(terms []factor.Term, a domain.Assignment) float64 {
	result := 1.0
	for _, t := range terms {
		result *= t.Evaluate(a)
	}
	return result
}

// freeArgsOf computes S = (union of declared args of every term) minus
// argspec, returning it as a validated []domain.Arg ready for domain.Product.
// Domains for each free variable are taken from whichever term declared it;
// a later term declaring a different domain for the same name is reported
// as ErrDomainConflict.
func freeArgsOf(argspec []string, terms []factor.Term) ([]domain.Arg, error) {
	inSpec := make(map[string]struct{}, len(argspec))
	for _, n := range argspec {
		inSpec[n] = struct{}{}
	}

	order := make([]string, 0)
	domains := make(map[string]domain.Domain)
	for _, t := range terms {
		for _, name := range t.Args() {
			if _, skip := inSpec[name]; skip {
				continue
			}
			d := t.Domains()[name]
			existing, seen := domains[name]
			if !seen {
				domains[name] = d
				order = append(order, name)
				continue
			}
			if !sameDomain(existing, d) {
				return nil, fmt.Errorf("%w: %q", ErrDomainConflict, name)
			}
		}
	}

	args := make([]domain.Arg, 0, len(order))
	for _, name := range order {
		args = append(args, domain.Arg{Name: name, Domain: domains[name]})
	}
	return args, nil
}

func sameDomain(a, b domain.Domain) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

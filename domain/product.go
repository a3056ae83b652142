package domain

// Product enumerates every assignment of args to their Domain values, in
// the lexicographic order args are listed (args[0] varies slowest). For
// each full assignment it invokes visit; if visit returns an error, Product
// stops and returns that error immediately.
//
// Complexity: O(prod(len(a.Domain) for a in args)) calls to visit, O(len(args))
// extra space for the running assignment.
func Product(args []Arg, visit func(Assignment) error) error {
	if len(args) == 0 {
		return visit(Assignment{})
	}
	if err := ValidateArgs(args); err != nil {
		return err
	}

	cur := make(Assignment, len(args))
	return product(args, 0, cur, visit)
}

func product(args []Arg, i int, cur Assignment, visit func(Assignment) error) error {
	if i == len(args) {
		// Copy so callers may retain the assignment across calls.
		snapshot := make(Assignment, len(cur))
		for k, v := range cur {
			snapshot[k] = v
		}
		return visit(snapshot)
	}
	arg := args[i]
	for _, v := range arg.Domain {
		cur[arg.Name] = v
		if err := product(args, i+1, cur, visit); err != nil {
			return err
		}
	}
	delete(cur, arg.Name)
	return nil
}

// All collects every assignment of args into a slice, in the same order
// Product would visit them. Intended for tests and small domains; the
// marginalization engine itself uses Product directly to avoid the
// allocation.
func All(args []Arg) ([]Assignment, error) {
	var out []Assignment
	err := Product(args, func(a Assignment) error {
		out = append(out, a)
		return nil
	})
	return out, err
}

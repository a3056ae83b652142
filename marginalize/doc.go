// Package marginalize implements the single numerical kernel of the engine:
// summing a product of Term multiplicands over every "free" variable not
// present in a target argument list.
//
// What
//
//   - Given an ordered target argument list argspec, a list of Term
//     multiplicands, and an outer Assignment A over argspec, Eval computes:
//
//     sum over every assignment B of vars(terms) \ argspec
//     of (product over t in terms of t.Evaluate(A ∪ B restricted to t's Args))
//
//   - If the free-variable set is empty, the sum has exactly one term (the
//     empty assignment) and Eval reduces to a plain product.
//   - If terms is empty or every term is a Const, Eval returns the product
//     of those constants regardless of A.
//
// Why
//
//   - This formula is used twice in the engine: once to evaluate a
//     constructed Message (factor-to-variable messages carry hidden,
//     not-yet-summed arguments), and once to compute a VariableNode's
//     marginal from its mailbox. Implementing it once here means both
//     callers are thin wrappers around Eval.
//
// Numerical policy
//
//   - All arithmetic is double-precision floating point; no log-space.
//     The engine returns unrounded float64 values; rounding for display is
//     the caller's responsibility.
//
// Errors
//
//   - ErrDomainConflict if two terms declare different domains for the
//     same free variable.
package marginalize

// Package factor defines the factor-function abstraction: a pure mapping
// from an assignment of declared argument variables to a non-negative real,
// and the Term interface the marginalization engine sums and multiplies.
//
// A Factor is total (defined for every combination of its declared
// arguments' domains) and referentially transparent (same assignment,
// same value, no hidden state). It is invoked by callers only with values
// drawn from its declared domains; values for other variables in a passed
// assignment are ignored.
//
// Term generalizes a Factor and a bare numeric constant (a "0-ary factor",
// per spec) under one interface so that message construction and
// marginalization can treat both uniformly.
package factor

// Package domain defines value domains and variable assignments, and
// enumerates the cartesian product of a list of (name, domain) pairs.
//
// A Domain is a finite, non-empty, ordered list of symbolic Values for one
// variable. An Assignment maps variable names to a Value drawn from their
// respective Domain. Product walks every combination of a set of named
// domains in the lexicographic order the arguments are listed, which is
// deterministic but not otherwise semantically meaningful — callers must
// not depend on a particular enumeration order, only on the final summed
// result.
package domain

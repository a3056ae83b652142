// Package sumproduct (asgrim/sumproduct) is your in-memory playground for
// exact probabilistic inference over discrete factor graphs in Go.
//
// 🚀 What is sumproduct?
//
//	A small, dependency-light library that brings together:
//
//	  • Domain primitives: values, assignments, and cartesian enumeration
//	  • Factor primitives: named functions over declared argument tuples
//	  • A generic sum-of-products marginalization kernel
//	  • A bipartite factor graph with sum-product (belief propagation)
//	    message scheduling over trees
//
// ✨ Why choose sumproduct?
//
//   - Beginner-friendly    — minimal API, clear, intuitive naming
//   - Exact                — sum-product on a tree yields exact marginals,
//     no sampling or approximation
//   - Extensible           — evidence is wired in as an ordinary factor
//     node, attached once per variable on its first pin; re-pinning and
//     un-pinning never touch graph topology
//   - Pure Go              — no cgo, no hidden runtime dependencies
//
// Under the hood, everything is organized under five subpackages:
//
//	domain/       — Value, Domain, Assignment, and Product enumeration
//	factor/       — Term, Const, and Factor: named functions over declared args
//	marginalize/  — the generic sum-over-free-variables evaluation kernel
//	message/      — Message, the unit a graph edge carries in one direction
//	fgraph/       — VariableNode, FactorNode, FactorGraph, and evidence
//
// Quick ASCII example, a variable x3 conditioned on two independent
// priors x1, x2, feeding two further conditionals x4, x5:
//
//	    x1   x2
//	     \   /
//	      fC
//	      |
//	      x3
//	     /  \
//	   fD    fE
//	   |      |
//	   x4     x5
//
// Dive into DESIGN.md for the grounding behind each package's choices.
//
//	go get github.com/asgrim/sumproduct
package sumproduct

// Package fgraph implements the bipartite factor-graph data model
// (VariableNode / FactorNode), the sum-product propagation scheduler
// (FactorGraph), and evidence pinning.
//
// What
//
//   - VariableNode and FactorNode are the two node classes of a bipartite
//     factor graph. Every edge connects one of each. Each node tracks its
//     neighbors (split into Parents/Children for traceability back to the
//     originating Bayesian network, though the split carries no scheduling
//     meaning — both are simply neighbors) and a mailbox of the most recent
//     Message received from each neighbor.
//   - FactorGraph holds the full node set and drives Propagate: a two-phase
//     (fan-in then fan-out) sum-product schedule that, on a tree, delivers
//     exactly one message per edge per direction and then terminates.
//   - AddEvidence pins a VariableNode to an observed value by attaching an
//     indicator factor (1 at the observed value, 0 elsewhere).
//   - NewFactorGraph accepts FactorGraphOption values (WithStrictTopology)
//     for construction-time tuning, the same functional-option shape used
//     elsewhere in this codebase's lineage.
//
// Readiness rule
//
//	A node may send to neighbor v once it has received a message from every
//	other neighbor. A degree-≤1 (leaf) node satisfies this trivially with
//	the empty set and sends first.
//
// Determinism
//
//	Neighbor order is the order Parents then Children were assigned, so
//	GetTarget and GetEligibleSenders are fully deterministic; any fair
//	interleaving of eligible senders yields identical final mailbox contents
//	on a tree, since sum-product there is confluent.
//
// Errors
//
//   - ErrNotBipartite, ErrUnknownNeighbor, ErrNotATree — topology errors
//     raised by NewFactorGraph.
//   - ErrSchedulingStall — raised by Propagate if the node set is not a
//     tree (some edge never carries a message in one or both directions).
//   - domain.ErrValueNotInDomain — raised by AddEvidence and Marginal for a value
//     outside the variable's declared domain.
//
// Open question (not implemented)
//
//	VariableNode.ConstructMessage forwards the raw product of incoming
//	multiplicands without collapsing them into a per-value table, per the
//	spec's non-mandatory optimization. This has exponential worst-case cost
//	in graph depth; collapsing to a small table keyed by the node's single
//	free variable is equivalent and polynomial, and is a reasonable future
//	change if this package is ever used on deep trees.
package fgraph

package fgraph

import "fmt"

// FactorGraph is the scheduler and node registry for sum-product
// propagation over a bipartite graph of VariableNode and FactorNode.
type FactorGraph struct {
	order  []string
	byName map[string]node

	strictTopology bool
}

// FactorGraphOption configures behavior of a FactorGraph before construction.
type FactorGraphOption func(g *FactorGraph)

// WithStrictTopology toggles the tree-shape check (connected, acyclic,
// edge count == nodeCount-1). Strict by default: sum-product correctness
// depends on propagating over a tree, so NewFactorGraph rejects anything
// else unless this is explicitly disabled with strict=false. Bipartite
// parity, neighbor resolution, and edge mutuality are always checked
// regardless of this setting — those are wiring-correctness checks, not a
// scheduling requirement.
func WithStrictTopology(strict bool) FactorGraphOption {
	return func(g *FactorGraph) { g.strictTopology = strict }
}

// NewFactorGraph validates and wires a FactorGraph over vs and fs.
// Validation checks: every name is unique, every neighbor name listed by a
// node resolves to a node of the opposite kind, every edge is mutual (A
// lists B iff B lists A), and — unless WithStrictTopology(false) is passed —
// that the resulting node set forms a single tree. Node iteration order
// (GetLeaves, GetEligibleSenders) follows vs then fs, in the order given.
func NewFactorGraph(vs []*VariableNode, fs []*FactorNode, opts ...FactorGraphOption) (*FactorGraph, error) {
	byName := make(map[string]node, len(vs)+len(fs))
	order := make([]string, 0, len(vs)+len(fs))

	for _, v := range vs {
		if _, dup := byName[v.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, v.Name())
		}
		byName[v.Name()] = v
		order = append(order, v.Name())
	}
	for _, f := range fs {
		if _, dup := byName[f.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, f.Name())
		}
		byName[f.Name()] = f
		order = append(order, f.Name())
	}

	g := &FactorGraph{order: order, byName: byName, strictTopology: true}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.validateTopology(); err != nil {
		return nil, err
	}
	return g, nil
}

// validateTopology checks bipartite parity, neighbor resolution, and edge
// mutuality unconditionally; with strictTopology set (the default) it also
// requires the node set form a single tree (connected, acyclic, edge count
// == nodeCount-1).
func (g *FactorGraph) validateTopology() error {
	edgeCount := 0
	for _, name := range g.order {
		n := g.byName[name]
		for _, nbrName := range n.neighbors() {
			nbr, ok := g.byName[nbrName]
			if !ok {
				return fmt.Errorf("%w: %q references %q", ErrUnknownNeighbor, name, nbrName)
			}
			if nbr.kindOf() == n.kindOf() {
				return fmt.Errorf("%w: %q and %q are the same kind", ErrNotBipartite, name, nbrName)
			}
			if !contains(nbr.neighbors(), name) {
				return fmt.Errorf("%w: %q lists %q but not vice versa", ErrAsymmetricEdge, name, nbrName)
			}
			edgeCount++
		}
	}
	// Each undirected edge was counted once from each endpoint.
	edgeCount /= 2

	if !g.strictTopology || len(g.order) == 0 {
		return nil
	}
	if edgeCount != len(g.order)-1 {
		return fmt.Errorf("%w: %d nodes, %d edges (want %d)", ErrNotATree, len(g.order), edgeCount, len(g.order)-1)
	}
	if !g.isConnected() {
		return fmt.Errorf("%w: disconnected", ErrNotATree)
	}
	return nil
}

// isConnected reports whether every node is reachable from the first node
// via neighbor traversal. Combined with the edge-count check in
// validateTopology (edges == nodes-1), this certifies a tree.
func (g *FactorGraph) isConnected() bool {
	if len(g.order) == 0 {
		return true
	}
	visited := make(map[string]bool, len(g.order))
	stack := []string{g.order[0]}
	visited[g.order[0]] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nbr := range g.byName[cur].neighbors() {
			if !visited[nbr] {
				visited[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}
	return len(visited) == len(g.order)
}

func contains(ss []string, target string) bool {
	for _, s := range ss {
		if s == target {
			return true
		}
	}
	return false
}

// Variable returns the named VariableNode, or nil if the name is absent or
// names a FactorNode.
func (g *FactorGraph) Variable(name string) *VariableNode {
	n, ok := g.byName[name].(*VariableNode)
	if !ok {
		return nil
	}
	return n
}

// Factor returns the named FactorNode, or nil if the name is absent or
// names a VariableNode.
func (g *FactorGraph) Factor(name string) *FactorNode {
	n, ok := g.byName[name].(*FactorNode)
	if !ok {
		return nil
	}
	return n
}

// GetLeaves returns every node with at most one incident edge, in node-list
// order.
func (g *FactorGraph) GetLeaves() []string {
	var out []string
	for _, name := range g.order {
		if g.byName[name].isLeaf() {
			out = append(out, name)
		}
	}
	return out
}

// GetEligibleSenders returns every node whose GetTarget is not no-target,
// in node-list order.
func (g *FactorGraph) GetEligibleSenders() []string {
	var out []string
	for _, name := range g.order {
		if _, ok := g.byName[name].getTarget(); ok {
			out = append(out, name)
		}
	}
	return out
}

// Propagate runs sum-product message passing to completion: while any node
// is eligible to send, each eligible sender (in node-list order) constructs
// its message and delivers it, until no node has a target left. On a tree
// this terminates with exactly 2*(nodeCount-1) deliveries, one per edge per
// direction; if any edge never carries a message in both directions,
// Propagate returns ErrSchedulingStall.
func (g *FactorGraph) Propagate() error {
	for {
		eligible := g.GetEligibleSenders()
		if len(eligible) == 0 {
			break
		}
		for _, name := range eligible {
			sender := g.byName[name]
			target, ok := sender.getTarget()
			if !ok {
				// Became ineligible since GetEligibleSenders was computed
				// (e.g. a prior step in this same pass delivered the
				// message that would have been its only option); skip.
				continue
			}
			msg, err := sender.constructMessage()
			if err != nil {
				return err
			}
			dest, ok := g.byName[target]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownNeighbor, target)
			}
			if err := sender.send(dest, msg); err != nil {
				return err
			}
		}
	}
	return g.checkComplete()
}

// checkComplete verifies every node has sent on every incident edge.
func (g *FactorGraph) checkComplete() error {
	for _, name := range g.order {
		n := g.byName[name]
		for _, nbr := range n.neighbors() {
			if !n.sentTo()[nbr] {
				return fmt.Errorf("%w: %q never sent to %q", ErrSchedulingStall, name, nbr)
			}
		}
	}
	return nil
}

// Reset empties every mailbox, clears every sent-edge marker, and clears
// every evidence pin. Graph topology (neighbor lists) is untouched; a
// subsequent Propagate reproduces the mailbox contents of a fresh graph
// built the same way, except that a variable that was ever pinned keeps its
// indicator factor node, which now evaluates to 1 everywhere, so that
// variable's mailbox holds one extra message and the messages it sends
// carry one extra multiplicand, both of value 1.
func (g *FactorGraph) Reset() {
	for _, name := range g.order {
		g.byName[name].reset()
	}
}

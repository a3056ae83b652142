package fgraph

import (
	"fmt"

	"github.com/asgrim/sumproduct/factor"
	"github.com/asgrim/sumproduct/message"
)

// FactorNode is a factor-function node in the bipartite factor graph.
//
// Parents are the argument variables that feed f — its declared
// arguments. Children is the (at most one) variable f contributes a
// conditional to. A factor with zero parents is a prior: its Func depends
// only on its single child.
type FactorNode struct {
	name     string
	fn       *factor.Factor
	parents  []string
	children []string

	box  Mailbox
	sent map[string]bool
}

// NewFactorNode wraps fn as a named node. Parents and Children (variable
// names) may be assigned afterward via SetParents / SetChildren.
func NewFactorNode(name string, fn *factor.Factor) *FactorNode {
	return &FactorNode{
		name: name,
		fn:   fn,
		box:  make(Mailbox),
		sent: make(map[string]bool),
	}
}

// Name returns the factor's unique node name.
func (f *FactorNode) Name() string { return f.name }

// Func returns the underlying factor function this node wraps.
func (f *FactorNode) Func() *factor.Factor { return f.fn }

// SetParents assigns the argument-variable names feeding this factor.
func (f *FactorNode) SetParents(names ...string) { f.parents = append([]string(nil), names...) }

// SetChildren assigns the variable name(s) this factor contributes to.
func (f *FactorNode) SetChildren(names ...string) { f.children = append([]string(nil), names...) }

// Parents returns the argument-variable names feeding this factor.
func (f *FactorNode) Parents() []string { return f.parents }

// Children returns the variable name(s) this factor contributes to.
func (f *FactorNode) Children() []string { return f.children }

// ReceivedMessages returns the mailbox of messages received so far in the
// current propagation, keyed by neighbor name.
func (f *FactorNode) ReceivedMessages() Mailbox { return f.box }

func (f *FactorNode) kindOf() kind { return kindFactor }

func (f *FactorNode) neighbors() []string {
	out := make([]string, 0, len(f.parents)+len(f.children))
	out = append(out, f.parents...)
	out = append(out, f.children...)
	return out
}

// Neighbors returns every incident variable-node name, parents then children.
func (f *FactorNode) Neighbors() []string { return f.neighbors() }

// IsLeaf reports whether f has at most one incident edge (equivalently: f
// is a prior, with zero argument-parents beyond its single child).
func (f *FactorNode) IsLeaf() bool { return f.isLeaf() }

func (f *FactorNode) isLeaf() bool { return len(f.neighbors()) <= 1 }

func (f *FactorNode) mailbox() Mailbox        { return f.box }
func (f *FactorNode) sentTo() map[string]bool { return f.sent }

// GetTarget returns the unique neighbor eligible to receive a message now,
// or ok=false if f is not yet ready to send.
func (f *FactorNode) GetTarget() (string, bool) { return f.getTarget() }

func (f *FactorNode) getTarget() (string, bool) {
	ns := f.neighbors()
	for _, candidate := range ns {
		if f.sent[candidate] {
			continue
		}
		if f.readyToSend(ns, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (f *FactorNode) readyToSend(ns []string, candidate string) bool {
	for _, n := range ns {
		if n == candidate {
			continue
		}
		if _, ok := f.box[n]; !ok {
			return false
		}
	}
	return true
}

// ConstructMessage builds the message f would send to its current target
// destination variable d. The result's ArgSpec is [d] — on a tree, the
// factor-to-variable message is a function solely of the destination
// variable. Its Factors are f's own function plus the flattened
// multiplicands of every incoming message except d's; the marginalization
// engine sums over every other declared argument when this message is
// later evaluated.
func (f *FactorNode) ConstructMessage() (message.Message, error) { return f.constructMessage() }

func (f *FactorNode) constructMessage() (message.Message, error) {
	target, ok := f.getTarget()
	if !ok {
		return message.Message{}, fmt.Errorf("factor %q: %w", f.name, ErrNoTarget)
	}

	factors := []factor.Term{f.fn}
	for _, n := range f.neighbors() {
		if n == target {
			continue
		}
		factors = append(factors, f.box[n].Factors...)
	}
	return message.Message{
		Source:      f.name,
		Destination: target,
		ArgSpec:     []string{target},
		Factors:     factors,
	}, nil
}

func (f *FactorNode) send(dest node, m message.Message) error {
	if err := dest.receive(f.name, m); err != nil {
		return err
	}
	f.sent[m.Destination] = true
	return nil
}

func (f *FactorNode) receive(from string, m message.Message) error {
	if _, dup := f.box[from]; dup {
		return fmt.Errorf("factor %q: %w (from %q)", f.name, ErrDuplicateDelivery, from)
	}
	f.box[from] = m
	return nil
}

func (f *FactorNode) reset() {
	f.box = make(Mailbox)
	f.sent = make(map[string]bool)
}

package fgraph

import (
	"fmt"

	"github.com/asgrim/sumproduct/domain"
	"github.com/asgrim/sumproduct/factor"
	"github.com/asgrim/sumproduct/marginalize"
	"github.com/asgrim/sumproduct/message"
)

// VariableNode is a random-variable node in the bipartite factor graph.
//
// Parents are the factors supplying a probability for this variable's
// value (typically zero or one: the prior or the conditional that
// generates it). Children are the factors that consume this variable as
// an argument. The split has no scheduling meaning — both are simply
// neighbors — and reflects only the originating Bayesian network.
type VariableNode struct {
	name     string
	domain   domain.Domain
	parents  []string
	children []string

	box      Mailbox
	sent     map[string]bool
	evidence *domain.Value // non-nil once AddEvidence has pinned this variable

	// evidenceState backs the lazily-wired indicator factor node; nil
	// until the first AddEvidence call for this variable.
	evidenceState *evidenceState
}

// NewVariableNode constructs a VariableNode over the given domain. Parents
// and Children (factor names) may be assigned afterward via SetParents /
// SetChildren, per the spec's forward-reference construction model.
func NewVariableNode(name string, d domain.Domain) (*VariableNode, error) {
	if len(d) == 0 {
		return nil, domain.ErrEmptyDomain
	}
	return &VariableNode{
		name:   name,
		domain: d,
		box:    make(Mailbox),
		sent:   make(map[string]bool),
	}, nil
}

// Name returns the variable's unique name.
func (v *VariableNode) Name() string { return v.name }

// Domain returns the variable's declared value domain.
func (v *VariableNode) Domain() domain.Domain { return v.domain }

// SetParents assigns the factor names supplying this variable's value.
func (v *VariableNode) SetParents(names ...string) { v.parents = append([]string(nil), names...) }

// SetChildren assigns the factor names consuming this variable as an argument.
func (v *VariableNode) SetChildren(names ...string) { v.children = append([]string(nil), names...) }

// Parents returns the factor-node names supplying this variable's value.
func (v *VariableNode) Parents() []string { return v.parents }

// Children returns the factor-node names consuming this variable.
func (v *VariableNode) Children() []string { return v.children }

// ReceivedMessages returns the mailbox of messages received so far in the
// current propagation, keyed by neighbor name.
func (v *VariableNode) ReceivedMessages() Mailbox { return v.box }

func (v *VariableNode) kindOf() kind { return kindVariable }

func (v *VariableNode) neighbors() []string {
	out := make([]string, 0, len(v.parents)+len(v.children))
	out = append(out, v.parents...)
	out = append(out, v.children...)
	return out
}

// Neighbors returns every incident factor-node name, parents then children.
func (v *VariableNode) Neighbors() []string { return v.neighbors() }

// IsLeaf reports whether v has at most one incident edge.
func (v *VariableNode) IsLeaf() bool { return v.isLeaf() }

func (v *VariableNode) isLeaf() bool { return len(v.neighbors()) <= 1 }

func (v *VariableNode) mailbox() Mailbox          { return v.box }
func (v *VariableNode) sentTo() map[string]bool   { return v.sent }

// GetTarget returns the unique neighbor eligible to receive a message now,
// or ok=false if v is not yet ready to send (see the readiness rule in the
// package doc).
func (v *VariableNode) GetTarget() (string, bool) { return v.getTarget() }

func (v *VariableNode) getTarget() (string, bool) {
	ns := v.neighbors()
	for _, candidate := range ns {
		if v.sent[candidate] {
			continue
		}
		if v.readyToSend(ns, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// readyToSend reports whether every neighbor other than candidate has a
// mailbox entry.
func (v *VariableNode) readyToSend(ns []string, candidate string) bool {
	for _, n := range ns {
		if n == candidate {
			continue
		}
		if _, ok := v.box[n]; !ok {
			return false
		}
	}
	return true
}

// ConstructMessage builds the message v would send to its current target.
// A leaf variable sends the Identity message. An interior variable forwards
// the product of its incoming messages' multiplicands, excluding the
// destination — no summation is performed here; that is deferred to
// whichever message eventually evaluates the result (see marginalize).
func (v *VariableNode) ConstructMessage() (message.Message, error) { return v.constructMessage() }

func (v *VariableNode) constructMessage() (message.Message, error) {
	target, ok := v.getTarget()
	if !ok {
		return message.Message{}, fmt.Errorf("variable %q: %w", v.name, ErrNoTarget)
	}

	if v.isLeaf() {
		return message.Identity(v.name, target), nil
	}

	var factors []factor.Term
	for _, n := range v.neighbors() {
		if n == target {
			continue
		}
		factors = append(factors, v.box[n].Factors...)
	}
	return message.Message{
		Source:      v.name,
		Destination: target,
		ArgSpec:     []string{v.name},
		Factors:     factors,
	}, nil
}

// send delivers m to dest's mailbox, keyed by v's name, and records the
// edge as sent so getTarget will not offer it again this propagation.
func (v *VariableNode) send(dest node, m message.Message) error {
	if err := dest.receive(v.name, m); err != nil {
		return err
	}
	v.sent[m.Destination] = true
	return nil
}

func (v *VariableNode) receive(from string, m message.Message) error {
	if _, dup := v.box[from]; dup {
		return fmt.Errorf("variable %q: %w (from %q)", v.name, ErrDuplicateDelivery, from)
	}
	v.box[from] = m
	return nil
}

// Evidence returns the pinned value and true, or ("", false) if unpinned.
// Pinning itself happens via FactorGraph.AddEvidence, which also wires the
// indicator factor that realizes the pin during propagation.
func (v *VariableNode) Evidence() (domain.Value, bool) {
	if v.evidence == nil {
		return "", false
	}
	return *v.evidence, true
}

// Marginal returns the unnormalized marginal of v at value, the product
// over every neighbor of that neighbor's received message evaluated at
// {v.name: value}, divided by normalizer. With an empty mailbox (no
// propagation has run yet), this returns 1/normalizer — the multiplicative
// identity — which is the defined, non-error result of querying an
// un-propagated graph.
func (v *VariableNode) Marginal(value domain.Value, normalizer float64) (float64, error) {
	if err := restrictToDomain(v.domain, value); err != nil {
		return 0, err
	}
	a := domain.Assignment{v.name: value}
	product := 1.0
	for _, n := range v.neighbors() {
		m, ok := v.box[n]
		if !ok {
			continue
		}
		val, err := marginalize.Eval(m.ArgSpec, m.Factors, a)
		if err != nil {
			return 0, fmt.Errorf("variable %q: %w", v.name, err)
		}
		product *= val
	}
	return product / normalizer, nil
}

// reset clears the mailbox and sent-edge markers, and un-pins any
// evidence. The indicator factor node (if one was ever attached by
// AddEvidence) stays wired — graph topology is untouched by Reset — but
// its evidenceState.pinned goes back to nil, so it evaluates as neutral
// (always 1) until AddEvidence pins it again.
func (v *VariableNode) reset() {
	v.box = make(Mailbox)
	v.sent = make(map[string]bool)
	v.evidence = nil
	if v.evidenceState != nil {
		v.evidenceState.pinned = nil
	}
}

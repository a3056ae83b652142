package fgraph

import (
	"errors"

	"github.com/asgrim/sumproduct/domain"
	"github.com/asgrim/sumproduct/message"
)

// Sentinel errors for factor-graph construction and propagation.
var (
	// ErrNotBipartite indicates an edge connects two nodes of the same
	// kind (variable-variable or factor-factor).
	ErrNotBipartite = errors.New("fgraph: graph is not bipartite")

	// ErrUnknownNeighbor indicates a node lists a neighbor name with no
	// corresponding node in the graph.
	ErrUnknownNeighbor = errors.New("fgraph: neighbor has no corresponding node")

	// ErrAsymmetricEdge indicates neighbor A lists B but B does not list A.
	ErrAsymmetricEdge = errors.New("fgraph: edge is not mutual between its endpoints")

	// ErrNotATree indicates the node set is disconnected or contains a
	// cycle; sum-product requires a tree.
	ErrNotATree = errors.New("fgraph: graph is not a tree")

	// ErrSchedulingStall indicates Propagate terminated with at least one
	// edge that never carried a message in one or both directions —
	// evidence of a cycle or disconnection that slipped past construction.
	ErrSchedulingStall = errors.New("fgraph: scheduling stalled before every edge completed")

	// ErrNoTarget indicates ConstructMessage was called on a node with no
	// eligible destination (the caller should have checked GetTarget first).
	ErrNoTarget = errors.New("fgraph: node has no eligible target")

	// ErrDuplicateDelivery indicates a message was delivered twice on the
	// same directed edge within one propagation.
	ErrDuplicateDelivery = errors.New("fgraph: duplicate delivery on same edge in one propagation")

	// ErrDuplicateName indicates two nodes in a FactorGraph share a name.
	ErrDuplicateName = errors.New("fgraph: duplicate node name")

	// ErrUnknownVariable indicates AddEvidence referenced a variable name
	// absent from the graph.
	ErrUnknownVariable = errors.New("fgraph: variable not found")
)

// Mailbox maps a neighbor's name to the most recent Message received from
// it during the current propagation.
type Mailbox map[string]message.Message

// kind distinguishes the two node classes of the bipartite graph.
type kind int

const (
	kindVariable kind = iota
	kindFactor
)

// node is the internal interface FactorGraph schedules over; both
// VariableNode and FactorNode implement it. It is unexported because
// callers interact with the concrete node types directly.
type node interface {
	Name() string
	kindOf() kind
	neighbors() []string
	isLeaf() bool
	mailbox() Mailbox
	sentTo() map[string]bool
	getTarget() (string, bool)
	constructMessage() (message.Message, error)
	receive(from string, m message.Message) error
	send(dest node, m message.Message) error
	reset()
}

// restrictToDomain validates that v is a member of d, returning
// domain.ErrValueNotInDomain otherwise.
func restrictToDomain(d domain.Domain, v domain.Value) error {
	if !d.Contains(v) {
		return domain.ErrValueNotInDomain
	}
	return nil
}

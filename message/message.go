package message

import (
	"fmt"

	"github.com/asgrim/sumproduct/domain"
	"github.com/asgrim/sumproduct/factor"
	"github.com/asgrim/sumproduct/marginalize"
)

// Message is a partial factor sent from Source to Destination along one
// edge of a factor graph, in one propagation.
type Message struct {
	// Source and Destination are the node names at either end of the edge
	// this message traveled.
	Source, Destination string

	// ArgSpec is the ordered list of free variable names this message is a
	// function of.
	ArgSpec []string

	// Factors is the ordered list of multiplicands: Const values and/or
	// *factor.Factor, combined via the marginalization engine at Evaluate
	// time.
	Factors []factor.Term
}

// Identity returns the multiplicative-identity message: no free variables,
// a single Const(1) multiplicand. Leaf variable nodes send this.
func Identity(source, destination string) Message {
	return Message{
		Source:      source,
		Destination: destination,
		ArgSpec:     nil,
		Factors:     []factor.Term{factor.Const(1)},
	}
}

// Evaluate returns m's value at assignment a, which must cover m.ArgSpec.
// Internally this is the marginalization-engine sum over every variable
// m's Factors declare beyond ArgSpec (when there is none, this is a plain
// product of the multiplicands restricted to a).
func (m Message) Evaluate(a domain.Assignment) (float64, error) {
	v, err := marginalize.Eval(m.ArgSpec, m.Factors, a)
	if err != nil {
		return 0, fmt.Errorf("message %s->%s: %w", m.Source, m.Destination, err)
	}
	return v, nil
}

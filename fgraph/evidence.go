package fgraph

import (
	"fmt"

	"github.com/asgrim/sumproduct/domain"
	"github.com/asgrim/sumproduct/factor"
)

// evidenceState backs the indicator factor lazily wired onto a variable by
// AddEvidence. Evaluate returns 1 when the variable's value equals the
// pinned value, 0 otherwise; with no pin (pinned == nil) it is neutral,
// always returning 1, so Reset can clear an observation without tearing
// down the indicator node's wiring.
type evidenceState struct {
	variable string
	pinned   *domain.Value
}

func (s *evidenceState) evaluate(a domain.Assignment) float64 {
	if s.pinned == nil {
		return 1
	}
	if a[s.variable] == *s.pinned {
		return 1
	}
	return 0
}

// AddEvidence pins variableName to the observed value, asserting value is a
// member of its domain. Observation is introduced as an indicator factor: a
// prior factor over the variable returning 1 at value and 0 elsewhere,
// multiplied in alongside any existing prior/conditional factors so the
// variable's unnormalized marginal is 0 everywhere except at value once
// propagation completes. The indicator node is created once per variable
// (on the first AddEvidence call) and reused thereafter: adding the same
// evidence twice is a no-op, and pinning a different value simply moves the
// indicator's target.
func (g *FactorGraph) AddEvidence(variableName string, value domain.Value) error {
	v := g.Variable(variableName)
	if v == nil {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, variableName)
	}
	if err := restrictToDomain(v.domain, value); err != nil {
		return err
	}

	if v.evidenceState == nil {
		if err := g.attachIndicator(v); err != nil {
			return err
		}
	}

	val := value
	v.evidenceState.pinned = &val
	v.evidence = &val
	return nil
}

// attachIndicator creates and wires a neutral indicator FactorNode as an
// additional parent of v, registering it in the graph. It is called at
// most once per variable, the first time AddEvidence pins it.
func (g *FactorGraph) attachIndicator(v *VariableNode) error {
	state := &evidenceState{variable: v.name}
	fn, err := factor.NewFactor(
		v.name+"#evidence",
		[]string{v.name},
		map[string]domain.Domain{v.name: v.domain},
		state.evaluate,
	)
	if err != nil {
		return err
	}

	indicatorName := v.name + "#evidence"
	indicator := NewFactorNode(indicatorName, fn)
	indicator.SetChildren(v.name)

	g.byName[indicatorName] = indicator
	g.order = append(g.order, indicatorName)

	v.parents = append(v.parents, indicatorName)
	v.evidenceState = state
	return nil
}

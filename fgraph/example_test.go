package fgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgrim/sumproduct/domain"
	"github.com/asgrim/sumproduct/factor"
	"github.com/asgrim/sumproduct/fgraph"
)

// buildDiagnosticNetwork wires the five-variable diagnostic network used
// throughout this suite: two independent priors x1, x2 feed a conditional
// x3, which in turn drives two further conditionals x4, x5. pB is fB's
// P(x2=True), parameterized so the prior-change scenario can reuse this
// builder with a different prior instead of a hand-duplicated variant.
func buildDiagnosticNetwork(t *testing.T, pB float64) *fgraph.FactorGraph {
	t.Helper()
	bd := boolDomain()

	x1, err := fgraph.NewVariableNode("x1", bd)
	require.NoError(t, err)
	x2, err := fgraph.NewVariableNode("x2", bd)
	require.NoError(t, err)
	x3, err := fgraph.NewVariableNode("x3", bd)
	require.NoError(t, err)
	x4, err := fgraph.NewVariableNode("x4", bd)
	require.NoError(t, err)
	x5, err := fgraph.NewVariableNode("x5", bd)
	require.NoError(t, err)

	fA := mustPriorFactor(t, "fA", "x1", 0.1)
	fB := mustPriorFactor(t, "fB", "x2", pB)

	cTable := map[[2]domain.Value]float64{
		{"True", "True"}:   0.05,
		{"True", "False"}:  0.02,
		{"False", "True"}:  0.03,
		{"False", "False"}: 0.001,
	}
	fC, err := factor.NewFactor("fC", []string{"x1", "x2", "x3"},
		map[string]domain.Domain{"x1": bd, "x2": bd, "x3": bd},
		func(a domain.Assignment) float64 {
			pTrue := cTable[[2]domain.Value{a["x1"], a["x2"]}]
			if a["x3"] == "True" {
				return pTrue
			}
			return 1 - pTrue
		})
	require.NoError(t, err)

	fD, err := factor.NewFactor("fD", []string{"x3", "x4"},
		map[string]domain.Domain{"x3": bd, "x4": bd},
		func(a domain.Assignment) float64 {
			pTrue := map[domain.Value]float64{"True": 0.9, "False": 0.2}[a["x3"]]
			if a["x4"] == "True" {
				return pTrue
			}
			return 1 - pTrue
		})
	require.NoError(t, err)

	fE, err := factor.NewFactor("fE", []string{"x3", "x5"},
		map[string]domain.Domain{"x3": bd, "x5": bd},
		func(a domain.Assignment) float64 {
			pTrue := map[domain.Value]float64{"True": 0.65, "False": 0.3}[a["x3"]]
			if a["x5"] == "True" {
				return pTrue
			}
			return 1 - pTrue
		})
	require.NoError(t, err)

	nA := fgraph.NewFactorNode("fA", fA)
	nB := fgraph.NewFactorNode("fB", fB)
	nC := fgraph.NewFactorNode("fC", fC)
	nD := fgraph.NewFactorNode("fD", fD)
	nE := fgraph.NewFactorNode("fE", fE)

	nA.SetChildren("x1")
	nB.SetChildren("x2")
	nC.SetParents("x1", "x2")
	nC.SetChildren("x3")
	nD.SetParents("x3")
	nD.SetChildren("x4")
	nE.SetParents("x3")
	nE.SetChildren("x5")

	x1.SetParents("fA")
	x1.SetChildren("fC")
	x2.SetParents("fB")
	x2.SetChildren("fC")
	x3.SetParents("fC")
	x3.SetChildren("fD", "fE")
	x4.SetParents("fD")
	x5.SetParents("fE")

	g, err := fgraph.NewFactorGraph(
		[]*fgraph.VariableNode{x1, x2, x3, x4, x5},
		[]*fgraph.FactorNode{nA, nB, nC, nD, nE},
	)
	require.NoError(t, err)
	return g
}

const scenarioTolerance = 0.0015

func TestDiagnosticNetwork_NoEvidence(t *testing.T) {
	g := buildDiagnosticNetwork(t, 0.3)
	require.NoError(t, g.Propagate())

	p3, err := g.Variable("x3").Marginal("True", 1.0)
	require.NoError(t, err)
	p4, err := g.Variable("x4").Marginal("True", 1.0)
	require.NoError(t, err)
	p5, err := g.Variable("x5").Marginal("True", 1.0)
	require.NoError(t, err)

	assert.InDelta(t, 0.012, p3, scenarioTolerance)
	assert.InDelta(t, 0.208, p4, scenarioTolerance)
	assert.InDelta(t, 0.304, p5, scenarioTolerance)
}

func TestDiagnosticNetwork_EvidenceX5(t *testing.T) {
	g := buildDiagnosticNetwork(t, 0.3)
	require.NoError(t, g.AddEvidence("x5", "True"))
	require.NoError(t, g.Propagate())

	normalizer, err := g.Variable("x5").Marginal("True", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.304, normalizer, scenarioTolerance)

	p1, err := g.Variable("x1").Marginal("True", normalizer)
	require.NoError(t, err)
	p2, err := g.Variable("x2").Marginal("True", normalizer)
	require.NoError(t, err)
	p3, err := g.Variable("x3").Marginal("True", normalizer)
	require.NoError(t, err)
	p4, err := g.Variable("x4").Marginal("True", normalizer)
	require.NoError(t, err)

	assert.InDelta(t, 0.102, p1, scenarioTolerance)
	assert.InDelta(t, 0.307, p2, scenarioTolerance)
	assert.InDelta(t, 0.025, p3, scenarioTolerance)
	assert.InDelta(t, 0.217, p4, scenarioTolerance)
}

func TestDiagnosticNetwork_EvidenceX2(t *testing.T) {
	g := buildDiagnosticNetwork(t, 0.3)
	require.NoError(t, g.AddEvidence("x2", "True"))
	require.NoError(t, g.Propagate())

	normalizer, err := g.Variable("x2").Marginal("True", 1.0)
	require.NoError(t, err)

	p3, err := g.Variable("x3").Marginal("True", normalizer)
	require.NoError(t, err)
	p4, err := g.Variable("x4").Marginal("True", normalizer)
	require.NoError(t, err)
	p5, err := g.Variable("x5").Marginal("True", normalizer)
	require.NoError(t, err)

	assert.InDelta(t, 0.032, p3, scenarioTolerance)
	assert.InDelta(t, 0.222, p4, scenarioTolerance)
	assert.InDelta(t, 0.311, p5, scenarioTolerance)
}

func TestDiagnosticNetwork_EvidenceX3(t *testing.T) {
	g := buildDiagnosticNetwork(t, 0.3)
	require.NoError(t, g.AddEvidence("x3", "True"))
	require.NoError(t, g.Propagate())

	normalizer, err := g.Variable("x3").Marginal("True", 1.0)
	require.NoError(t, err)

	p1, err := g.Variable("x1").Marginal("True", normalizer)
	require.NoError(t, err)
	p2, err := g.Variable("x2").Marginal("True", normalizer)
	require.NoError(t, err)
	p4, err := g.Variable("x4").Marginal("True", normalizer)
	require.NoError(t, err)
	p5, err := g.Variable("x5").Marginal("True", normalizer)
	require.NoError(t, err)

	assert.InDelta(t, 0.249, p1, scenarioTolerance)
	assert.InDelta(t, 0.825, p2, scenarioTolerance)
	assert.InDelta(t, 0.9, p4, scenarioTolerance)
	assert.InDelta(t, 0.650, p5, scenarioTolerance)
}

func TestDiagnosticNetwork_EvidenceX2AndX3(t *testing.T) {
	g := buildDiagnosticNetwork(t, 0.3)
	require.NoError(t, g.AddEvidence("x2", "True"))
	require.NoError(t, g.AddEvidence("x3", "True"))
	require.NoError(t, g.Propagate())

	joint, err := g.Variable("x3").Marginal("True", 1.0)
	require.NoError(t, err)

	p1, err := g.Variable("x1").Marginal("True", joint)
	require.NoError(t, err)
	p4, err := g.Variable("x4").Marginal("True", joint)
	require.NoError(t, err)
	p5, err := g.Variable("x5").Marginal("True", joint)
	require.NoError(t, err)

	assert.InDelta(t, 0.156, p1, scenarioTolerance)
	assert.InDelta(t, 0.9, p4, scenarioTolerance)
	assert.InDelta(t, 0.650, p5, scenarioTolerance)
}

func TestDiagnosticNetwork_PriorChangeWithEvidenceX3(t *testing.T) {
	g := buildDiagnosticNetwork(t, 0.5)
	require.NoError(t, g.AddEvidence("x3", "True"))
	require.NoError(t, g.Propagate())

	normalizer, err := g.Variable("x3").Marginal("True", 1.0)
	require.NoError(t, err)

	p1, err := g.Variable("x1").Marginal("True", normalizer)
	require.NoError(t, err)
	p2, err := g.Variable("x2").Marginal("True", normalizer)
	require.NoError(t, err)
	p4, err := g.Variable("x4").Marginal("True", normalizer)
	require.NoError(t, err)
	p5, err := g.Variable("x5").Marginal("True", normalizer)
	require.NoError(t, err)

	assert.InDelta(t, 0.201, p1, scenarioTolerance)
	assert.InDelta(t, 0.917, p2, scenarioTolerance)
	assert.InDelta(t, 0.9, p4, scenarioTolerance, "x4|x3=T is unaffected by the x2 prior change")
	assert.InDelta(t, 0.650, p5, scenarioTolerance, "x5|x3=T is unaffected by the x2 prior change")
}

func TestDiagnosticNetwork_TreeCompletionDeliveryCount(t *testing.T) {
	g := buildDiagnosticNetwork(t, 0.3)
	leaves := g.GetLeaves()
	assert.ElementsMatch(t, []string{"fA", "fB", "x4", "x5"}, leaves)
	require.NoError(t, g.Propagate())
	// 10 nodes, 9 edges on a tree: every node must have sent on every
	// incident edge, which Propagate itself already asserts via
	// checkComplete before returning nil.
}

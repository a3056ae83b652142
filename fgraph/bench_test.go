package fgraph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asgrim/sumproduct/domain"
	"github.com/asgrim/sumproduct/factor"
	"github.com/asgrim/sumproduct/fgraph"
)

// buildBinaryChain builds a chain of n boolean variables x0..x(n-1), each
// consecutive pair joined by a factor f0..f(n-2), plus a single prior on
// x0. This is the same chain shape as buildChain but sized for a
// benchmark instead of a hand-checkable example.
//
// Complexity: construction is O(n); one Propagate pass over the resulting
// tree is O(n) deliveries (2 per edge, 2n-1 edges).
func buildBinaryChain(b *testing.B, n int) *fgraph.FactorGraph {
	b.Helper()
	bd := domain.Domain{"True", "False"}

	vs := make([]*fgraph.VariableNode, n)
	for i := 0; i < n; i++ {
		v, err := fgraph.NewVariableNode(fmt.Sprintf("x%d", i), bd)
		require.NoError(b, err)
		vs[i] = v
	}

	prior, err := factor.NewFactor("fPrior", []string{"x0"}, map[string]domain.Domain{"x0": bd},
		func(a domain.Assignment) float64 {
			if a["x0"] == "True" {
				return 0.3
			}
			return 0.7
		})
	require.NoError(b, err)
	priorNode := fgraph.NewFactorNode("fPrior", prior)
	priorNode.SetChildren("x0")

	fs := make([]*fgraph.FactorNode, 0, n)
	fs = append(fs, priorNode)
	vs[0].SetParents("fPrior")

	for i := 0; i < n-1; i++ {
		left, right := fmt.Sprintf("x%d", i), fmt.Sprintf("x%d", i+1)
		name := fmt.Sprintf("f%d", i)
		f, err := factor.NewFactor(name, []string{left, right},
			map[string]domain.Domain{left: bd, right: bd},
			func(a domain.Assignment) float64 {
				if a[left] == a[right] {
					return 0.9
				}
				return 0.1
			})
		require.NoError(b, err)
		fn := fgraph.NewFactorNode(name, f)
		fn.SetParents(left)
		fn.SetChildren(right)
		fs = append(fs, fn)

		vs[i].SetChildren(append(vs[i].Children(), name)...)
		vs[i+1].SetParents(name)
	}

	g, err := fgraph.NewFactorGraph(vs, fs)
	require.NoError(b, err)
	return g
}

// BenchmarkPropagate_Chain1000 measures sum-product propagation on a
// 1,000-variable chain network. The graph is built once; each iteration
// resets mailboxes and sent-edge markers and re-propagates from scratch,
// so construction cost is excluded from the measured loop.
func BenchmarkPropagate_Chain1000(b *testing.B) {
	g := buildBinaryChain(b, 1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g.Reset()
		if err := g.Propagate(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMarginal_Chain1000 measures the cost of reading out every
// variable's marginal after one propagation over the same chain shape,
// isolating the marginalization-engine cost from the message-passing cost.
func BenchmarkMarginal_Chain1000(b *testing.B) {
	g := buildBinaryChain(b, 1000)
	require.NoError(b, g.Propagate())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < 1000; j++ {
			if _, err := g.Variable(fmt.Sprintf("x%d", j)).Marginal("True", 1.0); err != nil {
				b.Fatal(err)
			}
		}
	}
}

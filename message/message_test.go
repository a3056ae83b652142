package message_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgrim/sumproduct/domain"
	"github.com/asgrim/sumproduct/factor"
	"github.com/asgrim/sumproduct/message"
)

func TestIdentity_EvaluatesToOne(t *testing.T) {
	m := message.Identity("x1", "fC")
	assert.Nil(t, m.ArgSpec)
	v, err := m.Evaluate(domain.Assignment{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestIdentity_SourceDestinationAreStable(t *testing.T) {
	a := message.Identity("x1", "fC")
	b := message.Identity("x1", "fC")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identity messages for same endpoints differ: %s", diff)
	}
}

func TestMessage_EvaluateDelegatesToMarginalize(t *testing.T) {
	fA, err := factor.NewFactor("fA", []string{"x1"}, map[string]domain.Domain{"x1": {"True", "False"}},
		func(a domain.Assignment) float64 {
			if a["x1"] == "True" {
				return 0.1
			}
			return 0.9
		})
	require.NoError(t, err)

	m := message.Message{
		Source:      "fA",
		Destination: "x1",
		ArgSpec:     []string{"x1"},
		Factors:     []factor.Term{fA},
	}
	v, err := m.Evaluate(domain.Assignment{"x1": "True"})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, v, 1e-12)
}

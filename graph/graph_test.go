package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glia-ml/glia/graph"
	"github.com/glia-ml/glia/tensor"
)

// TestPublicAPI exercises the facade end to end: build a graph through the
// public packages, evaluate forward and pull a gradient back to the leaf.
func TestPublicAPI(t *testing.T) {
	x, err := tensor.FromRows(tensor.Float64, [][]float64{{0, -0.1}})
	require.NoError(t, err)

	g := graph.New()
	in := g.Input(x)
	out := g.Sigmoid(in)

	assert.Equal(t, graph.Sigmoid, g.OpAt(out))
	assert.Equal(t, []graph.NodeID{in}, g.InputsOf(out))

	ev := graph.NewEvaluator(g)
	y, err := ev.Forward(out)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y.Float64s()[0], 1e-12)

	seed, err := tensor.FromRows(tensor.Float64, [][]float64{{1, 1}})
	require.NoError(t, err)
	grads, err := ev.Backward(out, seed)
	require.NoError(t, err)

	dx := grads[in]
	require.NotNil(t, dx)
	assert.True(t, dx.Shape().Equal(x.Shape()), "leaf gradient matches leaf shape")
	assert.InDelta(t, 0.25, dx.Float64s()[0], 1e-12)
}

func TestPublicErrors(t *testing.T) {
	x, err := tensor.FromVector(tensor.Float64, []float64{1, 2})
	require.NoError(t, err)
	y, err := tensor.FromVector(tensor.Float64, []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = x.Add(y)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
